package handlers

import (
	"errors"
	"net/http"

	request "shrijee_plots/internal/adapter/http/dto/request"
	response "shrijee_plots/internal/adapter/http/dto/response"
	"shrijee_plots/internal/adapter/http/middleware"
	"shrijee_plots/internal/domain/entities"
	"shrijee_plots/internal/domain/installment"
	"shrijee_plots/internal/domain/schedule"
	"shrijee_plots/internal/usecase"
	"shrijee_plots/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const idempotencyKeyHeader = "Idempotency-Key"

var (
	errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)
	errUnauthenticated       = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	errBookingForbidden      = pkg.NewDomainErrorSimple("FORBIDDEN", "Booking belongs to another user", http.StatusForbidden)
	errConcurrentUpdate      = pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Booking was changed by another request, retry", http.StatusConflict)
)

type BookingHandler struct {
	bookings usecase.IBookingUseCase
	overdue  usecase.IOverdueUseCase
	clock    schedule.Clock
}

func NewBookingHandler(bookings usecase.IBookingUseCase, overdue usecase.IOverdueUseCase, clock schedule.Clock) *BookingHandler {
	if clock == nil {
		clock = schedule.SystemClock{}
	}
	return &BookingHandler{bookings: bookings, overdue: overdue, clock: clock}
}

// CreateBooking submits a booking for the authenticated buyer. A repeated
// Idempotency-Key header is answered with 409.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
		return
	}

	var payload request.BookingCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		logrus.WithError(err).Infof("[booking][handler] invalid payload user_id=%s", p.UserID)
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	in := usecase.SubmitBookingInput{
		UserID:           p.UserID,
		PlotID:           payload.ResolvePlotID(),
		PaymentType:      payload.ResolvePaymentType(),
		SelectedPlanName: payload.ResolvePlanName(),
		IdempotencyKey:   c.GetHeader(idempotencyKeyHeader),
	}
	logrus.Infof("[booking][handler] create start user_id=%s plot_id=%s payment_type=%s", in.UserID, in.PlotID, in.PaymentType)

	created, err := h.bookings.Submit(c.Request.Context(), in)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logrus.Infof("[booking][handler] create success booking_id=%s", created.ID)
	c.JSON(http.StatusCreated, response.FromBooking(created, h.clock.Now()))
}

func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
		return
	}

	bookings, err := h.bookings.ListByUserID(c.Request.Context(), p.UserID)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(bookings, h.clock.Now()))
}

// GetBooking is visible to the booking owner and to admins.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.bookings.GetByID(c.Request.Context(), c.Param("booking_id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !canSeeBooking(c, b) {
		c.JSON(errBookingForbidden.HTTPStatus, errBookingForbidden.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(b, h.clock.Now()))
}

func (h *BookingHandler) ApproveBooking(c *gin.Context) {
	bookingID := c.Param("booking_id")
	logrus.Infof("[booking][handler] approve start booking_id=%s", bookingID)

	approved, err := h.bookings.Approve(c.Request.Context(), bookingID)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logrus.Infof("[booking][handler] approve success booking_id=%s entries=%d", approved.ID, len(approved.PaymentSchedule))
	c.JSON(http.StatusOK, response.FromBooking(approved, h.clock.Now()))
}

func (h *BookingHandler) RejectBooking(c *gin.Context) {
	var payload request.BookingRejectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	rejected, err := h.bookings.Reject(c.Request.Context(), c.Param("booking_id"), payload.Reason)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(rejected, h.clock.Now()))
}

// CancelBooking lets the owner withdraw a booking still pending approval.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
		return
	}

	cancelled, err := h.bookings.Cancel(c.Request.Context(), c.Param("booking_id"), p.UserID)
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBooking(cancelled, h.clock.Now()))
}

func (h *BookingHandler) ListPlotBookings(c *gin.Context) {
	bookings, err := h.bookings.ListByPlotID(c.Request.Context(), c.Param("plot_id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBookings(bookings, h.clock.Now()))
}

// ListOverdue runs the overdue sweep on demand.
func (h *BookingHandler) ListOverdue(c *gin.Context) {
	items, err := h.overdue.Scan(c.Request.Context())
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOverdueItems(items))
}

func canSeeBooking(c *gin.Context, b entities.Booking) bool {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return false
	}
	return p.IsAdmin() || p.UserID == b.UserID
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingID), errors.Is(err, usecase.ErrInvalidPlotID), errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidPaymentType), errors.Is(err, usecase.ErrInvalidRejectionReason):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPlotNotFound):
		return pkg.NewDomainErrorSimple("PLOT_NOT_FOUND", "Plot not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingForbidden):
		return errBookingForbidden
	case errors.Is(err, usecase.ErrPlotNotAvailable):
		return pkg.NewDomainErrorSimple("PLOT_NOT_AVAILABLE", "Plot is not available for booking", http.StatusConflict)
	case errors.Is(err, usecase.ErrBookingAlreadyExists):
		return pkg.NewDomainErrorSimple("BOOKING_ALREADY_EXISTS", "You already have a pending booking for this plot", http.StatusConflict)
	case errors.Is(err, usecase.ErrBookingNotPending):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_PENDING", "Booking is no longer pending approval", http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicateBookingRequest):
		return pkg.NewDomainErrorSimple("DUPLICATE_REQUEST", "This booking request was already submitted", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return errConcurrentUpdate
	case errors.Is(err, usecase.ErrInstallmentsUnavailable), errors.Is(err, schedule.ErrNoPreview):
		return pkg.NewDomainErrorSimple("INSTALLMENTS_UNAVAILABLE", "Installments are not offered for this plot", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidPlanConfig), errors.Is(err, installment.ErrInvalidInstallmentCount):
		return pkg.NewDomainError("INVALID_INSTALLMENT_PLAN", "Installment plan configuration is invalid", err, http.StatusUnprocessableEntity)
	default:
		logrus.WithError(err).Error("[booking][handler] unexpected error")
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
