package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"

	request "shrijee_plots/internal/adapter/http/dto/request"
	response "shrijee_plots/internal/adapter/http/dto/response"
	"shrijee_plots/internal/adapter/http/middleware"
	"shrijee_plots/internal/domain/schedule"
	"shrijee_plots/internal/usecase"
	"shrijee_plots/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler handles HTTP requests for installment payments.
type PaymentHandler struct {
	payments usecase.IPaymentUseCase
	bookings usecase.IBookingUseCase
}

func NewPaymentHandler(payments usecase.IPaymentUseCase, bookings usecase.IBookingUseCase) *PaymentHandler {
	return &PaymentHandler{payments: payments, bookings: bookings}
}

// RecordPayment records an offline payment received by an admin against
// the approved booking of a plot.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var payload request.PaymentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		logrus.WithError(err).Infof("[payment][handler] invalid payload")
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	number, ok := payload.ResolveInstallmentNumber()
	if !ok {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	in := usecase.RecordPaymentInput{
		PlotID:            payload.ResolvePlotID(),
		InstallmentNumber: number,
		Amount:            payload.Amount,
		PaymentMode:       payload.ResolvePaymentMode(),
		TransactionID:     payload.ResolveTransactionID(),
		Notes:             payload.Notes,
	}
	if p, ok := middleware.PrincipalFrom(c); ok {
		in.RecordedBy = p.UserID
	}

	rec, booking, err := h.payments.Record(c.Request.Context(), in)
	if err != nil {
		logrus.WithError(err).Infof("[payment][handler] record failed plot_id=%s installment=%d", in.PlotID, in.InstallmentNumber)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logrus.Infof("[payment][handler] record success payment_id=%s booking_id=%s status=%s", rec.ID, booking.ID, booking.Status)

	c.JSON(http.StatusCreated, response.PaymentResultResponse{
		Payment: response.FromPaymentRecord(rec),
		Booking: response.FromBooking(booking, rec.RecordedAt),
	})
}

// ListBookingPayments returns the ledger of a booking to its owner or an admin.
func (h *PaymentHandler) ListBookingPayments(c *gin.Context) {
	bookingID := c.Param("booking_id")

	b, err := h.bookings.GetByID(c.Request.Context(), bookingID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !canSeeBooking(c, b) {
		c.JSON(errBookingForbidden.HTTPStatus, errBookingForbidden.ToHTTPError())
		return
	}

	records, err := h.payments.ListByBookingID(c.Request.Context(), b.ID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentRecords(records))
}

// GetSchedule returns the payment schedule with statuses derived at request time.
func (h *PaymentHandler) GetSchedule(c *gin.Context) {
	view, err := h.payments.Schedule(c.Request.Context(), c.Param("booking_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if !canSeeBooking(c, view.Booking) {
		c.JSON(errBookingForbidden.HTTPStatus, errBookingForbidden.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromScheduleView(view))
}

// PayOnline charges one installment through the payment gateway. The body is
// either a raw Mercado Pago payload or {"mp_payload": {...}}.
func (h *PaymentHandler) PayOnline(c *gin.Context) {
	bookingID := c.Param("booking_id")
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
		return
	}
	number, err := strconv.Atoi(c.Param("installment_number"))
	if err != nil || number < 0 {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid installment number", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logrus.Infof("[payment][handler] online start booking_id=%s installment=%d", bookingID, number)

	mockMode := isPaymentGatewayMockEnabled()
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if mockMode {
			logrus.WithError(err).Infof("[payment][handler] payload invalid in mock mode; fallback to empty payload booking_id=%s", bookingID)
			mpPayload = json.RawMessage("{}")
		} else {
			logrus.WithError(err).Infof("[payment][handler] invalid payload booking_id=%s", bookingID)
			c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
			return
		}
	}

	rec, booking, err := h.payments.PayOnline(c.Request.Context(), bookingID, p.UserID, number, mpPayload)
	if err != nil {
		logrus.WithError(err).Infof("[payment][handler] online failed booking_id=%s installment=%d", bookingID, number)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logrus.Infof("[payment][handler] online success booking_id=%s payment_id=%s transaction_id=%s", bookingID, rec.ID, rec.TransactionID)

	c.JSON(http.StatusOK, response.PaymentResultResponse{
		Payment: response.FromPaymentRecord(rec),
		Booking: response.FromBooking(booking, rec.RecordedAt),
	})
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope request.OnlinePaymentRequest
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err == nil {
		if _, wrapped := probe["mp_payload"]; wrapped {
			_ = json.Unmarshal(raw, &envelope)
			inner := strings.TrimSpace(string(envelope.MPPayload))
			if inner == "" || inner == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return envelope.MPPayload, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPlotID), errors.Is(err, usecase.ErrInvalidBookingID), errors.Is(err, usecase.ErrInvalidInstallmentNumber),
		errors.Is(err, usecase.ErrInvalidPaymentMode), errors.Is(err, usecase.ErrInvalidGatewayPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, schedule.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Payment amount must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrBookingForbidden):
		return errBookingForbidden
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoActiveBooking):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_BOOKING", "No approved booking for this plot", http.StatusNotFound)
	case errors.Is(err, schedule.ErrInstallmentNotFound):
		return pkg.NewDomainErrorSimple("INSTALLMENT_NOT_FOUND", "Installment not found in schedule", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBookingNotApproved):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_APPROVED", "Booking not approved", http.StatusConflict)
	case errors.Is(err, schedule.ErrAlreadyPaid):
		return pkg.NewDomainErrorSimple("INSTALLMENT_ALREADY_PAID", "Installment already paid", http.StatusConflict)
	case errors.Is(err, schedule.ErrPreviousInstallments):
		return pkg.NewDomainErrorSimple("EARLIER_INSTALLMENTS_UNPAID", "Earlier installments must be paid first", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return errConcurrentUpdate
	case errors.Is(err, schedule.ErrPaymentExceedsDue):
		return pkg.NewDomainErrorSimple("PAYMENT_EXCEEDS_DUE", "Payment exceeds the amount due", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment was not approved by the provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Online payments are not available", http.StatusServiceUnavailable)
	default:
		logrus.WithError(err).Error("[payment][handler] unexpected error")
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
