package handlers

import (
	"errors"
	"net/http"

	request "shrijee_plots/internal/adapter/http/dto/request"
	response "shrijee_plots/internal/adapter/http/dto/response"
	"shrijee_plots/internal/adapter/http/middleware"
	"shrijee_plots/internal/domain/entities"
	"shrijee_plots/internal/usecase"
	"shrijee_plots/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var (
	errInvalidPlotPayload = pkg.NewDomainErrorSimple("INVALID_PLOT_INPUT", "Invalid plot payload", http.StatusBadRequest)
	errInvalidQuery       = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid query parameters", http.StatusBadRequest)
)

// PlotHandler serves the plot inventory and installment previews.
type PlotHandler struct {
	usecase usecase.IPlotUseCase
}

func NewPlotHandler(uc usecase.IPlotUseCase) *PlotHandler {
	return &PlotHandler{usecase: uc}
}

// CreatePlot registers a new plot in the inventory.
func (h *PlotHandler) CreatePlot(c *gin.Context) {
	var payload request.PlotRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		logrus.WithError(err).Infof("[plot][handler] invalid payload")
		c.JSON(errInvalidPlotPayload.HTTPStatus, errInvalidPlotPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapPlotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromPlot(created, true))
}

func (h *PlotHandler) ListPlots(c *gin.Context) {
	var q request.PlotListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}

	plots, err := h.usecase.List(c.Request.Context(), usecase.PlotFilter{
		Status:   entities.PlotStatus(q.Status),
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		Location: q.Location,
	})
	if err != nil {
		appErr := mapPlotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPlots(plots, isAdmin(c)))
}

func (h *PlotHandler) GetPlot(c *gin.Context) {
	plot, err := h.usecase.GetByID(c.Request.Context(), c.Param("plot_id"))
	if err != nil {
		appErr := mapPlotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPlot(plot, isAdmin(c)))
}

// UpdatePlot replaces the plot details; the sale status is kept.
func (h *PlotHandler) UpdatePlot(c *gin.Context) {
	var payload request.PlotRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPlotPayload.HTTPStatus, errInvalidPlotPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), c.Param("plot_id"), payload.ToEntity())
	if err != nil {
		appErr := mapPlotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPlot(updated, true))
}

func (h *PlotHandler) DeletePlot(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("plot_id")); err != nil {
		appErr := mapPlotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateInstallmentPlan validates and stores the plot installment plan.
func (h *PlotHandler) UpdateInstallmentPlan(c *gin.Context) {
	var payload request.InstallmentPlanRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPlotPayload.HTTPStatus, errInvalidPlotPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateInstallmentPlan(c.Request.Context(), c.Param("plot_id"), payload.ToEntity())
	if err != nil {
		appErr := mapPlotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPlot(updated, true))
}

// PreviewInstallment returns the computed installment terms for the plot.
// Rupee amounts are hidden from buyers when the plot pricing says so.
func (h *PlotHandler) PreviewInstallment(c *gin.Context) {
	var q request.PreviewQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}

	paymentType := entities.PaymentType(q.PaymentType)
	plot, preview, err := h.usecase.PreviewInstallment(c.Request.Context(), c.Param("plot_id"), paymentType, q.Plan)
	if err != nil {
		appErr := mapPlotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPreview(plot, paymentType, preview, isAdmin(c)))
}

func isAdmin(c *gin.Context) bool {
	p, ok := middleware.PrincipalFrom(c)
	return ok && p.IsAdmin()
}

func mapPlotError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPlotID), errors.Is(err, usecase.ErrInvalidPlotFilter), errors.Is(err, usecase.ErrInvalidPaymentType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPlotInput):
		return errInvalidPlotPayload
	case errors.Is(err, usecase.ErrInvalidPlanConfig):
		return pkg.NewDomainError("INVALID_INSTALLMENT_PLAN", "Installment plan configuration is invalid", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPlotNotFound):
		return pkg.NewDomainErrorSimple("PLOT_NOT_FOUND", "Plot not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPlotHasBookings):
		return pkg.NewDomainErrorSimple("PLOT_HAS_BOOKINGS", "Plot is booked or has active bookings", http.StatusConflict)
	default:
		logrus.WithError(err).Error("[plot][handler] unexpected error")
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
