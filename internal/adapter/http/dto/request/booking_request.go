package request

import (
	"strings"

	"shrijee_plots/internal/domain/entities"
)

// BookingCreateRequest is the buyer's booking submission. The web client
// sends camelCase keys (plotId, paymentType, selectedPlanName); both spellings
// are accepted and snake_case wins when both are present.
//
// An installment preview is never accepted here; the server recomputes it.
type BookingCreateRequest struct {
	PlotID           string `json:"plot_id"`
	PaymentType      string `json:"payment_type" binding:"omitempty,payment_type"`
	SelectedPlanName string `json:"selected_plan_name"`

	PlotIDCompat           string `json:"plotId"`
	PaymentTypeCompat      string `json:"paymentType" binding:"omitempty,payment_type"`
	SelectedPlanNameCompat string `json:"selectedPlanName"`
}

func (r BookingCreateRequest) ResolvePlotID() string {
	return firstNonEmpty(r.PlotID, r.PlotIDCompat)
}

// ResolvePaymentType defaults to a full payment.
func (r BookingCreateRequest) ResolvePaymentType() entities.PaymentType {
	if v := firstNonEmpty(r.PaymentType, r.PaymentTypeCompat); v != "" {
		return entities.PaymentType(v)
	}
	return entities.PaymentTypeFull
}

func (r BookingCreateRequest) ResolvePlanName() string {
	return firstNonEmpty(r.SelectedPlanName, r.SelectedPlanNameCompat)
}

type BookingRejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
