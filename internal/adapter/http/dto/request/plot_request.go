package request

import (
	"strings"

	"shrijee_plots/internal/domain/entities"
)

type PricingRequest struct {
	TotalPrice             int64 `json:"total_price" binding:"required,gt=0"`
	ShowTotalPrice         *bool `json:"show_total_price"`
	ShowInstallmentAmounts *bool `json:"show_installment_amounts"`
}

type PlanRequest struct {
	Name                 string  `json:"name" binding:"required"`
	NumberOfInstallments int     `json:"number_of_installments" binding:"required,gte=1"`
	DownPaymentPercent   float64 `json:"down_payment_percent" binding:"gte=0,lte=100"`
	InterestRate         float64 `json:"interest_rate" binding:"gte=0"`
	EMIAmount            *int64  `json:"emi_amount" binding:"omitempty,gte=0"`
	IsActive             *bool   `json:"is_active"`
}

// InstallmentPlanRequest configures the installment option of a plot. Zero
// plan-level values fall back to the defaults (20% down, 12 installments).
type InstallmentPlanRequest struct {
	Enabled                 bool          `json:"enabled"`
	MinDownPaymentPercent   float64       `json:"min_down_payment_percent" binding:"gte=0,lte=100"`
	MaxInstallments         int           `json:"max_installments" binding:"gte=0"`
	InstallmentInterestRate float64       `json:"installment_interest_rate" binding:"gte=0"`
	Plans                   []PlanRequest `json:"plans" binding:"dive"`
}

type PlotRequest struct {
	PlotNumber      string                  `json:"plot_number" binding:"required"`
	Title           string                  `json:"title" binding:"required"`
	Location        string                  `json:"location"`
	AreaSqFt        float64                 `json:"area_sq_ft" binding:"gte=0"`
	Pricing         PricingRequest          `json:"pricing"`
	InstallmentPlan *InstallmentPlanRequest `json:"installment_plan"`
}

// ToEntity maps the payload to a Plot. Visibility flags default to true.
func (r PlotRequest) ToEntity() entities.Plot {
	return entities.Plot{
		PlotNumber: strings.TrimSpace(r.PlotNumber),
		Title:      strings.TrimSpace(r.Title),
		Location:   strings.TrimSpace(r.Location),
		AreaSqFt:   r.AreaSqFt,
		Pricing: entities.Pricing{
			TotalPrice:             r.Pricing.TotalPrice,
			ShowTotalPrice:         boolOr(r.Pricing.ShowTotalPrice, true),
			ShowInstallmentAmounts: boolOr(r.Pricing.ShowInstallmentAmounts, true),
		},
		InstallmentPlan: r.InstallmentPlan.ToEntity(),
	}
}

func (r *InstallmentPlanRequest) ToEntity() *entities.InstallmentPlan {
	if r == nil {
		return nil
	}
	plans := make([]entities.Plan, 0, len(r.Plans))
	for _, p := range r.Plans {
		plans = append(plans, entities.Plan{
			Name:                 strings.TrimSpace(p.Name),
			NumberOfInstallments: p.NumberOfInstallments,
			DownPaymentPercent:   p.DownPaymentPercent,
			InterestRate:         p.InterestRate,
			EMIAmount:            p.EMIAmount,
			IsActive:             p.IsActive,
		})
	}
	return &entities.InstallmentPlan{
		Enabled:                 r.Enabled,
		MinDownPaymentPercent:   r.MinDownPaymentPercent,
		MaxInstallments:         r.MaxInstallments,
		InstallmentInterestRate: r.InstallmentInterestRate,
		Plans:                   plans,
	}
}

// PlotListQuery is bound from the query string of GET /plots.
type PlotListQuery struct {
	Status   string `form:"status" binding:"omitempty,oneof=available booked sold"`
	MinPrice int64  `form:"min_price" binding:"gte=0"`
	MaxPrice int64  `form:"max_price" binding:"gte=0"`
	Location string `form:"location"`
}

// PreviewQuery is bound from the query string of the installment preview.
type PreviewQuery struct {
	PaymentType string `form:"payment_type" binding:"omitempty,payment_type"`
	Plan        string `form:"plan"`
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
