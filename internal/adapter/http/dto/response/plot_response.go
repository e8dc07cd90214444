package response

import (
	"time"

	"shrijee_plots/internal/domain/entities"
	"shrijee_plots/internal/domain/installment"
)

type PlanResponse struct {
	Name                 string  `json:"name"`
	NumberOfInstallments int     `json:"number_of_installments"`
	DownPaymentPercent   float64 `json:"down_payment_percent"`
	InterestRate         float64 `json:"interest_rate"`
	EMIAmount            *int64  `json:"emi_amount,omitempty"`
	IsActive             bool    `json:"is_active"`
}

type InstallmentPlanResponse struct {
	Enabled                 bool           `json:"enabled"`
	MinDownPaymentPercent   float64        `json:"min_down_payment_percent"`
	MaxInstallments         int            `json:"max_installments"`
	InstallmentInterestRate float64        `json:"installment_interest_rate"`
	Plans                   []PlanResponse `json:"plans"`
}

type PlotResponse struct {
	ID                     string                   `json:"id"`
	PlotNumber             string                   `json:"plot_number"`
	Title                  string                   `json:"title"`
	Location               string                   `json:"location"`
	AreaSqFt               float64                  `json:"area_sq_ft"`
	Status                 string                   `json:"status"`
	TotalPrice             *int64                   `json:"total_price,omitempty"`
	ShowTotalPrice         bool                     `json:"show_total_price"`
	ShowInstallmentAmounts bool                     `json:"show_installment_amounts"`
	InstallmentsAvailable  bool                     `json:"installments_available"`
	InstallmentPlan        *InstallmentPlanResponse `json:"installment_plan,omitempty"`
	CreatedAt              time.Time                `json:"created_at"`
	UpdatedAt              time.Time                `json:"updated_at"`
}

// FromPlot renders a plot for the caller. Admins see everything; buyers see
// only active presets, and rupee amounts only where the plot's flags allow.
func FromPlot(p entities.Plot, admin bool) PlotResponse {
	res := PlotResponse{
		ID:                     p.ID,
		PlotNumber:             p.PlotNumber,
		Title:                  p.Title,
		Location:               p.Location,
		AreaSqFt:               p.AreaSqFt,
		Status:                 string(p.Status),
		ShowTotalPrice:         p.Pricing.ShowTotalPrice,
		ShowInstallmentAmounts: p.Pricing.ShowInstallmentAmounts,
		InstallmentsAvailable:  p.InstallmentsEnabled(),
		CreatedAt:              p.CreatedAt,
		UpdatedAt:              p.UpdatedAt,
	}
	if admin || p.Pricing.ShowTotalPrice {
		res.TotalPrice = int64Ptr(p.Pricing.TotalPrice)
	}

	ip := p.InstallmentPlan
	if ip == nil || (!admin && !ip.Enabled) {
		return res
	}
	showAmounts := admin || p.Pricing.ShowInstallmentAmounts
	plans := make([]PlanResponse, 0, len(ip.Plans))
	for _, pl := range ip.Plans {
		if !admin && !pl.Active() {
			continue
		}
		pr := PlanResponse{
			Name:                 pl.Name,
			NumberOfInstallments: pl.NumberOfInstallments,
			DownPaymentPercent:   pl.DownPaymentPercent,
			InterestRate:         pl.InterestRate,
			IsActive:             pl.Active(),
		}
		if showAmounts && pl.EMIAmount != nil {
			pr.EMIAmount = int64Ptr(*pl.EMIAmount)
		}
		plans = append(plans, pr)
	}
	res.InstallmentPlan = &InstallmentPlanResponse{
		Enabled:                 ip.Enabled,
		MinDownPaymentPercent:   ip.MinDownPaymentPercent,
		MaxInstallments:         ip.MaxInstallments,
		InstallmentInterestRate: ip.InstallmentInterestRate,
		Plans:                   plans,
	}
	return res
}

func FromPlots(plots []entities.Plot, admin bool) []PlotResponse {
	out := make([]PlotResponse, 0, len(plots))
	for _, p := range plots {
		out = append(out, FromPlot(p, admin))
	}
	return out
}

// PreviewResponse is the installment preview for one plot. Amount fields are
// omitted when the plot hides installment amounts from buyers.
type PreviewResponse struct {
	PlotID      string `json:"plot_id"`
	PaymentType string `json:"payment_type"`
	Available   bool   `json:"available"`
	TotalPrice  *int64 `json:"total_price,omitempty"`

	PlanName             string  `json:"plan_name,omitempty"`
	DownPaymentPercent   float64 `json:"down_payment_percent,omitempty"`
	NumberOfInstallments int     `json:"number_of_installments,omitempty"`
	InterestRate         float64 `json:"interest_rate,omitempty"`

	DownPaymentAmount *int64 `json:"down_payment_amount,omitempty"`
	RemainingAmount   *int64 `json:"remaining_amount,omitempty"`
	TotalWithInterest *int64 `json:"total_with_interest,omitempty"`
	EMIAmount         *int64 `json:"emi_amount,omitempty"`
	TotalPayable      *int64 `json:"total_payable,omitempty"`
	Savings           *int64 `json:"savings,omitempty"`
	ExtraCost         *int64 `json:"extra_cost,omitempty"`
}

func FromPreview(p entities.Plot, paymentType entities.PaymentType, r *installment.Result, admin bool) PreviewResponse {
	if paymentType == "" {
		paymentType = entities.PaymentTypeInstallment
	}
	res := PreviewResponse{
		PlotID:      p.ID,
		PaymentType: string(paymentType),
		Available:   paymentType == entities.PaymentTypeFull || r != nil,
	}
	if admin || p.Pricing.ShowTotalPrice {
		res.TotalPrice = int64Ptr(p.Pricing.TotalPrice)
	}
	if r == nil {
		return res
	}

	res.PlanName = r.PlanName
	res.DownPaymentPercent = r.DownPaymentPercent
	res.NumberOfInstallments = r.NumberOfInstallments
	res.InterestRate = r.InterestRate
	if admin || p.Pricing.ShowInstallmentAmounts {
		res.DownPaymentAmount = int64Ptr(r.DownPaymentAmount)
		res.RemainingAmount = int64Ptr(r.RemainingAmount)
		res.TotalWithInterest = int64Ptr(r.TotalWithInterest)
		res.EMIAmount = int64Ptr(r.EMIAmount)
		res.TotalPayable = int64Ptr(r.TotalPayable)
		res.Savings = int64Ptr(r.Savings)
		res.ExtraCost = int64Ptr(r.ExtraCost)
	}
	return res
}

func int64Ptr(v int64) *int64 {
	return &v
}
