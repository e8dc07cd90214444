package entities

import "time"

// PlotStatus represents the sales lifecycle of a plot.
//
// Domain notes:
//   - A plot is available until a booking for it is approved.
//   - It becomes sold once every installment of the approved booking is paid.

type PlotStatus string

const (
	PlotStatusAvailable PlotStatus = "available"
	PlotStatusBooked    PlotStatus = "booked"
	PlotStatusSold      PlotStatus = "sold"
)

// Pricing holds the plot price and the flags that control what a buyer sees.
//
// When a Show* flag is false, non-admin callers receive percentages and
// installment counts only; rupee amounts are omitted.
type Pricing struct {
	TotalPrice             int64 `json:"total_price"`
	ShowTotalPrice         bool  `json:"show_total_price"`
	ShowInstallmentAmounts bool  `json:"show_installment_amounts"`
}

// Plan is a named, admin-configured installment preset.
type Plan struct {
	Name                 string  `json:"name"`
	NumberOfInstallments int     `json:"number_of_installments"`
	DownPaymentPercent   float64 `json:"down_payment_percent"`
	InterestRate         float64 `json:"interest_rate"`
	EMIAmount            *int64  `json:"emi_amount,omitempty"`
	IsActive             *bool   `json:"is_active,omitempty"`
}

// Active reports whether the preset may be offered. An unset flag means active.
func (p Plan) Active() bool {
	return p.IsActive == nil || *p.IsActive
}

// HasEMIOverride reports whether the preset pins the installment amount.
func (p Plan) HasEMIOverride() bool {
	return p.EMIAmount != nil && *p.EMIAmount > 0
}

// InstallmentPlan is the installment configuration attached to a plot.
//
// Zero plan-level values mean "use the default" (20%, 12 installments, 0%).
type InstallmentPlan struct {
	Enabled                 bool    `json:"enabled"`
	MinDownPaymentPercent   float64 `json:"min_down_payment_percent"`
	MaxInstallments         int     `json:"max_installments"`
	InstallmentInterestRate float64 `json:"installment_interest_rate"`
	Plans                   []Plan  `json:"plans"`
}

// Plot is a land plot offered for sale, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - pricing and installment_plan are stored as nested maps
type Plot struct {
	ID              string           `json:"id"`
	PlotNumber      string           `json:"plot_number"`
	Title           string           `json:"title"`
	Location        string           `json:"location"`
	AreaSqFt        float64          `json:"area_sq_ft"`
	Status          PlotStatus       `json:"status"`
	Pricing         Pricing          `json:"pricing"`
	InstallmentPlan *InstallmentPlan `json:"installment_plan,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// InstallmentsEnabled reports whether the installment payment option is offered.
func (p Plot) InstallmentsEnabled() bool {
	return p.InstallmentPlan != nil && p.InstallmentPlan.Enabled
}
