// Package installment computes the installment preview shown before a plot
// booking is submitted.
//
// The calculation is pure: identical inputs always give identical results,
// and nothing is persisted. Money is handled as whole rupees.
package installment

import (
	"errors"
	"strings"

	"shrijee_plots/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	DefaultDownPaymentPercent = 20.0
	DefaultInstallments       = 12
)

var (
	ErrInvalidPrice            = errors.New("invalid total price")
	ErrInvalidInstallmentCount = errors.New("number of installments must be at least 1")
	ErrInvalidPercent          = errors.New("invalid percentage")
	ErrInvalidEMIAmount        = errors.New("invalid emi amount")
	ErrDuplicatePlanName       = errors.New("duplicate plan name")
	ErrEmptyPlanName           = errors.New("plan name is required")
)

var hundred = decimal.NewFromInt(100)

// Result is the derived preview. Money fields are rounded, non-negative
// rupee amounts; percentages pass through unrounded.
type Result struct {
	PlanName             string  `json:"plan_name"`
	DownPaymentPercent   float64 `json:"down_payment_percent"`
	DownPaymentAmount    int64   `json:"down_payment_amount"`
	RemainingAmount      int64   `json:"remaining_amount"`
	TotalWithInterest    int64   `json:"total_with_interest"`
	NumberOfInstallments int     `json:"number_of_installments"`
	InterestRate         float64 `json:"interest_rate"`
	EMIAmount            int64   `json:"emi_amount"`
	TotalPayable         int64   `json:"total_payable"`
	Savings              int64   `json:"savings"`
	ExtraCost            int64   `json:"extra_cost"`
}

// terms are the effective parameters after preset resolution.
type terms struct {
	planName     string
	downPercent  float64
	installments int
	interestRate float64
	emiOverride  int64
}

// Preview computes the installment preview for a plot price.
//
// It returns (nil, nil) when the plan is absent or disabled: the installment
// option is simply not offered. Invalid configurations return an error.
func Preview(totalPrice int64, plan *entities.InstallmentPlan, selectedPlanName string) (*Result, error) {
	if plan == nil || !plan.Enabled {
		return nil, nil
	}
	if totalPrice < 0 {
		return nil, ErrInvalidPrice
	}

	t, err := resolve(plan, selectedPlanName)
	if err != nil {
		return nil, err
	}

	price := decimal.NewFromInt(totalPrice)
	down := price.Mul(decimal.NewFromFloat(t.downPercent)).Div(hundred).Round(0)
	remaining := price.Sub(down)

	factor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(t.interestRate).Div(hundred))
	withInterest := remaining.Mul(factor).Round(0)

	downAmount := down.IntPart()
	totalWithInterest := withInterest.IntPart()

	emi := t.emiOverride
	if emi == 0 {
		emi = ceilDiv(totalWithInterest, int64(t.installments))
	}

	totalPayable := downAmount + emi*int64(t.installments)

	return &Result{
		PlanName:             t.planName,
		DownPaymentPercent:   t.downPercent,
		DownPaymentAmount:    downAmount,
		RemainingAmount:      remaining.IntPart(),
		TotalWithInterest:    totalWithInterest,
		NumberOfInstallments: t.installments,
		InterestRate:         t.interestRate,
		EMIAmount:            emi,
		TotalPayable:         totalPayable,
		Savings:              max(0, totalPrice-totalPayable),
		ExtraCost:            max(0, totalPayable-totalPrice),
	}, nil
}

// resolve applies the precedence: matching named preset, first active
// preset, plan-level values, hard defaults.
func resolve(plan *entities.InstallmentPlan, selectedPlanName string) (terms, error) {
	if p, ok := selectPreset(plan.Plans, selectedPlanName); ok {
		t := terms{
			planName:     p.Name,
			downPercent:  p.DownPaymentPercent,
			installments: p.NumberOfInstallments,
			interestRate: p.InterestRate,
		}
		if p.HasEMIOverride() {
			t.emiOverride = *p.EMIAmount
		}
		return t, checkTerms(t)
	}

	t := terms{
		downPercent:  plan.MinDownPaymentPercent,
		installments: plan.MaxInstallments,
		interestRate: plan.InstallmentInterestRate,
	}
	if t.downPercent == 0 {
		t.downPercent = DefaultDownPaymentPercent
	}
	if t.installments == 0 {
		t.installments = DefaultInstallments
	}
	return t, checkTerms(t)
}

func selectPreset(plans []entities.Plan, name string) (entities.Plan, bool) {
	name = strings.TrimSpace(name)
	if name != "" {
		for _, p := range plans {
			if p.Active() && strings.EqualFold(strings.TrimSpace(p.Name), name) {
				return p, true
			}
		}
	}
	for _, p := range plans {
		if p.Active() {
			return p, true
		}
	}
	return entities.Plan{}, false
}

func checkTerms(t terms) error {
	if t.installments < 1 {
		return ErrInvalidInstallmentCount
	}
	if t.downPercent < 0 || t.downPercent > 100 {
		return ErrInvalidPercent
	}
	if t.interestRate < 0 {
		return ErrInvalidPercent
	}
	return nil
}

// ceilDiv divides non-negative a by positive b rounding up.
func ceilDiv(a, b int64) int64 {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
