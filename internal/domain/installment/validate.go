package installment

import (
	"fmt"
	"strings"

	"shrijee_plots/internal/domain/entities"
)

// ValidatePlan checks an installment configuration before it is stored.
// Unlike Preview, it inspects every preset, not only the one that would be
// selected, so a broken preset cannot hide behind a valid one.
func ValidatePlan(plan *entities.InstallmentPlan) error {
	if plan == nil {
		return nil
	}
	if plan.MaxInstallments < 0 {
		return ErrInvalidInstallmentCount
	}
	if plan.MinDownPaymentPercent < 0 || plan.MinDownPaymentPercent > 100 || plan.InstallmentInterestRate < 0 {
		return ErrInvalidPercent
	}

	seen := make(map[string]struct{}, len(plan.Plans))
	for i, p := range plan.Plans {
		name := strings.ToLower(strings.TrimSpace(p.Name))
		if name == "" {
			return fmt.Errorf("plan %d: %w", i, ErrEmptyPlanName)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("plan %q: %w", p.Name, ErrDuplicatePlanName)
		}
		seen[name] = struct{}{}

		if p.NumberOfInstallments < 1 {
			return fmt.Errorf("plan %q: %w", p.Name, ErrInvalidInstallmentCount)
		}
		if p.DownPaymentPercent < 0 || p.DownPaymentPercent > 100 || p.InterestRate < 0 {
			return fmt.Errorf("plan %q: %w", p.Name, ErrInvalidPercent)
		}
		if p.EMIAmount != nil && *p.EMIAmount < 0 {
			return fmt.Errorf("plan %q: %w", p.Name, ErrInvalidEMIAmount)
		}
	}
	return nil
}
