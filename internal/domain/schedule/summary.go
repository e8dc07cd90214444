package schedule

import (
	"time"

	"shrijee_plots/internal/domain/entities"
)

// Summary aggregates a schedule at a point in time.
type Summary struct {
	TotalDue          int64                          `json:"total_due"`
	TotalPaid         int64                          `json:"total_paid"`
	Outstanding       int64                          `json:"outstanding"`
	PaidCount         int                            `json:"paid_count"`
	OverdueCount      int                            `json:"overdue_count"`
	OverdueAmount     int64                          `json:"overdue_amount"`
	NextDue           *entities.PaymentScheduleEntry `json:"next_due,omitempty"`
	InstallmentsCount int                            `json:"installments_count"`
}

func Summarize(entries []entities.PaymentScheduleEntry, now time.Time) Summary {
	s := Summary{InstallmentsCount: len(entries)}
	for i := range entries {
		e := entries[i]
		s.TotalDue += e.Amount
		s.TotalPaid += e.PaidAmount
		s.Outstanding += e.Remaining()

		if e.Status == entities.ScheduleStatusPaid {
			s.PaidCount++
			continue
		}
		if IsOverdue(e, now) {
			s.OverdueCount++
			s.OverdueAmount += e.Remaining()
		}
		if s.NextDue == nil || e.DueDate.Before(s.NextDue.DueDate) {
			s.NextDue = &entries[i]
		}
	}
	return s
}
