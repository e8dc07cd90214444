// Package schedule builds payment schedules for approved bookings and derives
// the status shown for each entry.
package schedule

import (
	"time"

	"shrijee_plots/internal/domain/entities"
)

// DisplayStatus is the status presented to users. Unlike the stored status
// it includes overdue, which depends on the time of the query.
type DisplayStatus string

const (
	DisplayPaid    DisplayStatus = "paid"
	DisplayPartial DisplayStatus = "partial"
	DisplayOverdue DisplayStatus = "overdue"
	DisplayPending DisplayStatus = "pending"
)

func (s DisplayStatus) Label() string {
	switch s {
	case DisplayPaid:
		return "Paid"
	case DisplayPartial:
		return "Partial"
	case DisplayOverdue:
		return "Overdue"
	default:
		return "Pending"
	}
}

// Derive classifies an entry at the given instant. Partial wins over overdue;
// an entry without a due date is never overdue.
func Derive(e entities.PaymentScheduleEntry, now time.Time) DisplayStatus {
	switch {
	case e.Status == entities.ScheduleStatusPaid:
		return DisplayPaid
	case e.Status == entities.ScheduleStatusPartial:
		return DisplayPartial
	case !e.DueDate.IsZero() && e.DueDate.Before(now):
		return DisplayOverdue
	default:
		return DisplayPending
	}
}

// IsOverdue reports whether money is still owed on an entry past its due
// date. This counts partial entries too, which Derive labels as partial.
func IsOverdue(e entities.PaymentScheduleEntry, now time.Time) bool {
	return e.Status != entities.ScheduleStatusPaid && !e.DueDate.IsZero() && e.DueDate.Before(now)
}
