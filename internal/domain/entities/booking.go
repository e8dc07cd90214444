package entities

import "time"

// BookingStatus represents the lifecycle of a plot booking.
//
// Domain notes:
//   - Bookings are created by buyers and wait for admin approval.
//   - The payment schedule is generated only on approval.
//   - A booking is completed once every schedule entry is paid.

type BookingStatus string

const (
	BookingStatusPendingApproval BookingStatus = "pending_approval"
	BookingStatusApproved        BookingStatus = "approved"
	BookingStatusRejected        BookingStatus = "rejected"
	BookingStatusCancelled       BookingStatus = "cancelled"
	BookingStatusCompleted       BookingStatus = "completed"
)

type PaymentType string

const (
	PaymentTypeFull        PaymentType = "full"
	PaymentTypeInstallment PaymentType = "installment"
)

// ScheduleStatus is the stored status of a schedule entry. Overdue is never
// stored; it is derived from the due date at read time.
type ScheduleStatus string

const (
	ScheduleStatusPending ScheduleStatus = "pending"
	ScheduleStatusPartial ScheduleStatus = "partial"
	ScheduleStatusPaid    ScheduleStatus = "paid"
)

// PaymentScheduleEntry is one due amount of a booking. Installment number 0
// is the down payment (or the full amount for full payments); 1..N are EMIs.
type PaymentScheduleEntry struct {
	InstallmentNumber int            `json:"installment_number"`
	Amount            int64          `json:"amount"`
	PaidAmount        int64          `json:"paid_amount"`
	DueDate           time.Time      `json:"due_date"`
	PaidDate          *time.Time     `json:"paid_date,omitempty"`
	Status            ScheduleStatus `json:"status"`
}

// Remaining is the amount still due on the entry.
func (e PaymentScheduleEntry) Remaining() int64 {
	if e.PaidAmount >= e.Amount {
		return 0
	}
	return e.Amount - e.PaidAmount
}

// BookingTerms is the snapshot of the installment terms the schedule was
// built from. It is taken on approval from the plot's configuration at that
// time, so later plan edits do not alter existing schedules.
type BookingTerms struct {
	PlanName             string  `json:"plan_name"`
	DownPaymentPercent   float64 `json:"down_payment_percent"`
	DownPaymentAmount    int64   `json:"down_payment_amount"`
	NumberOfInstallments int     `json:"number_of_installments"`
	InterestRate         float64 `json:"interest_rate"`
	EMIAmount            int64   `json:"emi_amount"`
	TotalPayable         int64   `json:"total_payable"`
}

// Booking is a buyer's request to purchase a plot, persisted in DynamoDB.
// Version is bumped by every stored update and guards concurrent writers.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (plot_id-index): plot_id
//   - GSI2 (user_id-index): user_id
//   - GSI3 (status-index): status
type Booking struct {
	ID               string                 `json:"id"`
	PlotID           string                 `json:"plot_id"`
	UserID           string                 `json:"user_id"`
	PaymentType      PaymentType            `json:"payment_type"`
	SelectedPlanName string                 `json:"selected_plan_name"`
	Status           BookingStatus          `json:"status"`
	TotalPrice       int64                  `json:"total_price"`
	Terms            *BookingTerms          `json:"terms,omitempty"`
	PaymentSchedule  []PaymentScheduleEntry `json:"payment_schedule"`
	RejectionReason  string                 `json:"rejection_reason,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
	ApprovedAt       *time.Time             `json:"approved_at,omitempty"`
	Version          int64                  `json:"version"`
}

// Entry returns a pointer to the schedule entry with the given number.
func (b *Booking) Entry(installmentNumber int) (*PaymentScheduleEntry, bool) {
	for i := range b.PaymentSchedule {
		if b.PaymentSchedule[i].InstallmentNumber == installmentNumber {
			return &b.PaymentSchedule[i], true
		}
	}
	return nil, false
}

// FullyPaid reports whether every schedule entry is paid.
func (b Booking) FullyPaid() bool {
	if len(b.PaymentSchedule) == 0 {
		return false
	}
	for _, e := range b.PaymentSchedule {
		if e.Status != ScheduleStatusPaid {
			return false
		}
	}
	return true
}
