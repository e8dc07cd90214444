package schedule

import (
	"errors"
	"time"

	"shrijee_plots/internal/domain/entities"
	"shrijee_plots/internal/domain/installment"
)

var (
	ErrNoPreview            = errors.New("installment preview required for installment bookings")
	ErrInvalidAmount        = errors.New("payment amount must be positive")
	ErrAlreadyPaid          = errors.New("installment already paid")
	ErrPaymentExceedsDue    = errors.New("payment exceeds amount due")
	ErrUnknownPaymentType   = errors.New("unknown payment type")
	ErrInstallmentNotFound  = errors.New("installment not found in schedule")
	ErrPreviousInstallments = errors.New("earlier installments are still unpaid")
)

// Build generates the payment schedule of a booking approved at start.
//
// Full payments get a single entry #0 for the total price. Installment
// payments get the down payment as #0 due at start and one EMI per month
// after it. The sum of amounts always equals the preview's total payable.
// Entries with nothing to collect, such as a 0% down payment, are created
// already paid so they never block later installments.
func Build(paymentType entities.PaymentType, totalPrice int64, preview *installment.Result, start time.Time) ([]entities.PaymentScheduleEntry, error) {
	start = start.UTC()

	switch paymentType {
	case entities.PaymentTypeFull:
		return []entities.PaymentScheduleEntry{
			newEntry(0, totalPrice, start, start),
		}, nil
	case entities.PaymentTypeInstallment:
		if preview == nil {
			return nil, ErrNoPreview
		}
		entries := make([]entities.PaymentScheduleEntry, 0, preview.NumberOfInstallments+1)
		entries = append(entries, newEntry(0, preview.DownPaymentAmount, start, start))
		for i := 1; i <= preview.NumberOfInstallments; i++ {
			entries = append(entries, newEntry(i, preview.EMIAmount, start.AddDate(0, i, 0), start))
		}
		return entries, nil
	default:
		return nil, ErrUnknownPaymentType
	}
}

func newEntry(n int, amount int64, due, start time.Time) entities.PaymentScheduleEntry {
	e := entities.PaymentScheduleEntry{
		InstallmentNumber: n,
		Amount:            amount,
		DueDate:           due,
		Status:            entities.ScheduleStatusPending,
	}
	if amount <= 0 {
		settled := start
		e.Amount = 0
		e.Status = entities.ScheduleStatusPaid
		e.PaidDate = &settled
	}
	return e
}

// Settled reports whether nothing is left to collect on an entry.
func Settled(e entities.PaymentScheduleEntry) bool {
	return e.Status == entities.ScheduleStatusPaid || e.Remaining() <= 0
}

// Apply records a payment of amount against an entry.
func Apply(e *entities.PaymentScheduleEntry, amount int64, paidAt time.Time) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if Settled(*e) {
		return ErrAlreadyPaid
	}
	if amount > e.Remaining() {
		return ErrPaymentExceedsDue
	}

	e.PaidAmount += amount
	if e.PaidAmount >= e.Amount {
		paid := paidAt.UTC()
		e.Status = entities.ScheduleStatusPaid
		e.PaidDate = &paid
		return nil
	}
	e.Status = entities.ScheduleStatusPartial
	return nil
}

// ApplyToBooking records a payment against one installment of a booking.
// Installments must be settled in order: money for #n is refused while an
// earlier entry is still open.
func ApplyToBooking(b *entities.Booking, installmentNumber int, amount int64, paidAt time.Time) error {
	entry, ok := b.Entry(installmentNumber)
	if !ok {
		return ErrInstallmentNotFound
	}
	for _, e := range b.PaymentSchedule {
		if e.InstallmentNumber < installmentNumber && !Settled(e) {
			return ErrPreviousInstallments
		}
	}
	return Apply(entry, amount, paidAt)
}
