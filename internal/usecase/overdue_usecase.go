package usecase

import (
	"context"
	"sort"
	"time"

	"shrijee_plots/internal/domain/entities"
	"shrijee_plots/internal/domain/schedule"
	"shrijee_plots/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// OverdueItem is one unpaid schedule entry past its due date.
type OverdueItem struct {
	BookingID         string    `json:"booking_id"`
	PlotID            string    `json:"plot_id"`
	UserID            string    `json:"user_id"`
	InstallmentNumber int       `json:"installment_number"`
	AmountDue         int64     `json:"amount_due"`
	DueDate           time.Time `json:"due_date"`
	DaysOverdue       int       `json:"days_overdue"`
}

type IOverdueUseCase interface {
	Scan(ctx context.Context) ([]OverdueItem, error)
}

type OverdueUseCase struct {
	bookingRepo interfaces.IBookingRepository
	clock       schedule.Clock
}

var _ IOverdueUseCase = (*OverdueUseCase)(nil)

func NewOverdueUseCase(bookingRepo interfaces.IBookingRepository, clock schedule.Clock) *OverdueUseCase {
	if clock == nil {
		clock = schedule.SystemClock{}
	}
	return &OverdueUseCase{bookingRepo: bookingRepo, clock: clock}
}

// Scan lists overdue entries of every approved booking, oldest due date first.
func (u *OverdueUseCase) Scan(ctx context.Context) ([]OverdueItem, error) {
	bookings, err := u.bookingRepo.ListByStatus(ctx, entities.BookingStatusApproved)
	if err != nil {
		logrus.WithError(err).Errorf("[overdue][usecase] listing approved bookings failed")
		return nil, err
	}

	now := u.clock.Now()
	items := make([]OverdueItem, 0)
	for _, b := range bookings {
		for _, e := range b.PaymentSchedule {
			if schedule.Settled(e) || !schedule.IsOverdue(e, now) {
				continue
			}
			items = append(items, OverdueItem{
				BookingID:         b.ID,
				PlotID:            b.PlotID,
				UserID:            b.UserID,
				InstallmentNumber: e.InstallmentNumber,
				AmountDue:         e.Remaining(),
				DueDate:           e.DueDate,
				DaysOverdue:       int(now.Sub(e.DueDate).Hours() / 24),
			})
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DueDate.Before(items[j].DueDate)
	})
	logrus.Infof("[overdue][usecase] scan done bookings=%d overdue=%d", len(bookings), len(items))
	return items, nil
}
