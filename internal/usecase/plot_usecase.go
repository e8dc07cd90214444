package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"shrijee_plots/internal/domain/entities"
	"shrijee_plots/internal/domain/installment"
	"shrijee_plots/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrPlotNotFound       = errors.New("plot not found")
	ErrInvalidPlotID      = errors.New("invalid plot id")
	ErrInvalidPlotInput   = errors.New("invalid plot input")
	ErrPlotNotAvailable   = errors.New("plot not available")
	ErrPlotHasBookings    = errors.New("plot has active bookings")
	ErrInvalidPlanConfig  = errors.New("invalid installment plan")
	ErrInvalidPlotFilter  = errors.New("invalid plot filter")
	ErrInvalidPaymentType = errors.New("invalid payment type")
)

// PlotFilter narrows plot listings. Zero values disable a criterion.
type PlotFilter struct {
	Status   entities.PlotStatus
	MinPrice int64
	MaxPrice int64
	Location string
}

// IPlotUseCase exposes plot inventory operations.
//
//   - Admin CRUD over the inventory, including the installment configuration.
//   - PreviewInstallment => installment preview shown before booking.

type IPlotUseCase interface {
	Create(ctx context.Context, p entities.Plot) (entities.Plot, error)
	GetByID(ctx context.Context, id string) (entities.Plot, error)
	List(ctx context.Context, filter PlotFilter) ([]entities.Plot, error)
	Update(ctx context.Context, id string, p entities.Plot) (entities.Plot, error)
	Delete(ctx context.Context, id string) error
	UpdateInstallmentPlan(ctx context.Context, id string, plan *entities.InstallmentPlan) (entities.Plot, error)
	PreviewInstallment(ctx context.Context, id string, paymentType entities.PaymentType, planName string) (entities.Plot, *installment.Result, error)
}

type PlotUseCase struct {
	repo        interfaces.IPlotRepository
	bookingRepo interfaces.IBookingRepository
}

var _ IPlotUseCase = (*PlotUseCase)(nil)

func NewPlotUseCase(repo interfaces.IPlotRepository, bookingRepo interfaces.IBookingRepository) *PlotUseCase {
	return &PlotUseCase{repo: repo, bookingRepo: bookingRepo}
}

func (u *PlotUseCase) Create(ctx context.Context, p entities.Plot) (entities.Plot, error) {
	if err := validatePlot(p); err != nil {
		return entities.Plot{}, err
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.Status = entities.PlotStatusAvailable
	p.CreatedAt = now
	p.UpdatedAt = now

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		logrus.WithError(err).Errorf("[plot][usecase] create failed plot_number=%s", p.PlotNumber)
		return entities.Plot{}, err
	}
	logrus.Infof("[plot][usecase] created plot_id=%s plot_number=%s", created.ID, created.PlotNumber)
	return created, nil
}

func (u *PlotUseCase) GetByID(ctx context.Context, id string) (entities.Plot, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Plot{}, ErrInvalidPlotID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Plot{}, err
	}
	if p.ID == "" {
		return entities.Plot{}, ErrPlotNotFound
	}
	return p, nil
}

func (u *PlotUseCase) List(ctx context.Context, filter PlotFilter) ([]entities.Plot, error) {
	if filter.MinPrice < 0 || filter.MaxPrice < 0 || (filter.MaxPrice > 0 && filter.MinPrice > filter.MaxPrice) {
		return nil, ErrInvalidPlotFilter
	}

	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	location := strings.ToLower(strings.TrimSpace(filter.Location))
	out := make([]entities.Plot, 0, len(all))
	for _, p := range all {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.MinPrice > 0 && p.Pricing.TotalPrice < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && p.Pricing.TotalPrice > filter.MaxPrice {
			continue
		}
		if location != "" && !strings.Contains(strings.ToLower(p.Location), location) {
			continue
		}
		out = append(out, p)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].PlotNumber < out[j].PlotNumber })
	return out, nil
}

func (u *PlotUseCase) Update(ctx context.Context, id string, p entities.Plot) (entities.Plot, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Plot{}, err
	}
	if err := validatePlot(p); err != nil {
		return entities.Plot{}, err
	}

	p.ID = existing.ID
	p.Status = existing.Status
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, p)
	if err != nil {
		return entities.Plot{}, err
	}
	if updated.ID == "" {
		return entities.Plot{}, ErrPlotNotFound
	}
	return updated, nil
}

func (u *PlotUseCase) Delete(ctx context.Context, id string) error {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Status != entities.PlotStatusAvailable {
		return ErrPlotHasBookings
	}

	bookings, err := u.bookingRepo.ListByPlotID(ctx, existing.ID)
	if err != nil {
		return err
	}
	for _, b := range bookings {
		if b.Status == entities.BookingStatusPendingApproval || b.Status == entities.BookingStatusApproved {
			return ErrPlotHasBookings
		}
	}

	if err := u.repo.Delete(ctx, existing.ID); err != nil {
		logrus.WithError(err).Errorf("[plot][usecase] delete failed plot_id=%s", existing.ID)
		return err
	}
	logrus.Infof("[plot][usecase] deleted plot_id=%s", existing.ID)
	return nil
}

func (u *PlotUseCase) UpdateInstallmentPlan(ctx context.Context, id string, plan *entities.InstallmentPlan) (entities.Plot, error) {
	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Plot{}, err
	}
	if err := installment.ValidatePlan(plan); err != nil {
		return entities.Plot{}, fmt.Errorf("%w: %v", ErrInvalidPlanConfig, err)
	}

	existing.InstallmentPlan = plan
	existing.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, existing)
	if err != nil {
		return entities.Plot{}, err
	}
	if updated.ID == "" {
		return entities.Plot{}, ErrPlotNotFound
	}
	logrus.Infof("[plot][usecase] installment plan updated plot_id=%s enabled=%t presets=%d", updated.ID, plan != nil && plan.Enabled, planCount(plan))
	return updated, nil
}

// PreviewInstallment returns the plot with its installment preview. The
// preview is nil for full payments and for plots without installments.
func (u *PlotUseCase) PreviewInstallment(ctx context.Context, id string, paymentType entities.PaymentType, planName string) (entities.Plot, *installment.Result, error) {
	if paymentType != "" && !validPaymentType(paymentType) {
		return entities.Plot{}, nil, ErrInvalidPaymentType
	}

	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Plot{}, nil, err
	}
	if paymentType == entities.PaymentTypeFull {
		return p, nil, nil
	}

	preview, err := installment.Preview(p.Pricing.TotalPrice, p.InstallmentPlan, planName)
	if err != nil {
		logrus.WithError(err).Warnf("[plot][usecase] preview rejected plot_id=%s plan=%q", p.ID, planName)
		return entities.Plot{}, nil, fmt.Errorf("%w: %v", ErrInvalidPlanConfig, err)
	}
	return p, preview, nil
}

func validatePlot(p entities.Plot) error {
	if strings.TrimSpace(p.PlotNumber) == "" || strings.TrimSpace(p.Title) == "" {
		return ErrInvalidPlotInput
	}
	if p.Pricing.TotalPrice <= 0 || p.AreaSqFt < 0 {
		return ErrInvalidPlotInput
	}
	if err := installment.ValidatePlan(p.InstallmentPlan); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPlanConfig, err)
	}
	return nil
}

func validPaymentType(t entities.PaymentType) bool {
	return t == entities.PaymentTypeFull || t == entities.PaymentTypeInstallment
}

func planCount(plan *entities.InstallmentPlan) int {
	if plan == nil {
		return 0
	}
	return len(plan.Plans)
}
