package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"shrijee_plots/internal/domain/entities"
	"shrijee_plots/internal/domain/installment"
	"shrijee_plots/internal/domain/schedule"
	"shrijee_plots/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrBookingNotFound         = errors.New("booking not found")
	ErrInvalidBookingID        = errors.New("invalid booking id")
	ErrInvalidUserID           = errors.New("invalid user id")
	ErrBookingNotPending       = errors.New("booking not pending approval")
	ErrBookingAlreadyExists    = errors.New("booking already pending for this plot")
	ErrBookingForbidden        = errors.New("booking belongs to another user")
	ErrInstallmentsUnavailable = errors.New("installments not offered for this plot")
	ErrDuplicateBookingRequest = errors.New("duplicate booking request")
	ErrInvalidRejectionReason  = errors.New("rejection reason is required")
	ErrConcurrentUpdate        = interfaces.ErrConcurrentUpdate
)

const (
	defaultIdempotencyKeyTTL    = 24 * time.Hour
	autoRejectReasonPlotBooked  = "plot booked by another buyer"
	idempotencyKeyPrefixBooking = "booking:"
)

// SubmitBookingInput is what a buyer sends to book a plot. The installment
// preview itself is never accepted from the client; it is recomputed here.
type SubmitBookingInput struct {
	UserID           string
	PlotID           string
	PaymentType      entities.PaymentType
	SelectedPlanName string
	IdempotencyKey   string
}

// IBookingUseCase exposes the booking lifecycle.
//
//   - Submit => pending_approval
//   - Approve => approved, schedule generated, plot booked
//   - Reject / Cancel => rejected / cancelled, plot untouched

type IBookingUseCase interface {
	Submit(ctx context.Context, in SubmitBookingInput) (entities.Booking, error)
	Approve(ctx context.Context, bookingID string) (entities.Booking, error)
	Reject(ctx context.Context, bookingID string, reason string) (entities.Booking, error)
	Cancel(ctx context.Context, bookingID string, userID string) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListByPlotID(ctx context.Context, plotID string) ([]entities.Booking, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Booking, error)
}

type BookingUseCase struct {
	repo           interfaces.IBookingRepository
	plotRepo       interfaces.IPlotRepository
	idempotency    interfaces.IIdempotencyStore
	clock          schedule.Clock
	idempotencyTTL time.Duration
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

// NewBookingUseCase wires the booking flow. idempotency may be nil, in which
// case Idempotency-Key headers are ignored.
func NewBookingUseCase(repo interfaces.IBookingRepository, plotRepo interfaces.IPlotRepository, idempotency interfaces.IIdempotencyStore, clock schedule.Clock) *BookingUseCase {
	if clock == nil {
		clock = schedule.SystemClock{}
	}
	return &BookingUseCase{
		repo:           repo,
		plotRepo:       plotRepo,
		idempotency:    idempotency,
		clock:          clock,
		idempotencyTTL: defaultIdempotencyKeyTTL,
	}
}

// WithIdempotencyTTL overrides how long submission keys are remembered.
func (u *BookingUseCase) WithIdempotencyTTL(ttl time.Duration) *BookingUseCase {
	if ttl > 0 {
		u.idempotencyTTL = ttl
	}
	return u
}

func (u *BookingUseCase) Submit(ctx context.Context, in SubmitBookingInput) (entities.Booking, error) {
	in.UserID = strings.TrimSpace(in.UserID)
	in.PlotID = strings.TrimSpace(in.PlotID)
	in.SelectedPlanName = strings.TrimSpace(in.SelectedPlanName)
	logrus.Infof("[booking][usecase] submit start plot_id=%s user_id=%s payment_type=%s plan=%q", in.PlotID, in.UserID, in.PaymentType, in.SelectedPlanName)

	if in.UserID == "" {
		return entities.Booking{}, ErrInvalidUserID
	}
	if in.PlotID == "" {
		return entities.Booking{}, ErrInvalidPlotID
	}
	if !validPaymentType(in.PaymentType) {
		return entities.Booking{}, ErrInvalidPaymentType
	}

	key := strings.TrimSpace(in.IdempotencyKey)
	if key != "" && u.idempotency != nil {
		key = idempotencyKeyPrefixBooking + in.UserID + ":" + key
		reserved, err := u.idempotency.Reserve(ctx, key, u.idempotencyTTL)
		if err != nil {
			logrus.WithError(err).Errorf("[booking][usecase] idempotency reserve failed plot_id=%s", in.PlotID)
			return entities.Booking{}, err
		}
		if !reserved {
			logrus.Warnf("[booking][usecase] duplicate submission plot_id=%s user_id=%s", in.PlotID, in.UserID)
			return entities.Booking{}, ErrDuplicateBookingRequest
		}
	} else {
		key = ""
	}

	created, err := u.submit(ctx, in)
	if err != nil && key != "" {
		if relErr := u.idempotency.Release(ctx, key); relErr != nil {
			logrus.WithError(relErr).Warnf("[booking][usecase] idempotency release failed plot_id=%s", in.PlotID)
		}
	}
	return created, err
}

func (u *BookingUseCase) submit(ctx context.Context, in SubmitBookingInput) (entities.Booking, error) {
	plot, err := u.plotRepo.GetByID(ctx, in.PlotID)
	if err != nil {
		return entities.Booking{}, err
	}
	if plot.ID == "" {
		return entities.Booking{}, ErrPlotNotFound
	}
	if plot.Status != entities.PlotStatusAvailable {
		logrus.Infof("[booking][usecase] plot not available plot_id=%s status=%s", plot.ID, plot.Status)
		return entities.Booking{}, ErrPlotNotAvailable
	}

	planName := ""
	if in.PaymentType == entities.PaymentTypeInstallment {
		preview, err := installment.Preview(plot.Pricing.TotalPrice, plot.InstallmentPlan, in.SelectedPlanName)
		if err != nil {
			return entities.Booking{}, fmt.Errorf("%w: %v", ErrInvalidPlanConfig, err)
		}
		if preview == nil {
			return entities.Booking{}, ErrInstallmentsUnavailable
		}
		planName = preview.PlanName
	}

	existing, err := u.repo.ListByPlotID(ctx, plot.ID)
	if err != nil {
		return entities.Booking{}, err
	}
	for _, b := range existing {
		if b.UserID == in.UserID && b.Status == entities.BookingStatusPendingApproval {
			return entities.Booking{}, ErrBookingAlreadyExists
		}
	}

	now := u.clock.Now()
	b := entities.Booking{
		ID:               uuid.NewString(),
		PlotID:           plot.ID,
		UserID:           in.UserID,
		PaymentType:      in.PaymentType,
		SelectedPlanName: planName,
		Status:           entities.BookingStatusPendingApproval,
		TotalPrice:       plot.Pricing.TotalPrice,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		logrus.WithError(err).Errorf("[booking][usecase] create failed plot_id=%s", plot.ID)
		return entities.Booking{}, err
	}
	logrus.Infof("[booking][usecase] submit success booking_id=%s plot_id=%s status=%s", created.ID, created.PlotID, created.Status)
	return created, nil
}

// Approve recomputes the terms from the plot's current configuration, builds
// the payment schedule and marks the plot booked. Other pending bookings for
// the same plot are rejected.
//
// The plot is claimed first with a conditional available to booked move, so
// only one of two concurrent approvals for a plot can win. If the booking
// write then fails the claim is released.
func (u *BookingUseCase) Approve(ctx context.Context, bookingID string) (entities.Booking, error) {
	b, err := u.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.Status != entities.BookingStatusPendingApproval {
		return entities.Booking{}, ErrBookingNotPending
	}

	plot, err := u.plotRepo.GetByID(ctx, b.PlotID)
	if err != nil {
		return entities.Booking{}, err
	}
	if plot.ID == "" {
		return entities.Booking{}, ErrPlotNotFound
	}
	if plot.Status != entities.PlotStatusAvailable {
		return entities.Booking{}, ErrPlotNotAvailable
	}

	var preview *installment.Result
	if b.PaymentType == entities.PaymentTypeInstallment {
		preview, err = installment.Preview(plot.Pricing.TotalPrice, plot.InstallmentPlan, b.SelectedPlanName)
		if err != nil {
			return entities.Booking{}, fmt.Errorf("%w: %v", ErrInvalidPlanConfig, err)
		}
		if preview == nil {
			return entities.Booking{}, ErrInstallmentsUnavailable
		}
	}

	now := u.clock.Now()
	entries, err := schedule.Build(b.PaymentType, plot.Pricing.TotalPrice, preview, now)
	if err != nil {
		return entities.Booking{}, err
	}

	claimed, err := u.plotRepo.UpdateStatus(ctx, plot.ID, entities.PlotStatusAvailable, entities.PlotStatusBooked)
	if err != nil {
		if errors.Is(err, interfaces.ErrConcurrentUpdate) {
			logrus.Infof("[booking][usecase] plot claimed concurrently plot_id=%s booking_id=%s", plot.ID, b.ID)
			return entities.Booking{}, ErrPlotNotAvailable
		}
		logrus.WithError(err).Errorf("[booking][usecase] plot status update failed plot_id=%s booking_id=%s", plot.ID, b.ID)
		return entities.Booking{}, err
	}
	if claimed.ID == "" {
		return entities.Booking{}, ErrPlotNotFound
	}

	b.TotalPrice = plot.Pricing.TotalPrice
	b.Terms = termsFrom(preview)
	b.PaymentSchedule = entries
	b.Status = entities.BookingStatusApproved
	b.ApprovedAt = &now
	b.UpdatedAt = now

	updated, err := u.repo.Update(ctx, b)
	if err == nil && updated.ID == "" {
		err = ErrBookingNotFound
	}
	if err != nil {
		logrus.WithError(err).Errorf("[booking][usecase] approve update failed booking_id=%s", b.ID)
		u.releasePlot(ctx, plot.ID, b.ID)
		return entities.Booking{}, err
	}

	u.rejectCompeting(ctx, updated)
	logrus.Infof("[booking][usecase] approved booking_id=%s plot_id=%s entries=%d", updated.ID, updated.PlotID, len(updated.PaymentSchedule))
	return updated, nil
}

func (u *BookingUseCase) releasePlot(ctx context.Context, plotID, bookingID string) {
	if _, err := u.plotRepo.UpdateStatus(ctx, plotID, entities.PlotStatusBooked, entities.PlotStatusAvailable); err != nil {
		logrus.WithError(err).Errorf("[booking][usecase] plot release failed plot_id=%s booking_id=%s", plotID, bookingID)
		return
	}
	logrus.Warnf("[booking][usecase] plot released after failed approval plot_id=%s booking_id=%s", plotID, bookingID)
}

func (u *BookingUseCase) rejectCompeting(ctx context.Context, approved entities.Booking) {
	others, err := u.repo.ListByPlotID(ctx, approved.PlotID)
	if err != nil {
		logrus.WithError(err).Warnf("[booking][usecase] listing competing bookings failed plot_id=%s", approved.PlotID)
		return
	}
	now := u.clock.Now()
	for _, o := range others {
		if o.ID == approved.ID || o.Status != entities.BookingStatusPendingApproval {
			continue
		}
		o.Status = entities.BookingStatusRejected
		o.RejectionReason = autoRejectReasonPlotBooked
		o.UpdatedAt = now
		if _, err := u.repo.Update(ctx, o); err != nil {
			logrus.WithError(err).Warnf("[booking][usecase] auto-reject failed booking_id=%s", o.ID)
		}
	}
}

func (u *BookingUseCase) Reject(ctx context.Context, bookingID string, reason string) (entities.Booking, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Booking{}, ErrInvalidRejectionReason
	}
	return u.transition(ctx, bookingID, func(b *entities.Booking) error {
		b.Status = entities.BookingStatusRejected
		b.RejectionReason = reason
		return nil
	})
}

func (u *BookingUseCase) Cancel(ctx context.Context, bookingID string, userID string) (entities.Booking, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Booking{}, ErrInvalidUserID
	}
	return u.transition(ctx, bookingID, func(b *entities.Booking) error {
		if b.UserID != userID {
			return ErrBookingForbidden
		}
		b.Status = entities.BookingStatusCancelled
		return nil
	})
}

// transition moves a pending booking to a terminal state.
func (u *BookingUseCase) transition(ctx context.Context, bookingID string, apply func(b *entities.Booking) error) (entities.Booking, error) {
	b, err := u.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.Status != entities.BookingStatusPendingApproval {
		return entities.Booking{}, ErrBookingNotPending
	}
	if err := apply(&b); err != nil {
		return entities.Booking{}, err
	}
	b.UpdatedAt = u.clock.Now()

	updated, err := u.repo.Update(ctx, b)
	if err != nil {
		return entities.Booking{}, err
	}
	if updated.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	logrus.Infof("[booking][usecase] transition booking_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

func (u *BookingUseCase) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *BookingUseCase) ListByPlotID(ctx context.Context, plotID string) ([]entities.Booking, error) {
	plotID = strings.TrimSpace(plotID)
	if plotID == "" {
		return nil, ErrInvalidPlotID
	}
	return u.repo.ListByPlotID(ctx, plotID)
}

func (u *BookingUseCase) ListByUserID(ctx context.Context, userID string) ([]entities.Booking, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	return u.repo.ListByUserID(ctx, userID)
}

func termsFrom(p *installment.Result) *entities.BookingTerms {
	if p == nil {
		return nil
	}
	return &entities.BookingTerms{
		PlanName:             p.PlanName,
		DownPaymentPercent:   p.DownPaymentPercent,
		DownPaymentAmount:    p.DownPaymentAmount,
		NumberOfInstallments: p.NumberOfInstallments,
		InterestRate:         p.InterestRate,
		EMIAmount:            p.EMIAmount,
		TotalPayable:         p.TotalPayable,
	}
}
