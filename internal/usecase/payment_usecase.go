package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"shrijee_plots/internal/domain/entities"
	"shrijee_plots/internal/domain/schedule"
	"shrijee_plots/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoActiveBooking                = errors.New("no approved booking for plot")
	ErrBookingNotApproved             = errors.New("booking not approved")
	ErrInvalidPaymentMode             = errors.New("invalid payment mode")
	ErrInvalidInstallmentNumber       = errors.New("invalid installment number")
	ErrInvalidGatewayPayload          = errors.New("invalid payment gateway payload")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentNotApproved             = errors.New("payment not approved by provider")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// RecordPaymentInput is an admin-recorded offline payment.
type RecordPaymentInput struct {
	PlotID            string
	InstallmentNumber int
	Amount            int64
	PaymentMode       entities.PaymentMode
	TransactionID     string
	Notes             string
	RecordedBy        string
}

// ScheduleLine is a schedule entry with the status valid at query time.
type ScheduleLine struct {
	Entry   entities.PaymentScheduleEntry
	Display schedule.DisplayStatus
}

// ScheduleView is a booking's payment schedule as seen at AsOf.
type ScheduleView struct {
	Booking entities.Booking
	Lines   []ScheduleLine
	Summary schedule.Summary
	AsOf    time.Time
}

// IPaymentUseCase encapsulates payment recording against booking schedules.
//
//   - Record => admin records money received for an installment
//   - PayOnline => buyer pays an installment through the payment gateway
//   - Schedule => schedule with derived (overdue-aware) statuses

type IPaymentUseCase interface {
	Record(ctx context.Context, in RecordPaymentInput) (entities.PaymentRecord, entities.Booking, error)
	PayOnline(ctx context.Context, bookingID string, userID string, installmentNumber int, payload json.RawMessage) (entities.PaymentRecord, entities.Booking, error)
	ListByBookingID(ctx context.Context, bookingID string) ([]entities.PaymentRecord, error)
	Schedule(ctx context.Context, bookingID string) (ScheduleView, error)
}

type PaymentUseCase struct {
	repo        interfaces.IPaymentRepository
	bookingRepo interfaces.IBookingRepository
	plotRepo    interfaces.IPlotRepository
	gateway     interfaces.IPaymentGateway
	clock       schedule.Clock
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, bookingRepo interfaces.IBookingRepository, plotRepo interfaces.IPlotRepository, gateway interfaces.IPaymentGateway, clock schedule.Clock) *PaymentUseCase {
	if clock == nil {
		clock = schedule.SystemClock{}
	}
	return &PaymentUseCase{repo: repo, bookingRepo: bookingRepo, plotRepo: plotRepo, gateway: gateway, clock: clock}
}

func (u *PaymentUseCase) Record(ctx context.Context, in RecordPaymentInput) (entities.PaymentRecord, entities.Booking, error) {
	in.PlotID = strings.TrimSpace(in.PlotID)
	logrus.Infof("[payment][usecase] record start plot_id=%s installment=%d amount=%d mode=%s", in.PlotID, in.InstallmentNumber, in.Amount, in.PaymentMode)

	if in.PlotID == "" {
		return entities.PaymentRecord{}, entities.Booking{}, ErrInvalidPlotID
	}
	if in.InstallmentNumber < 0 {
		return entities.PaymentRecord{}, entities.Booking{}, ErrInvalidInstallmentNumber
	}
	if !validPaymentMode(in.PaymentMode) {
		return entities.PaymentRecord{}, entities.Booking{}, ErrInvalidPaymentMode
	}

	bookings, err := u.bookingRepo.ListByPlotID(ctx, in.PlotID)
	if err != nil {
		return entities.PaymentRecord{}, entities.Booking{}, err
	}
	var active *entities.Booking
	for i := range bookings {
		if bookings[i].Status == entities.BookingStatusApproved {
			active = &bookings[i]
			break
		}
	}
	if active == nil {
		logrus.Infof("[payment][usecase] no approved booking plot_id=%s", in.PlotID)
		return entities.PaymentRecord{}, entities.Booking{}, ErrNoActiveBooking
	}

	rec := entities.PaymentRecord{
		InstallmentNumber: in.InstallmentNumber,
		Amount:            in.Amount,
		PaymentMode:       in.PaymentMode,
		TransactionID:     strings.TrimSpace(in.TransactionID),
		Notes:             strings.TrimSpace(in.Notes),
		RecordedBy:        in.RecordedBy,
	}
	return u.apply(ctx, *active, rec)
}

// apply posts a ledger line against an approved booking's schedule. The
// booking is written first, conditioned on the version that was read, so a
// concurrent payment on the same booking fails with ErrConcurrentUpdate
// before any ledger line is written. A ledger failure after that is logged
// with the booking id so the two can be reconciled.
func (u *PaymentUseCase) apply(ctx context.Context, b entities.Booking, rec entities.PaymentRecord) (entities.PaymentRecord, entities.Booking, error) {
	now := u.clock.Now()
	if err := schedule.ApplyToBooking(&b, rec.InstallmentNumber, rec.Amount, now); err != nil {
		logrus.WithError(err).Infof("[payment][usecase] payment refused booking_id=%s installment=%d", b.ID, rec.InstallmentNumber)
		return entities.PaymentRecord{}, entities.Booking{}, err
	}

	completed := b.FullyPaid()
	if completed {
		b.Status = entities.BookingStatusCompleted
	}
	b.UpdatedAt = now

	updated, err := u.bookingRepo.Update(ctx, b)
	if errors.Is(err, interfaces.ErrConcurrentUpdate) {
		logrus.Warnf("[payment][usecase] booking changed concurrently booking_id=%s installment=%d", b.ID, rec.InstallmentNumber)
		return entities.PaymentRecord{}, entities.Booking{}, err
	}
	if err != nil {
		logrus.WithError(err).Errorf("[payment][usecase] booking update failed booking_id=%s", b.ID)
		return entities.PaymentRecord{}, entities.Booking{}, err
	}
	if updated.ID == "" {
		return entities.PaymentRecord{}, entities.Booking{}, ErrBookingNotFound
	}

	rec.ID = uuid.NewString()
	rec.BookingID = b.ID
	rec.PlotID = b.PlotID
	rec.RecordedAt = now

	created, err := u.repo.Create(ctx, rec)
	if err != nil {
		logrus.WithError(err).Errorf("[payment][usecase] ledger create failed booking_id=%s installment=%d amount=%d", b.ID, rec.InstallmentNumber, rec.Amount)
		return entities.PaymentRecord{}, entities.Booking{}, err
	}

	if completed {
		if _, err := u.plotRepo.UpdateStatus(ctx, b.PlotID, entities.PlotStatusBooked, entities.PlotStatusSold); err != nil {
			logrus.WithError(err).Errorf("[payment][usecase] plot sold update failed plot_id=%s", b.PlotID)
			return entities.PaymentRecord{}, entities.Booking{}, err
		}
		logrus.Infof("[payment][usecase] booking completed booking_id=%s plot_id=%s", b.ID, b.PlotID)
	}

	logrus.Infof("[payment][usecase] record success payment_id=%s booking_id=%s installment=%d", created.ID, created.BookingID, created.InstallmentNumber)
	return created, updated, nil
}

// PayOnline charges the remaining amount of one installment through the
// payment gateway and records it when the provider approves.
func (u *PaymentUseCase) PayOnline(ctx context.Context, bookingID string, userID string, installmentNumber int, payload json.RawMessage) (entities.PaymentRecord, entities.Booking, error) {
	bookingID = strings.TrimSpace(bookingID)
	logrus.Infof("[payment][usecase] pay-online start booking_id=%s installment=%d payload_len=%d", bookingID, installmentNumber, len(payload))

	if bookingID == "" {
		return entities.PaymentRecord{}, entities.Booking{}, ErrInvalidBookingID
	}
	if installmentNumber < 0 {
		return entities.PaymentRecord{}, entities.Booking{}, ErrInvalidInstallmentNumber
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return entities.PaymentRecord{}, entities.Booking{}, ErrInvalidGatewayPayload
	}
	if u.gateway == nil {
		logrus.Errorf("[payment][usecase] gateway not configured booking_id=%s", bookingID)
		return entities.PaymentRecord{}, entities.Booking{}, ErrPaymentGatewayNotConfigured
	}

	b, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return entities.PaymentRecord{}, entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.PaymentRecord{}, entities.Booking{}, ErrBookingNotFound
	}
	if b.UserID != strings.TrimSpace(userID) {
		return entities.PaymentRecord{}, entities.Booking{}, ErrBookingForbidden
	}
	if b.Status != entities.BookingStatusApproved {
		return entities.PaymentRecord{}, entities.Booking{}, ErrBookingNotApproved
	}
	entry, ok := b.Entry(installmentNumber)
	if !ok {
		return entities.PaymentRecord{}, entities.Booking{}, schedule.ErrInstallmentNotFound
	}
	if schedule.Settled(*entry) {
		return entities.PaymentRecord{}, entities.Booking{}, schedule.ErrAlreadyPaid
	}
	amount := entry.Remaining()

	enriched, err := enrichGatewayPayload(payload, b, installmentNumber, amount)
	if err != nil {
		logrus.WithError(err).Infof("[payment][usecase] invalid payload booking_id=%s", bookingID)
		return entities.PaymentRecord{}, entities.Booking{}, err
	}

	logrus.Infof("[payment][usecase] calling payment gateway booking_id=%s installment=%d amount=%d", bookingID, installmentNumber, amount)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		logrus.WithError(err).Errorf("[payment][usecase] payment gateway failed booking_id=%s", bookingID)
		return entities.PaymentRecord{}, entities.Booking{}, classifyGatewayError(err)
	}
	logrus.Infof("[payment][usecase] payment gateway response booking_id=%s provider_payment_id=%s provider_status=%s", bookingID, providerPaymentID, providerStatus)
	if providerStatus != "approved" {
		return entities.PaymentRecord{}, entities.Booking{}, fmt.Errorf("%w: status=%s", ErrPaymentNotApproved, providerStatus)
	}

	rec := entities.PaymentRecord{
		InstallmentNumber:  installmentNumber,
		Amount:             amount,
		PaymentMode:        entities.PaymentModeOnline,
		TransactionID:      providerPaymentID,
		RecordedBy:         b.UserID,
		ProviderPayloadRaw: providerResp,
	}
	return u.apply(ctx, b, rec)
}

func (u *PaymentUseCase) ListByBookingID(ctx context.Context, bookingID string) ([]entities.PaymentRecord, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}
	return u.repo.ListByBookingID(ctx, bookingID)
}

func (u *PaymentUseCase) Schedule(ctx context.Context, bookingID string) (ScheduleView, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return ScheduleView{}, ErrInvalidBookingID
	}

	b, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return ScheduleView{}, err
	}
	if b.ID == "" {
		return ScheduleView{}, ErrBookingNotFound
	}

	now := u.clock.Now()
	lines := make([]ScheduleLine, 0, len(b.PaymentSchedule))
	for _, e := range b.PaymentSchedule {
		lines = append(lines, ScheduleLine{Entry: e, Display: schedule.Derive(e, now)})
	}
	return ScheduleView{
		Booking: b,
		Lines:   lines,
		Summary: schedule.Summarize(b.PaymentSchedule, now),
		AsOf:    now,
	}, nil
}

func validPaymentMode(m entities.PaymentMode) bool {
	switch m {
	case entities.PaymentModeCash, entities.PaymentModeBankTransfer, entities.PaymentModeUPI, entities.PaymentModeCheque, entities.PaymentModeOnline:
		return true
	}
	return false
}

// enrichGatewayPayload links the provider payment to the booking. The amount
// always comes from the schedule, never from the client.
func enrichGatewayPayload(payload json.RawMessage, b entities.Booking, installmentNumber int, amount int64) (json.RawMessage, error) {
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil || reqMap == nil {
		return nil, ErrInvalidGatewayPayload
	}

	ensurePayerDefaults(reqMap)

	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = fmt.Sprintf("%s:%d", b.ID, installmentNumber)
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Plot %s installment %d", b.PlotID, installmentNumber)
	}
	reqMap["transaction_amount"] = amount

	out, err := json.Marshal(reqMap)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		}
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}
