package response

import (
	"time"

	"shrijee_plots/internal/domain/entities"
	"shrijee_plots/internal/domain/schedule"
	"shrijee_plots/internal/usecase"
)

type ScheduleEntryResponse struct {
	InstallmentNumber int        `json:"installment_number"`
	Amount            int64      `json:"amount"`
	PaidAmount        int64      `json:"paid_amount"`
	Remaining         int64      `json:"remaining"`
	DueDate           time.Time  `json:"due_date"`
	PaidDate          *time.Time `json:"paid_date,omitempty"`
	Status            string     `json:"status"`
	StatusLabel       string     `json:"status_label"`
}

type BookingResponse struct {
	ID               string                  `json:"id"`
	PlotID           string                  `json:"plot_id"`
	UserID           string                  `json:"user_id"`
	PaymentType      string                  `json:"payment_type"`
	SelectedPlanName string                  `json:"selected_plan_name,omitempty"`
	Status           string                  `json:"status"`
	TotalPrice       int64                   `json:"total_price"`
	Terms            *entities.BookingTerms  `json:"terms,omitempty"`
	PaymentSchedule  []ScheduleEntryResponse `json:"payment_schedule"`
	RejectionReason  string                  `json:"rejection_reason,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
	ApprovedAt       *time.Time              `json:"approved_at,omitempty"`
}

// FromBooking renders a booking with schedule statuses derived at now.
func FromBooking(b entities.Booking, now time.Time) BookingResponse {
	entries := make([]ScheduleEntryResponse, 0, len(b.PaymentSchedule))
	for _, e := range b.PaymentSchedule {
		entries = append(entries, fromEntry(e, schedule.Derive(e, now)))
	}
	return BookingResponse{
		ID:               b.ID,
		PlotID:           b.PlotID,
		UserID:           b.UserID,
		PaymentType:      string(b.PaymentType),
		SelectedPlanName: b.SelectedPlanName,
		Status:           string(b.Status),
		TotalPrice:       b.TotalPrice,
		Terms:            b.Terms,
		PaymentSchedule:  entries,
		RejectionReason:  b.RejectionReason,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
		ApprovedAt:       b.ApprovedAt,
	}
}

func FromBookings(bookings []entities.Booking, now time.Time) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromBooking(b, now))
	}
	return out
}

type ScheduleResponse struct {
	BookingID string                  `json:"booking_id"`
	PlotID    string                  `json:"plot_id"`
	Status    string                  `json:"status"`
	AsOf      time.Time               `json:"as_of"`
	Entries   []ScheduleEntryResponse `json:"entries"`
	Summary   schedule.Summary        `json:"summary"`
}

func FromScheduleView(v usecase.ScheduleView) ScheduleResponse {
	entries := make([]ScheduleEntryResponse, 0, len(v.Lines))
	for _, l := range v.Lines {
		entries = append(entries, fromEntry(l.Entry, l.Display))
	}
	return ScheduleResponse{
		BookingID: v.Booking.ID,
		PlotID:    v.Booking.PlotID,
		Status:    string(v.Booking.Status),
		AsOf:      v.AsOf,
		Entries:   entries,
		Summary:   v.Summary,
	}
}

type OverdueResponse struct {
	Count       int                   `json:"count"`
	TotalAmount int64                 `json:"total_amount"`
	Items       []usecase.OverdueItem `json:"items"`
}

func FromOverdueItems(items []usecase.OverdueItem) OverdueResponse {
	res := OverdueResponse{Count: len(items), Items: items}
	if res.Items == nil {
		res.Items = []usecase.OverdueItem{}
	}
	for _, it := range items {
		res.TotalAmount += it.AmountDue
	}
	return res
}

func fromEntry(e entities.PaymentScheduleEntry, display schedule.DisplayStatus) ScheduleEntryResponse {
	return ScheduleEntryResponse{
		InstallmentNumber: e.InstallmentNumber,
		Amount:            e.Amount,
		PaidAmount:        e.PaidAmount,
		Remaining:         e.Remaining(),
		DueDate:           e.DueDate,
		PaidDate:          e.PaidDate,
		Status:            string(display),
		StatusLabel:       display.Label(),
	}
}
