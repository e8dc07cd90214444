package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"shrijee_plots/internal/adapter/http/handlers/mocks"
	"shrijee_plots/internal/domain/entities"
	"shrijee_plots/internal/domain/schedule"
	"shrijee_plots/internal/usecase"

	"go.uber.org/mock/gomock"
)

var handlerNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newBookingHandlerForTest(t *testing.T) (*BookingHandler, *mocks.MockIBookingUseCase, *mocks.MockIOverdueUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	bookings := mocks.NewMockIBookingUseCase(ctrl)
	overdue := mocks.NewMockIOverdueUseCase(ctrl)
	return NewBookingHandler(bookings, overdue, schedule.FixedClock(handlerNow)), bookings, overdue
}

func pendingBooking() entities.Booking {
	return entities.Booking{
		ID:          "b-1",
		PlotID:      "plot-1",
		UserID:      "u1",
		PaymentType: entities.PaymentTypeInstallment,
		Status:      entities.BookingStatusPendingApproval,
		TotalPrice:  120000,
		CreatedAt:   handlerNow,
		UpdatedAt:   handlerNow,
	}
}

func TestBookingHandler_CreateBooking(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		h, _, _ := newBookingHandlerForTest(t)
		r := newTestRouter(nil)
		r.POST("/v1/bookings", h.CreateBooking)

		w := doRequest(r, http.MethodPost, "/v1/bookings", `{"plot_id":"plot-1"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid payment type", func(t *testing.T) {
		h, _, _ := newBookingHandlerForTest(t)
		r := newTestRouter(buyerPrincipal)
		r.POST("/v1/bookings", h.CreateBooking)

		w := doRequest(r, http.MethodPost, "/v1/bookings", `{"plot_id":"plot-1","payment_type":"lease"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("camelCase body and idempotency key", func(t *testing.T) {
		h, bookings, _ := newBookingHandlerForTest(t)
		r := newTestRouter(buyerPrincipal)
		r.POST("/v1/bookings", h.CreateBooking)

		want := usecase.SubmitBookingInput{
			UserID:           "u1",
			PlotID:           "plot-1",
			PaymentType:      entities.PaymentTypeInstallment,
			SelectedPlanName: "Quick",
			IdempotencyKey:   "k-1",
		}
		bookings.EXPECT().Submit(gomock.Any(), want).Return(pendingBooking(), nil)

		w := withHeader(r, http.MethodPost, "/v1/bookings", `{"plotId":"plot-1","paymentType":"installment","selectedPlanName":"Quick"}`, "Idempotency-Key", "k-1")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("duplicate request", func(t *testing.T) {
		h, bookings, _ := newBookingHandlerForTest(t)
		r := newTestRouter(buyerPrincipal)
		r.POST("/v1/bookings", h.CreateBooking)

		bookings.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.Booking{}, usecase.ErrDuplicateBookingRequest)

		w := withHeader(r, http.MethodPost, "/v1/bookings", `{"plot_id":"plot-1"}`, "Idempotency-Key", "k-1")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("installments not offered", func(t *testing.T) {
		h, bookings, _ := newBookingHandlerForTest(t)
		r := newTestRouter(buyerPrincipal)
		r.POST("/v1/bookings", h.CreateBooking)

		bookings.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(entities.Booking{}, usecase.ErrInstallmentsUnavailable)

		w := doRequest(r, http.MethodPost, "/v1/bookings", `{"plot_id":"plot-1","payment_type":"installment"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestBookingHandler_GetBooking(t *testing.T) {
	t.Run("owner", func(t *testing.T) {
		h, bookings, _ := newBookingHandlerForTest(t)
		r := newTestRouter(buyerPrincipal)
		r.GET("/v1/bookings/:booking_id", h.GetBooking)

		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(pendingBooking(), nil)

		w := doRequest(r, http.MethodGet, "/v1/bookings/b-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("other buyer", func(t *testing.T) {
		h, bookings, _ := newBookingHandlerForTest(t)
		r := newTestRouter(otherBuyerPrincipal)
		r.GET("/v1/bookings/:booking_id", h.GetBooking)

		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(pendingBooking(), nil)

		w := doRequest(r, http.MethodGet, "/v1/bookings/b-1", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admin", func(t *testing.T) {
		h, bookings, _ := newBookingHandlerForTest(t)
		r := newTestRouter(adminPrincipal)
		r.GET("/v1/bookings/:booking_id", h.GetBooking)

		bookings.EXPECT().GetByID(gomock.Any(), "b-1").Return(pendingBooking(), nil)

		w := doRequest(r, http.MethodGet, "/v1/bookings/b-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		h, bookings, _ := newBookingHandlerForTest(t)
		r := newTestRouter(adminPrincipal)
		r.GET("/v1/bookings/:booking_id", h.GetBooking)

		bookings.EXPECT().GetByID(gomock.Any(), "b-9").Return(entities.Booking{}, usecase.ErrBookingNotFound)

		w := doRequest(r, http.MethodGet, "/v1/bookings/b-9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestBookingHandler_ApproveBooking(t *testing.T) {
	t.Run("success renders derived statuses", func(t *testing.T) {
		h, bookings, _ := newBookingHandlerForTest(t)
		r := newTestRouter(adminPrincipal)
		r.PATCH("/v1/bookings/:booking_id/approve", h.ApproveBooking)

		approved := pendingBooking()
		approved.Status = entities.BookingStatusApproved
		approved.PaymentSchedule = []entities.PaymentScheduleEntry{
			{InstallmentNumber: 0, Amount: 24000, DueDate: handlerNow.AddDate(0, -1, 0), Status: entities.ScheduleStatusPending},
			{InstallmentNumber: 1, Amount: 8000, DueDate: handlerNow.AddDate(0, 1, 0), Status: entities.ScheduleStatusPending},
		}
		bookings.EXPECT().Approve(gomock.Any(), "b-1").Return(approved, nil)

		w := doRequest(r, http.MethodPatch, "/v1/bookings/b-1/approve", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			PaymentSchedule []struct {
				Status string `json:"status"`
			} `json:"payment_schedule"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(body.PaymentSchedule) != 2 || body.PaymentSchedule[0].Status != "overdue" || body.PaymentSchedule[1].Status != "pending" {
			t.Fatalf("unexpected schedule: %+v", body.PaymentSchedule)
		}
	})

	t.Run("not pending", func(t *testing.T) {
		h, bookings, _ := newBookingHandlerForTest(t)
		r := newTestRouter(adminPrincipal)
		r.PATCH("/v1/bookings/:booking_id/approve", h.ApproveBooking)

		bookings.EXPECT().Approve(gomock.Any(), "b-1").Return(entities.Booking{}, usecase.ErrBookingNotPending)

		w := doRequest(r, http.MethodPatch, "/v1/bookings/b-1/approve", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("concurrent update", func(t *testing.T) {
		h, bookings, _ := newBookingHandlerForTest(t)
		r := newTestRouter(adminPrincipal)
		r.PATCH("/v1/bookings/:booking_id/approve", h.ApproveBooking)

		bookings.EXPECT().Approve(gomock.Any(), "b-1").Return(entities.Booking{}, usecase.ErrConcurrentUpdate)

		w := doRequest(r, http.MethodPatch, "/v1/bookings/b-1/approve", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "CONCURRENT_UPDATE") {
			t.Fatalf("expected CONCURRENT_UPDATE code, got %s", w.Body.String())
		}
	})
}

func TestBookingHandler_RejectBooking(t *testing.T) {
	t.Run("reason required", func(t *testing.T) {
		h, _, _ := newBookingHandlerForTest(t)
		r := newTestRouter(adminPrincipal)
		r.PATCH("/v1/bookings/:booking_id/reject", h.RejectBooking)

		w := doRequest(r, http.MethodPatch, "/v1/bookings/b-1/reject", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		h, bookings, _ := newBookingHandlerForTest(t)
		r := newTestRouter(adminPrincipal)
		r.PATCH("/v1/bookings/:booking_id/reject", h.RejectBooking)

		rejected := pendingBooking()
		rejected.Status = entities.BookingStatusRejected
		rejected.RejectionReason = "documents missing"
		bookings.EXPECT().Reject(gomock.Any(), "b-1", "documents missing").Return(rejected, nil)

		w := doRequest(r, http.MethodPatch, "/v1/bookings/b-1/reject", `{"reason":"documents missing"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestBookingHandler_CancelBooking(t *testing.T) {
	h, bookings, _ := newBookingHandlerForTest(t)
	r := newTestRouter(buyerPrincipal)
	r.PATCH("/v1/bookings/:booking_id/cancel", h.CancelBooking)

	bookings.EXPECT().Cancel(gomock.Any(), "b-1", "u1").Return(entities.Booking{}, usecase.ErrBookingForbidden)

	w := doRequest(r, http.MethodPatch, "/v1/bookings/b-1/cancel", "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestBookingHandler_Lists(t *testing.T) {
	t.Run("my bookings", func(t *testing.T) {
		h, bookings, _ := newBookingHandlerForTest(t)
		r := newTestRouter(buyerPrincipal)
		r.GET("/v1/bookings/me", h.ListMyBookings)

		bookings.EXPECT().ListByUserID(gomock.Any(), "u1").Return([]entities.Booking{pendingBooking()}, nil)

		w := doRequest(r, http.MethodGet, "/v1/bookings/me", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("plot bookings", func(t *testing.T) {
		h, bookings, _ := newBookingHandlerForTest(t)
		r := newTestRouter(adminPrincipal)
		r.GET("/v1/plots/:plot_id/bookings", h.ListPlotBookings)

		bookings.EXPECT().ListByPlotID(gomock.Any(), "plot-1").Return(nil, nil)

		w := doRequest(r, http.MethodGet, "/v1/plots/plot-1/bookings", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %s", w.Body.String())
		}
	})

	t.Run("overdue", func(t *testing.T) {
		h, _, overdue := newBookingHandlerForTest(t)
		r := newTestRouter(adminPrincipal)
		r.GET("/v1/bookings/overdue", h.ListOverdue)

		overdue.EXPECT().Scan(gomock.Any()).Return([]usecase.OverdueItem{
			{BookingID: "b-1", PlotID: "plot-1", UserID: "u1", InstallmentNumber: 2, AmountDue: 8000, DueDate: handlerNow.AddDate(0, 0, -3), DaysOverdue: 3},
		}, nil)

		w := doRequest(r, http.MethodGet, "/v1/bookings/overdue", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
