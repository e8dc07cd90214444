package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"shrijee_plots/internal/domain/entities"
	"shrijee_plots/internal/domain/schedule"
	"shrijee_plots/internal/usecase/interfaces"
	mock_interfaces "shrijee_plots/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var bookingNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newBookingUseCaseForTest(ctrl *gomock.Controller) (*BookingUseCase, *mock_interfaces.MockIBookingRepository, *mock_interfaces.MockIPlotRepository, *mock_interfaces.MockIIdempotencyStore) {
	repo := mock_interfaces.NewMockIBookingRepository(ctrl)
	plotRepo := mock_interfaces.NewMockIPlotRepository(ctrl)
	store := mock_interfaces.NewMockIIdempotencyStore(ctrl)
	return NewBookingUseCase(repo, plotRepo, store, schedule.FixedClock(bookingNow)), repo, plotRepo, store
}

func TestBookingUseCase_Submit_Validations(t *testing.T) {
	cases := []struct {
		name string
		in   SubmitBookingInput
		want error
	}{
		{name: "missing user", in: SubmitBookingInput{PlotID: "plot-1", PaymentType: entities.PaymentTypeFull}, want: ErrInvalidUserID},
		{name: "missing plot", in: SubmitBookingInput{UserID: "u1", PaymentType: entities.PaymentTypeFull}, want: ErrInvalidPlotID},
		{name: "bad payment type", in: SubmitBookingInput{UserID: "u1", PlotID: "plot-1", PaymentType: "barter"}, want: ErrInvalidPaymentType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewBookingUseCase(nil, nil, nil, nil)
			_, err := uc.Submit(context.Background(), tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestBookingUseCase_Submit(t *testing.T) {
	t.Run("plot not available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, plotRepo, _ := newBookingUseCaseForTest(ctrl)

		p := samplePlot()
		p.Status = entities.PlotStatusBooked
		plotRepo.EXPECT().GetByID(gomock.Any(), "plot-1").Return(p, nil)

		_, err := uc.Submit(context.Background(), SubmitBookingInput{UserID: "u1", PlotID: "plot-1", PaymentType: entities.PaymentTypeFull})
		if !errors.Is(err, ErrPlotNotAvailable) {
			t.Fatalf("expected ErrPlotNotAvailable, got %v", err)
		}
	})

	t.Run("installments not offered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, plotRepo, _ := newBookingUseCaseForTest(ctrl)

		p := samplePlot()
		p.InstallmentPlan = nil
		plotRepo.EXPECT().GetByID(gomock.Any(), "plot-1").Return(p, nil)

		_, err := uc.Submit(context.Background(), SubmitBookingInput{UserID: "u1", PlotID: "plot-1", PaymentType: entities.PaymentTypeInstallment})
		if !errors.Is(err, ErrInstallmentsUnavailable) {
			t.Fatalf("expected ErrInstallmentsUnavailable, got %v", err)
		}
	})

	t.Run("duplicate pending booking by same user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, plotRepo, _ := newBookingUseCaseForTest(ctrl)

		plotRepo.EXPECT().GetByID(gomock.Any(), "plot-1").Return(samplePlot(), nil)
		repo.EXPECT().ListByPlotID(gomock.Any(), "plot-1").Return([]entities.Booking{{ID: "b0", UserID: "u1", Status: entities.BookingStatusPendingApproval}}, nil)

		_, err := uc.Submit(context.Background(), SubmitBookingInput{UserID: "u1", PlotID: "plot-1", PaymentType: entities.PaymentTypeFull})
		if !errors.Is(err, ErrBookingAlreadyExists) {
			t.Fatalf("expected ErrBookingAlreadyExists, got %v", err)
		}
	})

	t.Run("success installment stores resolved plan name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, plotRepo, _ := newBookingUseCaseForTest(ctrl)

		p := samplePlot()
		p.InstallmentPlan.Plans = []entities.Plan{{Name: "Quarterly", NumberOfInstallments: 4, DownPaymentPercent: 25}}
		plotRepo.EXPECT().GetByID(gomock.Any(), "plot-1").Return(p, nil)
		repo.EXPECT().ListByPlotID(gomock.Any(), "plot-1").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b entities.Booking) (entities.Booking, error) {
			return b, nil
		})

		out, err := uc.Submit(context.Background(), SubmitBookingInput{UserID: "u1", PlotID: "plot-1", PaymentType: entities.PaymentTypeInstallment, SelectedPlanName: " quarterly "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.BookingStatusPendingApproval {
			t.Fatalf("expected pending_approval, got %s", out.Status)
		}
		if out.SelectedPlanName != "Quarterly" {
			t.Fatalf("expected resolved plan name, got %q", out.SelectedPlanName)
		}
		if out.TotalPrice != 120000 || !out.CreatedAt.Equal(bookingNow) {
			t.Fatalf("unexpected booking: %+v", out)
		}
		if len(out.PaymentSchedule) != 0 {
			t.Fatalf("schedule must not exist before approval")
		}
	})
}

func TestBookingUseCase_Submit_Idempotency(t *testing.T) {
	in := SubmitBookingInput{UserID: "u1", PlotID: "plot-1", PaymentType: entities.PaymentTypeFull, IdempotencyKey: "k-1"}

	t.Run("duplicate key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, store := newBookingUseCaseForTest(ctrl)

		store.EXPECT().Reserve(gomock.Any(), "booking:u1:k-1", defaultIdempotencyKeyTTL).Return(false, nil)

		_, err := uc.Submit(context.Background(), in)
		if !errors.Is(err, ErrDuplicateBookingRequest) {
			t.Fatalf("expected ErrDuplicateBookingRequest, got %v", err)
		}
	})

	t.Run("key released when submission fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, plotRepo, store := newBookingUseCaseForTest(ctrl)

		store.EXPECT().Reserve(gomock.Any(), "booking:u1:k-1", defaultIdempotencyKeyTTL).Return(true, nil)
		plotRepo.EXPECT().GetByID(gomock.Any(), "plot-1").Return(entities.Plot{}, nil)
		store.EXPECT().Release(gomock.Any(), "booking:u1:k-1").Return(nil)

		_, err := uc.Submit(context.Background(), in)
		if !errors.Is(err, ErrPlotNotFound) {
			t.Fatalf("expected ErrPlotNotFound, got %v", err)
		}
	})

	t.Run("custom ttl", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, store := newBookingUseCaseForTest(ctrl)
		uc.WithIdempotencyTTL(time.Hour)

		store.EXPECT().Reserve(gomock.Any(), gomock.Any(), time.Hour).Return(false, nil)

		if _, err := uc.Submit(context.Background(), in); !errors.Is(err, ErrDuplicateBookingRequest) {
			t.Fatalf("expected ErrDuplicateBookingRequest, got %v", err)
		}
	})
}

func TestBookingUseCase_Approve(t *testing.T) {
	t.Run("not pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newBookingUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "b1").Return(entities.Booking{ID: "b1", Status: entities.BookingStatusRejected}, nil)

		_, err := uc.Approve(context.Background(), "b1")
		if !errors.Is(err, ErrBookingNotPending) {
			t.Fatalf("expected ErrBookingNotPending, got %v", err)
		}
	})

	t.Run("installment booking builds schedule and rejects competitors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, plotRepo, _ := newBookingUseCaseForTest(ctrl)

		pending := entities.Booking{ID: "b1", PlotID: "plot-1", UserID: "u1", PaymentType: entities.PaymentTypeInstallment, Status: entities.BookingStatusPendingApproval}
		competitor := entities.Booking{ID: "b2", PlotID: "plot-1", UserID: "u2", PaymentType: entities.PaymentTypeFull, Status: entities.BookingStatusPendingApproval}

		var approved entities.Booking
		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "b1").Return(pending, nil),
			plotRepo.EXPECT().GetByID(gomock.Any(), "plot-1").Return(samplePlot(), nil),
			plotRepo.EXPECT().UpdateStatus(gomock.Any(), "plot-1", entities.PlotStatusAvailable, entities.PlotStatusBooked).Return(entities.Plot{ID: "plot-1", Status: entities.PlotStatusBooked}, nil),
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b entities.Booking) (entities.Booking, error) {
				approved = b
				return b, nil
			}),
			repo.EXPECT().ListByPlotID(gomock.Any(), "plot-1").DoAndReturn(func(context.Context, string) ([]entities.Booking, error) {
				return []entities.Booking{approved, competitor}, nil
			}),
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b entities.Booking) (entities.Booking, error) {
				if b.ID != "b2" || b.Status != entities.BookingStatusRejected || b.RejectionReason == "" {
					t.Fatalf("expected competitor auto-rejected, got %+v", b)
				}
				return b, nil
			}),
		)

		out, err := uc.Approve(context.Background(), "b1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.BookingStatusApproved || out.ApprovedAt == nil || !out.ApprovedAt.Equal(bookingNow) {
			t.Fatalf("unexpected booking: %+v", out)
		}
		if len(out.PaymentSchedule) != 13 {
			t.Fatalf("expected 13 schedule entries, got %d", len(out.PaymentSchedule))
		}
		if out.Terms == nil || out.Terms.EMIAmount != 8000 || out.Terms.TotalPayable != 120000 {
			t.Fatalf("unexpected terms: %+v", out.Terms)
		}
		var sum int64
		for _, e := range out.PaymentSchedule {
			sum += e.Amount
		}
		if sum != out.Terms.TotalPayable {
			t.Fatalf("schedule sums to %d, want %d", sum, out.Terms.TotalPayable)
		}
		if !out.PaymentSchedule[1].DueDate.Equal(bookingNow.AddDate(0, 1, 0)) {
			t.Fatalf("unexpected first EMI due date: %v", out.PaymentSchedule[1].DueDate)
		}
	})

	t.Run("full payment booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, plotRepo, _ := newBookingUseCaseForTest(ctrl)

		pending := entities.Booking{ID: "b1", PlotID: "plot-1", UserID: "u1", PaymentType: entities.PaymentTypeFull, Status: entities.BookingStatusPendingApproval}
		repo.EXPECT().GetByID(gomock.Any(), "b1").Return(pending, nil)
		plotRepo.EXPECT().GetByID(gomock.Any(), "plot-1").Return(samplePlot(), nil)
		plotRepo.EXPECT().UpdateStatus(gomock.Any(), "plot-1", entities.PlotStatusAvailable, entities.PlotStatusBooked).Return(entities.Plot{ID: "plot-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b entities.Booking) (entities.Booking, error) {
			return b, nil
		})
		repo.EXPECT().ListByPlotID(gomock.Any(), "plot-1").Return(nil, errors.New("gsi unavailable"))

		out, err := uc.Approve(context.Background(), "b1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Terms != nil {
			t.Fatalf("full payment must not carry installment terms")
		}
		if len(out.PaymentSchedule) != 1 || out.PaymentSchedule[0].Amount != 120000 {
			t.Fatalf("unexpected schedule: %+v", out.PaymentSchedule)
		}
	})

	t.Run("plot already booked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, plotRepo, _ := newBookingUseCaseForTest(ctrl)

		p := samplePlot()
		p.Status = entities.PlotStatusBooked
		repo.EXPECT().GetByID(gomock.Any(), "b1").Return(entities.Booking{ID: "b1", PlotID: "plot-1", Status: entities.BookingStatusPendingApproval}, nil)
		plotRepo.EXPECT().GetByID(gomock.Any(), "plot-1").Return(p, nil)

		if _, err := uc.Approve(context.Background(), "b1"); !errors.Is(err, ErrPlotNotAvailable) {
			t.Fatalf("expected ErrPlotNotAvailable, got %v", err)
		}
	})

	t.Run("plot claimed by a concurrent approval", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, plotRepo, _ := newBookingUseCaseForTest(ctrl)

		pending := entities.Booking{ID: "b1", PlotID: "plot-1", UserID: "u1", PaymentType: entities.PaymentTypeFull, Status: entities.BookingStatusPendingApproval}
		repo.EXPECT().GetByID(gomock.Any(), "b1").Return(pending, nil)
		plotRepo.EXPECT().GetByID(gomock.Any(), "plot-1").Return(samplePlot(), nil)
		plotRepo.EXPECT().UpdateStatus(gomock.Any(), "plot-1", entities.PlotStatusAvailable, entities.PlotStatusBooked).Return(entities.Plot{}, interfaces.ErrConcurrentUpdate)

		if _, err := uc.Approve(context.Background(), "b1"); !errors.Is(err, ErrPlotNotAvailable) {
			t.Fatalf("expected ErrPlotNotAvailable, got %v", err)
		}
	})

	t.Run("stale booking releases the plot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, plotRepo, _ := newBookingUseCaseForTest(ctrl)

		pending := entities.Booking{ID: "b1", PlotID: "plot-1", UserID: "u1", PaymentType: entities.PaymentTypeFull, Status: entities.BookingStatusPendingApproval, Version: 2}
		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "b1").Return(pending, nil),
			plotRepo.EXPECT().GetByID(gomock.Any(), "plot-1").Return(samplePlot(), nil),
			plotRepo.EXPECT().UpdateStatus(gomock.Any(), "plot-1", entities.PlotStatusAvailable, entities.PlotStatusBooked).Return(entities.Plot{ID: "plot-1", Status: entities.PlotStatusBooked}, nil),
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Booking{}, interfaces.ErrConcurrentUpdate),
			plotRepo.EXPECT().UpdateStatus(gomock.Any(), "plot-1", entities.PlotStatusBooked, entities.PlotStatusAvailable).Return(entities.Plot{ID: "plot-1", Status: entities.PlotStatusAvailable}, nil),
		)

		if _, err := uc.Approve(context.Background(), "b1"); !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})

	t.Run("missing booking on write releases the plot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, plotRepo, _ := newBookingUseCaseForTest(ctrl)

		pending := entities.Booking{ID: "b1", PlotID: "plot-1", UserID: "u1", PaymentType: entities.PaymentTypeFull, Status: entities.BookingStatusPendingApproval}
		repo.EXPECT().GetByID(gomock.Any(), "b1").Return(pending, nil)
		plotRepo.EXPECT().GetByID(gomock.Any(), "plot-1").Return(samplePlot(), nil)
		plotRepo.EXPECT().UpdateStatus(gomock.Any(), "plot-1", entities.PlotStatusAvailable, entities.PlotStatusBooked).Return(entities.Plot{ID: "plot-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Booking{}, nil)
		plotRepo.EXPECT().UpdateStatus(gomock.Any(), "plot-1", entities.PlotStatusBooked, entities.PlotStatusAvailable).Return(entities.Plot{}, errors.New("throttled"))

		if _, err := uc.Approve(context.Background(), "b1"); !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})
}

func TestBookingUseCase_RejectAndCancel(t *testing.T) {
	t.Run("reject requires reason", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, nil, nil)
		if _, err := uc.Reject(context.Background(), "b1", " "); !errors.Is(err, ErrInvalidRejectionReason) {
			t.Fatalf("expected ErrInvalidRejectionReason, got %v", err)
		}
	})

	t.Run("reject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newBookingUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "b1").Return(entities.Booking{ID: "b1", Status: entities.BookingStatusPendingApproval}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b entities.Booking) (entities.Booking, error) {
			return b, nil
		})

		out, err := uc.Reject(context.Background(), "b1", "documents missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.BookingStatusRejected || out.RejectionReason != "documents missing" {
			t.Fatalf("unexpected booking: %+v", out)
		}
	})

	t.Run("cancel by another user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newBookingUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "b1").Return(entities.Booking{ID: "b1", UserID: "u1", Status: entities.BookingStatusPendingApproval}, nil)

		if _, err := uc.Cancel(context.Background(), "b1", "u2"); !errors.Is(err, ErrBookingForbidden) {
			t.Fatalf("expected ErrBookingForbidden, got %v", err)
		}
	})

	t.Run("cancel approved booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newBookingUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "b1").Return(entities.Booking{ID: "b1", UserID: "u1", Status: entities.BookingStatusApproved}, nil)

		if _, err := uc.Cancel(context.Background(), "b1", "u1"); !errors.Is(err, ErrBookingNotPending) {
			t.Fatalf("expected ErrBookingNotPending, got %v", err)
		}
	})

	t.Run("cancel by owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newBookingUseCaseForTest(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "b1").Return(entities.Booking{ID: "b1", UserID: "u1", Status: entities.BookingStatusPendingApproval}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b entities.Booking) (entities.Booking, error) {
			return b, nil
		})

		out, err := uc.Cancel(context.Background(), "b1", "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.BookingStatusCancelled || !out.UpdatedAt.Equal(bookingNow) {
			t.Fatalf("unexpected booking: %+v", out)
		}
	})
}

func TestBookingUseCase_Lists(t *testing.T) {
	t.Run("list by user requires id", func(t *testing.T) {
		uc := NewBookingUseCase(nil, nil, nil, nil)
		if _, err := uc.ListByUserID(context.Background(), ""); !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("list by plot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _, _ := newBookingUseCaseForTest(ctrl)

		repo.EXPECT().ListByPlotID(gomock.Any(), "plot-1").Return([]entities.Booking{{ID: "b1"}}, nil)

		out, err := uc.ListByPlotID(context.Background(), "plot-1")
		if err != nil || len(out) != 1 {
			t.Fatalf("unexpected result %v err=%v", out, err)
		}
	})
}
