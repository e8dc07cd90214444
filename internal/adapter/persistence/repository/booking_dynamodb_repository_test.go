package repository

import (
	"strings"
	"testing"
	"time"

	"shrijee_plots/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

func TestBookingItem_OptionalAttributes(t *testing.T) {
	t.Run("pending booking omits approval fields", func(t *testing.T) {
		av, err := attributevalue.MarshalMap(toBookingItem(entities.Booking{
			ID:          "b1",
			PlotID:      "plot-1",
			UserID:      "u1",
			PaymentType: entities.PaymentTypeFull,
			Status:      entities.BookingStatusPendingApproval,
			CreatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, k := range []string{"approved_at", "terms", "rejection_reason"} {
			if _, ok := av[k]; ok {
				t.Fatalf("expected %s to be omitted", k)
			}
		}
		if _, ok := av["plot_id"]; !ok {
			t.Fatalf("expected plot_id for the GSI")
		}
	})

	t.Run("schedule paid date survives mapping", func(t *testing.T) {
		due := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
		paid := due.Add(36 * time.Hour)
		in := entities.Booking{
			ID:         "b1",
			ApprovedAt: &due,
			Terms:      &entities.BookingTerms{PlanName: "Standard", EMIAmount: 8000, TotalPayable: 120000},
			PaymentSchedule: []entities.PaymentScheduleEntry{
				{InstallmentNumber: 0, Amount: 100, PaidAmount: 100, DueDate: due, PaidDate: &paid, Status: entities.ScheduleStatusPaid},
				{InstallmentNumber: 1, Amount: 100, DueDate: due.AddDate(0, 1, 0), Status: entities.ScheduleStatusPending},
			},
		}

		out := fromBookingItem(toBookingItem(in))
		if out.ApprovedAt == nil || !out.ApprovedAt.Equal(due) {
			t.Fatalf("unexpected approved_at: %v", out.ApprovedAt)
		}
		if out.Terms == nil || *out.Terms != *in.Terms {
			t.Fatalf("unexpected terms: %+v", out.Terms)
		}
		if out.PaymentSchedule[0].PaidDate == nil || !out.PaymentSchedule[0].PaidDate.Equal(paid) {
			t.Fatalf("unexpected paid date: %v", out.PaymentSchedule[0].PaidDate)
		}
		if out.PaymentSchedule[1].PaidDate != nil {
			t.Fatalf("pending entry must not have a paid date")
		}
	})

	t.Run("version survives mapping", func(t *testing.T) {
		av, err := attributevalue.MarshalMap(toBookingItem(entities.Booking{ID: "b1", Version: 7}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := av["version"]; !ok {
			t.Fatalf("expected version attribute")
		}
		if out := fromBookingItem(toBookingItem(entities.Booking{ID: "b1", Version: 7})); out.Version != 7 {
			t.Fatalf("expected version 7, got %d", out.Version)
		}
	})
}

func TestVersionCondition(t *testing.T) {
	if got := versionCondition(0); !strings.Contains(got, "attribute_not_exists(#version)") {
		t.Fatalf("expected unversioned items accepted at version 0, got %q", got)
	}
	got := versionCondition(3)
	if strings.Contains(got, "attribute_not_exists(#version)") || !strings.Contains(got, "#version = :prev") {
		t.Fatalf("expected strict version match, got %q", got)
	}
}

func TestPlotItem_InstallmentPlan(t *testing.T) {
	emi := int64(42000)
	inactive := false
	in := entities.Plot{
		ID: "plot-1",
		InstallmentPlan: &entities.InstallmentPlan{
			Enabled: true,
			Plans: []entities.Plan{
				{Name: "Fixed", NumberOfInstallments: 12, EMIAmount: &emi},
				{Name: "Old", NumberOfInstallments: 6, IsActive: &inactive},
			},
		},
	}

	out := fromPlotItem(toPlotItem(in))
	if !out.InstallmentsEnabled() || len(out.InstallmentPlan.Plans) != 2 {
		t.Fatalf("unexpected plan: %+v", out.InstallmentPlan)
	}
	if !out.InstallmentPlan.Plans[0].HasEMIOverride() || *out.InstallmentPlan.Plans[0].EMIAmount != 42000 {
		t.Fatalf("expected emi override kept")
	}
	if out.InstallmentPlan.Plans[1].Active() {
		t.Fatalf("expected inactive preset kept inactive")
	}

	if fromPlotItem(toPlotItem(entities.Plot{ID: "plot-2"})).InstallmentPlan != nil {
		t.Fatalf("expected nil plan for plots without installments")
	}
}
