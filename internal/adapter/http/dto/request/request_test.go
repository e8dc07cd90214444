package request

import (
	"encoding/json"
	"testing"

	"shrijee_plots/internal/domain/entities"
)

func TestBookingCreateRequest_Resolve(t *testing.T) {
	t.Run("camelCase payload", func(t *testing.T) {
		var r BookingCreateRequest
		if err := json.Unmarshal([]byte(`{"plotId":" p1 ","paymentType":"installment","selectedPlanName":"Standard"}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.ResolvePlotID() != "p1" || r.ResolvePaymentType() != entities.PaymentTypeInstallment || r.ResolvePlanName() != "Standard" {
			t.Fatalf("unexpected resolution: %+v", r)
		}
	})

	t.Run("snake_case wins and type defaults to full", func(t *testing.T) {
		r := BookingCreateRequest{PlotID: "p1", PlotIDCompat: "p2"}
		if r.ResolvePlotID() != "p1" {
			t.Fatalf("expected p1, got %s", r.ResolvePlotID())
		}
		if r.ResolvePaymentType() != entities.PaymentTypeFull {
			t.Fatalf("expected full, got %s", r.ResolvePaymentType())
		}
	})
}

func TestPaymentCreateRequest_Resolve(t *testing.T) {
	var r PaymentCreateRequest
	if err := json.Unmarshal([]byte(`{"plotId":"p1","installmentNumber":0,"amount":5000,"paymentMode":"upi","transactionId":"UTR1"}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, ok := r.ResolveInstallmentNumber()
	if !ok || n != 0 {
		t.Fatalf("expected installment 0 to be present, got %d ok=%t", n, ok)
	}
	if r.ResolvePlotID() != "p1" || r.ResolvePaymentMode() != entities.PaymentModeUPI || r.ResolveTransactionID() != "UTR1" {
		t.Fatalf("unexpected resolution: %+v", r)
	}

	if _, ok := (PaymentCreateRequest{}).ResolveInstallmentNumber(); ok {
		t.Fatalf("expected missing installment number")
	}
}

func TestPlotRequest_ToEntity(t *testing.T) {
	hidden := false
	r := PlotRequest{
		PlotNumber: " A-1 ",
		Title:      "Corner",
		Pricing:    PricingRequest{TotalPrice: 100000, ShowInstallmentAmounts: &hidden},
		InstallmentPlan: &InstallmentPlanRequest{
			Enabled: true,
			Plans:   []PlanRequest{{Name: " Standard ", NumberOfInstallments: 12}},
		},
	}

	p := r.ToEntity()
	if p.PlotNumber != "A-1" {
		t.Fatalf("expected trimmed plot number, got %q", p.PlotNumber)
	}
	if !p.Pricing.ShowTotalPrice || p.Pricing.ShowInstallmentAmounts {
		t.Fatalf("unexpected visibility flags: %+v", p.Pricing)
	}
	if !p.InstallmentsEnabled() || p.InstallmentPlan.Plans[0].Name != "Standard" {
		t.Fatalf("unexpected plan: %+v", p.InstallmentPlan)
	}

	if (PlotRequest{}).ToEntity().InstallmentPlan != nil {
		t.Fatalf("expected nil plan when not sent")
	}
}
