package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")

		_, err := NewMercadoPagoGateway("")
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode needs no token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", " TRUE ")

		g, err := NewMercadoPagoGateway("")
		if err != nil || g == nil || !g.mockMode {
			t.Fatalf("expected mock gateway, got %+v err=%v", g, err)
		}
	})
}

func TestMercadoPagoGateway_CreatePayment(t *testing.T) {
	t.Run("mock approves and echoes payload", func(t *testing.T) {
		g := &MercadoPagoGateway{mockMode: true}

		id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":8000,"external_reference":"b1:1"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id == "" || status != "approved" {
			t.Fatalf("unexpected id=%q status=%q", id, status)
		}

		var resp map[string]any
		if err := json.Unmarshal(raw, &resp); err != nil {
			t.Fatalf("response is not json: %v", err)
		}
		if resp["external_reference"] != "b1:1" || resp["transaction_amount"] != float64(8000) || resp["id"] != id {
			t.Fatalf("unexpected response: %v", resp)
		}
	})

	t.Run("mock carries booking reference and rupee amount", func(t *testing.T) {
		g := &MercadoPagoGateway{mockMode: true}

		_, _, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":24000,"external_reference":"booking-9:0","description":"Plot P-7 installment 0"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var resp struct {
			CurrencyID         string  `json:"currency_id"`
			ExternalReference  string  `json:"external_reference"`
			TransactionAmount  float64 `json:"transaction_amount"`
			TransactionDetails struct {
				TotalPaidAmount float64 `json:"total_paid_amount"`
			} `json:"transaction_details"`
			Metadata struct {
				BookingID         string `json:"booking_id"`
				InstallmentNumber int    `json:"installment_number"`
			} `json:"metadata"`
		}
		if err := json.Unmarshal(raw, &resp); err != nil {
			t.Fatalf("response is not json: %v", err)
		}
		if resp.CurrencyID != "INR" || resp.ExternalReference != "booking-9:0" {
			t.Fatalf("unexpected response: %+v", resp)
		}
		if resp.TransactionAmount != 24000 || resp.TransactionDetails.TotalPaidAmount != 24000 {
			t.Fatalf("expected 24000 INR settled, got %+v", resp)
		}
		if resp.Metadata.BookingID != "booking-9" || resp.Metadata.InstallmentNumber != 0 {
			t.Fatalf("unexpected metadata: %+v", resp.Metadata)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		var g *MercadoPagoGateway
		_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
		if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
			t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
		}
	})
}

func TestSplitBookingReference(t *testing.T) {
	cases := []struct {
		ref     string
		booking string
		n       int
		ok      bool
	}{
		{"b1:3", "b1", 3, true},
		{"a:b:12", "a:b", 12, true},
		{"b1", "", 0, false},
		{":2", "", 0, false},
		{"b1:x", "", 0, false},
		{"b1:-1", "", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.ref, func(t *testing.T) {
			booking, n, ok := splitBookingReference(tc.ref)
			if booking != tc.booking || n != tc.n || ok != tc.ok {
				t.Fatalf("got (%q, %d, %v)", booking, n, ok)
			}
		})
	}
}
