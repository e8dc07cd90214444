package entities

import (
	"encoding/json"
	"time"
)

type PaymentMode string

const (
	PaymentModeCash         PaymentMode = "cash"
	PaymentModeBankTransfer PaymentMode = "bank_transfer"
	PaymentModeUPI          PaymentMode = "upi"
	PaymentModeCheque       PaymentMode = "cheque"
	PaymentModeOnline       PaymentMode = "online"
)

// PaymentRecord is a ledger line for money received against a schedule entry.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (booking_id-index): booking_id
//
// Online payments keep the provider response for reconciliation.
type PaymentRecord struct {
	ID                string      `json:"id"`
	BookingID         string      `json:"booking_id"`
	PlotID            string      `json:"plot_id"`
	InstallmentNumber int         `json:"installment_number"`
	Amount            int64       `json:"amount"`
	PaymentMode       PaymentMode `json:"payment_mode"`
	TransactionID     string      `json:"transaction_id"`
	Notes             string      `json:"notes"`
	RecordedBy        string      `json:"recorded_by"`
	RecordedAt        time.Time   `json:"recorded_at"`

	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}
