package response

import (
	"time"

	"shrijee_plots/internal/domain/entities"
)

type PaymentRecordResponse struct {
	PaymentID         string    `json:"payment_id"`
	ID                string    `json:"id"`
	BookingID         string    `json:"booking_id"`
	PlotID            string    `json:"plot_id"`
	InstallmentNumber int       `json:"installment_number"`
	Amount            int64     `json:"amount"`
	PaymentMode       string    `json:"payment_mode"`
	TransactionID     string    `json:"transaction_id,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	RecordedBy        string    `json:"recorded_by,omitempty"`
	RecordedAt        time.Time `json:"recorded_at"`

	ProviderPayloadRaw string `json:"provider_payload_raw,omitempty"`
}

func FromPaymentRecord(p entities.PaymentRecord) PaymentRecordResponse {
	return PaymentRecordResponse{
		PaymentID:          p.ID,
		ID:                 p.ID,
		BookingID:          p.BookingID,
		PlotID:             p.PlotID,
		InstallmentNumber:  p.InstallmentNumber,
		Amount:             p.Amount,
		PaymentMode:        string(p.PaymentMode),
		TransactionID:      p.TransactionID,
		Notes:              p.Notes,
		RecordedBy:         p.RecordedBy,
		RecordedAt:         p.RecordedAt,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func FromPaymentRecords(records []entities.PaymentRecord) []PaymentRecordResponse {
	out := make([]PaymentRecordResponse, 0, len(records))
	for _, p := range records {
		out = append(out, FromPaymentRecord(p))
	}
	return out
}

// PaymentResultResponse is returned after a payment is applied: the ledger
// line plus the booking as it stands afterwards.
type PaymentResultResponse struct {
	Payment PaymentRecordResponse `json:"payment"`
	Booking BookingResponse       `json:"booking"`
}
