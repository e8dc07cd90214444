package request

import (
	"encoding/json"

	"shrijee_plots/internal/domain/entities"
)

// PaymentCreateRequest records an offline payment against the approved
// booking of a plot. camelCase keys from the admin client are accepted too.
type PaymentCreateRequest struct {
	PlotID            string `json:"plot_id"`
	InstallmentNumber *int   `json:"installment_number" binding:"omitempty,gte=0"`
	Amount            int64  `json:"amount" binding:"required,gt=0"`
	PaymentMode       string `json:"payment_mode" binding:"omitempty,payment_mode"`
	TransactionID     string `json:"transaction_id"`
	Notes             string `json:"notes" binding:"max=1000"`

	PlotIDCompat            string `json:"plotId"`
	InstallmentNumberCompat *int   `json:"installmentNumber" binding:"omitempty,gte=0"`
	PaymentModeCompat       string `json:"paymentMode" binding:"omitempty,payment_mode"`
	TransactionIDCompat     string `json:"transactionId"`
}

func (r PaymentCreateRequest) ResolvePlotID() string {
	return firstNonEmpty(r.PlotID, r.PlotIDCompat)
}

// ResolveInstallmentNumber returns false when neither key was sent.
func (r PaymentCreateRequest) ResolveInstallmentNumber() (int, bool) {
	if r.InstallmentNumber != nil {
		return *r.InstallmentNumber, true
	}
	if r.InstallmentNumberCompat != nil {
		return *r.InstallmentNumberCompat, true
	}
	return 0, false
}

func (r PaymentCreateRequest) ResolvePaymentMode() entities.PaymentMode {
	return entities.PaymentMode(firstNonEmpty(r.PaymentMode, r.PaymentModeCompat))
}

func (r PaymentCreateRequest) ResolveTransactionID() string {
	return firstNonEmpty(r.TransactionID, r.TransactionIDCompat)
}

// OnlinePaymentRequest carries the Mercado Pago payment payload. The amount
// is always taken from the schedule; transaction_amount is overwritten.
type OnlinePaymentRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
