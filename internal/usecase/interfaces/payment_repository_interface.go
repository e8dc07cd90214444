package interfaces

import (
	"context"
	"shrijee_plots/internal/domain/entities"
)

//go:generate mockgen -source=payment_repository_interface.go -destination=mocks/mock_payment_repository.go -package=mock_interfaces

// IPaymentRepository abstracts DynamoDB persistence for the payment ledger.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error)
	ListByBookingID(ctx context.Context, bookingID string) ([]entities.PaymentRecord, error)
}
