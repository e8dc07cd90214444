package interfaces

import (
	"context"
	"shrijee_plots/internal/domain/entities"
)

//go:generate mockgen -source=booking_repository_interface.go -destination=mocks/mock_booking_repository.go -package=mock_interfaces

// IBookingRepository abstracts DynamoDB persistence for Booking.
//
// The booking-service must be able to:
//   - create a pending booking when a buyer submits one
//   - replace a booking after approval/rejection or a recorded payment
//   - list bookings by plot, by buyer and by status (overdue sweep)
//
// Update is guarded by the booking version read with it: a stale booking
// yields ErrConcurrentUpdate, a missing one a zero-value Booking.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	Update(ctx context.Context, b entities.Booking) (entities.Booking, error)
	ListByPlotID(ctx context.Context, plotID string) ([]entities.Booking, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Booking, error)
	ListByStatus(ctx context.Context, status entities.BookingStatus) ([]entities.Booking, error)
}
