package routes

import (
	"shrijee_plots/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathBookings = "/bookings"

func addBookingRoutes(rg *gin.RouterGroup, bookingHandler *handlers.BookingHandler, paymentHandler *handlers.PaymentHandler, requiredAuth, adminOnly gin.HandlerFunc) {
	bookings := rg.Group(PathBookings, requiredAuth)
	{
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("/me", bookingHandler.ListMyBookings)
		bookings.GET("/overdue", adminOnly, bookingHandler.ListOverdue)
		// Owner or admin; checked in the handler.
		bookings.GET("/:booking_id", bookingHandler.GetBooking)
		bookings.GET("/:booking_id/schedule", paymentHandler.GetSchedule)
		bookings.PATCH("/:booking_id/cancel", bookingHandler.CancelBooking)
		bookings.PATCH("/:booking_id/approve", adminOnly, bookingHandler.ApproveBooking)
		bookings.PATCH("/:booking_id/reject", adminOnly, bookingHandler.RejectBooking)
	}
}
