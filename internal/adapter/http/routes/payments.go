package routes

import (
	"shrijee_plots/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPayments = "/payments"

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, requiredAuth, adminOnly gin.HandlerFunc) {
	payments := rg.Group(PathPayments, requiredAuth)
	{
		payments.POST("", adminOnly, paymentHandler.RecordPayment)
		payments.GET("/booking/:booking_id", paymentHandler.ListBookingPayments)
		payments.POST("/booking/:booking_id/installments/:installment_number/online", paymentHandler.PayOnline)
	}
}
