package routes

import (
	"shrijee_plots/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPlots = "/plots"

func addPlotRoutes(rg *gin.RouterGroup, plotHandler *handlers.PlotHandler, bookingHandler *handlers.BookingHandler, optionalAuth, requiredAuth, adminOnly gin.HandlerFunc) {
	// Catalogue reads are public; an admin token unhides prices.
	public := rg.Group(PathPlots, optionalAuth)
	{
		public.GET("", plotHandler.ListPlots)
		public.GET("/:plot_id", plotHandler.GetPlot)
		public.GET("/:plot_id/installment-preview", plotHandler.PreviewInstallment)
	}

	admin := rg.Group(PathPlots, requiredAuth, adminOnly)
	{
		admin.POST("", plotHandler.CreatePlot)
		admin.PUT("/:plot_id", plotHandler.UpdatePlot)
		admin.DELETE("/:plot_id", plotHandler.DeletePlot)
		admin.PUT("/:plot_id/installment-plan", plotHandler.UpdateInstallmentPlan)
		admin.GET("/:plot_id/bookings", bookingHandler.ListPlotBookings)
	}
}
