package repository

import "shrijee_plots/internal/infrastructure/database"

// TableSpecs lists the tables and indexes the repositories query, with the
// names resolved from the environment.
func TableSpecs() []database.TableSpec {
	return []database.TableSpec{
		{Name: getenvDefault("PLOTS_TABLE", defaultPlotsTableName)},
		{
			Name: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
			Indexes: map[string]string{
				bookingsPlotIDIndex: "plot_id",
				bookingsUserIDIndex: "user_id",
				bookingsStatusIndex: "status",
			},
		},
		{
			Name:    getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
			Indexes: map[string]string{paymentsBookingIDIndex: "booking_id"},
		},
	}
}
