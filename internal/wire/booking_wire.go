package wire

import (
	"cinema-reservation/internal/adaptor"
	"cinema-reservation/pkg/middleware"
	"cinema-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/bookings - Convert a hold into a booking
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// GET /api/bookings/{id} - Booking detail
	r.Get("/api/bookings/{id}", bookingHandler.GetBooking)

	// POST /api/bookings/{id}/cancel - Cancel an unpaid booking
	r.Post("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)

	// GET /api/payment-methods - List available payment methods
	r.Get("/api/payment-methods", bookingHandler.GetPaymentMethods)

	// ==================== HOLDER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireHolder)

		// GET /api/user/bookings - Booking history of the caller
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.Admin(config.Admin.KeyHash, log))

		// GET /api/admin/bookings/{id} - View any booking
		r.Get("/{id}", bookingHandler.GetBooking)

		// PUT /api/admin/bookings/{id}/cancel - Staff cancel
		r.Put("/{id}/cancel", bookingHandler.CancelBooking)
	})
}
