package wire

import (
	"cinema-reservation/internal/adaptor"
	"cinema-reservation/pkg/middleware"
	"cinema-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireShowtime(
	r chi.Router,
	showtimeHandler *adaptor.ShowtimeHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/showtimes/{id}/seats - Seat map with derived availability
	r.Get("/api/showtimes/{id}/seats", showtimeHandler.GetSeatMap)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/showtimes", func(r chi.Router) {
		r.Use(middleware.Admin(config.Admin.KeyHash, log))

		// POST /api/admin/showtimes - Schedule a showtime and generate its inventory
		r.Post("/", showtimeHandler.Schedule)

		// PUT /api/admin/showtimes/{id}/active - Activate or deactivate
		r.Put("/{id}/active", showtimeHandler.SetActive)

		// PUT /api/admin/showtimes/{id}/seats/{seatId}/disabled - Disable or enable a seat
		r.Put("/{id}/seats/{seatId}/disabled", showtimeHandler.SetSeatDisabled)
	})
}
