package wire

import (
	"cinema-reservation/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireHold(r chi.Router, holdHandler *adaptor.HoldHandler) {
	// POST /api/showtimes/{id}/holds - Hold seats (anonymous or X-User-ID)
	r.Post("/api/showtimes/{id}/holds", holdHandler.CreateHold)

	// DELETE /api/showtimes/{id}/holds/{token} - Release a hold
	r.Delete("/api/showtimes/{id}/holds/{token}", holdHandler.ReleaseHold)
}
