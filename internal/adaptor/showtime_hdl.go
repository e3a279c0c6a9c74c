package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-reservation/internal/dto/request"
	"cinema-reservation/internal/usecase"
	"cinema-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ShowtimeHandler struct {
	service usecase.ShowtimeService
	log     *zap.Logger
}

func NewShowtimeHandler(service usecase.ShowtimeService, log *zap.Logger) *ShowtimeHandler {
	return &ShowtimeHandler{
		service: service,
		log:     log.With(zap.String("handler", "showtime")),
	}
}

// GetSeatMap handles GET /api/showtimes/{id}/seats (public)
func (h *ShowtimeHandler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	seatMap, err := h.service.GetSeatMap(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "get seat map")
		return
	}

	utils.ResponseSuccess(w, "success", seatMap)
}

// ==================== ADMIN METHODS ====================

// Schedule handles POST /api/admin/showtimes
func (h *ShowtimeHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req request.ScheduleShowtimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	showtime, err := h.service.Schedule(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "schedule showtime")
		return
	}

	utils.ResponseCreated(w, "success", showtime)
}

// SetActive handles PUT /api/admin/showtimes/{id}/active
func (h *ShowtimeHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	var req request.SetShowtimeActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.SetActive(r.Context(), chi.URLParam(r, "id"), &req); err != nil {
		h.handleServiceError(w, err, "set showtime active")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// SetSeatDisabled handles PUT /api/admin/showtimes/{id}/seats/{seatId}/disabled
func (h *ShowtimeHandler) SetSeatDisabled(w http.ResponseWriter, r *http.Request) {
	var req request.SetSeatDisabledRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	err := h.service.SetSeatDisabled(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "seatId"), &req)
	if err != nil {
		h.handleServiceError(w, err, "set seat disabled")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// handleServiceError handles different types of errors
func (h *ShowtimeHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	writeServiceError(w, h.log, err, operation)
}
