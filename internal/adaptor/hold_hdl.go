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

type HoldHandler struct {
	service usecase.HoldService
	log     *zap.Logger
}

func NewHoldHandler(service usecase.HoldService, log *zap.Logger) *HoldHandler {
	return &HoldHandler{
		service: service,
		log:     log.With(zap.String("handler", "hold")),
	}
}

// CreateHold handles POST /api/showtimes/{id}/holds
func (h *HoldHandler) CreateHold(w http.ResponseWriter, r *http.Request) {
	var req request.CreateHoldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	hold, err := h.service.Hold(r.Context(), chi.URLParam(r, "id"), utils.HolderPtrFromContext(r.Context()), &req)
	if err != nil {
		h.handleServiceError(w, err, "hold seats")
		return
	}

	utils.ResponseCreated(w, "success", hold)
}

// ReleaseHold handles DELETE /api/showtimes/{id}/holds/{token}; always 204.
func (h *HoldHandler) ReleaseHold(w http.ResponseWriter, r *http.Request) {
	err := h.service.Release(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "token"), utils.HolderPtrFromContext(r.Context()))
	if err != nil {
		h.log.Warn("Release hold failed", zap.Error(err))
	}

	utils.ResponseNoContent(w)
}

// handleServiceError handles different types of errors
func (h *HoldHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	writeServiceError(w, h.log, err, operation)
}
