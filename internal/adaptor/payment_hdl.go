package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/internal/dto/request"
	"cinema-reservation/internal/usecase"
	"cinema-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxWebhookBody = 1 << 20

type PaymentHandler struct {
	service usecase.SettlementService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.SettlementService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// InitiatePayment handles POST /api/bookings/{id}/payments
func (h *PaymentHandler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	var req request.InitiatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	initiation, err := h.service.Initiate(r.Context(), chi.URLParam(r, "id"), utils.HolderPtrFromContext(r.Context()), &req)
	if err != nil {
		h.handleServiceError(w, err, "initiate payment")
		return
	}

	utils.ResponseSuccess(w, "success", initiation)
}

// Webhook handles POST /api/payments/webhook. The provider retries anything
// but 200: malformed payloads get a 400, notifications that can never apply
// a 200, and internal failures a 503 so the notification is redelivered.
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	headers := usecase.WebhookHeaders{
		ClientID: r.Header.Get("x-client-id"),
		APIKey:   r.Header.Get("x-api-key"),
	}

	err = h.service.Settle(r.Context(), raw, headers)
	switch {
	case err == nil:
		utils.ResponseSuccess(w, "success", nil)
	case errors.Is(err, entity.ErrValidation):
		h.log.Warn("Malformed payment notification", zap.Error(err))
		utils.ResponseBadRequest(w, "Malformed notification", nil)
	case errors.Is(err, entity.ErrSettlement):
		h.log.Warn("Payment notification not applied", zap.Error(err))
		utils.ResponseSuccess(w, "ignored", nil)
	default:
		h.log.Error("Payment notification failed", zap.Error(err))
		utils.ResponseServiceUnavailable(w, "Notification not processed, retry later")
	}
}

// handleServiceError handles different types of errors
func (h *PaymentHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	writeServiceError(w, h.log, err, operation)
}
