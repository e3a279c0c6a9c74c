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

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.Book(r.Context(), utils.HolderPtrFromContext(r.Context()), &req)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetBooking handles GET /api/bookings/{id}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	booking, err := h.service.GetBooking(r.Context(), chi.URLParam(r, "id"),
		utils.HolderPtrFromContext(r.Context()), utils.IsStaff(r.Context()))
	if err != nil {
		h.handleServiceError(w, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// GetUserBookings handles GET /api/user/bookings (holder required)
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	holderID, ok := utils.GetHolderIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "X-User-ID header required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bookings, err := h.service.ListByHolder(r.Context(), holderID, req)
	if err != nil {
		h.handleServiceError(w, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// CancelBooking handles POST /api/bookings/{id}/cancel and the admin
// PUT /api/admin/bookings/{id}/cancel, where staff bypasses ownership.
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	err := h.service.Cancel(r.Context(), chi.URLParam(r, "id"),
		utils.HolderPtrFromContext(r.Context()), utils.IsStaff(r.Context()))
	if err != nil {
		h.handleServiceError(w, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetPaymentMethods handles GET /api/payment-methods (public)
func (h *BookingHandler) GetPaymentMethods(w http.ResponseWriter, r *http.Request) {
	paymentMethods, err := h.service.GetPaymentMethods(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get payment methods")
		return
	}

	utils.ResponseSuccess(w, "success", paymentMethods)
}

// handleServiceError handles different types of errors
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	writeServiceError(w, h.log, err, operation)
}
