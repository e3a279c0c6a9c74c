package adaptor

import (
	"cinema-reservation/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Showtime *ShowtimeHandler
	Hold     *HoldHandler
	Booking  *BookingHandler
	Payment  *PaymentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Showtime: NewShowtimeHandler(service.Showtime, log),
		Hold:     NewHoldHandler(service.Hold, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Payment:  NewPaymentHandler(service.Settlement, log),
	}
}
