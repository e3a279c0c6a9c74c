package wire

import (
	"cinema-reservation/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePayment(r chi.Router, paymentHandler *adaptor.PaymentHandler) {
	// POST /api/bookings/{id}/payments - Request a QR payment link
	r.Post("/api/bookings/{id}/payments", paymentHandler.InitiatePayment)

	// POST /api/payments/webhook - Provider notification
	r.Post("/api/payments/webhook", paymentHandler.Webhook)
}
