package request

type CreateBookingRequest struct {
	HoldToken     string `json:"hold_token" validate:"required,max=64"`
	PaymentMethod string `json:"payment_method" validate:"required,max=30"`
}

type InitiatePaymentRequest struct {
	PayerEmail string `json:"payer_email" validate:"required,email"`
}
