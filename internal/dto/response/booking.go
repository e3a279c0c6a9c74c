package response

import (
	"time"

	"cinema-reservation/internal/data/entity"
)

type PaymentMethodResponse struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	IsCash bool   `json:"is_cash"`
}

type BookingResponse struct {
	ID             string               `json:"booking_id"`
	Code           string               `json:"booking_code"`
	HolderID       *string              `json:"holder_id,omitempty"`
	ShowtimeID     string               `json:"showtime_id"`
	PaymentMethod  string               `json:"payment_method"`
	Status         entity.BookingStatus `json:"status"`
	PaymentStatus  entity.PaymentStatus `json:"payment_status"`
	TotalAmount    int64                `json:"total_amount"`
	DiscountAmount int64                `json:"discount_amount"`
	FinalAmount    int64                `json:"final_amount"`
	SeatIDs        []string             `json:"seat_ids,omitempty"`
	PaidAt         *time.Time           `json:"paid_at,omitempty"`
	CancelledAt    *time.Time           `json:"cancelled_at,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}

type SettlementResponse struct {
	Provider    string                  `json:"provider"`
	ProviderRef string                  `json:"provider_ref"`
	Amount      int64                   `json:"amount"`
	Status      entity.SettlementStatus `json:"status"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

type BookingDetailResponse struct {
	BookingResponse
	Settlements []SettlementResponse `json:"settlements"`
}

type PaymentInitiationResponse struct {
	BookingID         string    `json:"booking_id"`
	Amount            int64     `json:"amount"`
	OrderCode         int64     `json:"order_code"`
	QRPayload         string    `json:"qr_payload"`
	TransferReference string    `json:"transfer_reference"`
	CheckoutURL       string    `json:"checkout_url"`
	ExpiresAt         time.Time `json:"expires_at"`
}

// Helper converters
func PaymentMethodToResponse(pm *entity.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		Code:   pm.Code,
		Name:   pm.Name,
		IsCash: pm.IsCash,
	}
}

func BookingToResponse(b *entity.Booking, sales []*entity.SeatSale) BookingResponse {
	resp := BookingResponse{
		ID:             b.ID.String(),
		Code:           b.Code,
		ShowtimeID:     b.ShowtimeID.String(),
		PaymentMethod:  b.PaymentMethod,
		Status:         b.Status,
		PaymentStatus:  b.PaymentStatus,
		TotalAmount:    b.TotalAmount,
		DiscountAmount: b.DiscountAmount,
		FinalAmount:    b.FinalAmount,
		PaidAt:         b.PaidAt,
		CancelledAt:    b.CancelledAt,
		CreatedAt:      b.CreatedAt,
	}
	if b.HolderID != nil {
		holderID := b.HolderID.String()
		resp.HolderID = &holderID
	}
	for _, sale := range sales {
		resp.SeatIDs = append(resp.SeatIDs, sale.ShowtimeSeatID.String())
	}
	return resp
}

func SettlementToResponse(s *entity.SettlementLog) SettlementResponse {
	return SettlementResponse{
		Provider:    s.Provider,
		ProviderRef: s.ProviderRef,
		Amount:      s.Amount,
		Status:      s.Status,
		UpdatedAt:   s.UpdatedAt,
	}
}
