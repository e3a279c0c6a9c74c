package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusFailed PaymentStatus = "failed"
)

type Booking struct {
	Base
	Code           string        `db:"code"`
	HolderID       *uuid.UUID    `db:"holder_id"`
	ShowtimeID     uuid.UUID     `db:"showtime_id"`
	PaymentMethod  string        `db:"payment_method"`
	Status         BookingStatus `db:"status"`
	PaymentStatus  PaymentStatus `db:"payment_status"`
	TotalAmount    int64         `db:"total_amount"`
	DiscountAmount int64         `db:"discount_amount"`
	FinalAmount    int64         `db:"final_amount"`
	PaidAt         *time.Time    `db:"paid_at"`
	CancelledAt    *time.Time    `db:"cancelled_at"`
}

// IsAwaitingPayment reports whether the booking is still pending and unpaid.
func (b *Booking) IsAwaitingPayment() bool {
	return b.Status == BookingStatusPending && b.PaymentStatus == PaymentStatusUnpaid
}

// OwnedBy mirrors Hold.OwnedBy: anonymous bookings belong to whoever has the id.
func (b *Booking) OwnedBy(holderID *uuid.UUID) bool {
	if b.HolderID == nil {
		return true
	}
	return holderID != nil && *b.HolderID == *holderID
}
