package entity

import (
	"time"

	"github.com/google/uuid"
)

// SeatSale records one seat sold under a booking. A row with CancelledAt nil
// keeps the seat sold.
type SeatSale struct {
	BaseSimple
	BookingID      uuid.UUID  `db:"booking_id"`
	ShowtimeID     uuid.UUID  `db:"showtime_id"`
	ShowtimeSeatID uuid.UUID  `db:"showtime_seat_id"`
	UnitPrice      int64      `db:"unit_price"`
	Discount       int64      `db:"discount"`
	FinalPrice     int64      `db:"final_price"`
	CancelledAt    *time.Time `db:"cancelled_at"`
}

// ActiveSale is a live sale together with the state of its booking.
type ActiveSale struct {
	SeatSale
	BookingHolderID      *uuid.UUID
	BookingStatus        BookingStatus
	BookingPaymentStatus PaymentStatus
}
