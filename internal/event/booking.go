package event

import (
	"time"

	"github.com/google/uuid"
)

// BookingPaid is published once a booking is settled, for ticket issuing and
// notification consumers.
type BookingPaid struct {
	BookingID   uuid.UUID  `json:"booking_id"`
	BookingCode string     `json:"booking_code"`
	HolderID    *uuid.UUID `json:"holder_id,omitempty"`
	ShowtimeID  uuid.UUID  `json:"showtime_id"`
	Amount      int64      `json:"amount"`
	Provider    string     `json:"provider"`
	PaidAt      time.Time  `json:"paid_at"`
}
