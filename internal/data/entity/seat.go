package entity

import (
	"fmt"

	"github.com/google/uuid"
)

type SeatType string

const (
	SeatTypeStandard SeatType = "standard"
	SeatTypeVIP      SeatType = "vip"
	SeatTypeCouple   SeatType = "couple"
)

// PriceMultiplier is applied to a showtime's base price per seat.
func (t SeatType) PriceMultiplier() float64 {
	switch t {
	case SeatTypeVIP:
		return 1.5
	case SeatTypeCouple:
		return 2.0
	default:
		return 1.0
	}
}

// Seat is a physical seat of a hall.
type Seat struct {
	BaseSimple
	HallID     uuid.UUID `db:"hall_id"`
	RowLabel   string    `db:"row_label"`   // A, B, C, etc.
	SeatNumber int       `db:"seat_number"` // 1, 2, 3, etc.
	SeatType   SeatType  `db:"seat_type"`
}

// Label returns the printable seat name, e.g. A7.
func (s *Seat) Label() string {
	return fmt.Sprintf("%s%d", s.RowLabel, s.SeatNumber)
}
