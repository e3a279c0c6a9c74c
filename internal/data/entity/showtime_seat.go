package entity

import (
	"math"

	"github.com/google/uuid"
)

// ShowtimeSeat is one sellable inventory row: a physical seat for one showtime.
type ShowtimeSeat struct {
	Base
	ShowtimeID uuid.UUID `db:"showtime_id"`
	SeatID     uuid.UUID `db:"seat_id"`
	Price      int64     `db:"price"`
	IsDisabled bool      `db:"is_disabled"`

	// joined from seats
	RowLabel   string   `db:"row_label"`
	SeatNumber int      `db:"seat_number"`
	SeatType   SeatType `db:"seat_type"`
}

// SeatPrice rounds basePrice times the seat type multiplier to a whole unit.
func SeatPrice(basePrice int64, seatType SeatType) int64 {
	return int64(math.Round(float64(basePrice) * seatType.PriceMultiplier()))
}

type SeatStatus string

const (
	SeatStatusAvailable SeatStatus = "AVAILABLE"
	SeatStatusHeld      SeatStatus = "HELD"
	SeatStatusSold      SeatStatus = "SOLD"
	SeatStatusDisabled  SeatStatus = "DISABLED"
)

// SeatMapEntry is the read-time view of an inventory row.
type SeatMapEntry struct {
	ShowtimeSeat
	Held bool
	Sold bool
}

// Status derives availability; disabled wins over sold, sold over held.
func (e *SeatMapEntry) Status() SeatStatus {
	switch {
	case e.IsDisabled:
		return SeatStatusDisabled
	case e.Sold:
		return SeatStatusSold
	case e.Held:
		return SeatStatusHeld
	default:
		return SeatStatusAvailable
	}
}
