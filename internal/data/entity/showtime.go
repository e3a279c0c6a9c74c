package entity

import (
	"time"

	"github.com/google/uuid"
)

type Showtime struct {
	Base
	HallID    uuid.UUID  `db:"hall_id"`
	MovieID   *uuid.UUID `db:"movie_id"`
	StartsAt  time.Time  `db:"starts_at"`
	EndsAt    time.Time  `db:"ends_at"`
	BasePrice int64      `db:"base_price"`
	IsActive  bool       `db:"is_active"`
}

// HasStarted reports whether seats can no longer be sold at now.
func (s *Showtime) HasStarted(now time.Time) bool {
	return !now.Before(s.StartsAt)
}
