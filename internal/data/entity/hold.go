package entity

import (
	"time"

	"github.com/google/uuid"
)

type HoldStatus string

const (
	HoldStatusHeld     HoldStatus = "held"
	HoldStatusReleased HoldStatus = "released"
	HoldStatusConsumed HoldStatus = "consumed"
)

// Hold claims one inventory row; all rows of a single request share Token.
type Hold struct {
	BaseSimple
	Token          string     `db:"token"`
	ShowtimeID     uuid.UUID  `db:"showtime_id"`
	ShowtimeSeatID uuid.UUID  `db:"showtime_seat_id"`
	HolderID       *uuid.UUID `db:"holder_id"`
	Status         HoldStatus `db:"status"`
	ExpiresAt      time.Time  `db:"expires_at"`
	ReleasedAt     *time.Time `db:"released_at"`
}

// IsActive reports whether the hold still blocks its seat at now.
func (h *Hold) IsActive(now time.Time) bool {
	return h.Status == HoldStatusHeld && h.ExpiresAt.After(now)
}

// OwnedBy reports whether holderID may act on the hold. Anonymous holds
// can be used by anyone holding the token.
func (h *Hold) OwnedBy(holderID *uuid.UUID) bool {
	if h.HolderID == nil {
		return true
	}
	return holderID != nil && *h.HolderID == *holderID
}
