package response

import "time"

type HoldResponse struct {
	HoldToken string    `json:"hold_token"`
	ExpiresAt time.Time `json:"expires_at"`
	SeatIDs   []string  `json:"seat_ids"`
}
