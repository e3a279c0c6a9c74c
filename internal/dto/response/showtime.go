package response

import (
	"time"

	"cinema-reservation/internal/data/entity"
)

type ShowtimeResponse struct {
	ID        string    `json:"id"`
	HallID    string    `json:"hall_id"`
	MovieID   *string   `json:"movie_id,omitempty"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	BasePrice int64     `json:"base_price"`
	IsActive  bool      `json:"is_active"`
	SeatCount int       `json:"seat_count,omitempty"`
}

type SeatMapSeat struct {
	ID     string            `json:"id"`
	Row    string            `json:"row"`
	Number int               `json:"number"`
	Type   entity.SeatType   `json:"type"`
	Status entity.SeatStatus `json:"status"`
	Price  int64             `json:"price"`
	PairID string            `json:"pair_id,omitempty"`
}

type SeatMapResponse struct {
	ShowtimeID string        `json:"showtime_id"`
	StartsAt   time.Time     `json:"starts_at"`
	Seats      []SeatMapSeat `json:"seats"`
}

// Helper converters
func ShowtimeToResponse(s *entity.Showtime) ShowtimeResponse {
	resp := ShowtimeResponse{
		ID:        s.ID.String(),
		HallID:    s.HallID.String(),
		StartsAt:  s.StartsAt,
		EndsAt:    s.EndsAt,
		BasePrice: s.BasePrice,
		IsActive:  s.IsActive,
	}
	if s.MovieID != nil {
		movieID := s.MovieID.String()
		resp.MovieID = &movieID
	}
	return resp
}
