package request

import "time"

type ScheduleShowtimeRequest struct {
	HallID    string    `json:"hall_id" validate:"required,uuid"`
	MovieID   *string   `json:"movie_id,omitempty" validate:"omitempty,uuid"`
	StartsAt  time.Time `json:"starts_at" validate:"required"`
	EndsAt    time.Time `json:"ends_at" validate:"required,gtfield=StartsAt"`
	BasePrice int64     `json:"base_price" validate:"required,gt=0"`
}

type SetShowtimeActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type SetSeatDisabledRequest struct {
	IsDisabled *bool `json:"is_disabled" validate:"required"`
}
