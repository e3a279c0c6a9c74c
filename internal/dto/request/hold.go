package request

type CreateHoldRequest struct {
	SeatIDs           []string `json:"seat_ids" validate:"required,min=1,max=20,dive,uuid"`
	PreviousHoldToken string   `json:"previous_hold_token,omitempty" validate:"omitempty,max=64"`
}
