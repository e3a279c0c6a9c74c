package entity

type Hall struct {
	BaseSimple
	Name       string `db:"name"`
	TotalSeats int    `db:"total_seats"`
}
