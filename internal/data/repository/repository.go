package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Tx            database.Transactor
	Hall          HallRepository
	Seat          SeatRepository
	Showtime      ShowtimeRepository
	ShowtimeSeat  ShowtimeSeatRepository
	Hold          HoldRepository
	Booking       BookingRepository
	SeatSale      SeatSaleRepository
	Settlement    SettlementRepository
	PaymentMethod PaymentMethodRepository
}

// NewRepository builds every repository over one pool. lockTimeout bounds
// row-lock waits inside transactions.
func NewRepository(db database.PgxIface, lockTimeout time.Duration, log *zap.Logger) *Repository {
	return &Repository{
		Tx:            database.NewTransactor(db, lockTimeout),
		Hall:          NewHallRepository(db, log),
		Seat:          NewSeatRepository(db, log),
		Showtime:      NewShowtimeRepository(db, log),
		ShowtimeSeat:  NewShowtimeSeatRepository(db, log),
		Hold:          NewHoldRepository(db, log),
		Booking:       NewBookingRepository(db, log),
		SeatSale:      NewSeatSaleRepository(db, log),
		Settlement:    NewSettlementRepository(db, log),
		PaymentMethod: NewPaymentMethodRepository(db, log),
	}
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// classify turns retryable lock failures into entity.ErrConflict.
func classify(err error) error {
	if database.IsLockFailure(err) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: seats are busy, retry: %w", entity.ErrConflict, err)
	}
	return err
}
