package repository

import (
	"context"
	"fmt"
	"time"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SeatSaleRepository interface {
	CreateBatch(ctx context.Context, sales []*entity.SeatSale) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.SeatSale, error)

	// Business queries
	LockActiveBySeats(ctx context.Context, seatIDs []uuid.UUID) ([]*entity.ActiveSale, error)
	CloseByBooking(ctx context.Context, bookingID uuid.UUID, now time.Time) (int64, error)
	CloseForCancelledBookings(ctx context.Context, seatIDs []uuid.UUID, now time.Time) (int64, error)
}

type seatSaleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatSaleRepository(db database.PgxIface, log *zap.Logger) SeatSaleRepository {
	return &seatSaleRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat_sale")),
	}
}

func (r *seatSaleRepository) CreateBatch(ctx context.Context, sales []*entity.SeatSale) error {
	if len(sales) == 0 {
		return nil
	}

	query := `INSERT INTO seat_sales (id, booking_id, showtime_id, showtime_seat_id, unit_price, discount, final_price, created_at) VALUES `
	args := []any{}

	for i, sale := range sales {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			i*8+1, i*8+2, i*8+3, i*8+4, i*8+5, i*8+6, i*8+7, i*8+8)

		args = append(args,
			sale.ID,
			sale.BookingID,
			sale.ShowtimeID,
			sale.ShowtimeSeatID,
			sale.UnitPrice,
			sale.Discount,
			sale.FinalPrice,
			sale.CreatedAt,
		)
	}

	_, err := database.Conn(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create seat sales",
			zap.Error(err),
			zap.String("booking_id", sales[0].BookingID.String()),
			zap.Int("count", len(sales)),
		)
		if database.IsUniqueViolation(err, "uq_seat_sales_active") {
			return fmt.Errorf("%w: seat already sold", entity.ErrConflict)
		}
		return fmt.Errorf("create seat sales: %w", classify(err))
	}

	return nil
}

func (r *seatSaleRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.SeatSale, error) {
	query := `
		SELECT id, booking_id, showtime_id, showtime_seat_id, unit_price, discount, final_price, created_at, cancelled_at
		FROM seat_sales
		WHERE booking_id = $1
		ORDER BY showtime_seat_id
	`

	rows, err := database.Conn(ctx, r.db).Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find seat sales by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find seat sales by booking ID %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var sales []*entity.SeatSale
	for rows.Next() {
		var sale entity.SeatSale
		err := rows.Scan(
			&sale.ID,
			&sale.BookingID,
			&sale.ShowtimeID,
			&sale.ShowtimeSeatID,
			&sale.UnitPrice,
			&sale.Discount,
			&sale.FinalPrice,
			&sale.CreatedAt,
			&sale.CancelledAt,
		)
		if err != nil {
			r.log.Error("Failed to scan seat sale row", zap.Error(err))
			return nil, fmt.Errorf("scan seat sale row: %w", err)
		}
		sales = append(sales, &sale)
	}

	return sales, rows.Err()
}

func (r *seatSaleRepository) LockActiveBySeats(ctx context.Context, seatIDs []uuid.UUID) ([]*entity.ActiveSale, error) {
	if len(seatIDs) == 0 {
		return []*entity.ActiveSale{}, nil
	}

	query := `
		SELECT sl.id, sl.booking_id, sl.showtime_id, sl.showtime_seat_id, sl.unit_price, sl.discount,
		       sl.final_price, sl.created_at, sl.cancelled_at,
		       b.holder_id, b.status, b.payment_status
		FROM seat_sales sl
		JOIN bookings b ON b.id = sl.booking_id
		WHERE sl.showtime_seat_id = ANY($1) AND sl.cancelled_at IS NULL
		ORDER BY sl.id
		FOR UPDATE OF sl
	`

	rows, err := database.Conn(ctx, r.db).Query(ctx, query, seatIDs)
	if err != nil {
		r.log.Error("Failed to lock active seat sales",
			zap.Error(err),
			zap.Int("seat_count", len(seatIDs)),
		)
		return nil, fmt.Errorf("lock active seat sales: %w", classify(err))
	}
	defer rows.Close()

	var sales []*entity.ActiveSale
	for rows.Next() {
		var sale entity.ActiveSale
		err := rows.Scan(
			&sale.ID,
			&sale.BookingID,
			&sale.ShowtimeID,
			&sale.ShowtimeSeatID,
			&sale.UnitPrice,
			&sale.Discount,
			&sale.FinalPrice,
			&sale.CreatedAt,
			&sale.CancelledAt,
			&sale.BookingHolderID,
			&sale.BookingStatus,
			&sale.BookingPaymentStatus,
		)
		if err != nil {
			r.log.Error("Failed to scan active seat sale row", zap.Error(err))
			return nil, fmt.Errorf("scan active seat sale row: %w", err)
		}
		sales = append(sales, &sale)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lock active seat sales: %w", classify(err))
	}

	return sales, nil
}

func (r *seatSaleRepository) CloseByBooking(ctx context.Context, bookingID uuid.UUID, now time.Time) (int64, error) {
	query := `UPDATE seat_sales SET cancelled_at = $2 WHERE booking_id = $1 AND cancelled_at IS NULL`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, bookingID, now)
	if err != nil {
		r.log.Error("Failed to close seat sales",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return 0, fmt.Errorf("close seat sales of booking %s: %w", bookingID.String(), classify(err))
	}

	return result.RowsAffected(), nil
}

// CloseForCancelledBookings frees seats still pointing at cancelled bookings.
func (r *seatSaleRepository) CloseForCancelledBookings(ctx context.Context, seatIDs []uuid.UUID, now time.Time) (int64, error) {
	if len(seatIDs) == 0 {
		return 0, nil
	}

	query := `
		UPDATE seat_sales sl
		SET cancelled_at = $2
		FROM bookings b
		WHERE b.id = sl.booking_id
		  AND b.status = 'cancelled'
		  AND sl.cancelled_at IS NULL
		  AND sl.showtime_seat_id = ANY($1)
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, seatIDs, now)
	if err != nil {
		r.log.Error("Failed to close sales of cancelled bookings",
			zap.Error(err),
			zap.Int("seat_count", len(seatIDs)),
		)
		return 0, fmt.Errorf("close sales of cancelled bookings: %w", classify(err))
	}

	return result.RowsAffected(), nil
}
