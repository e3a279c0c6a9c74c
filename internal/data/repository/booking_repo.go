package repository

import (
	"context"
	"fmt"
	"time"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByHolderID(ctx context.Context, holderID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByHolderID(ctx context.Context, holderID uuid.UUID) (int64, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// Business queries
	LockByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	MarkPaid(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
	Cancel(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `
	id, code, holder_id, showtime_id, payment_method, status, payment_status,
	total_amount, discount_amount, final_amount, created_at, updated_at, paid_at, cancelled_at`

func scanBooking(row rowScanner, booking *entity.Booking) error {
	return row.Scan(
		&booking.ID,
		&booking.Code,
		&booking.HolderID,
		&booking.ShowtimeID,
		&booking.PaymentMethod,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.TotalAmount,
		&booking.DiscountAmount,
		&booking.FinalAmount,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&booking.PaidAt,
		&booking.CancelledAt,
	)
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		booking.ID,
		booking.Code,
		booking.HolderID,
		booking.ShowtimeID,
		booking.PaymentMethod,
		booking.Status,
		booking.PaymentStatus,
		booking.TotalAmount,
		booking.DiscountAmount,
		booking.FinalAmount,
		booking.CreatedAt,
		booking.UpdatedAt,
		booking.PaidAt,
		booking.CancelledAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("code", booking.Code),
			zap.String("showtime_id", booking.ShowtimeID.String()),
		)
		if database.IsUniqueViolation(err, "uq_bookings_code") {
			return fmt.Errorf("%w: booking code %s already taken", entity.ErrConflict, booking.Code)
		}
		return fmt.Errorf("create booking %s: %w", booking.Code, classify(err))
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	return r.findOne(ctx, "find booking by ID", query, id)
}

func (r *bookingRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 FOR UPDATE`

	return r.findOne(ctx, "lock booking", query, id)
}

func (r *bookingRepository) findOne(ctx context.Context, op, query string, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := scanBooking(database.Conn(ctx, r.db).QueryRow(ctx, query, id), &booking)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to "+op,
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("%s %s: %w", op, id.String(), classify(err))
	}

	return &booking, nil
}

func (r *bookingRepository) FindByHolderID(ctx context.Context, holderID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE holder_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := database.Conn(ctx, r.db).Query(ctx, query, holderID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by holder ID",
			zap.Error(err),
			zap.String("holder_id", holderID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by holder ID %s: %w", holderID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		if err := scanBooking(rows, &booking); err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, rows.Err()
}

func (r *bookingRepository) CountByHolderID(ctx context.Context, holderID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE holder_id = $1`

	var count int64
	err := database.Conn(ctx, r.db).QueryRow(ctx, query, holderID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by holder ID",
			zap.Error(err),
			zap.String("holder_id", holderID.String()),
		)
		return 0, fmt.Errorf("count bookings by holder ID %s: %w", holderID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM bookings WHERE code = $1)`

	var exists bool
	if err := database.Conn(ctx, r.db).QueryRow(ctx, query, code).Scan(&exists); err != nil {
		r.log.Error("Failed to check booking code", zap.Error(err), zap.String("code", code))
		return false, fmt.Errorf("check booking code %s: %w", code, classify(err))
	}

	return exists, nil
}

// MarkPaid moves a pending unpaid booking to confirmed/paid. It reports false
// when the booking was not awaiting payment, leaving it untouched.
func (r *bookingRepository) MarkPaid(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	query := `
		UPDATE bookings
		SET status = 'confirmed', payment_status = 'paid', paid_at = $2, updated_at = $2
		WHERE id = $1 AND status = 'pending' AND payment_status = 'unpaid'
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, id, now)
	if err != nil {
		r.log.Error("Failed to mark booking paid",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return false, fmt.Errorf("mark booking %s paid: %w", id.String(), classify(err))
	}

	return result.RowsAffected() == 1, nil
}

// Cancel cancels a pending unpaid booking; false means nothing changed.
func (r *bookingRepository) Cancel(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	query := `
		UPDATE bookings
		SET status = 'cancelled', cancelled_at = $2, updated_at = $2
		WHERE id = $1 AND status = 'pending' AND payment_status = 'unpaid'
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, id, now)
	if err != nil {
		r.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return false, fmt.Errorf("cancel booking %s: %w", id.String(), classify(err))
	}

	return result.RowsAffected() == 1, nil
}
