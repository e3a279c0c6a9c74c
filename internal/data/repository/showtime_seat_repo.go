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

// SeatPosition addresses a physical seat inside a hall.
type SeatPosition struct {
	RowLabel   string
	SeatNumber int
}

type ShowtimeSeatRepository interface {
	CreateBatch(ctx context.Context, rows []*entity.ShowtimeSeat) error
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.ShowtimeSeat, error)
	FindByPositions(ctx context.Context, showtimeID uuid.UUID, positions []SeatPosition) ([]*entity.ShowtimeSeat, error)
	SetDisabled(ctx context.Context, showtimeID, id uuid.UUID, disabled bool, now time.Time) error
	ListSeatMap(ctx context.Context, showtimeID uuid.UUID, now time.Time) ([]*entity.SeatMapEntry, error)

	// LockByIDs takes row locks in id order; call it inside a transaction.
	LockByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.ShowtimeSeat, error)
}

type showtimeSeatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowtimeSeatRepository(db database.PgxIface, log *zap.Logger) ShowtimeSeatRepository {
	return &showtimeSeatRepository{
		db:  db,
		log: log.With(zap.String("repository", "showtime_seat")),
	}
}

const showtimeSeatColumns = `
	ss.id, ss.showtime_id, ss.seat_id, ss.price, ss.is_disabled, ss.created_at, ss.updated_at,
	s.row_label, s.seat_number, s.seat_type`

func scanShowtimeSeat(row rowScanner, ss *entity.ShowtimeSeat) error {
	return row.Scan(
		&ss.ID,
		&ss.ShowtimeID,
		&ss.SeatID,
		&ss.Price,
		&ss.IsDisabled,
		&ss.CreatedAt,
		&ss.UpdatedAt,
		&ss.RowLabel,
		&ss.SeatNumber,
		&ss.SeatType,
	)
}

func (r *showtimeSeatRepository) CreateBatch(ctx context.Context, rows []*entity.ShowtimeSeat) error {
	if len(rows) == 0 {
		return nil
	}

	query := `INSERT INTO showtime_seats (id, showtime_id, seat_id, price, is_disabled, created_at, updated_at) VALUES `
	args := []any{}

	for i, row := range rows {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			i*7+1, i*7+2, i*7+3, i*7+4, i*7+5, i*7+6, i*7+7)

		args = append(args,
			row.ID,
			row.ShowtimeID,
			row.SeatID,
			row.Price,
			row.IsDisabled,
			row.CreatedAt,
			row.UpdatedAt,
		)
	}

	_, err := database.Conn(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create showtime seats",
			zap.Error(err),
			zap.Int("count", len(rows)),
		)
		return fmt.Errorf("create showtime seats: %w", err)
	}

	return nil
}

func (r *showtimeSeatRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.ShowtimeSeat, error) {
	if len(ids) == 0 {
		return []*entity.ShowtimeSeat{}, nil
	}

	query := `
		SELECT` + showtimeSeatColumns + `
		FROM showtime_seats ss
		JOIN seats s ON s.id = ss.seat_id
		WHERE ss.id = ANY($1)
		ORDER BY ss.id
	`

	return r.query(ctx, "find showtime seats by IDs", query, ids)
}

func (r *showtimeSeatRepository) FindByPositions(ctx context.Context, showtimeID uuid.UUID, positions []SeatPosition) ([]*entity.ShowtimeSeat, error) {
	if len(positions) == 0 {
		return []*entity.ShowtimeSeat{}, nil
	}

	rowLabels := make([]string, len(positions))
	numbers := make([]int32, len(positions))
	for i, p := range positions {
		rowLabels[i] = p.RowLabel
		numbers[i] = int32(p.SeatNumber)
	}

	query := `
		SELECT` + showtimeSeatColumns + `
		FROM showtime_seats ss
		JOIN seats s ON s.id = ss.seat_id
		JOIN unnest($2::text[], $3::int[]) AS pos(row_label, seat_number)
		  ON pos.row_label = s.row_label AND pos.seat_number = s.seat_number
		WHERE ss.showtime_id = $1
		ORDER BY ss.id
	`

	return r.query(ctx, "find showtime seats by position", query, showtimeID, rowLabels, numbers)
}

func (r *showtimeSeatRepository) LockByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.ShowtimeSeat, error) {
	if len(ids) == 0 {
		return []*entity.ShowtimeSeat{}, nil
	}

	query := `
		SELECT` + showtimeSeatColumns + `
		FROM showtime_seats ss
		JOIN seats s ON s.id = ss.seat_id
		WHERE ss.id = ANY($1)
		ORDER BY ss.id
		FOR UPDATE OF ss
	`

	return r.query(ctx, "lock showtime seats", query, ids)
}

func (r *showtimeSeatRepository) query(ctx context.Context, op, query string, args ...any) ([]*entity.ShowtimeSeat, error) {
	rows, err := database.Conn(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to "+op, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}
	defer rows.Close()

	var result []*entity.ShowtimeSeat
	for rows.Next() {
		var ss entity.ShowtimeSeat
		if err := scanShowtimeSeat(rows, &ss); err != nil {
			r.log.Error("Failed to scan showtime seat row", zap.Error(err))
			return nil, fmt.Errorf("scan showtime seat row: %w", err)
		}
		result = append(result, &ss)
	}
	if err := rows.Err(); err != nil {
		r.log.Error("Failed to "+op, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}

	return result, nil
}

func (r *showtimeSeatRepository) SetDisabled(ctx context.Context, showtimeID, id uuid.UUID, disabled bool, now time.Time) error {
	query := `
		UPDATE showtime_seats
		SET is_disabled = $3, updated_at = $4
		WHERE id = $2 AND showtime_id = $1
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, showtimeID, id, disabled, now)
	if err != nil {
		r.log.Error("Failed to update seat disabled flag",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
			zap.String("showtime_seat_id", id.String()),
		)
		return fmt.Errorf("update showtime seat %s disabled flag: %w", id.String(), classify(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: seat %s in showtime %s", entity.ErrNotFound, id.String(), showtimeID.String())
	}

	return nil
}

func (r *showtimeSeatRepository) ListSeatMap(ctx context.Context, showtimeID uuid.UUID, now time.Time) ([]*entity.SeatMapEntry, error) {
	query := `
		SELECT` + showtimeSeatColumns + `,
			EXISTS (
				SELECT 1 FROM holds h
				WHERE h.showtime_seat_id = ss.id AND h.status = 'held' AND h.expires_at > $2
			) AS held,
			EXISTS (
				SELECT 1 FROM seat_sales sl
				JOIN bookings b ON b.id = sl.booking_id
				WHERE sl.showtime_seat_id = ss.id AND sl.cancelled_at IS NULL AND b.status <> 'cancelled'
			) AS sold
		FROM showtime_seats ss
		JOIN seats s ON s.id = ss.seat_id
		WHERE ss.showtime_id = $1
		ORDER BY s.row_label, s.seat_number
	`

	rows, err := database.Conn(ctx, r.db).Query(ctx, query, showtimeID, now)
	if err != nil {
		r.log.Error("Failed to list seat map",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return nil, fmt.Errorf("list seat map for showtime %s: %w", showtimeID.String(), err)
	}
	defer rows.Close()

	var entries []*entity.SeatMapEntry
	for rows.Next() {
		var e entity.SeatMapEntry
		err := rows.Scan(
			&e.ID,
			&e.ShowtimeID,
			&e.SeatID,
			&e.Price,
			&e.IsDisabled,
			&e.CreatedAt,
			&e.UpdatedAt,
			&e.RowLabel,
			&e.SeatNumber,
			&e.SeatType,
			&e.Held,
			&e.Sold,
		)
		if err != nil {
			r.log.Error("Failed to scan seat map row", zap.Error(err))
			return nil, fmt.Errorf("scan seat map row: %w", err)
		}
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}
