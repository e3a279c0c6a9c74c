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

type ShowtimeRepository interface {
	Create(ctx context.Context, showtime *entity.Showtime) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool, now time.Time) error
}

type showtimeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowtimeRepository(db database.PgxIface, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		db:  db,
		log: log.With(zap.String("repository", "showtime")),
	}
}

func (r *showtimeRepository) Create(ctx context.Context, showtime *entity.Showtime) error {
	query := `
		INSERT INTO showtimes (id, hall_id, movie_id, starts_at, ends_at, base_price, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		showtime.ID,
		showtime.HallID,
		showtime.MovieID,
		showtime.StartsAt,
		showtime.EndsAt,
		showtime.BasePrice,
		showtime.IsActive,
		showtime.CreatedAt,
		showtime.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create showtime",
			zap.Error(err),
			zap.String("hall_id", showtime.HallID.String()),
			zap.Time("starts_at", showtime.StartsAt),
		)
		return fmt.Errorf("create showtime %s: %w", showtime.ID.String(), err)
	}

	return nil
}

func (r *showtimeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	query := `
		SELECT id, hall_id, movie_id, starts_at, ends_at, base_price, is_active, created_at, updated_at
		FROM showtimes
		WHERE id = $1
	`

	var showtime entity.Showtime
	err := database.Conn(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.HallID,
		&showtime.MovieID,
		&showtime.StartsAt,
		&showtime.EndsAt,
		&showtime.BasePrice,
		&showtime.IsActive,
		&showtime.CreatedAt,
		&showtime.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find showtime by ID",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
		)
		return nil, fmt.Errorf("find showtime by ID %s: %w", id.String(), err)
	}

	return &showtime, nil
}

func (r *showtimeRepository) SetActive(ctx context.Context, id uuid.UUID, active bool, now time.Time) error {
	query := `UPDATE showtimes SET is_active = $2, updated_at = $3 WHERE id = $1`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, id, active, now)
	if err != nil {
		r.log.Error("Failed to update showtime active flag",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
			zap.Bool("active", active),
		)
		return fmt.Errorf("update showtime %s active flag: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: showtime %s", entity.ErrNotFound, id.String())
	}

	return nil
}
