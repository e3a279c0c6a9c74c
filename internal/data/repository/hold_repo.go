package repository

import (
	"context"
	"fmt"
	"time"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/pkg/database"
	"cinema-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type HoldRepository interface {
	CreateBatch(ctx context.Context, holds []*entity.Hold) error
	FindByToken(ctx context.Context, token string) ([]*entity.Hold, error)

	// Locking reads; call inside a transaction after the inventory rows are locked.
	LockActiveBySeats(ctx context.Context, seatIDs []uuid.UUID, now time.Time) ([]*entity.Hold, error)
	LockActiveByToken(ctx context.Context, token string, now time.Time) ([]*entity.Hold, error)

	// ReleaseByToken releases held rows of token owned by holderID or anonymous.
	ReleaseByToken(ctx context.Context, token string, holderID *uuid.UUID, now time.Time) (int64, error)
	ReleaseTokens(ctx context.Context, tokens []string, now time.Time) (int64, error)
	ReleaseExpiredForSeats(ctx context.Context, seatIDs []uuid.UUID, now time.Time) (int64, error)
	MarkConsumed(ctx context.Context, ids []uuid.UUID, now time.Time) error

	// Sweeper
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type holdRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHoldRepository(db database.PgxIface, log *zap.Logger) HoldRepository {
	return &holdRepository{
		db:  db,
		log: log.With(zap.String("repository", "hold")),
	}
}

const holdColumns = `id, token, showtime_id, showtime_seat_id, holder_id, status, created_at, expires_at, released_at`

func (r *holdRepository) CreateBatch(ctx context.Context, holds []*entity.Hold) error {
	if len(holds) == 0 {
		return nil
	}

	query := `INSERT INTO holds (` + holdColumns + `) VALUES `
	args := []any{}

	for i, h := range holds {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			i*9+1, i*9+2, i*9+3, i*9+4, i*9+5, i*9+6, i*9+7, i*9+8, i*9+9)

		args = append(args,
			h.ID,
			h.Token,
			h.ShowtimeID,
			h.ShowtimeSeatID,
			h.HolderID,
			h.Status,
			h.CreatedAt,
			h.ExpiresAt,
			h.ReleasedAt,
		)
	}

	_, err := database.Conn(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create holds",
			zap.Error(err),
			zap.String("token", utils.MaskToken(holds[0].Token)),
			zap.Int("count", len(holds)),
		)
		if database.IsUniqueViolation(err, "") {
			return fmt.Errorf("%w: seat already held", entity.ErrConflict)
		}
		return fmt.Errorf("create holds: %w", classify(err))
	}

	return nil
}

func (r *holdRepository) FindByToken(ctx context.Context, token string) ([]*entity.Hold, error) {
	query := `SELECT ` + holdColumns + ` FROM holds WHERE token = $1 ORDER BY showtime_seat_id`

	return r.query(ctx, "find holds by token", query, token)
}

func (r *holdRepository) LockActiveBySeats(ctx context.Context, seatIDs []uuid.UUID, now time.Time) ([]*entity.Hold, error) {
	if len(seatIDs) == 0 {
		return []*entity.Hold{}, nil
	}

	query := `
		SELECT ` + holdColumns + `
		FROM holds
		WHERE showtime_seat_id = ANY($1) AND status = 'held' AND expires_at > $2
		ORDER BY id
		FOR UPDATE
	`

	return r.query(ctx, "lock active holds by seats", query, seatIDs, now)
}

func (r *holdRepository) LockActiveByToken(ctx context.Context, token string, now time.Time) ([]*entity.Hold, error) {
	query := `
		SELECT ` + holdColumns + `
		FROM holds
		WHERE token = $1 AND status = 'held' AND expires_at > $2
		ORDER BY id
		FOR UPDATE
	`

	return r.query(ctx, "lock active holds by token", query, token, now)
}

func (r *holdRepository) query(ctx context.Context, op, query string, args ...any) ([]*entity.Hold, error) {
	rows, err := database.Conn(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to "+op, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}
	defer rows.Close()

	var holds []*entity.Hold
	for rows.Next() {
		var h entity.Hold
		err := rows.Scan(
			&h.ID,
			&h.Token,
			&h.ShowtimeID,
			&h.ShowtimeSeatID,
			&h.HolderID,
			&h.Status,
			&h.CreatedAt,
			&h.ExpiresAt,
			&h.ReleasedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan hold row", zap.Error(err))
			return nil, fmt.Errorf("scan hold row: %w", err)
		}
		holds = append(holds, &h)
	}
	if err := rows.Err(); err != nil {
		r.log.Error("Failed to "+op, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}

	return holds, nil
}

func (r *holdRepository) ReleaseByToken(ctx context.Context, token string, holderID *uuid.UUID, now time.Time) (int64, error) {
	query := `
		UPDATE holds
		SET status = 'released', released_at = $3
		WHERE token = $1 AND status = 'held' AND (holder_id IS NULL OR holder_id = $2)
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, token, holderID, now)
	if err != nil {
		r.log.Error("Failed to release holds by token",
			zap.Error(err),
			zap.String("token", utils.MaskToken(token)),
		)
		return 0, fmt.Errorf("release holds by token: %w", classify(err))
	}

	return result.RowsAffected(), nil
}

func (r *holdRepository) ReleaseTokens(ctx context.Context, tokens []string, now time.Time) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	query := `
		UPDATE holds
		SET status = 'released', released_at = $2
		WHERE token = ANY($1) AND status = 'held'
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, tokens, now)
	if err != nil {
		r.log.Error("Failed to release hold tokens",
			zap.Error(err),
			zap.Int("count", len(tokens)),
		)
		return 0, fmt.Errorf("release hold tokens: %w", classify(err))
	}

	return result.RowsAffected(), nil
}

func (r *holdRepository) ReleaseExpiredForSeats(ctx context.Context, seatIDs []uuid.UUID, now time.Time) (int64, error) {
	if len(seatIDs) == 0 {
		return 0, nil
	}

	query := `
		UPDATE holds
		SET status = 'released', released_at = $2
		WHERE showtime_seat_id = ANY($1) AND status = 'held' AND expires_at <= $2
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, seatIDs, now)
	if err != nil {
		r.log.Error("Failed to release expired holds for seats",
			zap.Error(err),
			zap.Int("seat_count", len(seatIDs)),
		)
		return 0, fmt.Errorf("release expired holds for seats: %w", classify(err))
	}

	return result.RowsAffected(), nil
}

func (r *holdRepository) MarkConsumed(ctx context.Context, ids []uuid.UUID, now time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	query := `
		UPDATE holds
		SET status = 'consumed', released_at = $2
		WHERE id = ANY($1) AND status = 'held'
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, ids, now)
	if err != nil {
		r.log.Error("Failed to mark holds consumed",
			zap.Error(err),
			zap.Int("count", len(ids)),
		)
		return fmt.Errorf("mark holds consumed: %w", classify(err))
	}

	if result.RowsAffected() != int64(len(ids)) {
		return fmt.Errorf("%w: hold changed while booking", entity.ErrConflict)
	}

	return nil
}

func (r *holdRepository) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE holds
		SET status = 'released', released_at = $1
		WHERE status = 'held' AND expires_at <= $1
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, now)
	if err != nil {
		r.log.Error("Failed to expire stale holds", zap.Error(err))
		return 0, fmt.Errorf("expire stale holds: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *holdRepository) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
		DELETE FROM holds
		WHERE status IN ('released', 'consumed') AND COALESCE(released_at, created_at) < $1
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, cutoff)
	if err != nil {
		r.log.Error("Failed to purge old holds",
			zap.Error(err),
			zap.Time("cutoff", cutoff),
		)
		return 0, fmt.Errorf("purge holds older than %s: %w", cutoff.Format(time.RFC3339), err)
	}

	return result.RowsAffected(), nil
}
