package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SettlementRepository interface {
	Create(ctx context.Context, log *entity.SettlementLog) error
	FindByProviderRef(ctx context.Context, providerRef string) (*entity.SettlementLog, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.SettlementLog, error)

	// Business queries
	LockByProviderRef(ctx context.Context, providerRef string) (*entity.SettlementLog, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SettlementStatus, raw json.RawMessage, now time.Time) error
}

type settlementRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSettlementRepository(db database.PgxIface, log *zap.Logger) SettlementRepository {
	return &settlementRepository{
		db:  db,
		log: log.With(zap.String("repository", "settlement")),
	}
}

const settlementColumns = `
	id, booking_id, provider, provider_ref, amount, status, transfer_reference,
	raw_notification, created_at, updated_at`

func scanSettlement(row rowScanner, s *entity.SettlementLog) error {
	var raw []byte
	err := row.Scan(
		&s.ID,
		&s.BookingID,
		&s.Provider,
		&s.ProviderRef,
		&s.Amount,
		&s.Status,
		&s.TransferReference,
		&raw,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if len(raw) > 0 {
		s.RawNotification = json.RawMessage(raw)
	}
	return nil
}

// nullableJSON stores an empty payload as SQL NULL.
func nullableJSON(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

func (r *settlementRepository) Create(ctx context.Context, s *entity.SettlementLog) error {
	query := `INSERT INTO settlement_logs (` + settlementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9, $10)`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		s.ID,
		s.BookingID,
		s.Provider,
		s.ProviderRef,
		s.Amount,
		s.Status,
		s.TransferReference,
		nullableJSON(s.RawNotification),
		s.CreatedAt,
		s.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create settlement log",
			zap.Error(err),
			zap.String("booking_id", s.BookingID.String()),
			zap.String("provider_ref", s.ProviderRef),
		)
		if database.IsUniqueViolation(err, "uq_settlement_logs_ref") {
			return fmt.Errorf("%w: provider reference %s already used", entity.ErrConflict, s.ProviderRef)
		}
		return fmt.Errorf("create settlement log %s: %w", s.ProviderRef, classify(err))
	}

	return nil
}

func (r *settlementRepository) FindByProviderRef(ctx context.Context, providerRef string) (*entity.SettlementLog, error) {
	query := `SELECT ` + settlementColumns + ` FROM settlement_logs WHERE provider_ref = $1`

	return r.findOne(ctx, "find settlement log by reference", query, providerRef)
}

func (r *settlementRepository) LockByProviderRef(ctx context.Context, providerRef string) (*entity.SettlementLog, error) {
	query := `SELECT ` + settlementColumns + ` FROM settlement_logs WHERE provider_ref = $1 FOR UPDATE`

	return r.findOne(ctx, "lock settlement log", query, providerRef)
}

func (r *settlementRepository) findOne(ctx context.Context, op, query, providerRef string) (*entity.SettlementLog, error) {
	var s entity.SettlementLog
	err := scanSettlement(database.Conn(ctx, r.db).QueryRow(ctx, query, providerRef), &s)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to "+op,
			zap.Error(err),
			zap.String("provider_ref", providerRef),
		)
		return nil, fmt.Errorf("%s %s: %w", op, providerRef, classify(err))
	}

	return &s, nil
}

func (r *settlementRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.SettlementLog, error) {
	query := `
		SELECT ` + settlementColumns + `
		FROM settlement_logs
		WHERE booking_id = $1
		ORDER BY created_at DESC
	`

	rows, err := database.Conn(ctx, r.db).Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find settlement logs by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find settlement logs by booking ID %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var logs []*entity.SettlementLog
	for rows.Next() {
		var s entity.SettlementLog
		if err := scanSettlement(rows, &s); err != nil {
			r.log.Error("Failed to scan settlement log row", zap.Error(err))
			return nil, fmt.Errorf("scan settlement log row: %w", err)
		}
		logs = append(logs, &s)
	}

	return logs, rows.Err()
}

func (r *settlementRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.SettlementStatus, raw json.RawMessage, now time.Time) error {
	query := `
		UPDATE settlement_logs
		SET status = $2, raw_notification = COALESCE($3::jsonb, raw_notification), updated_at = $4
		WHERE id = $1
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, id, status, nullableJSON(raw), now)
	if err != nil {
		r.log.Error("Failed to update settlement log status",
			zap.Error(err),
			zap.String("settlement_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update settlement log %s status to %s: %w", id.String(), string(status), classify(err))
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("%w: settlement log %s", entity.ErrNotFound, id.String())
	}

	return nil
}
