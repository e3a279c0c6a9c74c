package repository

import (
	"context"
	"fmt"

	"cinema-reservation/internal/data/entity"
	"cinema-reservation/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentMethodRepository interface {
	FindByCode(ctx context.Context, code string) (*entity.PaymentMethod, error)
	FindAllActive(ctx context.Context) ([]*entity.PaymentMethod, error)
}

type paymentMethodRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentMethodRepository(db database.PgxIface, log *zap.Logger) PaymentMethodRepository {
	return &paymentMethodRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment_method")),
	}
}

func (r *paymentMethodRepository) FindByCode(ctx context.Context, code string) (*entity.PaymentMethod, error) {
	query := `
		SELECT id, code, name, is_cash, is_active, created_at, updated_at
		FROM payment_methods
		WHERE code = $1
	`

	var paymentMethod entity.PaymentMethod
	err := database.Conn(ctx, r.db).QueryRow(ctx, query, code).Scan(
		&paymentMethod.ID,
		&paymentMethod.Code,
		&paymentMethod.Name,
		&paymentMethod.IsCash,
		&paymentMethod.IsActive,
		&paymentMethod.CreatedAt,
		&paymentMethod.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment method by code",
			zap.Error(err),
			zap.String("code", code),
		)
		return nil, fmt.Errorf("find payment method by code %s: %w", code, err)
	}

	return &paymentMethod, nil
}

func (r *paymentMethodRepository) FindAllActive(ctx context.Context) ([]*entity.PaymentMethod, error) {
	query := `
		SELECT id, code, name, is_cash, is_active, created_at, updated_at
		FROM payment_methods
		WHERE is_active = true
		ORDER BY name
	`

	rows, err := database.Conn(ctx, r.db).Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find active payment methods", zap.Error(err))
		return nil, fmt.Errorf("find active payment methods: %w", err)
	}
	defer rows.Close()

	var paymentMethods []*entity.PaymentMethod
	for rows.Next() {
		var paymentMethod entity.PaymentMethod
		err := rows.Scan(
			&paymentMethod.ID,
			&paymentMethod.Code,
			&paymentMethod.Name,
			&paymentMethod.IsCash,
			&paymentMethod.IsActive,
			&paymentMethod.CreatedAt,
			&paymentMethod.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan payment method row", zap.Error(err))
			return nil, fmt.Errorf("scan payment method row: %w", err)
		}
		paymentMethods = append(paymentMethods, &paymentMethod)
	}

	return paymentMethods, rows.Err()
}
