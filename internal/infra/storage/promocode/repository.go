package promocode

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	"github.com/m04kA/SMC-CoworkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CoworkingService/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var columns = []string{
	"id",
	"code",
	"description",
	"percent_off",
	"amount_off_cents",
	"min_amount_cents",
	"valid_from",
	"valid_until",
	"max_uses",
	"used_count",
	"reservation_types",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с промокодами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория промокодов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый промокод
func (r *Repository) Create(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("promo_codes").
		Columns(
			"code",
			"description",
			"percent_off",
			"amount_off_cents",
			"min_amount_cents",
			"valid_from",
			"valid_until",
			"max_uses",
			"reservation_types",
			"is_active",
		).
		Values(
			promo.Code,
			promo.Description,
			promo.PercentOff,
			promo.AmountOffCents,
			promo.MinAmountCents,
			promo.ValidFrom,
			promo.ValidUntil,
			promo.MaxUses,
			pq.Array(typesToStrings(promo.ReservationTypes)),
			promo.IsActive,
		).
		Suffix("RETURNING id, used_count, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&promo.ID, &promo.UsedCount, &createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrCodeExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	promo.CreatedAt = createdAt.Time
	promo.UpdatedAt = updatedAt.Time

	return promo, nil
}

// GetByID получает промокод по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.PromoCode, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByCode получает промокод по коду (коды хранятся в верхнем регистре)
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	return r.getOne(ctx, "GetByCode", squirrel.Eq{"code": code})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.PromoCode, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("promo_codes").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	promo, err := scanPromoCode(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPromoCodeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan promo code: %v", ErrScanRow, op, err)
	}

	return promo, nil
}

// List получает все промокоды, новые первыми
func (r *Repository) List(ctx context.Context) ([]*domain.PromoCode, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("promo_codes").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	promos := make([]*domain.PromoCode, 0)
	for rows.Next() {
		promo, err := scanPromoCode(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan promo code: %v", ErrScanRow, err)
		}
		promos = append(promos, promo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return promos, nil
}

// Update обновляет промокод (счетчик использований не меняется)
func (r *Repository) Update(ctx context.Context, promo *domain.PromoCode) (*domain.PromoCode, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("promo_codes").
		Set("code", promo.Code).
		Set("description", promo.Description).
		Set("percent_off", promo.PercentOff).
		Set("amount_off_cents", promo.AmountOffCents).
		Set("min_amount_cents", promo.MinAmountCents).
		Set("valid_from", promo.ValidFrom).
		Set("valid_until", promo.ValidUntil).
		Set("max_uses", promo.MaxUses).
		Set("reservation_types", pq.Array(typesToStrings(promo.ReservationTypes))).
		Set("is_active", promo.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": promo.ID}).
		Suffix("RETURNING used_count, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&promo.UsedCount, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrPromoCodeNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrCodeExists
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	promo.CreatedAt = createdAt.Time
	promo.UpdatedAt = updatedAt.Time

	return promo, nil
}

// Delete удаляет промокод
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("promo_codes").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPromoCodeNotFound
	}

	return nil
}

// IncrementUsage атомарно увеличивает счетчик использований, если лимит не исчерпан
func (r *Repository) IncrementUsage(ctx context.Context, code string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("promo_codes").
		Set("used_count", squirrel.Expr("used_count + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"code": code}).
		Where(squirrel.Or{
			squirrel.Eq{"max_uses": 0},
			squirrel.Expr("used_count < max_uses"),
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - get rows affected: %v", ErrExecQuery, err)
	}

	// Код существует (проверен при расчете цены), значит лимит исчерпан
	if rowsAffected == 0 {
		return ErrPromoCodeExhausted
	}

	return nil
}

// DeactivateExpired деактивирует промокоды, срок действия которых истек до now
func (r *Repository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("promo_codes").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.Lt{"valid_until": now}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeactivateExpired - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeactivateExpired - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeactivateExpired - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPromoCode(row rowScanner) (*domain.PromoCode, error) {
	var promo domain.PromoCode
	var reservationTypes []string
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&promo.ID,
		&promo.Code,
		&promo.Description,
		&promo.PercentOff,
		&promo.AmountOffCents,
		&promo.MinAmountCents,
		&promo.ValidFrom,
		&promo.ValidUntil,
		&promo.MaxUses,
		&promo.UsedCount,
		pq.Array(&reservationTypes),
		&promo.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	promo.ReservationTypes = make([]domain.ReservationType, 0, len(reservationTypes))
	for _, t := range reservationTypes {
		promo.ReservationTypes = append(promo.ReservationTypes, domain.ReservationType(t))
	}

	promo.CreatedAt = createdAt.Time
	promo.UpdatedAt = updatedAt.Time

	return &promo, nil
}

func typesToStrings(types []domain.ReservationType) []string {
	result := make([]string, len(types))
	for i, t := range types {
		result[i] = string(t)
	}
	return result
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
