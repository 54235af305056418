package space

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	"github.com/m04kA/SMC-CoworkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CoworkingService/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var columns = []string{
	"id",
	"slug",
	"name",
	"description",
	"kind",
	"capacity",
	"hourly_cents",
	"daily_cents",
	"weekly_cents",
	"monthly_cents",
	"price_tiers",
	"slot_step_minutes",
	"min_duration_minutes",
	"min_booking_notice_minutes",
	"deposit_cents",
	"opening_hours",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с пространствами коворкинга
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пространств
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое пространство
func (r *Repository) Create(ctx context.Context, space *domain.SpaceConfiguration) (*domain.SpaceConfiguration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	tiers, hours, err := encodeJSONColumns(space)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("spaces").
		Columns(
			"slug",
			"name",
			"description",
			"kind",
			"capacity",
			"hourly_cents",
			"daily_cents",
			"weekly_cents",
			"monthly_cents",
			"price_tiers",
			"slot_step_minutes",
			"min_duration_minutes",
			"min_booking_notice_minutes",
			"deposit_cents",
			"opening_hours",
			"is_active",
		).
		Values(
			space.Slug,
			space.Name,
			space.Description,
			space.Kind,
			space.Capacity,
			space.Prices.HourlyCents,
			space.Prices.DailyCents,
			space.Prices.WeeklyCents,
			space.Prices.MonthlyCents,
			tiers,
			space.SlotStepMinutes,
			space.MinDurationMinutes,
			space.MinBookingNoticeMinutes,
			space.DepositCents,
			hours,
			space.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&space.ID, &createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	space.CreatedAt = createdAt.Time
	space.UpdatedAt = updatedAt.Time

	return space, nil
}

// GetByID получает пространство по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.SpaceConfiguration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("spaces").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	space, err := scanSpace(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSpaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan space: %v", ErrScanRow, err)
	}

	return space, nil
}

// List получает список пространств, отсортированный по имени
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.SpaceConfiguration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("spaces").
		OrderBy("name ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	spaces := make([]*domain.SpaceConfiguration, 0)
	for rows.Next() {
		space, err := scanSpace(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan space: %v", ErrScanRow, err)
		}
		spaces = append(spaces, space)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return spaces, nil
}

// Update обновляет пространство целиком
func (r *Repository) Update(ctx context.Context, space *domain.SpaceConfiguration) (*domain.SpaceConfiguration, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	tiers, hours, err := encodeJSONColumns(space)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Update("spaces").
		Set("slug", space.Slug).
		Set("name", space.Name).
		Set("description", space.Description).
		Set("kind", space.Kind).
		Set("capacity", space.Capacity).
		Set("hourly_cents", space.Prices.HourlyCents).
		Set("daily_cents", space.Prices.DailyCents).
		Set("weekly_cents", space.Prices.WeeklyCents).
		Set("monthly_cents", space.Prices.MonthlyCents).
		Set("price_tiers", tiers).
		Set("slot_step_minutes", space.SlotStepMinutes).
		Set("min_duration_minutes", space.MinDurationMinutes).
		Set("min_booking_notice_minutes", space.MinBookingNoticeMinutes).
		Set("deposit_cents", space.DepositCents).
		Set("opening_hours", hours).
		Set("is_active", space.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": space.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrSpaceNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugExists
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	space.CreatedAt = createdAt.Time
	space.UpdatedAt = updatedAt.Time

	return space, nil
}

// Deactivate снимает пространство с публикации (бронирования сохраняются)
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("spaces").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSpaceNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSpace сканирует строку в domain модель
func scanSpace(row rowScanner) (*domain.SpaceConfiguration, error) {
	var space domain.SpaceConfiguration
	var tiers, hours []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&space.ID,
		&space.Slug,
		&space.Name,
		&space.Description,
		&space.Kind,
		&space.Capacity,
		&space.Prices.HourlyCents,
		&space.Prices.DailyCents,
		&space.Prices.WeeklyCents,
		&space.Prices.MonthlyCents,
		&tiers,
		&space.SlotStepMinutes,
		&space.MinDurationMinutes,
		&space.MinBookingNoticeMinutes,
		&space.DepositCents,
		&hours,
		&space.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(tiers) > 0 {
		if err := json.Unmarshal(tiers, &space.PriceTiers); err != nil {
			return nil, fmt.Errorf("decode price_tiers: %w", err)
		}
	}
	if err := json.Unmarshal(hours, &space.OpeningHours); err != nil {
		return nil, fmt.Errorf("decode opening_hours: %w", err)
	}

	space.CreatedAt = createdAt.Time
	space.UpdatedAt = updatedAt.Time

	return &space, nil
}

// encodeJSONColumns сериализует тарифы и часы работы для JSONB колонок
func encodeJSONColumns(space *domain.SpaceConfiguration) ([]byte, []byte, error) {
	priceTiers := space.PriceTiers
	if priceTiers == nil {
		priceTiers = []domain.PriceTier{}
	}

	tiers, err := json.Marshal(priceTiers)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: price_tiers: %v", ErrEncode, err)
	}

	hours, err := json.Marshal(space.OpeningHours)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: opening_hours: %v", ErrEncode, err)
	}

	return tiers, hours, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
