package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	"github.com/m04kA/SMC-CoworkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CoworkingService/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"reference",
	"space_id",
	"type",
	"start_at",
	"end_at",
	"people",
	"customer_name",
	"customer_email",
	"customer_phone",
	"customer_company",
	"subtotal_cents",
	"discount_cents",
	"net_cents",
	"vat_cents",
	"total_cents",
	"vat_rate_percent",
	"promo_code",
	"status",
	"deposit_status",
	"deposit_cents",
	"deposit_hold_ref",
	"notes",
	"cancelled_at",
	"cancel_reason",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"reference",
			"space_id",
			"type",
			"start_at",
			"end_at",
			"people",
			"customer_name",
			"customer_email",
			"customer_phone",
			"customer_company",
			"subtotal_cents",
			"discount_cents",
			"net_cents",
			"vat_cents",
			"total_cents",
			"vat_rate_percent",
			"promo_code",
			"status",
			"deposit_status",
			"deposit_cents",
			"deposit_hold_ref",
			"notes",
		).
		Values(
			reservation.Reference,
			reservation.SpaceID,
			reservation.Type,
			reservation.StartAt,
			reservation.EndAt,
			reservation.People,
			reservation.Customer.Name,
			reservation.Customer.Email,
			reservation.Customer.Phone,
			reservation.Customer.Company,
			reservation.Amounts.SubtotalCents,
			reservation.Amounts.DiscountCents,
			reservation.Amounts.NetCents,
			reservation.Amounts.VATCents,
			reservation.Amounts.TotalCents,
			reservation.VATRatePercent,
			reservation.PromoCode,
			reservation.Status,
			reservation.DepositStatus,
			reservation.DepositCents,
			reservation.DepositHoldRef,
			reservation.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&reservation.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByReference получает бронирование по публичной ссылке
func (r *Repository) GetByReference(ctx context.Context, reference string) (*domain.Reservation, error) {
	return r.getOne(ctx, "GetByReference", squirrel.Eq{"reference": reference})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("reservations").
		Where(where)

	// Внутри транзакции блокируем строку для последующего обновления
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan reservation: %v", ErrScanRow, op, err)
	}

	return reservation, nil
}

// ListOverlapping получает активные бронирования пространства, пересекающиеся с [from, to)
// Интервалы, которые только касаются границ, не пересекаются
func (r *Repository) ListOverlapping(ctx context.Context, spaceID int64, from, to time.Time) ([]*domain.Reservation, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From("reservations").
		Where(squirrel.Eq{"space_id": spaceID}).
		Where(squirrel.Eq{"status": activeStatuses()}).
		Where(squirrel.Lt{"start_at": to}).
		Where(squirrel.Gt{"end_at": from}).
		OrderBy("start_at ASC")

	// Если используется транзакция, добавляем FOR UPDATE для блокировки (создание бронирования)
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return r.list(ctx, "ListOverlapping", selectBuilder)
}

// List получает бронирования с фильтрацией для администратора
func (r *Repository) List(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From("reservations").
		OrderBy("start_at DESC")

	if filter.SpaceID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"space_id": *filter.SpaceID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"end_at": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_at": *filter.To})
	}

	return r.list(ctx, "List", selectBuilder)
}

// ListEndedWithDeposit получает бронирования, закончившиеся до before, с залогом в указанном статусе
func (r *Repository) ListEndedWithDeposit(ctx context.Context, before time.Time, deposit domain.DepositStatus) ([]*domain.Reservation, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From("reservations").
		Where(squirrel.Eq{"deposit_status": deposit}).
		Where(squirrel.Lt{"end_at": before}).
		OrderBy("end_at ASC")

	return r.list(ctx, "ListEndedWithDeposit", selectBuilder)
}

// Update сохраняет изменяемые поля бронирования: статус, залог и отмену
func (r *Repository) Update(ctx context.Context, reservation *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", reservation.Status).
		Set("deposit_status", reservation.DepositStatus).
		Set("deposit_hold_ref", reservation.DepositHoldRef).
		Set("cancelled_at", reservation.CancelledAt).
		Set("cancel_reason", reservation.CancelReason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": reservation.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

func (r *Repository) list(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan reservation: %v", ErrScanRow, op, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return reservations, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.Reference,
		&res.SpaceID,
		&res.Type,
		&res.StartAt,
		&res.EndAt,
		&res.People,
		&res.Customer.Name,
		&res.Customer.Email,
		&res.Customer.Phone,
		&res.Customer.Company,
		&res.Amounts.SubtotalCents,
		&res.Amounts.DiscountCents,
		&res.Amounts.NetCents,
		&res.Amounts.VATCents,
		&res.Amounts.TotalCents,
		&res.VATRatePercent,
		&res.PromoCode,
		&res.Status,
		&res.DepositStatus,
		&res.DepositCents,
		&res.DepositHoldRef,
		&res.Notes,
		&res.CancelledAt,
		&res.CancelReason,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

func activeStatuses() []string {
	statuses := make([]string, len(domain.ActiveReservationStatuses))
	for i, s := range domain.ActiveReservationStatuses {
		statuses[i] = string(s)
	}
	return statuses
}
