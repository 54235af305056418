package timeentry

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
	"employee_id",
	"clock_in",
	"clock_out",
	"source",
	"note",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с отметками прихода/ухода
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отметок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую отметку
func (r *Repository) Create(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("time_entries").
		Columns("employee_id", "clock_in", "clock_out", "source", "note").
		Values(entry.EmployeeID, entry.ClockIn, entry.ClockOut, entry.Source, entry.Note).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&entry.ID, &createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyRunning
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time
	entry.UpdatedAt = updatedAt.Time

	return entry, nil
}

// GetByID получает отметку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From("time_entries").
		Where(squirrel.Eq{"id": id})

	return r.getOne(ctx, "GetByID", selectBuilder)
}

// GetRunning получает открытую отметку сотрудника (без времени ухода)
func (r *Repository) GetRunning(ctx context.Context, employeeID int64) (*domain.TimeEntry, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From("time_entries").
		Where(squirrel.Eq{"employee_id": employeeID}).
		Where(squirrel.Eq{"clock_out": nil})

	return r.getOne(ctx, "GetRunning", selectBuilder)
}

// List получает отметки по фильтру, отсортированные по сотруднику и времени прихода
func (r *Repository) List(ctx context.Context, filter domain.TimeEntriesFilter) ([]*domain.TimeEntry, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From("time_entries").
		OrderBy("employee_id ASC", "clock_in ASC")

	if filter.EmployeeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"employee_id": *filter.EmployeeID})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"clock_in": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"clock_in": *filter.To})
	}
	if filter.OnlyOpen {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"clock_out": nil})
	}

	return r.list(ctx, "List", selectBuilder)
}

// ListRunningBefore получает открытые отметки с приходом раньше before (забытые уходы)
func (r *Repository) ListRunningBefore(ctx context.Context, before time.Time) ([]*domain.TimeEntry, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From("time_entries").
		Where(squirrel.Eq{"clock_out": nil}).
		Where(squirrel.Lt{"clock_in": before}).
		OrderBy("clock_in ASC")

	return r.list(ctx, "ListRunningBefore", selectBuilder)
}

// Update обновляет отметку
func (r *Repository) Update(ctx context.Context, entry *domain.TimeEntry) (*domain.TimeEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_entries").
		Set("clock_in", entry.ClockIn).
		Set("clock_out", entry.ClockOut).
		Set("source", entry.Source).
		Set("note", entry.Note).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": entry.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrTimeEntryNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyRunning
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time
	entry.UpdatedAt = updatedAt.Time

	return entry, nil
}

// Close закрывает открытую отметку временем ухода.
// Уже закрытая отметка не изменяется и дает ErrTimeEntryNotFound
func (r *Repository) Close(ctx context.Context, id int64, clockOut time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_entries").
		Set("clock_out", clockOut).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"clock_out": nil}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Close - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Close - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Close - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrTimeEntryNotFound
	}

	return nil
}

// Delete удаляет отметку
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_entries").
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
		return ErrTimeEntryNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) (*domain.TimeEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	entry, err := scanTimeEntry(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTimeEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan time entry: %v", ErrScanRow, op, err)
	}

	return entry, nil
}

func (r *Repository) list(ctx context.Context, op string, selectBuilder squirrel.SelectBuilder) ([]*domain.TimeEntry, error) {
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

	entries := make([]*domain.TimeEntry, 0)
	for rows.Next() {
		entry, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan time entry: %v", ErrScanRow, op, err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return entries, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTimeEntry(row rowScanner) (*domain.TimeEntry, error) {
	var entry domain.TimeEntry
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&entry.ID,
		&entry.EmployeeID,
		&entry.ClockIn,
		&entry.ClockOut,
		&entry.Source,
		&entry.Note,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.CreatedAt = createdAt.Time
	entry.UpdatedAt = updatedAt.Time

	return &entry, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
