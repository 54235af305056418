package group_time_entries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	"github.com/m04kA/SMC-CoworkingService/internal/infra/export"
	"github.com/m04kA/SMC-CoworkingService/pkg/ptr"
)

// maxRangeDays максимальный период табеля
const maxRangeDays = 92

// UseCase use case для построения табеля по отметкам
type UseCase struct {
	timeEntryRepo TimeEntryRepository
	employeeRepo  EmployeeRepository
	shiftRepo     ShiftRepository
	exporter      TimesheetExporter
	txManager     TransactionManager
	settings      Settings
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	timeEntryRepo TimeEntryRepository,
	employeeRepo EmployeeRepository,
	shiftRepo ShiftRepository,
	exporter TimesheetExporter,
	txManager TransactionManager,
	settings Settings,
	logger Logger,
) *UseCase {
	if settings.Location == nil {
		settings.Location = time.UTC
	}
	if settings.Cutoff.IsZero() {
		settings.Cutoff = "14:30"
	}

	return &UseCase{
		timeEntryRepo: timeEntryRepo,
		employeeRepo:  employeeRepo,
		shiftRepo:     shiftRepo,
		exporter:      exporter,
		txManager:     txManager,
		settings:      settings,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute группирует отметки периода по сотрудникам и дням
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	loc := uc.settings.Location

	// 1. Валидация периода
	from := domain.DateOnly(req.From.In(loc))
	to := domain.DateOnly(req.To.In(loc))
	if req.From.IsZero() || req.To.IsZero() {
		uc.logger.Warn("GroupTimeEntries: from and to are required")
		return nil, fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}
	if to.Before(from) {
		uc.logger.Warn("GroupTimeEntries: to %s is before from %s", to.Format(domain.DateFormat), from.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
	}
	if to.Sub(from) > maxRangeDays*24*time.Hour {
		uc.logger.Warn("GroupTimeEntries: period exceeds %d days", maxRangeDays)
		return nil, fmt.Errorf("%w: period must not exceed %d days", ErrInvalidInput, maxRangeDays)
	}

	uc.logger.Info("GroupTimeEntries: from=%s to=%s employee=%d",
		from.Format(domain.DateFormat), to.Format(domain.DateFormat), ptr.Value(req.EmployeeID))

	// 2. Отметки, сотрудники и планинг читаются одной транзакцией
	var (
		entries   []*domain.TimeEntry
		employees []*domain.Employee
		shifts    []*domain.Shift
	)
	err := uc.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error

		// Отметки периода: начало в [from, to + 1 день)
		end := to.AddDate(0, 0, 1)
		entries, err = uc.timeEntryRepo.List(ctx, domain.TimeEntriesFilter{
			EmployeeID: req.EmployeeID,
			From:       &from,
			To:         &end,
		})
		if err != nil {
			uc.logger.Error("GroupTimeEntries: failed to list time entries: %v", err)
			return fmt.Errorf("%w: failed to list time entries: %v", ErrInternal, err)
		}

		// Сотрудники, включая деактивированных
		employees, err = uc.employeeRepo.List(ctx, domain.EmployeesFilter{})
		if err != nil {
			uc.logger.Error("GroupTimeEntries: failed to list employees: %v", err)
			return fmt.Errorf("%w: failed to list employees: %v", ErrInternal, err)
		}

		// Планинг для сверки
		shifts, err = uc.shiftRepo.List(ctx, domain.ShiftsFilter{
			EmployeeID: req.EmployeeID,
			From:       &from,
			To:         &to,
		})
		if err != nil {
			uc.logger.Error("GroupTimeEntries: failed to list shifts: %v", err)
			return fmt.Errorf("%w: failed to list shifts: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("GroupTimeEntries: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	byID := make(map[int64]*domain.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	// 3. Группировка
	groups := groupEntries(entries, byID, shifts, uc.settings, uc.timeProvider.Now())

	errorDays := 0
	for i := range groups {
		if groups[i].HasErrors() {
			errorDays++
		}
	}
	uc.logger.Info("GroupTimeEntries: %d entries grouped into %d days, %d with errors", len(entries), len(groups), errorDays)

	return &Response{
		From:    from,
		To:      to,
		Days:    groups,
		Summary: summarize(groups),
	}, nil
}

// Export строит xlsx табель за период
func (uc *UseCase) Export(ctx context.Context, req *Request) ([]byte, error) {
	resp, err := uc.Execute(ctx, req)
	if err != nil {
		return nil, err
	}

	days := make([]export.TimesheetDay, 0, len(resp.Days))
	for i := range resp.Days {
		g := &resp.Days[i]

		errs := make([]string, 0, len(g.Errors))
		for _, e := range g.Errors {
			errs = append(errs, string(e))
		}

		days = append(days, export.TimesheetDay{
			Date:           g.Date,
			Employee:       g.EmployeeName(),
			Shift1:         uc.slotLabel(g.Shift1),
			Shift2:         uc.slotLabel(g.Shift2),
			WorkedMinutes:  g.WorkedMinutes,
			PlannedMinutes: g.PlannedMinutes,
			DeltaMinutes:   g.DeltaMinutes,
			WorkedLabel:    g.WorkedLabel,
			Active:         g.Active,
			Errors:         errs,
		})
	}

	summary := make([]export.TimesheetSummary, 0, len(resp.Summary))
	for _, s := range resp.Summary {
		summary = append(summary, export.TimesheetSummary{
			Employee:       s.FirstName + " " + s.LastName,
			Days:           s.Days,
			WorkedMinutes:  s.WorkedMinutes,
			PlannedMinutes: s.PlannedMinutes,
			ErrorDays:      s.ErrorDays,
		})
	}

	data, err := uc.exporter.Timesheet(days, summary)
	if err != nil {
		uc.logger.Error("GroupTimeEntries: failed to build timesheet: %v", err)
		return nil, fmt.Errorf("%w: build timesheet: %v", ErrInternal, err)
	}

	return data, nil
}

// slotLabel форматирует ячейку смены: "08:58 - 12:31", открытая отметка "08:58 - …"
func (uc *UseCase) slotLabel(slot *ShiftSlot) string {
	if slot == nil {
		return ""
	}
	start := slot.ClockIn.In(uc.settings.Location).Format(domain.TimeFormat)
	if slot.ClockOut == nil {
		return start + " - …"
	}
	return start + " - " + slot.ClockOut.In(uc.settings.Location).Format(domain.TimeFormat)
}
