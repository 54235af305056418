package jobs

import (
	"context"
	"time"
)

// ReleaseDeposits освобождает отпечатки бронирований, завершившихся
// более release_after_days дней назад, и закрывает такие бронирования
func (s *Scheduler) ReleaseDeposits(ctx context.Context) error {
	before := s.timeProvider.Now().AddDate(0, 0, -s.settings.ReleaseAfterDays)

	released, err := s.reservations.ReleaseExpiredHolds(ctx, before)
	if err != nil {
		return err
	}

	s.logger.Info("ReleaseDeposits: %d holds released for reservations ended before %s",
		released, before.In(s.settings.Location).Format(time.RFC3339))
	return nil
}

// ExpirePromoCodes деактивирует промокоды с истекшим сроком действия
func (s *Scheduler) ExpirePromoCodes(ctx context.Context) error {
	count, err := s.promoCodes.DeactivateExpired(ctx)
	if err != nil {
		return err
	}

	s.logger.Info("ExpirePromoCodes: %d promo codes deactivated", count)
	return nil
}

// ReportForgottenClockOuts логирует открытые отметки старше clocking.max_shift_hours.
// Отметки не закрываются автоматически: их исправляет администратор
func (s *Scheduler) ReportForgottenClockOuts(ctx context.Context) error {
	maxAge := time.Duration(s.settings.MaxShiftHours * float64(time.Hour))

	entries, err := s.timeEntries.ListForgotten(ctx, maxAge)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		s.logger.Warn("ReportForgottenClockOuts: employee=%d entry=%d clocked in at %s and never clocked out",
			entry.EmployeeID, entry.ID, entry.ClockIn.In(s.settings.Location).Format("2006-01-02 15:04"))
	}

	s.logger.Info("ReportForgottenClockOuts: %d forgotten clock-outs", len(entries))
	return nil
}
