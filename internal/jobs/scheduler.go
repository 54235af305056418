package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Имена задач (метка job в метриках)
const (
	JobReleaseDeposits   = "release_deposits"
	JobExpirePromoCodes  = "expire_promo_codes"
	JobForgottenClockOut = "forgotten_clock_out"
)

const jobTimeout = 5 * time.Minute

// Settings расписания и параметры фоновых задач
type Settings struct {
	Location              *time.Location
	ReleaseDepositsCron   string
	ExpirePromoCodesCron  string
	ForgottenClockOutCron string
	ReleaseAfterDays      int
	MaxShiftHours         float64
}

// Scheduler запускает фоновые задачи по cron-расписанию
type Scheduler struct {
	cron         *cron.Cron
	reservations ReservationService
	promoCodes   PromoCodeService
	timeEntries  TimeEntryService
	metrics      MetricsRecorder
	settings     Settings
	timeProvider TimeProvider
	logger       Logger
	entries      map[string]cron.EntryID
}

// NewScheduler создает планировщик. metrics может быть nil
func NewScheduler(
	reservations ReservationService,
	promoCodes PromoCodeService,
	timeEntries TimeEntryService,
	metrics MetricsRecorder,
	settings Settings,
	logger Logger,
) *Scheduler {
	if settings.Location == nil {
		settings.Location = time.UTC
	}

	return &Scheduler{
		cron:         cron.New(cron.WithLocation(settings.Location)),
		reservations: reservations,
		promoCodes:   promoCodes,
		timeEntries:  timeEntries,
		metrics:      metrics,
		settings:     settings,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		entries:      make(map[string]cron.EntryID),
	}
}

// Start регистрирует задачи и запускает планировщик.
// Некорректное расписание останавливает запуск сервиса
func (s *Scheduler) Start() error {
	schedules := []struct {
		name string
		spec string
		run  func(ctx context.Context) error
	}{
		{name: JobReleaseDeposits, spec: s.settings.ReleaseDepositsCron, run: s.ReleaseDeposits},
		{name: JobExpirePromoCodes, spec: s.settings.ExpirePromoCodesCron, run: s.ExpirePromoCodes},
		{name: JobForgottenClockOut, spec: s.settings.ForgottenClockOutCron, run: s.ReportForgottenClockOuts},
	}

	for _, job := range schedules {
		if job.spec == "" {
			s.logger.Warn("Scheduler: job %s has no schedule, skipped", job.name)
			continue
		}

		name, run := job.name, job.run
		id, err := s.cron.AddFunc(job.spec, func() {
			s.execute(name, run)
		})
		if err != nil {
			return fmt.Errorf("invalid schedule %q for job %s: %w", job.spec, job.name, err)
		}
		s.entries[job.name] = id
		s.logger.Info("Scheduler: job %s scheduled at %q", job.name, job.spec)
	}

	s.cron.Start()
	s.logger.Info("Scheduler: started with %d jobs", len(s.entries))
	return nil
}

// Stop останавливает планировщик и ждет завершения запущенных задач
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop().Done()

	select {
	case <-done:
		s.logger.Info("Scheduler: stopped")
	case <-ctx.Done():
		s.logger.Warn("Scheduler: stop timed out, running jobs abandoned")
	}
}

// execute запускает задачу с таймаутом и записывает результат в метрики
func (s *Scheduler) execute(name string, run func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	result := "success"
	if err := run(ctx); err != nil {
		result = "error"
		s.logger.Error("Scheduler: job %s failed: %v", name, err)
	}

	if s.metrics != nil {
		s.metrics.IncJobRun(name, result)
	}
}
