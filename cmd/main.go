package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-CoworkingService/internal/api/handlers"
	adminPromoCodesHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/admin_promo_codes"
	adminReservationsHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/admin_reservations"
	adminSpacesHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/admin_spaces"
	calculatePriceHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/calculate_price"
	cancelReservationHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/cancel_reservation"
	clockInHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/clock_in"
	clockOutHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/clock_out"
	createReservationHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/create_reservation"
	getAvailableSlotsHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/get_available_slots"
	getReservationHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/get_reservation"
	getSpaceConfigurationHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/get_space_configuration"
	getSpaceConfigurationsHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/get_space_configurations"
	groupTimeEntriesHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/group_time_entries"
	hrEmployeesHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/hr_employees"
	hrShiftsHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/hr_shifts"
	timeEntriesHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/time_entries"
	validatePromoCodeHandler "github.com/m04kA/SMC-CoworkingService/internal/api/handlers/validate_promo_code"
	"github.com/m04kA/SMC-CoworkingService/internal/api/middleware"
	"github.com/m04kA/SMC-CoworkingService/internal/config"
	"github.com/m04kA/SMC-CoworkingService/internal/infra/export"
	employeeRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/employee"
	"github.com/m04kA/SMC-CoworkingService/internal/infra/storage/migrations"
	promoCodeRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/promocode"
	reservationRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/reservation"
	shiftRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/shift"
	spaceRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/space"
	timeEntryRepo "github.com/m04kA/SMC-CoworkingService/internal/infra/storage/timeentry"
	"github.com/m04kA/SMC-CoworkingService/internal/integrations/pricingengine"
	"github.com/m04kA/SMC-CoworkingService/internal/jobs"
	employeesService "github.com/m04kA/SMC-CoworkingService/internal/service/employees"
	promoCodesService "github.com/m04kA/SMC-CoworkingService/internal/service/promocodes"
	reservationsService "github.com/m04kA/SMC-CoworkingService/internal/service/reservations"
	shiftsService "github.com/m04kA/SMC-CoworkingService/internal/service/shifts"
	spacesService "github.com/m04kA/SMC-CoworkingService/internal/service/spaces"
	timeEntriesService "github.com/m04kA/SMC-CoworkingService/internal/service/timeentries"
	calculatePriceUC "github.com/m04kA/SMC-CoworkingService/internal/usecase/calculate_price"
	clockInUC "github.com/m04kA/SMC-CoworkingService/internal/usecase/clock_in"
	clockOutUC "github.com/m04kA/SMC-CoworkingService/internal/usecase/clock_out"
	createReservationUC "github.com/m04kA/SMC-CoworkingService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/SMC-CoworkingService/internal/usecase/get_available_slots"
	groupTimeEntriesUC "github.com/m04kA/SMC-CoworkingService/internal/usecase/group_time_entries"
	"github.com/m04kA/SMC-CoworkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CoworkingService/pkg/logger"
	"github.com/m04kA/SMC-CoworkingService/pkg/metrics"
	"github.com/m04kA/SMC-CoworkingService/pkg/txmanager"
)

const (
	rateLimitCleanupInterval = time.Minute
	rateLimitMaxIdle         = 10 * time.Minute
	healthCheckTimeout       = 2 * time.Second
)

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-CoworkingService...")
	log.Info("Configuration loaded from %s", *configPath)

	location, err := cfg.App.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.App.Timezone, err)
	}
	cutoff, err := cfg.Clocking.Cutoff()
	if err != nil {
		log.Fatal("Invalid shift cutoff %q: %v", cfg.Clocking.ShiftCutoff, err)
	}

	// Инициализируем метрики (если включены).
	// При выключенных метриках collector остается nil, его методы это допускают
	var (
		metricsCollector *metrics.Metrics
		registry         *prometheus.Registry
	)
	stopCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, registry)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	if cfg.Database.RunMigrations {
		if err := migrations.Up(context.Background(), db, log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Оборачиваем соединение: время запросов и статистика пула
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopCh)
	txManager := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем внешний движок тарификации.
	// Интерфейс остается nil при выключенном движке, расчет идет по локальной формуле
	var engine calculatePriceUC.PricingEngineClient
	if cfg.PricingEngine.Enabled {
		engine = pricingengine.NewClient(
			cfg.PricingEngine.URL,
			time.Duration(cfg.PricingEngine.Timeout)*time.Second,
			log,
		)
		log.Info("Pricing engine client initialized (url=%s timeout=%ds)",
			cfg.PricingEngine.URL, cfg.PricingEngine.Timeout)
	} else {
		log.Info("Pricing engine disabled, using local pricing formula")
	}

	exporter := export.NewExporter()

	// Инициализируем репозитории
	spaceRepository := spaceRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	promoCodeRepository := promoCodeRepo.NewRepository(wrappedDB)
	employeeRepository := employeeRepo.NewRepository(wrappedDB)
	shiftRepository := shiftRepo.NewRepository(wrappedDB)
	timeEntryRepository := timeEntryRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	spaceSvc := spacesService.NewService(spaceRepository, log)
	promoCodeSvc := promoCodesService.NewService(promoCodeRepository, log)
	employeeSvc := employeesService.NewService(employeeRepository, log)
	reservationSvc := reservationsService.NewService(reservationRepository, txManager, log)
	shiftSvc := shiftsService.NewService(shiftRepository, employeeRepository, exporter, txManager, log)
	timeEntrySvc := timeEntriesService.NewService(timeEntryRepository, employeeRepository, txManager, log)

	// Инициализируем use cases
	calculatePriceUseCase := calculatePriceUC.NewUseCase(
		spaceRepository,
		promoCodeRepository,
		engine,
		metricsCollector,
		calculatePriceUC.Settings{
			VATRatePercent: cfg.Pricing.VATRatePercent,
			Currency:       cfg.Pricing.Currency,
			Location:       location,
		},
		log,
	)

	createReservationUseCase := createReservationUC.NewUseCase(
		calculatePriceUseCase,
		reservationRepository,
		promoCodeRepository,
		txManager,
		metricsCollector,
		location,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		spaceRepository,
		reservationRepository,
		location,
		log,
	)

	clockInUseCase := clockInUC.NewUseCase(employeeRepository, timeEntryRepository, txManager, metricsCollector, log)
	clockOutUseCase := clockOutUC.NewUseCase(employeeRepository, timeEntryRepository, txManager, metricsCollector, log)

	groupTimeEntriesUseCase := groupTimeEntriesUC.NewUseCase(
		timeEntryRepository,
		employeeRepository,
		shiftRepository,
		exporter,
		txManager,
		groupTimeEntriesUC.Settings{
			Location:      location,
			Cutoff:        cutoff,
			MaxShiftHours: cfg.Clocking.MaxShiftHours,
		},
		log,
	)

	// Инициализируем handlers
	calculatePrice := calculatePriceHandler.NewHandler(calculatePriceUseCase, log)
	getSpaceConfigurations := getSpaceConfigurationsHandler.NewHandler(spaceSvc, log)
	getSpaceConfiguration := getSpaceConfigurationHandler.NewHandler(spaceSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	validatePromoCode := validatePromoCodeHandler.NewHandler(promoCodeSvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)

	clockIn := clockInHandler.NewHandler(clockInUseCase, log)
	clockOut := clockOutHandler.NewHandler(clockOutUseCase, log)
	timeEntries := timeEntriesHandler.NewHandler(timeEntrySvc, location, log)
	groupTimeEntries := groupTimeEntriesHandler.NewHandler(groupTimeEntriesUseCase, location, log)
	hrEmployees := hrEmployeesHandler.NewHandler(employeeSvc, log)
	hrShifts := hrShiftsHandler.NewHandler(shiftSvc, location, log)
	adminSpaces := adminSpacesHandler.NewHandler(spaceSvc, log)
	adminPromoCodes := adminPromoCodesHandler.NewHandler(promoCodeSvc, log)
	adminReservations := adminReservationsHandler.NewHandler(reservationSvc, location, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check: сервис жив и база отвечает
	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), healthCheckTimeout)
		defer cancel()

		if err := wrappedDB.PingContext(ctx); err != nil {
			log.Error("GET /health - database ping failed: %v", err)
			handlers.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации, с ограничением частоты)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		})
		public.Use(limiter.Middleware)
		go limiter.RunCleanup(rateLimitCleanupInterval, rateLimitMaxIdle, stopCh)
		log.Info("Rate limit enabled (rps=%.1f burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// --- Калькулятор и пространства ---
	public.HandleFunc("/calculate-price", calculatePrice.Handle).Methods(http.MethodPost)
	public.HandleFunc("/space-configurations", getSpaceConfigurations.Handle).Methods(http.MethodGet)
	public.HandleFunc("/space-configurations/{spaceId}", getSpaceConfiguration.Handle).Methods(http.MethodGet)
	public.HandleFunc("/space-configurations/{spaceId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Промокоды ---
	public.HandleFunc("/promo-codes/validate", validatePromoCode.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	public.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	public.HandleFunc("/reservations/{reference}", getReservation.Handle).Methods(http.MethodGet)
	public.HandleFunc("/reservations/{reference}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer <admin_token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AdminAuth(cfg.Security.AdminToken, log))

	// --- Учет рабочего времени ---
	// Статические пути регистрируем раньше /{entryId}
	protected.HandleFunc("/time-entries/clock-in", clockIn.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/time-entries/clock-out", clockOut.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/time-entries/grouped", groupTimeEntries.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/time-entries/export", groupTimeEntries.HandleExport).Methods(http.MethodGet)
	protected.HandleFunc("/time-entries", timeEntries.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/time-entries", timeEntries.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/time-entries/{entryId}", timeEntries.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/time-entries/{entryId}", timeEntries.HandleDelete).Methods(http.MethodDelete)

	// --- Сотрудники ---
	protected.HandleFunc("/hr/employees", hrEmployees.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/hr/employees", hrEmployees.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/hr/employees/{employeeId}", hrEmployees.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/hr/employees/{employeeId}", hrEmployees.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/hr/employees/{employeeId}", hrEmployees.HandleDelete).Methods(http.MethodDelete)

	// --- Планирование смен ---
	protected.HandleFunc("/hr/shifts/export", hrShifts.HandleExport).Methods(http.MethodGet)
	protected.HandleFunc("/hr/shifts", hrShifts.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/hr/shifts", hrShifts.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/hr/shifts/{shiftId}", hrShifts.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/hr/shifts/{shiftId}", hrShifts.HandleDelete).Methods(http.MethodDelete)

	// --- Управление пространствами ---
	protected.HandleFunc("/admin/space-configurations", adminSpaces.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/admin/space-configurations", adminSpaces.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/admin/space-configurations/{spaceId}", adminSpaces.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/admin/space-configurations/{spaceId}", adminSpaces.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/admin/space-configurations/{spaceId}", adminSpaces.HandleDelete).Methods(http.MethodDelete)

	// --- Промокоды ---
	protected.HandleFunc("/admin/promo-codes", adminPromoCodes.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/admin/promo-codes", adminPromoCodes.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/admin/promo-codes/{promoId}", adminPromoCodes.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/admin/promo-codes/{promoId}", adminPromoCodes.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/admin/promo-codes/{promoId}", adminPromoCodes.HandleDelete).Methods(http.MethodDelete)

	// --- Бронирования (администрирование) ---
	protected.HandleFunc("/admin/reservations", adminReservations.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/admin/reservations/{reservationId}/status", adminReservations.HandleUpdateStatus).Methods(http.MethodPatch)
	protected.HandleFunc("/admin/reservations/{reservationId}/deposit", adminReservations.HandleUpdateDeposit).Methods(http.MethodPatch)

	// Запускаем фоновые задачи
	var scheduler *jobs.Scheduler
	if cfg.Jobs.Enabled {
		scheduler = jobs.NewScheduler(
			reservationSvc,
			promoCodeSvc,
			timeEntrySvc,
			metricsCollector,
			jobs.Settings{
				Location:              location,
				ReleaseDepositsCron:   cfg.Jobs.ReleaseDepositsCron,
				ExpirePromoCodesCron:  cfg.Jobs.ExpirePromoCodesCron,
				ForgottenClockOutCron: cfg.Jobs.ForgottenClockOutCron,
				ReleaseAfterDays:      cfg.Deposit.ReleaseAfterDays,
				MaxShiftHours:         cfg.Clocking.MaxShiftHours,
			},
			log,
		)
		if err := scheduler.Start(); err != nil {
			log.Fatal("Failed to start job scheduler: %v", err)
		}
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся завершения запущенных задач
	if scheduler != nil {
		scheduler.Stop(shutdownCtx)
	}

	// Останавливаем сбор статистики пула и очистку rate limiter
	close(stopCh)

	log.Info("Server stopped gracefully")
}
