package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-CoworkingService/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	App           AppConfig           `toml:"app"`
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	PricingEngine PricingEngineConfig `toml:"pricing_engine"`
	Pricing       PricingConfig       `toml:"pricing"`
	Clocking      ClockingConfig      `toml:"clocking"`
	Deposit       DepositConfig       `toml:"deposit"`
	Security      SecurityConfig      `toml:"security"`
	RateLimit     RateLimitConfig     `toml:"rate_limit"`
	Jobs          JobsConfig          `toml:"jobs"`
}

// AppConfig общие настройки приложения
type AppConfig struct {
	Timezone string `toml:"timezone"`
}

// Location возвращает часовой пояс коворкинга (часы работы, даты бронирований, отметки)
func (a AppConfig) Location() (*time.Location, error) {
	return time.LoadLocation(a.Timezone)
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
	RunMigrations   bool   `toml:"run_migrations"`
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// PricingEngineConfig настройки внешнего движка тарификации
type PricingEngineConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// PricingConfig настройки локального расчета цены
type PricingConfig struct {
	VATRatePercent float64 `toml:"vat_rate_percent"`
	Currency       string  `toml:"currency"`
}

// ClockingConfig настройки учета рабочего времени
type ClockingConfig struct {
	ShiftCutoff   string  `toml:"shift_cutoff"`
	MaxShiftHours float64 `toml:"max_shift_hours"`
}

// Cutoff возвращает время разделения смен
func (c ClockingConfig) Cutoff() (types.TimeString, error) {
	return types.NewTimeStringFromString(c.ShiftCutoff)
}

// DepositConfig настройки банковского отпечатка (empreinte bancaire)
type DepositConfig struct {
	ReleaseAfterDays int `toml:"release_after_days"`
}

// SecurityConfig настройки доступа к административным маршрутам
type SecurityConfig struct {
	AdminToken string `toml:"admin_token"`
}

// RateLimitConfig ограничение запросов на публичные маршруты
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// JobsConfig расписания фоновых задач (cron-выражения)
type JobsConfig struct {
	Enabled               bool   `toml:"enabled"`
	ReleaseDepositsCron   string `toml:"release_deposits_cron"`
	ExpirePromoCodesCron  string `toml:"expire_promo_codes_cron"`
	ForgottenClockOutCron string `toml:"forgotten_clock_out_cron"`
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию,
// переопределения из окружения и валидирует результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		App: AppConfig{
			Timezone: "Europe/Paris",
		},
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "coworking",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			RunMigrations:   true,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "coworking-service",
		},
		PricingEngine: PricingEngineConfig{
			Timeout: 3,
		},
		Pricing: PricingConfig{
			VATRatePercent: 20,
			Currency:       "EUR",
		},
		Clocking: ClockingConfig{
			ShiftCutoff:   "14:30",
			MaxShiftHours: 12,
		},
		Deposit: DepositConfig{
			ReleaseAfterDays: 2,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 10,
			Burst:             20,
		},
		Jobs: JobsConfig{
			Enabled:               true,
			ReleaseDepositsCron:   "0 3 * * *",
			ExpirePromoCodesCron:  "5 0 * * *",
			ForgottenClockOutCron: "0 23 * * *",
		},
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("ADMIN_TOKEN"); v != "" {
		cfg.Security.AdminToken = v
	}
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return errors.New("server.http_port must be in 1..65535")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return errors.New("database.host and database.dbname are required")
	}
	if c.Pricing.VATRatePercent < 0 || c.Pricing.VATRatePercent > 100 {
		return errors.New("pricing.vat_rate_percent must be in 0..100")
	}
	if c.PricingEngine.Enabled && c.PricingEngine.URL == "" {
		return errors.New("pricing_engine.url is required when the engine is enabled")
	}
	if _, err := c.App.Location(); err != nil {
		return fmt.Errorf("app.timezone: %w", err)
	}
	if _, err := c.Clocking.Cutoff(); err != nil {
		return fmt.Errorf("clocking.shift_cutoff: %w", err)
	}
	if c.Clocking.MaxShiftHours <= 0 {
		return errors.New("clocking.max_shift_hours must be positive")
	}
	if c.Deposit.ReleaseAfterDays < 0 {
		return errors.New("deposit.release_after_days must not be negative")
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return errors.New("rate_limit.requests_per_second and rate_limit.burst must be positive")
	}
	return nil
}
