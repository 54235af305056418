package domain

// Значения по умолчанию для конфигурации пространства
const (
	DefaultSlotStepMinutes         = 60
	DefaultMinDurationMinutes      = 60
	DefaultMinBookingNoticeMinutes = 0
	DefaultPeopleCount             = 1
)

// Бизнес-правила тарификации
const (
	// DailyRateThresholdMinutes - начиная с 5 часов почасовая аренда тарифицируется как дневная
	DailyRateThresholdMinutes = 5 * 60
	// WeeklyPeriodDays - длительность недельной аренды в календарных днях
	WeeklyPeriodDays = 7
)

// Ограничения валидации
const (
	MinCapacity           = 1
	MaxCapacity           = 500
	MinSlotStepMinutes    = 15
	MaxSlotStepMinutes    = 240
	MaxNotesLength        = 1000
	MinWeeklyHours        = 1
	MaxWeeklyHours        = 48
	MaxPromoCodeLength    = 32
	MaxCancellationReason = 500
)

// Форматы времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
