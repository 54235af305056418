package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	"github.com/m04kA/SMC-CoworkingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	SpaceID   int64                  // ID пространства
	Date      time.Time              // Дата (без времени)
	Type      domain.ReservationType // Тип аренды (по умолчанию почасовая)
	StartTime *types.TimeString      // Выбранное время начала (для расчета слотов окончания)
	People    int                    // Количество человек (0 = 1)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date       time.Time
	SpaceID    int64
	Type       domain.ReservationType
	Open       bool                // Пространство открыто в выбранный период
	Capacity   int                 // Общая вместимость пространства
	StartSlots []Slot              // Слоты начала (почасовая аренда)
	EndSlots   []EndSlot           // Слоты окончания для выбранного начала
	Period     *PeriodAvailability // Доступность периода (дневная, недельная, месячная аренда)
}

// Slot модель слота начала
type Slot struct {
	StartTime         types.TimeString
	EndTime           types.TimeString // Начало + минимальная длительность
	AvailableCapacity int
	Available         bool
}

// EndSlot модель слота окончания
type EndSlot struct {
	EndTime           types.TimeString
	DurationMinutes   int
	DailyRateApplied  bool
	AvailableCapacity int
}

// PeriodAvailability доступность периода целиком
type PeriodAvailability struct {
	Start             time.Time
	End               time.Time
	AvailableCapacity int
	Available         bool
}
