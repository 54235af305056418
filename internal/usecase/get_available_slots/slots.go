package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	"github.com/m04kA/SMC-CoworkingService/pkg/types"
)

// generateStartSlots генерирует слоты начала от открытия с шагом step,
// пока начало + минимальная длительность не выходит за закрытие.
// Для сегодняшней даты отбрасываются слоты раньше now + minBookingNotice
func generateStartSlots(
	schedule domain.DaySchedule,
	step int,
	minDuration int,
	day time.Time,
	now time.Time,
	minBookingNoticeMinutes int,
	loc *time.Location,
) []types.TimeString {
	if !schedule.IsOpen {
		return []types.TimeString{}
	}

	// Шаг 1: Генерируем все слоты рабочего дня
	allSlots := make([]types.TimeString, 0)
	for minutes := schedule.OpenTime.Minutes(); minutes+minDuration <= schedule.CloseTime.Minutes(); minutes += step {
		slot, err := types.NewTimeStringFromMinutes(minutes)
		if err != nil {
			break
		}
		allSlots = append(allSlots, slot)
	}

	// Шаг 2: Если дата не сегодня - возвращаем все слоты
	if !domain.SameDay(day, now.In(loc)) {
		return allSlots
	}

	// Шаг 3: Для сегодняшней даты оставляем слоты не раньше now + minBookingNotice
	minAllowed := now.Add(time.Duration(minBookingNoticeMinutes) * time.Minute)
	availableSlots := make([]types.TimeString, 0, len(allSlots))
	for _, slot := range allSlots {
		if !slot.On(day, loc).Before(minAllowed) {
			availableSlots = append(availableSlots, slot)
		}
	}

	return availableSlots
}

// generateEndSlots генерирует слоты окончания: начало + минимальная длительность,
// затем с шагом step до закрытия включительно
func generateEndSlots(start types.TimeString, schedule domain.DaySchedule, step, minDuration int) []types.TimeString {
	ends := make([]types.TimeString, 0)
	for minutes := start.Minutes() + minDuration; minutes <= schedule.CloseTime.Minutes(); minutes += step {
		end, err := types.NewTimeStringFromMinutes(minutes)
		if err != nil {
			break
		}
		ends = append(ends, end)
	}
	return ends
}

// calculateStartAvailability вычисляет свободную вместимость для каждого слота начала
// на интервале [начало, начало + минимальная длительность).
// Заполненные слоты сохраняются с Available = false
func calculateStartAvailability(
	space *domain.SpaceConfiguration,
	starts []types.TimeString,
	reservations []*domain.Reservation,
	day time.Time,
	people int,
	loc *time.Location,
) []Slot {
	result := make([]Slot, 0, len(starts))
	minDuration := space.MinDuration()

	for _, start := range starts {
		end, err := start.AddMinutes(minDuration)
		if err != nil {
			continue
		}

		remaining := space.RemainingCapacity(reservations, start.On(day, loc), end.On(day, loc))
		result = append(result, Slot{
			StartTime:         start,
			EndTime:           end,
			AvailableCapacity: remaining,
			Available:         remaining >= people,
		})
	}

	return result
}

// calculateEndAvailability оставляет слоты окончания, пока интервал [start, end) помещается во вместимость.
// Список обрывается на первом слоте, превышающем вместимость
func calculateEndAvailability(
	space *domain.SpaceConfiguration,
	start types.TimeString,
	ends []types.TimeString,
	reservations []*domain.Reservation,
	day time.Time,
	people int,
	loc *time.Location,
) []EndSlot {
	result := make([]EndSlot, 0, len(ends))
	startAt := start.On(day, loc)

	for _, end := range ends {
		remaining := space.RemainingCapacity(reservations, startAt, end.On(day, loc))
		if remaining < people {
			break
		}

		duration := start.MinutesUntil(end)
		result = append(result, EndSlot{
			EndTime:           end,
			DurationMinutes:   duration,
			DailyRateApplied:  domain.AppliesDailyRate(duration),
			AvailableCapacity: remaining,
		})
	}

	return result
}

// containsSlot проверяет, что время входит в список слотов
func containsSlot(slots []types.TimeString, t types.TimeString) bool {
	for _, slot := range slots {
		if slot.Equal(t) {
			return true
		}
	}
	return false
}
