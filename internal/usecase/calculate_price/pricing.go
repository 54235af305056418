package calculate_price

import (
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// resolvePeriod вычисляет забронированный интервал и длительность в минутах.
// Для почасовой аренды интервал должен быть внутри часов работы,
// для дневной - день должен быть рабочим, для недельной и месячной - хотя бы один рабочий день в неделе
func resolvePeriod(req *Request, space *domain.SpaceConfiguration, loc *time.Location) (domain.Period, int, error) {
	dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, loc)
	schedule := space.OpeningHours.ForDay(dayStart)

	switch req.Type {
	case domain.ReservationTypeHourly:
		if !schedule.IsOpen {
			return domain.Period{}, 0, ErrSpaceClosed
		}
		if req.StartTime.IsBefore(schedule.OpenTime) || req.EndTime.IsAfter(schedule.CloseTime) {
			return domain.Period{}, 0, fmt.Errorf("%w: open %s-%s", ErrOutsideOpeningHours, schedule.OpenTime, schedule.CloseTime)
		}

		duration := req.StartTime.MinutesUntil(req.EndTime)
		if duration < space.MinDuration() {
			return domain.Period{}, 0, fmt.Errorf("%w: minimum is %d minutes", ErrDurationTooShort, space.MinDuration())
		}

		return domain.Period{
			Start: req.StartTime.On(dayStart, loc),
			End:   req.EndTime.On(dayStart, loc),
		}, duration, nil

	case domain.ReservationTypeDaily:
		if !schedule.IsOpen {
			return domain.Period{}, 0, ErrSpaceClosed
		}
		return domain.Period{
			Start: schedule.OpenTime.On(dayStart, loc),
			End:   schedule.CloseTime.On(dayStart, loc),
		}, schedule.OpenMinutes(), nil

	case domain.ReservationTypeWeekly, domain.ReservationTypeMonthly:
		if !space.OpeningHours.HasOpenDay() {
			return domain.Period{}, 0, ErrSpaceClosed
		}
		end := domain.PeriodEnd(req.Type, dayStart)
		return domain.Period{Start: dayStart, End: end}, int(end.Sub(dayStart).Minutes()), nil

	default:
		return domain.Period{}, 0, fmt.Errorf("%w: unknown reservation type %q", ErrInvalidInput, req.Type)
	}
}

// applyDailyRule применяет правило "5 часов = дневной тариф".
// Возвращает фактически применяемый тип аренды
func applyDailyRule(requested domain.ReservationType, durationMinutes int) (domain.ReservationType, bool) {
	if requested == domain.ReservationTypeHourly && domain.AppliesDailyRate(durationMinutes) {
		return domain.ReservationTypeDaily, true
	}
	return requested, false
}

// localSubtotal локальная формула расчета суммы без НДС (в центах).
// Почасовая аренда: ставка * минуты / 60, округление до цента
func localSubtotal(rates domain.Prices, applied domain.ReservationType, durationMinutes int) (int64, int64, error) {
	unit := rates.ForType(applied)
	if unit <= 0 {
		return 0, 0, fmt.Errorf("%w: %s", ErrRateNotAvailable, applied)
	}

	if applied == domain.ReservationTypeHourly {
		subtotal := int64(math.Round(float64(unit) * float64(durationMinutes) / 60))
		return subtotal, unit, nil
	}

	return unit, unit, nil
}

// computeAmounts вычисляет итоговые суммы: скидка, НДС и TTC
func computeAmounts(subtotal, discount int64, vatRatePercent float64) domain.Amounts {
	if discount > subtotal {
		discount = subtotal
	}
	net := subtotal - discount
	vat := domain.PercentOf(net, vatRatePercent)

	return domain.Amounts{
		SubtotalCents: subtotal,
		DiscountCents: discount,
		NetCents:      net,
		VATCents:      vat,
		TotalCents:    net + vat,
	}
}
