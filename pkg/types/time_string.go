package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

var (
	// ErrInvalidFormat возвращается, когда строка не соответствует формату HH:MM
	ErrInvalidFormat = errors.New("invalid time string format")

	// ErrOutOfRange возвращается, когда время выходит за пределы суток
	ErrOutOfRange = errors.New("time string out of range")
)

// TimeString время суток в формате "HH:MM".
// "24:00" допускается только как граница окончания интервала (конец дня).
type TimeString string

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return fromMinutes(t.Hour()*minutesPerHour + t.Minute())
}

// NewTimeStringFromString парсит строку "HH:MM" (или "HH:MM:SS" из БД)
func NewTimeStringFromString(s string) (TimeString, error) {
	minutes, err := parseMinutes(s)
	if err != nil {
		return "", err
	}
	return fromMinutes(minutes), nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут от начала дня
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes > minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrOutOfRange, minutes)
	}
	return fromMinutes(minutes), nil
}

func fromMinutes(minutes int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/minutesPerHour, minutes%minutesPerHour))
}

func parseMinutes(s string) (int, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, ErrInvalidFormat
	}
	if len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, ErrInvalidFormat
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, ErrInvalidFormat
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, ErrInvalidFormat
	}
	if len(parts) == 3 {
		if err := validateSeconds(parts[2]); err != nil {
			return 0, err
		}
	}

	if minutes < 0 || minutes >= minutesPerHour || hours < 0 || hours > 24 {
		return 0, fmt.Errorf("%w: %s", ErrOutOfRange, s)
	}
	if hours == 24 && minutes != 0 {
		return 0, fmt.Errorf("%w: %s", ErrOutOfRange, s)
	}

	return hours*minutesPerHour + minutes, nil
}

// validateSeconds проверяет секунды "SS" (или "SS.ffffff" из TIME PostgreSQL)
func validateSeconds(s string) error {
	whole, frac, hasFrac := strings.Cut(s, ".")
	if len(whole) != 2 || !isDigits(whole) || (hasFrac && (frac == "" || !isDigits(frac))) {
		return ErrInvalidFormat
	}
	if seconds, _ := strconv.Atoi(whole); seconds >= 60 {
		return fmt.Errorf("%w: %s seconds", ErrOutOfRange, whole)
	}
	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат времени
func (t TimeString) Validate() error {
	_, err := parseMinutes(string(t))
	return err
}

// Minutes возвращает количество минут от начала дня (0 для невалидного значения)
func (t TimeString) Minutes() int {
	m, err := parseMinutes(string(t))
	if err != nil {
		return 0
	}
	return m
}

// AddMinutes прибавляет минуты. Результат после 24:00 - ошибка
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := parseMinutes(string(t))
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(current + minutes)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// Equal возвращает true, если время совпадает
func (t TimeString) Equal(other TimeString) bool {
	return t.Minutes() == other.Minutes()
}

// MinutesUntil возвращает количество минут от t до other (может быть отрицательным)
func (t TimeString) MinutesUntil(other TimeString) int {
	return other.Minutes() - t.Minutes()
}

// On возвращает момент времени на указанную дату в заданной локации.
// Время строится по часам на стене, поэтому в дни перехода на летнее/зимнее время
// "09:00" остается 09:00. "24:00" - полночь следующего дня
func (t TimeString) On(date time.Time, loc *time.Location) time.Time {
	m := t.Minutes()
	if m == minutesPerDay {
		return time.Date(date.Year(), date.Month(), date.Day()+1, 0, 0, 0, 0, loc)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), m/minutesPerHour, m%minutesPerHour, 0, 0, loc)
}

// Scan реализует sql.Scanner (TIME из PostgreSQL приходит как "HH:MM:SS")
func (t *TimeString) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidFormat, value)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// UnmarshalJSON парсит и валидирует "HH:MM"
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*t = ""
		return nil
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
