package clock_out

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrNotClockedIn возвращается, когда у сотрудника нет открытой отметки
	ErrNotClockedIn = errors.New("employee is not clocked in")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("clock out: internal error")
)
