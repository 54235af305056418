package clock_in

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrEmployeeInactive возвращается, когда сотрудник деактивирован
	ErrEmployeeInactive = errors.New("employee is inactive")

	// ErrAlreadyClockedIn возвращается, когда у сотрудника уже есть открытая отметка
	ErrAlreadyClockedIn = errors.New("employee is already clocked in")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("clock in: internal error")
)
