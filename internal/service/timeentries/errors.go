package timeentries

import "errors"

var (
	// ErrTimeEntryNotFound возвращается, когда отметка не найдена
	ErrTimeEntryNotFound = errors.New("time entry not found")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrAlreadyRunning возвращается при второй открытой отметке сотрудника
	ErrAlreadyRunning = errors.New("employee already has a running time entry")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
