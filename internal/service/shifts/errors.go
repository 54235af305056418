package shifts

import "errors"

var (
	// ErrShiftNotFound возвращается, когда смена не найдена
	ErrShiftNotFound = errors.New("shift not found")

	// ErrShiftOverlap возвращается, когда смена пересекается с другой сменой сотрудника
	ErrShiftOverlap = errors.New("shift overlaps another shift of the employee")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrEmployeeInactive возвращается при планировании деактивированного сотрудника
	ErrEmployeeInactive = errors.New("employee is inactive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
