package timeentry

import "errors"

var (
	// ErrTimeEntryNotFound возвращается, когда отметка не найдена
	ErrTimeEntryNotFound = errors.New("timeentry.repository: time entry not found")

	// ErrAlreadyRunning возвращается, когда у сотрудника уже есть открытая отметка
	ErrAlreadyRunning = errors.New("timeentry.repository: employee already has a running entry")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("timeentry.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("timeentry.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("timeentry.repository: failed to scan row")
)
