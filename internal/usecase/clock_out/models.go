package clock_out

import "github.com/m04kA/SMC-CoworkingService/internal/domain"

// Request модель запроса отметки
type Request struct {
	EmployeeID int64
}

// Response модель ответа с отметкой
type Response struct {
	Entry    *domain.TimeEntry
	Employee string
}
