package clock_out

import (
	"github.com/m04kA/SMC-CoworkingService/internal/service/timeentries/models"
	clockOut "github.com/m04kA/SMC-CoworkingService/internal/usecase/clock_out"
)

// ClockOutRequest HTTP request model
type ClockOutRequest struct {
	EmployeeID int64 `json:"employeeId"`
}

// ClockResponse HTTP response model
type ClockResponse struct {
	Employee string                    `json:"employee"`
	Entry    *models.TimeEntryResponse `json:"entry"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ClockOutRequest) ToUseCaseRequest() *clockOut.Request {
	return &clockOut.Request{EmployeeID: r.EmployeeID}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *clockOut.Response) *ClockResponse {
	return &ClockResponse{
		Employee: resp.Employee,
		Entry:    models.FromDomainTimeEntry(resp.Entry),
	}
}
