package clock_in

import (
	"github.com/m04kA/SMC-CoworkingService/internal/service/timeentries/models"
	clockIn "github.com/m04kA/SMC-CoworkingService/internal/usecase/clock_in"
)

// ClockInRequest HTTP request model
type ClockInRequest struct {
	EmployeeID int64   `json:"employeeId"`
	Note       *string `json:"note,omitempty"`
}

// ClockResponse HTTP response model
type ClockResponse struct {
	Employee string                    `json:"employee"`
	Entry    *models.TimeEntryResponse `json:"entry"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ClockInRequest) ToUseCaseRequest() *clockIn.Request {
	return &clockIn.Request{
		EmployeeID: r.EmployeeID,
		Note:       r.Note,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *clockIn.Response) *ClockResponse {
	return &ClockResponse{
		Employee: resp.Employee,
		Entry:    models.FromDomainTimeEntry(resp.Entry),
	}
}
