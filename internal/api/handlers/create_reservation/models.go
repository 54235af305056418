package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	"github.com/m04kA/SMC-CoworkingService/internal/service/reservations/models"
	createReservation "github.com/m04kA/SMC-CoworkingService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-CoworkingService/pkg/types"
)

// CustomerRequest контактные данные клиента
type CustomerRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Company *string `json:"company,omitempty"`
}

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	SpaceID   int64           `json:"spaceId"`
	Type      string          `json:"type"`
	Date      string          `json:"date"`                // "2026-10-20"
	StartTime string          `json:"startTime,omitempty"` // "10:00", только hourly
	EndTime   string          `json:"endTime,omitempty"`
	People    int             `json:"people,omitempty"`
	PromoCode *string         `json:"promoCode,omitempty"`
	Customer  CustomerRequest `json:"customer"`
	Notes     *string         `json:"notes,omitempty"`
}

// CreateReservationResponse HTTP response model
type CreateReservationResponse struct {
	Reservation      *models.ReservationResponse `json:"reservation"`
	SpaceName        string                      `json:"spaceName"`
	Currency         string                      `json:"currency"`
	AppliedType      string                      `json:"appliedType"`
	DailyRateApplied bool                        `json:"dailyRateApplied"`
	Source           string                      `json:"priceSource"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	req := &createReservation.Request{
		SpaceID:   r.SpaceID,
		Type:      domain.ReservationType(r.Type),
		Date:      date,
		People:    r.People,
		PromoCode: r.PromoCode,
		Customer: domain.Customer{
			Name:    r.Customer.Name,
			Email:   r.Customer.Email,
			Phone:   r.Customer.Phone,
			Company: r.Customer.Company,
		},
		Notes: r.Notes,
	}
	if req.Type == "" {
		req.Type = domain.ReservationTypeHourly
	}

	if r.StartTime != "" {
		if req.StartTime, err = types.NewTimeStringFromString(r.StartTime); err != nil {
			return nil, err
		}
	}
	if r.EndTime != "" {
		if req.EndTime, err = types.NewTimeStringFromString(r.EndTime); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *CreateReservationResponse {
	return &CreateReservationResponse{
		Reservation:      models.FromDomainReservation(resp.Reservation),
		SpaceName:        resp.SpaceName,
		Currency:         resp.Currency,
		AppliedType:      string(resp.Quote.AppliedType),
		DailyRateApplied: resp.Quote.DailyRateApplied,
		Source:           string(resp.Quote.Source),
	}
}
