package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// Request модели

// CancelReservationRequest запрос на отмену бронирования клиентом
type CancelReservationRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateDepositRequest запрос на смену статуса залога (empreinte bancaire)
type UpdateDepositRequest struct {
	Status  string  `json:"status"`
	HoldRef *string `json:"holdRef,omitempty"`
}

// ListReservationsRequest фильтр списка бронирований
type ListReservationsRequest struct {
	SpaceID *int64     `json:"spaceId,omitempty"`
	Status  *string    `json:"status,omitempty"`
	From    *time.Time `json:"from,omitempty"`
	To      *time.Time `json:"to,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		SpaceID: r.SpaceID,
		From:    r.From,
		To:      r.To,
	}

	if r.Status != nil {
		status := domain.ReservationStatus(*r.Status)
		if !status.IsValid() {
			return filter, fmt.Errorf("unknown status %q", *r.Status)
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// CustomerResponse контактные данные клиента
type CustomerResponse struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone,omitempty"`
	Company *string `json:"company,omitempty"`
}

// AmountsResponse суммы бронирования в центах
type AmountsResponse struct {
	SubtotalCents int64 `json:"subtotalCents"`
	DiscountCents int64 `json:"discountCents"`
	NetCents      int64 `json:"netCents"`
	VATCents      int64 `json:"vatCents"`
	TotalCents    int64 `json:"totalCents"`
}

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID             int64            `json:"id"`
	Reference      string           `json:"reference"`
	SpaceID        int64            `json:"spaceId"`
	Type           string           `json:"type"`
	StartAt        time.Time        `json:"startAt"`
	EndAt          time.Time        `json:"endAt"`
	People         int              `json:"people"`
	Customer       CustomerResponse `json:"customer"`
	Amounts        AmountsResponse  `json:"amounts"`
	VATRatePercent float64          `json:"vatRatePercent"`
	PromoCode      *string          `json:"promoCode,omitempty"`
	Status         string           `json:"status"`
	DepositStatus  string           `json:"depositStatus"`
	DepositCents   int64            `json:"depositCents"`
	DepositHoldRef *string          `json:"depositHoldRef,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
	CancelledAt    *time.Time       `json:"cancelledAt,omitempty"`
	CancelReason   *string          `json:"cancelReason,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainAmounts конвертирует суммы в DTO
func FromDomainAmounts(a domain.Amounts) AmountsResponse {
	return AmountsResponse{
		SubtotalCents: a.SubtotalCents,
		DiscountCents: a.DiscountCents,
		NetCents:      a.NetCents,
		VATCents:      a.VATCents,
		TotalCents:    a.TotalCents,
	}
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:        r.ID,
		Reference: r.Reference,
		SpaceID:   r.SpaceID,
		Type:      string(r.Type),
		StartAt:   r.StartAt,
		EndAt:     r.EndAt,
		People:    r.People,
		Customer: CustomerResponse{
			Name:    r.Customer.Name,
			Email:   r.Customer.Email,
			Phone:   r.Customer.Phone,
			Company: r.Customer.Company,
		},
		Amounts:        FromDomainAmounts(r.Amounts),
		VATRatePercent: r.VATRatePercent,
		PromoCode:      r.PromoCode,
		Status:         string(r.Status),
		DepositStatus:  string(r.DepositStatus),
		DepositCents:   r.DepositCents,
		DepositHoldRef: r.DepositHoldRef,
		Notes:          r.Notes,
		CancelledAt:    r.CancelledAt,
		CancelReason:   r.CancelReason,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	result := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		result = append(result, *FromDomainReservation(r))
	}
	return &ReservationListResponse{Reservations: result}
}
