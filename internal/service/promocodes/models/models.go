package models

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// Request модели

// PromoCodeRequest запрос на создание или обновление промокода
type PromoCodeRequest struct {
	Code             string     `json:"code"`
	Description      *string    `json:"description,omitempty"`
	PercentOff       *float64   `json:"percentOff,omitempty"`
	AmountOffCents   *int64     `json:"amountOffCents,omitempty"`
	MinAmountCents   int64      `json:"minAmountCents"`
	ValidFrom        *time.Time `json:"validFrom,omitempty"`
	ValidUntil       *time.Time `json:"validUntil,omitempty"`
	MaxUses          int        `json:"maxUses"`
	ReservationTypes []string   `json:"reservationTypes,omitempty"`
	IsActive         *bool      `json:"isActive,omitempty"`
}

// ToDomain конвертирует запрос в domain модель, код приводится к верхнему регистру
func (r *PromoCodeRequest) ToDomain() *domain.PromoCode {
	types := make([]domain.ReservationType, 0, len(r.ReservationTypes))
	for _, t := range r.ReservationTypes {
		types = append(types, domain.ReservationType(strings.ToLower(strings.TrimSpace(t))))
	}

	promo := &domain.PromoCode{
		Code:             NormalizeCode(r.Code),
		Description:      r.Description,
		PercentOff:       r.PercentOff,
		AmountOffCents:   r.AmountOffCents,
		MinAmountCents:   r.MinAmountCents,
		ValidFrom:        r.ValidFrom,
		ValidUntil:       r.ValidUntil,
		MaxUses:          r.MaxUses,
		ReservationTypes: types,
		IsActive:         true,
	}
	if r.IsActive != nil {
		promo.IsActive = *r.IsActive
	}

	return promo
}

// ValidatePromoCodeRequest публичная проверка промокода
type ValidatePromoCodeRequest struct {
	Code        string `json:"code"`
	Type        string `json:"type"`
	AmountCents int64  `json:"amountCents"`
}

// NormalizeCode приводит код к каноничному виду
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Response модели

// PromoCodeResponse ответ с данными промокода
type PromoCodeResponse struct {
	ID               int64      `json:"id"`
	Code             string     `json:"code"`
	Description      *string    `json:"description,omitempty"`
	PercentOff       *float64   `json:"percentOff,omitempty"`
	AmountOffCents   *int64     `json:"amountOffCents,omitempty"`
	MinAmountCents   int64      `json:"minAmountCents"`
	ValidFrom        *time.Time `json:"validFrom,omitempty"`
	ValidUntil       *time.Time `json:"validUntil,omitempty"`
	MaxUses          int        `json:"maxUses"`
	UsedCount        int        `json:"usedCount"`
	ReservationTypes []string   `json:"reservationTypes"`
	IsActive         bool       `json:"isActive"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// PromoCodeListResponse ответ со списком промокодов
type PromoCodeListResponse struct {
	PromoCodes []PromoCodeResponse `json:"promoCodes"`
}

// ValidatePromoCodeResponse результат публичной проверки промокода
type ValidatePromoCodeResponse struct {
	Valid         bool     `json:"valid"`
	Code          string   `json:"code"`
	DiscountCents int64    `json:"discountCents"`
	PercentOff    *float64 `json:"percentOff,omitempty"`
	Reason        *string  `json:"reason,omitempty"`
}

// Методы конвертации

// FromDomainPromoCode конвертирует domain модель в DTO
func FromDomainPromoCode(p *domain.PromoCode) *PromoCodeResponse {
	if p == nil {
		return nil
	}

	types := make([]string, 0, len(p.ReservationTypes))
	for _, t := range p.ReservationTypes {
		types = append(types, string(t))
	}

	return &PromoCodeResponse{
		ID:               p.ID,
		Code:             p.Code,
		Description:      p.Description,
		PercentOff:       p.PercentOff,
		AmountOffCents:   p.AmountOffCents,
		MinAmountCents:   p.MinAmountCents,
		ValidFrom:        p.ValidFrom,
		ValidUntil:       p.ValidUntil,
		MaxUses:          p.MaxUses,
		UsedCount:        p.UsedCount,
		ReservationTypes: types,
		IsActive:         p.IsActive,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// FromDomainPromoCodeList конвертирует список domain моделей в DTO
func FromDomainPromoCodeList(promos []*domain.PromoCode) *PromoCodeListResponse {
	result := make([]PromoCodeResponse, 0, len(promos))
	for _, p := range promos {
		result = append(result, *FromDomainPromoCode(p))
	}
	return &PromoCodeListResponse{PromoCodes: result}
}
