package models

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
)

// Request модели

// SpaceRequest запрос на создание или обновление пространства
type SpaceRequest struct {
	Slug                    string              `json:"slug"`
	Name                    string              `json:"name"`
	Description             *string             `json:"description,omitempty"`
	Kind                    string              `json:"kind"`
	Capacity                int                 `json:"capacity"`
	Prices                  domain.Prices       `json:"prices"`
	PriceTiers              []domain.PriceTier  `json:"priceTiers,omitempty"`
	SlotStepMinutes         int                 `json:"slotStepMinutes"`
	MinDurationMinutes      int                 `json:"minDurationMinutes"`
	MinBookingNoticeMinutes int                 `json:"minBookingNoticeMinutes"`
	DepositCents            int64               `json:"depositCents"`
	OpeningHours            domain.OpeningHours `json:"openingHours"`
	IsActive                *bool               `json:"isActive,omitempty"`
}

// ToDomain конвертирует запрос в domain модель с примененными значениями по умолчанию
func (r *SpaceRequest) ToDomain() *domain.SpaceConfiguration {
	space := &domain.SpaceConfiguration{
		Slug:                    strings.ToLower(strings.TrimSpace(r.Slug)),
		Name:                    strings.TrimSpace(r.Name),
		Description:             r.Description,
		Kind:                    domain.SpaceKind(r.Kind),
		Capacity:                r.Capacity,
		Prices:                  r.Prices,
		PriceTiers:              r.PriceTiers,
		SlotStepMinutes:         r.SlotStepMinutes,
		MinDurationMinutes:      r.MinDurationMinutes,
		MinBookingNoticeMinutes: r.MinBookingNoticeMinutes,
		DepositCents:            r.DepositCents,
		OpeningHours:            r.OpeningHours,
		IsActive:                true,
	}

	if space.Kind == "" {
		space.Kind = domain.SpaceKindOpenSpace
	}
	if space.SlotStepMinutes == 0 {
		space.SlotStepMinutes = domain.DefaultSlotStepMinutes
	}
	if space.MinDurationMinutes == 0 {
		space.MinDurationMinutes = domain.DefaultMinDurationMinutes
	}
	if r.IsActive != nil {
		space.IsActive = *r.IsActive
	}
	if space.PriceTiers == nil {
		space.PriceTiers = []domain.PriceTier{}
	}

	return space
}

// Response модели

// SpaceResponse ответ с данными пространства
type SpaceResponse struct {
	ID                      int64               `json:"id"`
	Slug                    string              `json:"slug"`
	Name                    string              `json:"name"`
	Description             *string             `json:"description,omitempty"`
	Kind                    string              `json:"kind"`
	Capacity                int                 `json:"capacity"`
	Prices                  domain.Prices       `json:"prices"`
	PriceTiers              []domain.PriceTier  `json:"priceTiers"`
	SlotStepMinutes         int                 `json:"slotStepMinutes"`
	MinDurationMinutes      int                 `json:"minDurationMinutes"`
	MinBookingNoticeMinutes int                 `json:"minBookingNoticeMinutes"`
	DepositCents            int64               `json:"depositCents"`
	OpeningHours            domain.OpeningHours `json:"openingHours"`
	IsActive                bool                `json:"isActive"`
	CreatedAt               time.Time           `json:"createdAt"`
	UpdatedAt               time.Time           `json:"updatedAt"`
}

// SpaceListResponse ответ со списком пространств
type SpaceListResponse struct {
	Spaces []SpaceResponse `json:"spaces"`
}

// Методы конвертации

// FromDomainSpace конвертирует domain модель в DTO
func FromDomainSpace(s *domain.SpaceConfiguration) *SpaceResponse {
	if s == nil {
		return nil
	}

	tiers := s.PriceTiers
	if tiers == nil {
		tiers = []domain.PriceTier{}
	}

	return &SpaceResponse{
		ID:                      s.ID,
		Slug:                    s.Slug,
		Name:                    s.Name,
		Description:             s.Description,
		Kind:                    string(s.Kind),
		Capacity:                s.Capacity,
		Prices:                  s.Prices,
		PriceTiers:              tiers,
		SlotStepMinutes:         s.SlotStepMinutes,
		MinDurationMinutes:      s.MinDurationMinutes,
		MinBookingNoticeMinutes: s.MinBookingNoticeMinutes,
		DepositCents:            s.DepositCents,
		OpeningHours:            s.OpeningHours,
		IsActive:                s.IsActive,
		CreatedAt:               s.CreatedAt,
		UpdatedAt:               s.UpdatedAt,
	}
}

// FromDomainSpaceList конвертирует список domain моделей в DTO
func FromDomainSpaceList(spaces []*domain.SpaceConfiguration) *SpaceListResponse {
	result := make([]SpaceResponse, 0, len(spaces))
	for _, s := range spaces {
		result = append(result, *FromDomainSpace(s))
	}
	return &SpaceListResponse{Spaces: result}
}
