package calculate_price

import (
	"time"

	"github.com/m04kA/SMC-CoworkingService/internal/domain"
	calculatePrice "github.com/m04kA/SMC-CoworkingService/internal/usecase/calculate_price"
	"github.com/m04kA/SMC-CoworkingService/pkg/types"
)

// CalculatePriceRequest HTTP request model
type CalculatePriceRequest struct {
	SpaceID    int64   `json:"spaceId"`
	Type       string  `json:"type"`                // hourly, daily, weekly, monthly
	Date       string  `json:"date"`                // "2026-10-20"
	StartTime  string  `json:"startTime,omitempty"` // "10:00", только hourly
	EndTime    string  `json:"endTime,omitempty"`   // "12:00", только hourly
	People     int     `json:"people,omitempty"`
	PromoCode  *string `json:"promoCode,omitempty"`
	IncludeVAT bool    `json:"includeVat"`
}

// EurosResponse суммы в евро
type EurosResponse struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Net      float64 `json:"net"`
	VAT      float64 `json:"vat"`
	Total    float64 `json:"total"`
}

// AmountsResponse суммы в центах
type AmountsResponse struct {
	SubtotalCents int64 `json:"subtotalCents"`
	DiscountCents int64 `json:"discountCents"`
	NetCents      int64 `json:"netCents"`
	VATCents      int64 `json:"vatCents"`
	TotalCents    int64 `json:"totalCents"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	SpaceID          int64           `json:"spaceId"`
	SpaceName        string          `json:"spaceName"`
	RequestedType    string          `json:"requestedType"`
	AppliedType      string          `json:"appliedType"`
	DailyRateApplied bool            `json:"dailyRateApplied"`
	DurationMinutes  int             `json:"durationMinutes"`
	People           int             `json:"people"`
	PeriodStart      string          `json:"periodStart"`
	PeriodEnd        string          `json:"periodEnd"`
	UnitPriceCents   int64           `json:"unitPriceCents"`
	Amounts          AmountsResponse `json:"amounts"`
	Euros            EurosResponse   `json:"euros"`
	VATRatePercent   float64         `json:"vatRatePercent"`
	IncludeVAT       bool            `json:"includeVat"`
	DisplayedCents   int64           `json:"displayedTotalCents"`
	Displayed        float64         `json:"displayedTotal"`
	PromoCode        *string         `json:"promoCode,omitempty"`
	Source           string          `json:"source"`
	Currency         string          `json:"currency"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CalculatePriceRequest) ToUseCaseRequest() (*calculatePrice.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	req := &calculatePrice.Request{
		SpaceID:    r.SpaceID,
		Type:       domain.ReservationType(r.Type),
		Date:       date,
		People:     r.People,
		PromoCode:  r.PromoCode,
		IncludeVAT: r.IncludeVAT,
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
func FromUseCaseResponse(resp *calculatePrice.Response) *QuoteResponse {
	q := resp.Quote
	a := q.Amounts

	return &QuoteResponse{
		SpaceID:          q.SpaceID,
		SpaceName:        resp.SpaceName,
		RequestedType:    string(q.RequestedType),
		AppliedType:      string(q.AppliedType),
		DailyRateApplied: q.DailyRateApplied,
		DurationMinutes:  q.DurationMinutes,
		People:           q.People,
		PeriodStart:      q.Period.Start.Format(time.RFC3339),
		PeriodEnd:        q.Period.End.Format(time.RFC3339),
		UnitPriceCents:   q.UnitPriceCents,
		Amounts: AmountsResponse{
			SubtotalCents: a.SubtotalCents,
			DiscountCents: a.DiscountCents,
			NetCents:      a.NetCents,
			VATCents:      a.VATCents,
			TotalCents:    a.TotalCents,
		},
		Euros: EurosResponse{
			Subtotal: domain.CentsToEuros(a.SubtotalCents),
			Discount: domain.CentsToEuros(a.DiscountCents),
			Net:      domain.CentsToEuros(a.NetCents),
			VAT:      domain.CentsToEuros(a.VATCents),
			Total:    domain.CentsToEuros(a.TotalCents),
		},
		VATRatePercent: q.VATRatePercent,
		IncludeVAT:     q.IncludeVAT,
		DisplayedCents: q.DisplayedTotalCents(),
		Displayed:      domain.CentsToEuros(q.DisplayedTotalCents()),
		PromoCode:      q.PromoCode,
		Source:         string(q.Source),
		Currency:       resp.Currency,
	}
}
