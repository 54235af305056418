package pricingengine

import "time"

// QuoteRequest запрос на расчет цены во внешнем движке тарификации
type QuoteRequest struct {
	SpaceID         int64     `json:"space_id"`
	SpaceSlug       string    `json:"space_slug"`
	Type            string    `json:"type"`
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`
	People          int       `json:"people"`
	LocalAmountHT   int64     `json:"local_amount_ht_cents"`
}

// QuoteResponse ответ движка тарификации (сумма без НДС, в центах)
type QuoteResponse struct {
	AmountHT int64  `json:"amount_ht_cents"`
	Currency string `json:"currency"`
}

// ErrorResponse модель ошибки от движка тарификации
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
