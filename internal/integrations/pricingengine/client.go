package pricingengine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с внешним движком тарификации
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента движка тарификации
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Quote запрашивает авторитетную цену (HT) у движка тарификации
func (c *Client) Quote(ctx context.Context, quoteReq *QuoteRequest) (*QuoteResponse, error) {
	url := fmt.Sprintf("%s/v1/quotes", c.baseURL)

	body, err := json.Marshal(quoteReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnprocessableEntity:
		return nil, ErrUnsupported
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	// Парсим ответ
	var quote QuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if quote.AmountHT < 0 {
		return nil, fmt.Errorf("%w: negative amount %d", ErrInvalidResponse, quote.AmountHT)
	}

	return &quote, nil
}

// QuoteWithGracefulDegradation запрашивает цену с graceful degradation.
// Любая ошибка оборачивается в ErrServiceDegraded, что позволяет использовать локальную формулу
func (c *Client) QuoteWithGracefulDegradation(ctx context.Context, quoteReq *QuoteRequest) (*QuoteResponse, error) {
	c.log.Info("Requesting quote from pricing engine: space_id=%d, type=%s, people=%d",
		quoteReq.SpaceID, quoteReq.Type, quoteReq.People)

	quote, err := c.Quote(ctx, quoteReq)
	if err != nil {
		if errors.Is(err, ErrUnsupported) {
			c.log.Warn("Pricing engine does not support quote: space_id=%d, type=%s", quoteReq.SpaceID, quoteReq.Type)
		} else {
			// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
			c.log.Error("Pricing engine unavailable, applying graceful degradation for space_id=%d: %v", quoteReq.SpaceID, err)
		}
		return nil, fmt.Errorf("%w: space_id=%d, error=%v", ErrServiceDegraded, quoteReq.SpaceID, err)
	}

	c.log.Info("Pricing engine quote received: space_id=%d, amount_ht=%d", quoteReq.SpaceID, quote.AmountHT)
	return quote, nil
}
