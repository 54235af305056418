package pricingengine

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("pricingengine client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("pricingengine client: invalid response")

	// ErrUnsupported возвращается, когда движок не умеет считать запрошенный тариф
	ErrUnsupported = errors.New("pricingengine client: quote not supported")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что движок тарификации недоступен и следует использовать локальную формулу
	ErrServiceDegraded = errors.New("pricingengine unavailable: graceful degradation applied")
)
