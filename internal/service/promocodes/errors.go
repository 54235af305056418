package promocodes

import "errors"

var (
	// ErrPromoCodeNotFound возвращается, когда промокод не найден
	ErrPromoCodeNotFound = errors.New("promo code not found")

	// ErrCodeExists возвращается, когда промокод с таким кодом уже существует
	ErrCodeExists = errors.New("promo code already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
