package spaces

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда пространство не найдено
	ErrSpaceNotFound = errors.New("space not found")

	// ErrSlugExists возвращается, когда slug уже занят другим пространством
	ErrSlugExists = errors.New("space slug already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidOpeningHours возвращается при некорректных часах работы
	ErrInvalidOpeningHours = errors.New("invalid opening hours")

	// ErrInvalidPriceTiers возвращается при пересекающихся или некорректных ценовых уровнях
	ErrInvalidPriceTiers = errors.New("invalid price tiers")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
