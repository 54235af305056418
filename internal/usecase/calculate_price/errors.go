package calculate_price

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда пространство не найдено или неактивно
	ErrSpaceNotFound = errors.New("calculate_price: space not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("calculate_price: invalid input data")

	// ErrInvalidDate возвращается, когда дата в прошлом
	ErrInvalidDate = errors.New("calculate_price: invalid date")

	// ErrSpaceClosed возвращается, когда пространство закрыто в выбранный период
	ErrSpaceClosed = errors.New("calculate_price: space is closed on this date")

	// ErrOutsideOpeningHours возвращается, когда интервал выходит за часы работы
	ErrOutsideOpeningHours = errors.New("calculate_price: interval is outside opening hours")

	// ErrDurationTooShort возвращается, когда длительность меньше минимальной
	ErrDurationTooShort = errors.New("calculate_price: duration is too short")

	// ErrTooManyPeople возвращается, когда количество человек превышает вместимость
	ErrTooManyPeople = errors.New("calculate_price: too many people for this space")

	// ErrRateNotAvailable возвращается, когда пространство не предлагает выбранный тариф
	ErrRateNotAvailable = errors.New("calculate_price: rate is not available for this space")

	// ErrPromoCodeNotFound возвращается, когда промокод не найден
	ErrPromoCodeNotFound = errors.New("calculate_price: promo code not found")

	// ErrPromoCodeInvalid возвращается, когда промокод нельзя применить
	ErrPromoCodeInvalid = errors.New("calculate_price: promo code cannot be applied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("calculate_price: internal error")
)
