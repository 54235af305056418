package create_reservation

import "errors"

var (
	// ErrSpaceNotFound возвращается, когда пространство не найдено
	ErrSpaceNotFound = errors.New("create_reservation: space not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("create_reservation: invalid date")

	// ErrInvalidTimeSlot возвращается, когда интервал не соответствует слотам пространства
	ErrInvalidTimeSlot = errors.New("create_reservation: invalid time slot")

	// ErrTooManyPeople возвращается, когда количество человек превышает вместимость
	ErrTooManyPeople = errors.New("create_reservation: too many people for this space")

	// ErrSlotNotAvailable возвращается, когда вместимость на интервале исчерпана
	ErrSlotNotAvailable = errors.New("create_reservation: slot not available")

	// ErrPromoCodeInvalid возвращается, когда промокод не найден или не применим
	ErrPromoCodeInvalid = errors.New("create_reservation: promo code cannot be applied")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
