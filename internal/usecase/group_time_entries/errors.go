package group_time_entries

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном периоде
	ErrInvalidInput = errors.New("group_time_entries: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("group_time_entries: internal error")
)
