package bookingstore

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено в хранилище
	ErrBookingNotFound = errors.New("booking not found")

	// ErrRejectedByStore возвращается, когда хранилище отклонило создание
	// бронирования собственной валидацией (например, слот успели занять)
	ErrRejectedByStore = errors.New("booking rejected by store")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingstore client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingstore client: invalid response")
)
