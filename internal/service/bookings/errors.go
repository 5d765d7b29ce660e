package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено в списке владельца
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings service: internal error")
)
