package admin

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено у владельца
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidStatus возвращается при попытке установить неизвестный статус
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidFilter возвращается при некорректных значениях фильтра
	ErrInvalidFilter = errors.New("invalid filter value")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("admin service: internal error")
)
