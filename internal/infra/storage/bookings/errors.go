package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование с указанным id отсутствует в списке владельца
	ErrBookingNotFound = errors.New("bookings.repository: booking not found")

	// ErrSlotTaken возвращается, когда слот (корпус, день, время) уже занят этим владельцем
	ErrSlotTaken = errors.New("bookings.repository: slot already booked")

	// ErrStorage возвращается при ошибках обращения к key-value хранилищу
	ErrStorage = errors.New("bookings.repository: storage error")

	// ErrEncode возвращается при ошибке сериализации списка бронирований
	ErrEncode = errors.New("bookings.repository: failed to encode bookings")
)
