package create_booking

import "errors"

var (
	// ErrInvalidBuilding возвращается, когда корпус отсутствует в каталоге
	ErrInvalidBuilding = errors.New("create_booking: unknown building")

	// ErrInvalidDay возвращается, когда день не является днём недели
	ErrInvalidDay = errors.New("create_booking: unknown day")

	// ErrInvalidTime возвращается, когда время отсутствует в каталоге слотов
	ErrInvalidTime = errors.New("create_booking: unknown time slot")

	// ErrInvalidMachines возвращается, когда количество машин вне диапазона 1-3
	ErrInvalidMachines = errors.New("create_booking: machines count out of range")

	// ErrCommentTooLong возвращается, когда комментарий длиннее 200 символов
	ErrCommentTooLong = errors.New("create_booking: comment is too long")

	// ErrSlotTaken возвращается, когда слот (корпус, день, время) уже занят владельцем
	ErrSlotTaken = errors.New("create_booking: slot already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
