package delete_booking

import "context"

// BookingsService интерфейс сервиса бронирований
type BookingsService interface {
	Delete(ctx context.Context, ownerID string, bookingID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
