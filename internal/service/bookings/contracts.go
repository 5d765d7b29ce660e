package bookings

import (
	"context"

	"github.com/m04kA/WashE-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Load(ctx context.Context, ownerID string) ([]domain.Booking, error)
	Remove(ctx context.Context, ownerID string, bookingID string) error
	SetStatus(ctx context.Context, ownerID string, bookingID string, status domain.BookingStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
