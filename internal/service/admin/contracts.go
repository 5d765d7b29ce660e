package admin

import (
	"context"

	"github.com/m04kA/WashE-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Load(ctx context.Context, ownerID string) ([]domain.Booking, error)
	Remove(ctx context.Context, ownerID string, bookingID string) error
	SetStatus(ctx context.Context, ownerID string, bookingID string, status domain.BookingStatus) error
	SetAdminComment(ctx context.Context, ownerID string, bookingID string, comment string) error
}

// KeyEnumerator перечисление ключей хранилища по префиксу.
// Агрегатор не держит собственной копии данных: он находит списки владельцев
// по ключам и читает/пишет их через репозиторий.
type KeyEnumerator interface {
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
