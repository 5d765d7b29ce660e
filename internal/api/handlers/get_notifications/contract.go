package get_notifications

import (
	"context"

	"github.com/m04kA/WashE-BookingService/internal/domain"
)

// StatusWatcher интерфейс наблюдателя за сменой статусов
type StatusWatcher interface {
	Watch(ctx context.Context, ownerID string) error
	Drain(ownerID string) []domain.StatusNotification
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
