package bookings

import "context"

// KVStore контракт key-value хранилища, через которое персистятся списки бронирований.
// Совпадает с kvstore.Store; объявлен локально, чтобы репозиторий не зависел
// от конкретного бэкенда.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
