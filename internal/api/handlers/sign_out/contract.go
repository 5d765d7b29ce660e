package sign_out

import "context"

// AuthService интерфейс сервиса аутентификации
type AuthService interface {
	SignOut(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
