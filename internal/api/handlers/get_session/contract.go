package get_session

import (
	"context"

	authModels "github.com/m04kA/WashE-BookingService/internal/service/auth/models"
)

// AuthService интерфейс сервиса аутентификации
type AuthService interface {
	Current(ctx context.Context) (*authModels.SessionResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
