package auth

import (
	"context"

	"github.com/m04kA/WashE-BookingService/internal/domain"
	"github.com/m04kA/WashE-BookingService/internal/integrations/authservice"
)

// Verifier сервис проверки учетных данных.
// Реализуется либо HTTP-клиентом внешнего провайдера, либо локальной
// заглушкой demo-режима; выбор делается явной конфигурацией при сборке.
type Verifier interface {
	SignIn(ctx context.Context, email, password string) (*authservice.Identity, error)
	SignInAnonymously(ctx context.Context) (*authservice.Identity, error)
	SignOut(ctx context.Context) error
}

// SessionRepository интерфейс репозитория текущей сессии
type SessionRepository interface {
	Get(ctx context.Context) (*domain.Session, error)
	Set(ctx context.Context, s *domain.Session) error
	Clear(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
