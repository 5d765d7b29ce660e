package auth

import (
	"context"
	"fmt"

	"github.com/m04kA/WashE-BookingService/internal/domain"
	"github.com/m04kA/WashE-BookingService/internal/service/auth/models"
)

// Service сервис аутентификации.
// Проверку учетных данных выполняет внешний коллаборатор (Verifier);
// сервис сохраняет полученную идентичность как текущую сессию и помечает
// её административной при совпадении email с настроенным администратором.
type Service struct {
	verifier    Verifier
	sessionRepo SessionRepository
	adminEmail  string
	logger      Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(verifier Verifier, sessionRepo SessionRepository, adminEmail string, logger Logger) *Service {
	return &Service{
		verifier:    verifier,
		sessionRepo: sessionRepo,
		adminEmail:  adminEmail,
		logger:      logger,
	}
}

// SignIn проверяет учетные данные и сохраняет сессию.
// Ошибки проверки возвращаются как есть (сообщения уже очищены от
// провайдерских префиксов), пользователь может сразу повторить попытку.
func (s *Service) SignIn(ctx context.Context, email, password string) (*models.SessionResponse, error) {
	identity, err := s.verifier.SignIn(ctx, email, password)
	if err != nil {
		s.logger.Warn("SignIn: verification failed for email=%s: %v", email, err)
		return nil, err
	}

	session := &domain.Session{
		UID:     identity.UID,
		Email:   identity.Email,
		IsAdmin: identity.Email == s.adminEmail,
	}

	if err := s.sessionRepo.Set(ctx, session); err != nil {
		s.logger.Error("SignIn: failed to persist session for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: SignIn - persist session: %v", ErrInternal, err)
	}

	s.logger.Info("SignIn: email=%s signed in, admin=%t", session.Email, session.IsAdmin)
	return models.FromDomainSession(session), nil
}

// SignInAsGuest создает гостевую сессию
func (s *Service) SignInAsGuest(ctx context.Context) (*models.SessionResponse, error) {
	identity, err := s.verifier.SignInAnonymously(ctx)
	if err != nil {
		s.logger.Warn("SignInAsGuest: verification failed: %v", err)
		return nil, err
	}

	session := &domain.Session{
		UID:   identity.UID,
		Email: identity.Email,
	}

	if err := s.sessionRepo.Set(ctx, session); err != nil {
		s.logger.Error("SignInAsGuest: failed to persist session: %v", err)
		return nil, fmt.Errorf("%w: SignInAsGuest - persist session: %v", ErrInternal, err)
	}

	s.logger.Info("SignInAsGuest: guest session created for %s", session.Email)
	return models.FromDomainSession(session), nil
}

// SignOut завершает сессию у провайдера и удаляет её из хранилища
func (s *Service) SignOut(ctx context.Context) error {
	if err := s.verifier.SignOut(ctx); err != nil {
		// Провайдер недоступен - локальную сессию всё равно снимаем
		s.logger.Warn("SignOut: provider sign-out failed: %v", err)
	}

	if err := s.sessionRepo.Clear(ctx); err != nil {
		s.logger.Error("SignOut: failed to clear session: %v", err)
		return fmt.Errorf("%w: SignOut - clear session: %v", ErrInternal, err)
	}

	s.logger.Info("SignOut: session cleared")
	return nil
}

// Current возвращает восстановленную сессию.
// Административный флаг выводится заново из настроенного email.
func (s *Service) Current(ctx context.Context) (*models.SessionResponse, error) {
	session, err := s.sessionRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Current: failed to read session: %v", err)
		return nil, fmt.Errorf("%w: Current - read session: %v", ErrInternal, err)
	}
	if session == nil {
		return nil, ErrNotSignedIn
	}

	session.IsAdmin = session.Email == s.adminEmail
	return models.FromDomainSession(session), nil
}
