// Package session persists the current-session record and the theme
// preference under their well-known storage keys.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m04kA/WashE-BookingService/internal/domain"
)

// KVStore контракт key-value хранилища (совпадает с kvstore.Store)
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Repository репозиторий текущей сессии и настроек
type Repository struct {
	store KVStore
	log   Logger
}

// NewRepository создает новый экземпляр репозитория сессии
func NewRepository(store KVStore, log Logger) *Repository {
	return &Repository{store: store, log: log}
}

// Get возвращает сохраненную сессию или nil, если её нет.
// Повреждённая запись трактуется как отсутствие сессии и логируется.
func (r *Repository) Get(ctx context.Context) (*domain.Session, error) {
	raw, ok, err := r.store.Get(ctx, domain.SessionKey)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - get key: %v", ErrStorage, err)
	}
	if !ok {
		return nil, nil
	}

	var s domain.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		r.log.Warn("Get: corrupt session record, treating as signed out: %v", err)
		return nil, nil
	}

	return &s, nil
}

// Set перезаписывает текущую сессию
func (r *Repository) Set(ctx context.Context, s *domain.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: Set - marshal session: %v", ErrEncode, err)
	}

	if err := r.store.Set(ctx, domain.SessionKey, string(raw)); err != nil {
		return fmt.Errorf("%w: Set - set key: %v", ErrStorage, err)
	}
	return nil
}

// Clear удаляет текущую сессию
func (r *Repository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, domain.SessionKey); err != nil {
		return fmt.Errorf("%w: Clear - delete key: %v", ErrStorage, err)
	}
	return nil
}

// GetTheme возвращает сохраненную тему. Отсутствие и некорректное значение
// трактуются как тема по умолчанию (light).
func (r *Repository) GetTheme(ctx context.Context) (string, error) {
	raw, ok, err := r.store.Get(ctx, domain.ThemeKey)
	if err != nil {
		return "", fmt.Errorf("%w: GetTheme - get key: %v", ErrStorage, err)
	}
	if !ok || !domain.IsValidTheme(raw) {
		return domain.ThemeLight, nil
	}
	return raw, nil
}

// SetTheme сохраняет тему
func (r *Repository) SetTheme(ctx context.Context, theme string) error {
	if !domain.IsValidTheme(theme) {
		return ErrInvalidTheme
	}
	if err := r.store.Set(ctx, domain.ThemeKey, theme); err != nil {
		return fmt.Errorf("%w: SetTheme - set key: %v", ErrStorage, err)
	}
	return nil
}
