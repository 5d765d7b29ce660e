package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/WashE-BookingService/internal/domain"
	"github.com/m04kA/WashE-BookingService/internal/infra/kvstore/memory"
)

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func newTestRepository() (*Repository, *memory.Store) {
	store := memory.NewStore()
	return NewRepository(store, nopLogger{}), store
}

func TestRepository_Session_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository()

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.Set(ctx, &domain.Session{UID: "demo-user-123", Email: "alice@example.com"}))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "demo-user-123", got.UID)
	assert.Equal(t, "alice@example.com", got.Email)

	require.NoError(t, repo.Clear(ctx))
	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRepository_Get_CorruptRecord(t *testing.T) {
	ctx := context.Background()
	repo, store := newTestRepository()

	require.NoError(t, store.Set(ctx, domain.SessionKey, "{broken"))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRepository_Theme_DefaultsToLight(t *testing.T) {
	ctx := context.Background()
	repo, store := newTestRepository()

	theme, err := repo.GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)

	// Неизвестное сохраненное значение тоже отдается как светлая тема
	require.NoError(t, store.Set(ctx, domain.ThemeKey, "solarized"))
	theme, err = repo.GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)
}

func TestRepository_Theme_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository()

	require.NoError(t, repo.SetTheme(ctx, domain.ThemeDark))

	theme, err := repo.GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)
}

func TestRepository_SetTheme_Invalid(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepository()

	err := repo.SetTheme(ctx, "sepia")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTheme)
}
