package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", "v1"))
	require.NoError(t, s.Set(ctx, "k", "v2"))

	got, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v2", got)

	require.NoError(t, s.Delete(ctx, "k"))
	_, ok, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Удаление отсутствующего ключа не является ошибкой
	require.NoError(t, s.Delete(ctx, "k"))
}

func TestStore_KeysByPrefix(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.Set(ctx, "bookings_alice@example.com", "[]"))
	require.NoError(t, s.Set(ctx, "bookings_bob@example.com", "[]"))
	require.NoError(t, s.Set(ctx, "washe_session", "{}"))

	keys, err := s.Keys(ctx, "bookings_")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"bookings_alice@example.com",
		"bookings_bob@example.com",
	}, keys)

	keys, err = s.Keys(ctx, "nope_")
	require.NoError(t, err)
	assert.Empty(t, keys)
}
