package authservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStub_SignIn_AnyNonEmptyCredentials(t *testing.T) {
	stub := NewStub("admin@wash-e.com", "admin123")

	identity, err := stub.SignIn(context.Background(), "alice@example.com", "anything")
	require.NoError(t, err)
	assert.Equal(t, "demo-user-123", identity.UID)
	assert.Equal(t, "alice@example.com", identity.Email)
}

func TestStub_SignIn_EmptyCredentials(t *testing.T) {
	stub := NewStub("admin@wash-e.com", "admin123")
	ctx := context.Background()

	_, err := stub.SignIn(ctx, "", "pw")
	assert.ErrorIs(t, err, ErrEmptyCredentials)

	_, err = stub.SignIn(ctx, "alice@example.com", "")
	assert.ErrorIs(t, err, ErrEmptyCredentials)
}

func TestStub_SignIn_AdminRequiresExactMatch(t *testing.T) {
	stub := NewStub("admin@wash-e.com", "admin123")
	ctx := context.Background()

	identity, err := stub.SignIn(ctx, "admin@wash-e.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin-user", identity.UID)

	identity, err = stub.SignIn(ctx, "admin@wash-e.com", "nope")
	require.NoError(t, err)
	assert.Equal(t, "demo-user-123", identity.UID)
}

func TestStub_SignInAnonymously(t *testing.T) {
	stub := NewStub("admin@wash-e.com", "admin123")

	identity, err := stub.SignInAnonymously(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "guest-demo-user", identity.UID)
	assert.Equal(t, "guest@wash-e.com", identity.Email)
}

func TestSanitizeProviderMessage(t *testing.T) {
	assert.Equal(t, "Error (something went wrong).",
		SanitizeProviderMessage("Firebase: Error (something went wrong)."))
	assert.Equal(t, "too-many-requests",
		SanitizeProviderMessage("auth/too-many-requests"))
	assert.Equal(t, "plain message", SanitizeProviderMessage("plain message"))
}
