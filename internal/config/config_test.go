package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[logs]
level = "info"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, "demo", cfg.Auth.Mode)
	assert.Equal(t, 3, cfg.Sync.IntervalSeconds)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[storage]
backend = "postgres"

[storage.postgres]
host = "db"
port = 5432
user = "washe"
password = "secret"
dbname = "washe"
sslmode = "disable"

[auth]
mode = "remote"
url = "http://auth:8081"
admin_email = "admin@wash-e.com"

[sync]
interval_seconds = 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "postgres", cfg.Storage.Backend)
	assert.Equal(t, 5, cfg.Sync.IntervalSeconds)
	assert.Equal(t,
		"host=db port=5432 user=washe password=secret dbname=washe sslmode=disable",
		cfg.Storage.Postgres.DSN())
}

func TestLoad_UnknownBackend(t *testing.T) {
	path := writeConfig(t, `
[storage]
backend = "cassandra"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RemoteAuthRequiresURL(t *testing.T) {
	path := writeConfig(t, `
[auth]
mode = "remote"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
