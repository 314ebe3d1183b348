package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, ":9872", cfg.Addr())
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 15, cfg.Server.TimeoutSeconds)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, 2020, cfg.Calendar.FromYear)
	assert.Equal(t, 2030, cfg.Calendar.ToYear)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 8080
database:
  driver: mysql
  host: db.internal
`), 0o644))

	t.Setenv("DB_HOST", "db.override")
	t.Setenv("PORT", "8081")

	cfg := Load(path)
	assert.Equal(t, ":8081", cfg.Addr())
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "db.override", cfg.Database.Host)
}

func TestOpenGormDBUnknownDriver(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	cfg.Database.Driver = "oracle"

	_, err := cfg.OpenGormDB()
	assert.Error(t, err)
}
