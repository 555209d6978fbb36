package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("APP_ENV", "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "assets/data/words.json", cfg.WordsJSONPath)
	assert.Equal(t, DriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, 20, cfg.Practice.SessionSize)
	assert.Equal(t, 3, cfg.Practice.DistractorCount)
	assert.Equal(t, 10, cfg.Practice.DailySize)
	assert.Equal(t, 2*time.Hour, cfg.Practice.SessionTTL)
	assert.Equal(t, 30*time.Second, cfg.DB.MaxConnLifetime)
	assert.False(t, cfg.Reminders.Enabled)

	_, err = cfg.Token()
	assert.ErrorIs(t, err, ErrMissingEnvironmentVariables)
	_, err = cfg.DB.DSN()
	assert.ErrorIs(t, err, ErrMissingEnvironmentVariables)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
env: production
timezone: Europe/Madrid
storage:
  driver: sqlite
  sqlite_path: /tmp/lq.db
practice:
  session_size: 10
  daily_size: 5
reminders:
  enabled: true
  cron: "30 18 * * *"
  per_second: 5
`)
	t.Setenv("TELEGRAM_API_TOKEN", "123:abc")
	t.Setenv("DATABASE_URL", "postgres://localhost/lexiquest")
	t.Setenv("APP_ENV", "")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/lq.db", cfg.Storage.SQLitePath)
	assert.Equal(t, 10, cfg.Practice.SessionSize)
	assert.Equal(t, 5, cfg.Practice.DailySize)
	assert.True(t, cfg.Reminders.Enabled)
	assert.Equal(t, "30 18 * * *", cfg.Reminders.Cron)
	assert.InDelta(t, 5.0, cfg.Reminders.PerSecond, 1e-9)

	token, err := cfg.Token()
	require.NoError(t, err)
	assert.Equal(t, "123:abc", token)

	dsn, err := cfg.DB.DSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/lexiquest", dsn)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Madrid", loc.String())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"session size too small", "practice:\n  session_size: 2\n"},
		{"session size too large", "practice:\n  session_size: 80\n"},
		{"unknown driver", "storage:\n  driver: mongo\n"},
		{"no distractors", "practice:\n  distractor_count: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
