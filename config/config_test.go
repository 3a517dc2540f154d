package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"BOT_TOKEN", "ADMIN_ID", "DATABASE_URI", "SETTINGS_FILE", "RUN_ADDRESS", "LOG_LEVEL", "WORKERS"} {
		// Setenv restores the original value on cleanup
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestConfig_Defaults(t *testing.T) {
	clearEnv(t)
	cfg := New()
	cfg.EnvFile = filepath.Join(t.TempDir(), "missing.env")

	require.NoError(t, cfg.LoadEnv())
	assert.Equal(t, ":8080", cfg.RunAddress)
	assert.Equal(t, "settings.json", cfg.SettingsFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 4, cfg.Workers)
	assert.Zero(t, cfg.AdminID)
}

func TestConfig_EnvironmentOverridesFlags(t *testing.T) {
	clearEnv(t)
	cfg := New()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"-a", ":9090", "--admin", "7", "-l", "debug"}))

	t.Setenv("RUN_ADDRESS", ":7070")
	t.Setenv("WORKERS", "8")
	cfg.EnvFile = ""

	require.NoError(t, cfg.LoadEnv())
	assert.Equal(t, ":7070", cfg.RunAddress)
	assert.Equal(t, int64(7), cfg.AdminID)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8, cfg.Workers)
}

func TestConfig_DotEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("BOT_TOKEN=123:abc\nADMIN_ID=1001\n"), 0o600))

	cfg := New()
	cfg.EnvFile = path
	require.NoError(t, cfg.LoadEnv())

	assert.Equal(t, "123:abc", cfg.BotToken)
	assert.Equal(t, int64(1001), cfg.AdminID)
}

func TestConfig_BadNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("ADMIN_ID", "boss")

	cfg := New()
	cfg.EnvFile = ""
	assert.Error(t, cfg.LoadEnv())
}
