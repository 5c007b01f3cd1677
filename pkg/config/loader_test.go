package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()
	dir := t.TempDir()
	if yaml != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	}
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	// Empty values count as unset for viper.
	for _, key := range []string{"MONGODB_URI", "MONGODB_DATABASE", "HTTP_PORT", "LOG_LEVEL", "APP_NATS_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg, err := load(newViper(t, ""))

	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017/", cfg.Database.URI)
	assert.Equal(t, "medsys", cfg.Database.Name)
	assert.True(t, cfg.Database.EnsureIndexes)
	assert.Equal(t, 5000, cfg.HTTP.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.NATS.Enabled)
	assert.Equal(t, time.Hour, cfg.Session.Expiration)
}

func TestLoad_FileAndEnv(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://mongo:27017/")
	t.Setenv("APP_NATS_ENABLED", "true")

	cfg, err := load(newViper(t, `
database:
  name: clinica
  seed: true
http:
  port: 8080
  read_timeout: 5s
logging:
  format: console
`))

	require.NoError(t, err)
	assert.Equal(t, "mongodb://mongo:27017/", cfg.Database.URI)
	assert.Equal(t, "clinica", cfg.Database.Name)
	assert.True(t, cfg.Database.Seed)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.NATS.Enabled)
}

func TestLoad_InvalidPort(t *testing.T) {
	_, err := load(newViper(t, "http:\n  port: 70000\n"))

	assert.Error(t, err)
}
