package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"katalog/pkg/logger"
)

func lookupFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, "katalog", cfg.ServiceName)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, logger.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.OTELHost)
	assert.False(t, cfg.OTELStdout)
	assert.Equal(t, 1.0, cfg.OTELProbability)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownGrace)
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(lookupFrom(map[string]string{
		"HTTP_ADDR":               ":9000",
		"LOG_LEVEL":               "debug",
		"OTEL_HOST":               "collector:4317",
		"OTEL_SAMPLE_PROBABILITY": "0.25",
		"CORS_ALLOWED_ORIGINS":    "http://a.test, http://b.test",
		"SHUTDOWN_GRACE":          "3s",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, logger.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "collector:4317", cfg.OTELHost)
	assert.Equal(t, 0.25, cfg.OTELProbability)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.ShutdownGrace)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := map[string]string{
		"LOG_LEVEL":               "loud",
		"OTEL_STDOUT":             "maybe",
		"OTEL_SAMPLE_PROBABILITY": "2",
		"SHUTDOWN_GRACE":          "soon",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			_, err := FromEnv(lookupFrom(map[string]string{key: value}))
			assert.ErrorContains(t, err, key)
		})
	}
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SERVICE_NAME=katalog-file\n"), 0o600))
	// godotenv never overrides variables that are already set.
	t.Setenv("SERVICE_NAME", "restored-after-test")
	require.NoError(t, os.Unsetenv("SERVICE_NAME"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "katalog-file", cfg.ServiceName)
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}
