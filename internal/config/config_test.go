package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"EDULEARN_API_URL", "EDULEARN_SESSION_STORE", "EDULEARN_TIMEOUT", "EDULEARN_LOG_LEVEL", "EDULEARN_SHARED_REFRESH"} {
		t.Setenv(key, "")
	}
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.False(t, cfg.SharedRefresh)
	assert.Contains(t, cfg.SessionStore, filepath.Join(".edulearn", "session.json"))
}

func TestLoad_EnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("EDULEARN_API_URL=http://edulearn.test/api/v1/\nEDULEARN_TIMEOUT=5s\nEDULEARN_LOG_LEVEL=debug\n"), 0o600))
	t.Setenv("EDULEARN_API_URL", "")
	t.Setenv("EDULEARN_TIMEOUT", "")
	t.Setenv("EDULEARN_LOG_LEVEL", "warn")
	os.Unsetenv("EDULEARN_API_URL")
	os.Unsetenv("EDULEARN_TIMEOUT")

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "http://edulearn.test/api/v1/", cfg.APIURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("EDULEARN_TIMEOUT", "soon")
	_, err := Load("")
	assert.Error(t, err)

	t.Setenv("EDULEARN_TIMEOUT", "")
	t.Setenv("EDULEARN_SHARED_REFRESH", "maybe")
	_, err = Load("")
	assert.Error(t, err)
}
