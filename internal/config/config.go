// Package config resolves the edulearn settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAPIURL    = "http://127.0.0.1:8000/api/v1/"
	DefaultRedisAddr = "localhost:6379"
	DefaultRedisKey  = "edulearn:session"
	DefaultMockAddr  = "127.0.0.1:8000"
	DefaultLogLevel  = "info"
	DefaultTimeout   = 30 * time.Second
	DefaultAccessTTL = 5 * time.Minute

	sessionFile = ".edulearn/session.json"
)

// Config holds the client and mock backend settings
type Config struct {
	APIURL        string
	SessionStore  string
	RedisAddr     string
	RedisKey      string
	SecretKey     string
	LogLevel      string
	Timeout       time.Duration
	SharedRefresh bool

	MockAddr      string
	MockAccessTTL time.Duration
}

// Load reads envFile when it exists, then resolves every setting from the
// environment. Variables already set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %v: %w", envFile, err)
		}
	}
	timeout, err := durationOrDefault("EDULEARN_TIMEOUT", DefaultTimeout)
	if err != nil {
		return nil, err
	}
	accessTTL, err := durationOrDefault("EDULEARN_MOCK_ACCESS_TTL", DefaultAccessTTL)
	if err != nil {
		return nil, err
	}
	sharedRefresh, err := boolOrDefault("EDULEARN_SHARED_REFRESH", false)
	if err != nil {
		return nil, err
	}
	return &Config{
		APIURL:        stringOrDefault("EDULEARN_API_URL", DefaultAPIURL),
		SessionStore:  stringOrDefault("EDULEARN_SESSION_STORE", defaultSessionStore()),
		RedisAddr:     stringOrDefault("EDULEARN_REDIS_ADDR", DefaultRedisAddr),
		RedisKey:      stringOrDefault("EDULEARN_REDIS_KEY", DefaultRedisKey),
		SecretKey:     os.Getenv("EDULEARN_SECRET_KEY"),
		LogLevel:      stringOrDefault("EDULEARN_LOG_LEVEL", DefaultLogLevel),
		Timeout:       timeout,
		SharedRefresh: sharedRefresh,
		MockAddr:      stringOrDefault("EDULEARN_MOCK_ADDR", DefaultMockAddr),
		MockAccessTTL: accessTTL,
	}, nil
}

func defaultSessionStore() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), sessionFile)
	}
	return filepath.Join(home, sessionFile)
}

func stringOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func durationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %v: %w", key, err)
	}
	return duration, nil
}

func boolOrDefault(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	ret, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %v: %w", key, err)
	}
	return ret, nil
}
