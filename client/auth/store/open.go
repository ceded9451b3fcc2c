package store

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	memoryScheme = "memory://"
	redisScheme  = "redis://"
	secretScheme = "secret://"
)

type openOptions struct {
	redisAddr string
	redisKey  string
	secretKey string
}

// OpenOption configures Open
type OpenOption func(o *openOptions)

// WithRedisAddr sets the address used when a redis URL has no host
func WithRedisAddr(addr string) OpenOption {
	return func(o *openOptions) {
		o.redisAddr = addr
	}
}

// WithRedisKey sets the hash key used when a redis URL has no path
func WithRedisKey(key string) OpenOption {
	return func(o *openOptions) {
		o.redisKey = key
	}
}

// WithSecretKey sets the scy key of secret URLs
func WithSecretKey(key string) OpenOption {
	return func(o *openOptions) {
		o.secretKey = key
	}
}

// Open returns the store addressed by URL:
//
//	memory://                     process local store
//	redis://host:port/key?ttl=24h session hash in Redis
//	secret://<location>           encrypted session file
//	<location>                    plain JSON session file (any afs URL or path)
func Open(URL string, options ...OpenOption) (Store, error) {
	opts := &openOptions{redisAddr: "localhost:6379", redisKey: "edulearn:session"}
	for _, opt := range options {
		opt(opts)
	}
	switch {
	case URL == "" || URL == "memory" || strings.HasPrefix(URL, memoryScheme):
		return NewMemoryStore(), nil
	case strings.HasPrefix(URL, redisScheme):
		return openRedis(URL, opts)
	case strings.HasPrefix(URL, secretScheme):
		location := strings.TrimPrefix(URL, secretScheme)
		if location == "" {
			return nil, fmt.Errorf("secret store location was empty: %v", URL)
		}
		return NewSecretStore(location, opts.secretKey), nil
	}
	return NewFileStore(URL), nil
}

func openRedis(URL string, opts *openOptions) (Store, error) {
	parsed, err := url.Parse(URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis store URL %v: %w", URL, err)
	}
	addr := parsed.Host
	if addr == "" {
		addr = opts.redisAddr
	}
	key := strings.TrimPrefix(parsed.Path, "/")
	if key == "" {
		key = opts.redisKey
	}
	var redisOptions []RedisOption
	if ttl := parsed.Query().Get("ttl"); ttl != "" {
		duration, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid redis store ttl %v: %w", ttl, err)
		}
		redisOptions = append(redisOptions, WithTTL(duration))
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	return NewRedisStore(client, key, redisOptions...), nil
}
