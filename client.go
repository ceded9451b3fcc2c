package edulearn

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/viant/edulearn/client"
	"github.com/viant/edulearn/client/auth"
	"github.com/viant/edulearn/client/auth/flow"
	"github.com/viant/edulearn/client/auth/store"
	"github.com/viant/edulearn/client/auth/transport"
	"github.com/viant/edulearn/internal/conv"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// ClientOptions defines options for configuring an EduLearn client.
type ClientOptions struct {
	URL           string        `yaml:"url" json:"url" short:"u" long:"url" description:"API base URL"`
	Store         string        `yaml:"store,omitempty" json:"store,omitempty" short:"s" long:"store" description:"session store URL: memory://, redis://host/key, secret://path or a file path"`
	SecretKey     string        `yaml:"secretKey,omitempty" json:"secretKey,omitempty" short:"k" long:"key" description:"secret store encryption key"`
	RedisAddr     string        `yaml:"redisAddr,omitempty" json:"redisAddr,omitempty" long:"redis" description:"default redis address"`
	RedisKey      string        `yaml:"redisKey,omitempty" json:"redisKey,omitempty" long:"redis-key" description:"default redis session key"`
	Timeout       time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty" short:"t" long:"timeout" description:"request timeout"`
	SharedRefresh bool          `yaml:"sharedRefresh,omitempty" json:"sharedRefresh,omitempty" long:"shared-refresh" description:"collapse concurrent token refreshes"`

	// SessionStore, when set, takes precedence over Store.
	SessionStore store.Store `yaml:"-" json:"-"`
	// Transport is the base transport; http.DefaultTransport when nil.
	Transport http.RoundTripper `yaml:"-" json:"-"`
	// OnSessionExpired is called after the session was cleared by a rejected refresh.
	OnSessionExpired func(ctx context.Context) `yaml:"-" json:"-"`
	Logger           *zap.SugaredLogger        `yaml:"-" json:"-"`
}

func (o *ClientOptions) Init() {
	if o.URL == "" {
		o.URL = client.DefaultBaseURL
	}
	if o.Timeout == 0 {
		o.Timeout = 30 * time.Second
	}
	if o.Transport == nil {
		o.Transport = http.DefaultTransport
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop().Sugar()
	}
}

// Client bundles the session, the gateway and the API client.
type Client struct {
	API     *client.Client
	Auth    *auth.Authenticator
	Gateway *transport.RoundTripper
	Store   store.Store
}

// NewClient creates an EduLearn client configured via ClientOptions.
func NewClient(ctx context.Context, options *ClientOptions) (*Client, error) {
	if options == nil {
		options = &ClientOptions{}
	}
	options.Init()
	aStore := options.SessionStore
	if aStore == nil {
		var err error
		storeOptions := []store.OpenOption{store.WithSecretKey(options.SecretKey)}
		if options.RedisAddr != "" {
			storeOptions = append(storeOptions, store.WithRedisAddr(options.RedisAddr))
		}
		if options.RedisKey != "" {
			storeOptions = append(storeOptions, store.WithRedisKey(options.RedisKey))
		}
		if aStore, err = store.Open(options.Store, storeOptions...); err != nil {
			return nil, fmt.Errorf("failed to open session store: %w", err)
		}
	}
	if _, _, err := aStore.Read(ctx); err != nil {
		return nil, fmt.Errorf("session store is not readable: %w", err)
	}

	gatewayOptions := []transport.Option{
		transport.WithStore(aStore),
		transport.WithTransport(options.Transport),
		transport.WithRefreshURL(conv.JoinURL(options.URL, flow.RefreshPath)),
		transport.WithLogger(options.Logger),
	}
	if options.OnSessionExpired != nil {
		gatewayOptions = append(gatewayOptions, transport.WithSessionExpiredHandler(options.OnSessionExpired))
	}
	if options.SharedRefresh {
		gatewayOptions = append(gatewayOptions, transport.WithSharedRefresh())
	}
	gateway, err := transport.New(gatewayOptions...)
	if err != nil {
		return nil, err
	}

	api := client.New(options.URL,
		client.WithTransport(gateway),
		client.WithTimeout(options.Timeout),
		client.WithLogger(options.Logger))
	// the password flow talks to the token endpoint directly, never through the gateway
	passwordFlow := flow.NewPasswordFlow(options.URL, &http.Client{Transport: options.Transport, Timeout: options.Timeout})
	return &Client{
		API:     api,
		Auth:    auth.NewAuthenticator(aStore, passwordFlow, auth.WithProfiler(api), auth.WithLogger(options.Logger)),
		Gateway: gateway,
		Store:   aStore,
	}, nil
}

// TokenSource exposes the stored session as an oauth2 token source. It does not
// refresh; an expired token is renewed by the next API call.
func (c *Client) TokenSource(ctx context.Context) oauth2.TokenSource {
	return store.TokenSource(ctx, c.Store)
}
