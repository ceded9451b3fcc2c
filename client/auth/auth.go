package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/edulearn/client/auth/flow"
	"github.com/viant/edulearn/client/auth/store"
	"github.com/viant/edulearn/schema"
	"go.uber.org/zap"
)

// ErrNotAuthenticated is returned by operations requiring a session when none is stored.
var ErrNotAuthenticated = errors.New("not authenticated")

// Profiler returns the profile of the authenticated user.
type Profiler interface {
	Me(ctx context.Context) (*schema.User, error)
}

// Authenticator binds the password flow to the session store
type Authenticator struct {
	store    store.Store
	flow     *flow.PasswordFlow
	profiler Profiler
	logger   *zap.SugaredLogger
}

// Option configures an Authenticator
type Option func(a *Authenticator)

// WithProfiler sets the profile source used by CurrentUser
func WithProfiler(profiler Profiler) Option {
	return func(a *Authenticator) {
		a.profiler = profiler
	}
}

// WithLogger sets logger
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(a *Authenticator) {
		a.logger = logger
	}
}

// Store returns the session store
func (a *Authenticator) Store() store.Store {
	return a.store
}

// Login exchanges credentials for a token pair and saves both tokens.
func (a *Authenticator) Login(ctx context.Context, email, password string) error {
	pair, err := a.flow.Token(ctx, &schema.Credentials{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err = a.store.Save(ctx, pair.Access, pair.Refresh); err != nil {
		return fmt.Errorf("login: failed to save session: %w", err)
	}
	a.logger.Infow("logged in", "email", email)
	return nil
}

// Register creates an account; it does not log the user in.
func (a *Authenticator) Register(ctx context.Context, registration *schema.Registration) (*schema.User, error) {
	user, err := a.flow.Register(ctx, registration)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return user, nil
}

// Logout clears the stored session. It is idempotent.
func (a *Authenticator) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	a.logger.Infow("logged out")
	return nil
}

// Authenticated reports whether an access token is stored. It does not
// contact the backend; use Verify for that.
func (a *Authenticator) Authenticated(ctx context.Context) (bool, error) {
	_, ok, err := a.store.Read(ctx)
	if err != nil {
		return false, err
	}
	return ok, nil
}

// Verify asks the backend whether the stored access token is still valid.
func (a *Authenticator) Verify(ctx context.Context) error {
	session, ok, err := a.store.Read(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotAuthenticated
	}
	return a.flow.Verify(ctx, session.AccessToken)
}

// CurrentUser returns the profile of the logged in user
func (a *Authenticator) CurrentUser(ctx context.Context) (*schema.User, error) {
	ok, err := a.Authenticated(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotAuthenticated
	}
	if a.profiler == nil {
		return nil, errors.New("current user: profiler was not configured")
	}
	return a.profiler.Me(ctx)
}

// NewAuthenticator creates an authenticator
func NewAuthenticator(aStore store.Store, aFlow *flow.PasswordFlow, options ...Option) *Authenticator {
	ret := &Authenticator{store: aStore, flow: aFlow, logger: zap.NewNop().Sugar()}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
