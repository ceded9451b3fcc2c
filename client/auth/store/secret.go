package store

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/scy"
	_ "github.com/viant/scy/kms/blowfish"
)

// DefaultSecretKey is the scy blowfish key used when none is configured.
const DefaultSecretKey = "blowfish://default"

// SecretStore persists the session encrypted at rest with scy.
type SecretStore struct {
	mu       sync.RWMutex
	resource *scy.Resource
	secrets  *scy.Service
	fs       afs.Service
}

// NewSecretStore creates a store encrypting the session at URL with the given scy key.
func NewSecretStore(URL, key string) *SecretStore {
	if key == "" {
		key = DefaultSecretKey
	}
	return &SecretStore{
		resource: scy.NewResource(reflect.TypeOf(Session{}), URL, key),
		secrets:  scy.New(),
		fs:       afs.New(),
	}
}

func (s *SecretStore) Save(ctx context.Context, accessToken, refreshToken string) error {
	session, err := NewSession(accessToken, refreshToken)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err = s.secrets.Store(ctx, scy.NewSecret(session, s.resource)); err != nil {
		return fmt.Errorf("failed to store secret session %v: %w", s.resource.URL, err)
	}
	return nil
}

func (s *SecretStore) Read(ctx context.Context) (*Session, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	exists, err := s.fs.Exists(ctx, s.resource.URL)
	if err != nil || !exists {
		return nil, false, err
	}
	secret, err := s.secrets.Load(ctx, s.resource)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load secret session %v: %w", s.resource.URL, err)
	}
	var session *Session
	switch actual := secret.Target.(type) {
	case *Session:
		session = actual
	case Session:
		session = &actual
	default:
		return nil, false, fmt.Errorf("unexpected secret session type: %T", secret.Target)
	}
	if session.AccessToken == "" || session.RefreshToken == "" {
		return nil, false, nil
	}
	return session, true, nil
}

func (s *SecretStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exists, err := s.fs.Exists(ctx, s.resource.URL)
	if err != nil || !exists {
		return err
	}
	return s.fs.Delete(ctx, s.resource.URL)
}
