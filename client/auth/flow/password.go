package flow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/viant/edulearn/internal/conv"
	"github.com/viant/edulearn/schema"
)

const (
	TokenPath    = "users/token/"
	RefreshPath  = "users/token/refresh/"
	VerifyPath   = "users/token/verify/"
	RegisterPath = "users/"
)

var (
	// ErrInvalidCredentials is returned when the token endpoint rejects the credentials.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned when a token fails verification.
	ErrInvalidToken = errors.New("invalid token")
)

// PasswordFlow obtains tokens with email and password.
type PasswordFlow struct {
	baseURL string
	client  *http.Client
}

// Token exchanges credentials for a token pair
func (f *PasswordFlow) Token(ctx context.Context, credentials *schema.Credentials) (*schema.TokenPair, error) {
	resp, err := f.post(ctx, TokenPath, credentials)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusBadRequest:
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, schema.NewHTTPError(resp))
	default:
		return nil, schema.NewHTTPError(resp)
	}
	pair := &schema.TokenPair{}
	if err = json.NewDecoder(resp.Body).Decode(pair); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		return nil, errors.New("token response is missing access or refresh token")
	}
	return pair, nil
}

// Verify checks token validity with the backend
func (f *PasswordFlow) Verify(ctx context.Context, token string) error {
	resp, err := f.post(ctx, VerifyPath, map[string]string{"token": token})
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized, http.StatusBadRequest:
		return fmt.Errorf("%w: %w", ErrInvalidToken, schema.NewHTTPError(resp))
	}
	return schema.NewHTTPError(resp)
}

// Register creates a new account
func (f *PasswordFlow) Register(ctx context.Context, registration *schema.Registration) (*schema.User, error) {
	if registration.Password != registration.PasswordConfirm {
		return nil, errors.New("password fields didn't match")
	}
	resp, err := f.post(ctx, RegisterPath, registration)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, schema.NewHTTPError(resp)
	}
	user := &schema.User{}
	if err = json.NewDecoder(resp.Body).Decode(user); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return user, nil
}

func (f *PasswordFlow) post(ctx context.Context, path string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, conv.JoinURL(f.baseURL, path), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	return resp, nil
}

// NewPasswordFlow creates a password flow against the API rooted at baseURL
func NewPasswordFlow(baseURL string, client *http.Client) *PasswordFlow {
	if client == nil {
		client = http.DefaultClient
	}
	return &PasswordFlow{baseURL: baseURL, client: client}
}
