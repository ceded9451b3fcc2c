package store

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// ErrIncompleteSession is returned when a session is saved without both tokens.
var ErrIncompleteSession = errors.New("session requires both access and refresh token")

// Session is the persisted pair of credentials.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// NewSession validates and returns a session
func NewSession(accessToken, refreshToken string) (*Session, error) {
	if accessToken == "" || refreshToken == "" {
		return nil, ErrIncompleteSession
	}
	return &Session{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Expiry returns access token expiry taken from the JWT exp claim. The token
// signature is not verified; the backend remains the authority.
func (s *Session) Expiry() time.Time {
	return tokenExpiry(s.AccessToken)
}

// Token returns the session as an oauth2 token
func (s *Session) Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  s.AccessToken,
		TokenType:    "Bearer",
		RefreshToken: s.RefreshToken,
		Expiry:       s.Expiry(),
	}
}

func tokenExpiry(token string) time.Time {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
