package mock

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var errTokenNotValid = errors.New("given token not valid for any token type")

type accessClaims struct {
	TokenType  string `json:"token_type"`
	UserID     int    `json:"user_id"`
	Generation int64  `json:"gen"`
	jwt.RegisteredClaims
}

// createAccessToken creates a signed access token for the account
func (s *Service) createAccessToken(anAccount *account) (string, error) {
	now := time.Now()
	claims := &accessClaims{
		TokenType:  "access",
		UserID:     anAccount.user.ID,
		Generation: s.generation.Load(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   anAccount.user.Email,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// createRefreshToken issues an opaque refresh token bound to email
func (s *Service) createRefreshToken(email string) string {
	token := uuid.NewString()
	s.refreshTokens.Put(token, email)
	return token
}

// parseAccessToken validates signature, expiry and generation
func (s *Service) parseAccessToken(token string) (*accessClaims, error) {
	claims := &accessClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errTokenNotValid, err)
	}
	if claims.TokenType != "access" || claims.Generation != s.generation.Load() {
		return nil, errTokenNotValid
	}
	return claims, nil
}
