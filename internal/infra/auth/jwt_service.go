// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"lifeline/config"
	"lifeline/internal/domain/service"
)

const defaultTokenTTL = time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// One HMAC key signs and verifies every token; the key is immutable after startup.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService. A missing secret is a
// configuration error and aborts startup; there is deliberately no built-in
// fallback key.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided (set JWT_SECRET)")
	}

	ttl := cfg.JWT.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &jwtService{
		secret: []byte(cfg.JWT.Secret),
		ttl:    ttl,
	}, nil
}

// Issue creates a signed token whose claims are exactly the account's id and
// email, plus issued-at/expiry metadata.
func (s *jwtService) Issue(accountID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   accountID.String(),
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Verify checks signature and expiry. Every failure mode collapses into
// service.ErrInvalidToken so callers cannot tell an expired token from a
// forged one.
func (s *jwtService) Verify(tokenString string) (*service.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, service.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, service.ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, service.ErrInvalidToken
	}
	accountID, err := uuid.Parse(sub)
	if err != nil {
		return nil, service.ErrInvalidToken
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, service.ErrInvalidToken
	}

	return &service.TokenClaims{
		AccountID: accountID,
		Email:     email,
	}, nil
}

// TokenDuration returns the configured token lifetime.
func (s *jwtService) TokenDuration() time.Duration {
	return s.ttl
}
