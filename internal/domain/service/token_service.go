package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidToken is the single failure value returned by Verify. Expired,
// forged and malformed tokens all map to it so the gate cannot leak which
// check failed.
var ErrInvalidToken = errors.New("invalid token")

// TokenClaims is the payload recovered from a successfully verified token.
type TokenClaims struct {
	AccountID uuid.UUID
	Email     string
}

// TokenService defines the interface for issuing and verifying the signed,
// time-bounded identity assertions carried by clients.
type TokenService interface {
	// Issue produces a signed token asserting the account's id and email,
	// expiring TokenDuration after issuance.
	Issue(accountID uuid.UUID, email string) (string, error)

	// Verify checks signature and expiry and returns the embedded claims,
	// or ErrInvalidToken for every failure mode. There is no revocation;
	// a token stays valid until it expires.
	Verify(token string) (*TokenClaims, error)

	// TokenDuration returns the configured token lifetime.
	TokenDuration() time.Duration
}
