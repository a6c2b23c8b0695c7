package auth

import (
	"testing"
	"time"

	"lifeline/config"
	"lifeline/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, secret string, ttl time.Duration) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = ttl

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_EmptySecretFails(t *testing.T) {
	cfg := &config.Config{}

	svc, err := NewJWTService(cfg)
	require.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", time.Hour)

	accountID := uuid.New()
	token, err := svc.Issue(accountID, "donor@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, "donor@example.com", claims.Email)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", 0)

	assert.Equal(t, time.Hour, svc.TokenDuration())
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", -time.Minute)

	token, err := svc.Issue(uuid.New(), "donor@example.com")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.ErrorIs(t, err, service.ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_WrongKey(t *testing.T) {
	issuer := newTestJWTService(t, "key-one", time.Hour)
	verifier := newTestJWTService(t, "key-two", time.Hour)

	token, err := issuer.Issue(uuid.New(), "donor@example.com")
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	require.ErrorIs(t, err, service.ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", time.Hour)

	token, err := svc.Issue(uuid.New(), "donor@example.com")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	claims, err := svc.Verify(tampered)
	require.ErrorIs(t, err, service.ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWTService_GarbageToken(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", time.Hour)

	for _, bad := range []string{"", "garbage", "a.b.c"} {
		claims, err := svc.Verify(bad)
		assert.ErrorIs(t, err, service.ErrInvalidToken)
		assert.Nil(t, claims)
	}
}
