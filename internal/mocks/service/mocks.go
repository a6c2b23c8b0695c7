// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"time"

	"lifeline/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a testify mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTokenService is a testify mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Issue(accountID uuid.UUID, email string) (string, error) {
	args := m.Called(accountID, email)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Verify(token string) (*service.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.TokenClaims), args.Error(1)
}

func (m *MockTokenService) TokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}
