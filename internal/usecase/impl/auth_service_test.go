package impl

import (
	"context"
	"log/slog"
	"testing"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	mockRepo "lifeline/internal/mocks/repository"
	mockService "lifeline/internal/mocks/service"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	accountRepo  *mockRepo.MockAccountRepository
	donorRepo    *mockRepo.MockDonorRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	t.Helper()

	accountRepo := new(mockRepo.MockAccountRepository)
	donorRepo := new(mockRepo.MockDonorRepository)
	hasher := new(mockService.MockPasswordHasher)
	tokenService := new(mockService.MockTokenService)

	txManager := &mockRepo.StubTransactionManager{
		Factory: &mockRepo.StubRepositoryFactory{
			AccountRepository: accountRepo,
			DonorRepository:   donorRepo,
		},
	}

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       slog.New(slog.DiscardHandler),
	})

	return authServiceFixtures{
		service:      service,
		accountRepo:  accountRepo,
		donorRepo:    donorRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAuthService_RegisterDonor_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "plaintext-pw").Return("$2a$10$hash", nil)

	accountID := uuid.New()
	fx.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(args mock.Arguments) {
			account := args.Get(1).(*entity.Account)
			account.ID = accountID
		}).
		Return(nil)
	fx.donorRepo.On("Create", ctx, mock.AnythingOfType("*entity.Donor")).Return(nil)

	output, err := fx.service.RegisterDonor(ctx, usecase.RegisterDonorInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "plaintext-pw",
	})
	require.NoError(t, err)
	require.NotNil(t, output)

	assert.Equal(t, accountID, output.Account.ID)
	assert.Equal(t, entity.RoleDonor, output.Account.Role)
	assert.Equal(t, "$2a$10$hash", output.Account.PasswordHash)
	assert.NotEqual(t, "plaintext-pw", output.Account.PasswordHash)

	fx.accountRepo.AssertExpectations(t)
	fx.donorRepo.AssertExpectations(t)
}

func TestAuthService_RegisterDonor_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "plaintext-pw").Return("$2a$10$hash", nil)
	fx.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).
		Return(domainerrors.ErrEmailTaken.WrapMessage("email already registered"))

	output, err := fx.service.RegisterDonor(ctx, usecase.RegisterDonorInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "plaintext-pw",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
	fx.donorRepo.AssertNotCalled(t, "Create")
}

func TestAuthService_RegisterDonor_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "plaintext-pw").Return("", errors.New("entropy exhausted"))

	output, err := fx.service.RegisterDonor(ctx, usecase.RegisterDonorInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "plaintext-pw",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	fx.accountRepo.AssertNotCalled(t, "Create")
}

func TestAuthService_RegisterAdmin_DefaultsToAdminRole(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.On("Hash", "plaintext-pw").Return("$2a$10$hash", nil)
	fx.accountRepo.On("Create", ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	output, err := fx.service.RegisterAdmin(ctx, usecase.RegisterAdminInput{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Password:  "plaintext-pw",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, output.Account.Role)
}

func TestAuthService_RegisterAdmin_RejectsDonorRole(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.RegisterAdmin(context.Background(), usecase.RegisterAdminInput{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Password:  "plaintext-pw",
		Role:      entity.RoleDonor,
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.hasher.AssertNotCalled(t, "Hash")
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	accountID := uuid.New()
	fx.accountRepo.On("FindByEmail", ctx, "ada@example.com").Return(&entity.Account{
		ID:           accountID,
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         entity.RoleDonor,
	}, nil)
	fx.hasher.On("Check", "plaintext-pw", "$2a$10$hash").Return(true)
	fx.tokenService.On("Issue", accountID, "ada@example.com").Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "ada@example.com",
		Password: "plaintext-pw",
	}, entity.RoleDonor)
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.Token)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	}, entity.RoleDonor)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	fx.hasher.AssertNotCalled(t, "Check")
}

func TestAuthService_Login_RoleMismatchLooksLikeNotFound(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByEmail", ctx, "ada@example.com").Return(&entity.Account{
		ID:           uuid.New(),
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         entity.RoleDonor,
	}, nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "ada@example.com",
		Password: "plaintext-pw",
	}, entity.RoleAdmin)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	fx.hasher.AssertNotCalled(t, "Check")
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.accountRepo.On("FindByEmail", ctx, "ada@example.com").Return(&entity.Account{
		ID:           uuid.New(),
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$hash",
		Role:         entity.RoleDonor,
	}, nil)
	fx.hasher.On("Check", "wrong-pw", "$2a$10$hash").Return(false)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "ada@example.com",
		Password: "wrong-pw",
	}, entity.RoleDonor)
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	fx.tokenService.AssertNotCalled(t, "Issue")
}
