package impl

import (
	"context"
	"log/slog"
	"testing"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	mockRepo "lifeline/internal/mocks/repository"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	service     usecase.AdminUsecase
	accountRepo *mockRepo.MockAccountRepository
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	t.Helper()

	accountRepo := new(mockRepo.MockAccountRepository)
	service := NewAdminService(AdminServiceParams{
		AccountRepo: accountRepo,
		Logger:      slog.New(slog.DiscardHandler),
	})

	return adminServiceFixtures{
		service:     service,
		accountRepo: accountRepo,
	}
}

func TestAdminService_Update_Success(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	id := uuid.New()
	fx.accountRepo.On("FindByID", ctx, id).Return(&entity.Account{
		ID:        id,
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Role:      entity.RoleAdmin,
	}, nil).Once()
	fx.accountRepo.On("Update", ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
	fx.accountRepo.On("FindByID", ctx, id).Return(&entity.Account{
		ID:        id,
		FirstName: "Grace",
		LastName:  "Murray",
		Email:     "grace@example.com",
		Role:      entity.RoleAdmin,
	}, nil).Once()

	account, err := fx.service.Update(ctx, id, usecase.AdminInput{
		FirstName: "Grace",
		LastName:  "Murray",
		Email:     "grace@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Murray", account.LastName)
	assert.Equal(t, entity.RoleAdmin, account.Role)
	fx.accountRepo.AssertExpectations(t)
}

func TestAdminService_Update_DonorAccountInvisible(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	id := uuid.New()
	fx.accountRepo.On("FindByID", ctx, id).Return(&entity.Account{
		ID:   id,
		Role: entity.RoleDonor,
	}, nil)

	account, err := fx.service.Update(ctx, id, usecase.AdminInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	})
	require.Error(t, err)
	assert.Nil(t, account)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	fx.accountRepo.AssertNotCalled(t, "Update")
}

func TestAdminService_Update_RejectsDonorRole(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	id := uuid.New()
	fx.accountRepo.On("FindByID", ctx, id).Return(&entity.Account{
		ID:   id,
		Role: entity.RoleAdmin,
	}, nil)

	account, err := fx.service.Update(ctx, id, usecase.AdminInput{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
		Role:      entity.RoleDonor,
	})
	require.Error(t, err)
	assert.Nil(t, account)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.accountRepo.AssertNotCalled(t, "Update")
}

func TestAdminService_Delete_Success(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	id := uuid.New()
	fx.accountRepo.On("FindByID", ctx, id).Return(&entity.Account{
		ID:   id,
		Role: entity.RoleHospital,
	}, nil)
	fx.accountRepo.On("Delete", ctx, id).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, id))
	fx.accountRepo.AssertExpectations(t)
}

func TestAdminService_Delete_DonorAccountInvisible(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	id := uuid.New()
	fx.accountRepo.On("FindByID", ctx, id).Return(&entity.Account{
		ID:   id,
		Role: entity.RoleDonor,
	}, nil)

	err := fx.service.Delete(ctx, id)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	fx.accountRepo.AssertNotCalled(t, "Delete")
}

func TestAdminService_Delete_NotFound(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	id := uuid.New()
	fx.accountRepo.On("FindByID", ctx, id).Return(nil, repository.ErrAccountNotFound)

	err := fx.service.Delete(ctx, id)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}
