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

type donorServiceFixtures struct {
	service   usecase.DonorUsecase
	donorRepo *mockRepo.MockDonorRepository
}

func createTestDonorService(t *testing.T) donorServiceFixtures {
	t.Helper()

	donorRepo := new(mockRepo.MockDonorRepository)
	service := NewDonorService(DonorServiceParams{
		DonorRepo: donorRepo,
		Logger:    slog.New(slog.DiscardHandler),
	})

	return donorServiceFixtures{
		service:   service,
		donorRepo: donorRepo,
	}
}

func TestDonorService_Create_Success(t *testing.T) {
	fx := createTestDonorService(t)
	ctx := context.Background()

	donorID := uuid.New()
	fx.donorRepo.On("Create", ctx, mock.AnythingOfType("*entity.Donor")).
		Run(func(args mock.Arguments) {
			donor := args.Get(1).(*entity.Donor)
			donor.ID = donorID
		}).
		Return(nil)

	donor, err := fx.service.Create(ctx, usecase.DonorInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		BloodType: entity.BloodTypeONeg,
	})
	require.NoError(t, err)
	assert.Equal(t, donorID, donor.ID)
	assert.Equal(t, entity.BloodTypeONeg, donor.BloodType)
	fx.donorRepo.AssertExpectations(t)
}

func TestDonorService_Create_RejectsUnknownBloodType(t *testing.T) {
	fx := createTestDonorService(t)

	donor, err := fx.service.Create(context.Background(), usecase.DonorInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		BloodType: "Z+",
	})
	require.Error(t, err)
	assert.Nil(t, donor)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.donorRepo.AssertNotCalled(t, "Create")
}

func TestDonorService_Get_NotFound(t *testing.T) {
	fx := createTestDonorService(t)
	ctx := context.Background()

	id := uuid.New()
	fx.donorRepo.On("FindByID", ctx, id).Return(nil, repository.ErrDonorNotFound)

	donor, err := fx.service.Get(ctx, id)
	require.Error(t, err)
	assert.Nil(t, donor)
	assert.ErrorIs(t, err, domainerrors.ErrDonorNotFound)
}

func TestDonorService_Update_ReloadsAfterWrite(t *testing.T) {
	fx := createTestDonorService(t)
	ctx := context.Background()

	id := uuid.New()
	fx.donorRepo.On("Update", ctx, mock.AnythingOfType("*entity.Donor")).Return(nil)
	fx.donorRepo.On("FindByID", ctx, id).Return(&entity.Donor{
		ID:        id,
		FirstName: "Ada",
		LastName:  "King",
	}, nil)

	donor, err := fx.service.Update(ctx, id, usecase.DonorInput{
		FirstName: "Ada",
		LastName:  "King",
	})
	require.NoError(t, err)
	assert.Equal(t, "King", donor.LastName)
	fx.donorRepo.AssertExpectations(t)
}

func TestDonorService_Delete_NotFound(t *testing.T) {
	fx := createTestDonorService(t)
	ctx := context.Background()

	id := uuid.New()
	fx.donorRepo.On("Delete", ctx, id).Return(repository.ErrDonorNotFound)

	err := fx.service.Delete(ctx, id)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDonorNotFound)
}
