package impl

import (
	"context"
	"log/slog"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// donorService implements the DonorUsecase interface.
type donorService struct {
	donorRepo repository.DonorRepository
	logger    *slog.Logger
}

// DonorServiceParams holds dependencies for donorService, injected by Fx.
type DonorServiceParams struct {
	fx.In

	DonorRepo repository.DonorRepository
	Logger    *slog.Logger
}

// NewDonorService is the constructor for donorService.
func NewDonorService(params DonorServiceParams) usecase.DonorUsecase {
	return &donorService{
		donorRepo: params.DonorRepo,
		logger:    params.Logger,
	}
}

func (srv *donorService) Create(ctx context.Context, input usecase.DonorInput) (*entity.Donor, error) {
	if input.BloodType != "" && !input.BloodType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown blood type")
	}

	donor := &entity.Donor{
		AccountID:   input.AccountID,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		DateOfBirth: input.DateOfBirth,
		Gender:      input.Gender,
		BloodType:   input.BloodType,
		Contact:     input.Contact,
		Eligibility: input.Eligibility,
	}

	if err := srv.donorRepo.Create(ctx, donor); err != nil {
		srv.logger.Warn("Failed to create donor", slog.Any("error", err))

		return nil, err
	}

	return donor, nil
}

func (srv *donorService) Get(ctx context.Context, id uuid.UUID) (*entity.Donor, error) {
	donor, err := srv.donorRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDonorNotFound) {
			return nil, domainerrors.ErrDonorNotFound
		}

		return nil, err
	}

	return donor, nil
}

func (srv *donorService) List(ctx context.Context) ([]*entity.Donor, error) {
	return srv.donorRepo.FindAll(ctx)
}

func (srv *donorService) Update(ctx context.Context, id uuid.UUID, input usecase.DonorInput) (*entity.Donor, error) {
	if input.BloodType != "" && !input.BloodType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown blood type")
	}

	donor := &entity.Donor{
		ID:          id,
		AccountID:   input.AccountID,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		DateOfBirth: input.DateOfBirth,
		Gender:      input.Gender,
		BloodType:   input.BloodType,
		Contact:     input.Contact,
		Eligibility: input.Eligibility,
	}

	if err := srv.donorRepo.Update(ctx, donor); err != nil {
		if errors.Is(err, repository.ErrDonorNotFound) {
			return nil, domainerrors.ErrDonorNotFound
		}

		return nil, err
	}

	return srv.Get(ctx, id)
}

func (srv *donorService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.donorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDonorNotFound) {
			return domainerrors.ErrDonorNotFound
		}

		return err
	}

	return nil
}
