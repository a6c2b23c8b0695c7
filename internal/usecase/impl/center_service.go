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

// centerService implements the CenterUsecase interface.
type centerService struct {
	centerRepo repository.CenterRepository
	logger     *slog.Logger
}

// CenterServiceParams holds dependencies for centerService, injected by Fx.
type CenterServiceParams struct {
	fx.In

	CenterRepo repository.CenterRepository
	Logger     *slog.Logger
}

// NewCenterService is the constructor for centerService.
func NewCenterService(params CenterServiceParams) usecase.CenterUsecase {
	return &centerService{
		centerRepo: params.CenterRepo,
		logger:     params.Logger,
	}
}

func (srv *centerService) Create(ctx context.Context, input usecase.CenterInput) (*entity.Center, error) {
	center := &entity.Center{
		CenterName:   input.CenterName,
		Address:      input.Address,
		Contact:      input.Contact,
		WorkingHours: input.WorkingHours,
	}

	if err := srv.centerRepo.Create(ctx, center); err != nil {
		srv.logger.Warn("Failed to create center", slog.Any("error", err))

		return nil, err
	}

	return center, nil
}

func (srv *centerService) Get(ctx context.Context, id uuid.UUID) (*entity.Center, error) {
	center, err := srv.centerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCenterNotFound) {
			return nil, domainerrors.ErrCenterNotFound
		}

		return nil, err
	}

	return center, nil
}

func (srv *centerService) List(ctx context.Context) ([]*entity.Center, error) {
	return srv.centerRepo.FindAll(ctx)
}

func (srv *centerService) Update(ctx context.Context, id uuid.UUID, input usecase.CenterInput) (*entity.Center, error) {
	center := &entity.Center{
		ID:           id,
		CenterName:   input.CenterName,
		Address:      input.Address,
		Contact:      input.Contact,
		WorkingHours: input.WorkingHours,
	}

	if err := srv.centerRepo.Update(ctx, center); err != nil {
		if errors.Is(err, repository.ErrCenterNotFound) {
			return nil, domainerrors.ErrCenterNotFound
		}

		return nil, err
	}

	return srv.Get(ctx, id)
}

func (srv *centerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.centerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCenterNotFound) {
			return domainerrors.ErrCenterNotFound
		}

		return err
	}

	return nil
}
