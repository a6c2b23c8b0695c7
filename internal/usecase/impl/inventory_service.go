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

// inventoryService implements the InventoryUsecase interface.
type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	logger        *slog.Logger
}

// InventoryServiceParams holds dependencies for inventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	InventoryRepo repository.InventoryRepository
	Logger        *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	return &inventoryService{
		inventoryRepo: params.InventoryRepo,
		logger:        params.Logger,
	}
}

func (srv *inventoryService) Create(ctx context.Context, input usecase.InventoryInput) (*entity.BloodInventory, error) {
	if !input.BloodType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown blood type")
	}
	if input.UnitsAvailable < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("units available must not be negative")
	}

	inventory := &entity.BloodInventory{
		CenterID:       input.CenterID,
		BloodType:      input.BloodType,
		UnitsAvailable: input.UnitsAvailable,
	}

	if err := srv.inventoryRepo.Create(ctx, inventory); err != nil {
		srv.logger.Warn("Failed to create blood inventory", slog.Any("error", err))

		return nil, err
	}

	return inventory, nil
}

func (srv *inventoryService) Get(ctx context.Context, id uuid.UUID) (*entity.BloodInventory, error) {
	inventory, err := srv.inventoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInventoryNotFound) {
			return nil, domainerrors.ErrInventoryNotFound
		}

		return nil, err
	}

	return inventory, nil
}

func (srv *inventoryService) List(ctx context.Context) ([]*entity.BloodInventory, error) {
	return srv.inventoryRepo.FindAll(ctx)
}

func (srv *inventoryService) Update(ctx context.Context, id uuid.UUID, input usecase.InventoryInput) (*entity.BloodInventory, error) {
	if !input.BloodType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown blood type")
	}
	if input.UnitsAvailable < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("units available must not be negative")
	}

	inventory := &entity.BloodInventory{
		ID:             id,
		CenterID:       input.CenterID,
		BloodType:      input.BloodType,
		UnitsAvailable: input.UnitsAvailable,
	}

	if err := srv.inventoryRepo.Update(ctx, inventory); err != nil {
		if errors.Is(err, repository.ErrInventoryNotFound) {
			return nil, domainerrors.ErrInventoryNotFound
		}

		return nil, err
	}

	return srv.Get(ctx, id)
}

func (srv *inventoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.inventoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrInventoryNotFound) {
			return domainerrors.ErrInventoryNotFound
		}

		return err
	}

	return nil
}
