package usecase

import (
	"context"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// InventoryInput defines the data accepted when recording or updating blood stock.
type InventoryInput struct {
	CenterID       uuid.UUID
	BloodType      entity.BloodType
	UnitsAvailable int
}

// InventoryUsecase defines the interface for blood inventory management.
type InventoryUsecase interface {
	Create(ctx context.Context, input InventoryInput) (*entity.BloodInventory, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.BloodInventory, error)
	List(ctx context.Context) ([]*entity.BloodInventory, error)
	Update(ctx context.Context, id uuid.UUID, input InventoryInput) (*entity.BloodInventory, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
