package repository

import (
	"context"
	"errors"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrInventoryNotFound is returned when a blood inventory record is not found.
var ErrInventoryNotFound = errors.New("blood inventory not found")

// InventoryRepository defines the standard operations for blood inventory persistence.
type InventoryRepository interface {
	Create(ctx context.Context, inventory *entity.BloodInventory) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BloodInventory, error)
	FindAll(ctx context.Context) ([]*entity.BloodInventory, error)
	Update(ctx context.Context, inventory *entity.BloodInventory) error
	Delete(ctx context.Context, id uuid.UUID) error
}
