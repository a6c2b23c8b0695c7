package postgres

import (
	"context"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// inventoryRepository implements the repository.InventoryRepository interface.
type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository is the constructor for inventoryRepository.
func NewInventoryRepository(db *gorm.DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

// Create persists a new blood inventory record.
func (repo *inventoryRepository) Create(ctx context.Context, inventory *entity.BloodInventory) error {
	inventoryM := fromInventoryDomain(inventory)

	if err := repo.db.WithContext(ctx).Create(inventoryM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("units available must not be negative")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown center reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required inventory information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create blood inventory")
	}

	inventory.ID = inventoryM.ID
	inventory.CreatedAt = inventoryM.CreatedAt
	inventory.UpdatedAt = inventoryM.UpdatedAt

	return nil
}

// FindByID retrieves a single inventory record by its unique ID.
func (repo *inventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BloodInventory, error) {
	var inventoryM model.BloodInventoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&inventoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInventoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find blood inventory by id")
	}

	return toInventoryDomain(&inventoryM), nil
}

// FindAll retrieves every inventory record.
func (repo *inventoryRepository) FindAll(ctx context.Context) ([]*entity.BloodInventory, error) {
	var inventoryModels []*model.BloodInventoryModel

	if err := repo.db.WithContext(ctx).
		Order("updated_at DESC").
		Find(&inventoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list blood inventories")
	}

	inventories := make([]*entity.BloodInventory, 0, len(inventoryModels))
	for _, inventoryM := range inventoryModels {
		inventories = append(inventories, toInventoryDomain(inventoryM))
	}

	return inventories, nil
}

// Update modifies an existing inventory record.
func (repo *inventoryRepository) Update(ctx context.Context, inventory *entity.BloodInventory) error {
	inventoryM := fromInventoryDomain(inventory)

	result := repo.db.WithContext(ctx).
		Model(&model.BloodInventoryModel{}).
		Where("id = ?", inventory.ID).
		Updates(map[string]any{
			"center_id":       inventoryM.CenterID,
			"blood_type":      inventoryM.BloodType,
			"units_available": inventoryM.UnitsAvailable,
		})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("units available must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update blood inventory")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInventoryNotFound
	}

	return nil
}

// Delete removes an inventory record.
func (repo *inventoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BloodInventoryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete blood inventory")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInventoryNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toInventoryDomain(data *model.BloodInventoryModel) *entity.BloodInventory {
	if data == nil {
		return nil
	}

	return &entity.BloodInventory{
		ID:             data.ID,
		CenterID:       data.CenterID,
		BloodType:      entity.BloodType(data.BloodType),
		UnitsAvailable: data.UnitsAvailable,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromInventoryDomain(inventory *entity.BloodInventory) *model.BloodInventoryModel {
	if inventory == nil {
		return nil
	}

	return &model.BloodInventoryModel{
		ID:             inventory.ID,
		CenterID:       inventory.CenterID,
		BloodType:      inventory.BloodType.String(),
		UnitsAvailable: inventory.UnitsAvailable,
		CreatedAt:      inventory.CreatedAt,
		UpdatedAt:      inventory.UpdatedAt,
	}
}
