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

// centerRepository implements the repository.CenterRepository interface.
type centerRepository struct {
	db *gorm.DB
}

// NewCenterRepository is the constructor for centerRepository.
func NewCenterRepository(db *gorm.DB) repository.CenterRepository {
	return &centerRepository{db: db}
}

// Create persists a new donation center. The contact email is unique.
func (repo *centerRepository) Create(ctx context.Context, center *entity.Center) error {
	centerM := fromCenterDomain(center)

	if err := repo.db.WithContext(ctx).Create(centerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("center email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required center information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create center")
	}

	center.ID = centerM.ID
	center.CreatedAt = centerM.CreatedAt
	center.UpdatedAt = centerM.UpdatedAt

	return nil
}

// FindByID retrieves a single center by its unique ID.
func (repo *centerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Center, error) {
	var centerM model.CenterModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&centerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCenterNotFound
		}

		return nil, errors.Wrap(err, "failed to find center by id")
	}

	return toCenterDomain(&centerM), nil
}

// FindAll retrieves every donation center.
func (repo *centerRepository) FindAll(ctx context.Context) ([]*entity.Center, error) {
	var centerModels []*model.CenterModel

	if err := repo.db.WithContext(ctx).
		Order("center_name ASC").
		Find(&centerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list centers")
	}

	centers := make([]*entity.Center, 0, len(centerModels))
	for _, centerM := range centerModels {
		centers = append(centers, toCenterDomain(centerM))
	}

	return centers, nil
}

// Update modifies an existing center.
func (repo *centerRepository) Update(ctx context.Context, center *entity.Center) error {
	centerM := fromCenterDomain(center)

	result := repo.db.WithContext(ctx).
		Model(&model.CenterModel{}).
		Where("id = ?", center.ID).
		Updates(centerM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update center")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCenterNotFound
	}

	return nil
}

// Delete removes a center.
func (repo *centerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CenterModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete center")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCenterNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCenterDomain(data *model.CenterModel) *entity.Center {
	if data == nil {
		return nil
	}

	return &entity.Center{
		ID:         data.ID,
		CenterName: data.CenterName,
		Address: entity.Address{
			Street:     data.Street,
			City:       data.City,
			State:      data.State,
			PostalCode: data.PostalCode,
		},
		Contact: entity.ContactInfo{
			Phone: data.Phone,
			Email: data.Email,
		},
		WorkingHours: entity.WorkingHours{
			OpenTime:  data.OpenTime,
			CloseTime: data.CloseTime,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCenterDomain(center *entity.Center) *model.CenterModel {
	if center == nil {
		return nil
	}

	return &model.CenterModel{
		ID:         center.ID,
		CenterName: center.CenterName,
		Street:     center.Address.Street,
		City:       center.Address.City,
		State:      center.Address.State,
		PostalCode: center.Address.PostalCode,
		Phone:      center.Contact.Phone,
		Email:      center.Contact.Email,
		OpenTime:   center.WorkingHours.OpenTime,
		CloseTime:  center.WorkingHours.CloseTime,
		CreatedAt:  center.CreatedAt,
		UpdatedAt:  center.UpdatedAt,
	}
}
