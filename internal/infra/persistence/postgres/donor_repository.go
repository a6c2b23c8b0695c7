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

// donorRepository implements the repository.DonorRepository interface.
type donorRepository struct {
	db *gorm.DB
}

// NewDonorRepository is the constructor for donorRepository.
func NewDonorRepository(db *gorm.DB) repository.DonorRepository {
	return &donorRepository{db: db}
}

// Create persists a new donor profile.
func (repo *donorRepository) Create(ctx context.Context, donor *entity.Donor) error {
	donorM := fromDonorDomain(donor)

	if err := repo.db.WithContext(ctx).Create(donorM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required donor information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create donor")
	}

	donor.ID = donorM.ID
	donor.CreatedAt = donorM.CreatedAt
	donor.UpdatedAt = donorM.UpdatedAt

	return nil
}

// FindByID retrieves a single donor by their unique ID.
func (repo *donorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Donor, error) {
	var donorM model.DonorModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&donorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDonorNotFound
		}

		return nil, errors.Wrap(err, "failed to find donor by id")
	}

	return toDonorDomain(&donorM), nil
}

// FindAll retrieves every donor profile.
func (repo *donorRepository) FindAll(ctx context.Context) ([]*entity.Donor, error) {
	var donorModels []*model.DonorModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&donorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list donors")
	}

	donors := make([]*entity.Donor, 0, len(donorModels))
	for _, donorM := range donorModels {
		donors = append(donors, toDonorDomain(donorM))
	}

	return donors, nil
}

// Update modifies an existing donor profile.
func (repo *donorRepository) Update(ctx context.Context, donor *entity.Donor) error {
	donorM := fromDonorDomain(donor)

	result := repo.db.WithContext(ctx).
		Model(&model.DonorModel{}).
		Where("id = ?", donor.ID).
		Updates(donorM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update donor")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDonorNotFound
	}

	return nil
}

// Delete removes a donor profile.
func (repo *donorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DonorModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete donor")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDonorNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toDonorDomain(data *model.DonorModel) *entity.Donor {
	if data == nil {
		return nil
	}

	return &entity.Donor{
		ID:          data.ID,
		AccountID:   data.AccountID,
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		DateOfBirth: data.DateOfBirth,
		Gender:      data.Gender,
		BloodType:   entity.BloodType(data.BloodType),
		Contact: entity.ContactInfo{
			Phone:      data.Phone,
			Email:      data.Email,
			Street:     data.Street,
			City:       data.City,
			State:      data.State,
			PostalCode: data.PostalCode,
		},
		Eligibility: entity.Eligibility{
			IsEligible:       data.IsEligible,
			NextEligibleDate: data.NextEligibleDate,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromDonorDomain(donor *entity.Donor) *model.DonorModel {
	if donor == nil {
		return nil
	}

	return &model.DonorModel{
		ID:               donor.ID,
		AccountID:        donor.AccountID,
		FirstName:        donor.FirstName,
		LastName:         donor.LastName,
		DateOfBirth:      donor.DateOfBirth,
		Gender:           donor.Gender,
		BloodType:        donor.BloodType.String(),
		Phone:            donor.Contact.Phone,
		Email:            donor.Contact.Email,
		Street:           donor.Contact.Street,
		City:             donor.Contact.City,
		State:            donor.Contact.State,
		PostalCode:       donor.Contact.PostalCode,
		IsEligible:       donor.Eligibility.IsEligible,
		NextEligibleDate: donor.Eligibility.NextEligibleDate,
		CreatedAt:        donor.CreatedAt,
		UpdatedAt:        donor.UpdatedAt,
	}
}
