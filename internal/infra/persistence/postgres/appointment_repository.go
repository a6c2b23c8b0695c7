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

// appointmentRepository implements the repository.AppointmentRepository interface.
type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository is the constructor for appointmentRepository.
func NewAppointmentRepository(db *gorm.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

// Create persists a new appointment.
func (repo *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	appointmentM := fromAppointmentDomain(appointment)

	if err := repo.db.WithContext(ctx).Create(appointmentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown donor or center reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required appointment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create appointment")
	}

	appointment.ID = appointmentM.ID
	appointment.CreatedAt = appointmentM.CreatedAt
	appointment.UpdatedAt = appointmentM.UpdatedAt

	return nil
}

// FindByID retrieves a single appointment by its unique ID.
func (repo *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	var appointmentM model.AppointmentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&appointmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAppointmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find appointment by id")
	}

	return toAppointmentDomain(&appointmentM), nil
}

// FindAll retrieves every appointment.
func (repo *appointmentRepository) FindAll(ctx context.Context) ([]*entity.Appointment, error) {
	var appointmentModels []*model.AppointmentModel

	if err := repo.db.WithContext(ctx).
		Order("appointment_date ASC").
		Find(&appointmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list appointments")
	}

	appointments := make([]*entity.Appointment, 0, len(appointmentModels))
	for _, appointmentM := range appointmentModels {
		appointments = append(appointments, toAppointmentDomain(appointmentM))
	}

	return appointments, nil
}

// Update modifies an existing appointment.
func (repo *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	appointmentM := fromAppointmentDomain(appointment)

	result := repo.db.WithContext(ctx).
		Model(&model.AppointmentModel{}).
		Where("id = ?", appointment.ID).
		Updates(appointmentM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update appointment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAppointmentNotFound
	}

	return nil
}

// Delete removes an appointment.
func (repo *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AppointmentModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete appointment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAppointmentNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toAppointmentDomain(data *model.AppointmentModel) *entity.Appointment {
	if data == nil {
		return nil
	}

	return &entity.Appointment{
		ID:              data.ID,
		DonorID:         data.DonorID,
		CenterID:        data.CenterID,
		AppointmentDate: data.AppointmentDate,
		AppointmentTime: data.AppointmentTime,
		Status:          entity.AppointmentStatus(data.Status),
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromAppointmentDomain(appointment *entity.Appointment) *model.AppointmentModel {
	if appointment == nil {
		return nil
	}

	return &model.AppointmentModel{
		ID:              appointment.ID,
		DonorID:         appointment.DonorID,
		CenterID:        appointment.CenterID,
		AppointmentDate: appointment.AppointmentDate,
		AppointmentTime: appointment.AppointmentTime,
		Status:          string(appointment.Status),
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
}
