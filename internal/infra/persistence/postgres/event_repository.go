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

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

// Create persists a new donation event.
func (repo *eventRepository) Create(ctx context.Context, event *entity.DonationEvent) error {
	eventM := fromEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown center reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required event information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create donation event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt
	event.UpdatedAt = eventM.UpdatedAt

	return nil
}

// FindByID retrieves a single donation event by its unique ID.
func (repo *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DonationEvent, error) {
	var eventM model.DonationEventModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find donation event by id")
	}

	return toEventDomain(&eventM), nil
}

// FindAll retrieves every donation event.
func (repo *eventRepository) FindAll(ctx context.Context) ([]*entity.DonationEvent, error) {
	var eventModels []*model.DonationEventModel

	if err := repo.db.WithContext(ctx).
		Order("event_date DESC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list donation events")
	}

	events := make([]*entity.DonationEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toEventDomain(eventM))
	}

	return events, nil
}

// Update modifies an existing donation event.
func (repo *eventRepository) Update(ctx context.Context, event *entity.DonationEvent) error {
	eventM := fromEventDomain(event)

	result := repo.db.WithContext(ctx).
		Model(&model.DonationEventModel{}).
		Where("id = ?", event.ID).
		Updates(eventM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update donation event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// Delete removes a donation event.
func (repo *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DonationEventModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete donation event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toEventDomain(data *model.DonationEventModel) *entity.DonationEvent {
	if data == nil {
		return nil
	}

	return &entity.DonationEvent{
		ID:                  data.ID,
		EventName:           data.EventName,
		EventDate:           data.EventDate,
		CenterID:            data.CenterID,
		Organizer:           data.Organizer,
		TotalBloodCollected: data.TotalBloodCollected,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func fromEventDomain(event *entity.DonationEvent) *model.DonationEventModel {
	if event == nil {
		return nil
	}

	return &model.DonationEventModel{
		ID:                  event.ID,
		EventName:           event.EventName,
		EventDate:           event.EventDate,
		CenterID:            event.CenterID,
		Organizer:           event.Organizer,
		TotalBloodCollected: event.TotalBloodCollected,
		CreatedAt:           event.CreatedAt,
		UpdatedAt:           event.UpdatedAt,
	}
}
