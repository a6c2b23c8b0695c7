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

// feedbackRepository implements the repository.FeedbackRepository interface.
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{db: db}
}

// Create persists a new feedback entry.
func (repo *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	feedbackM := fromFeedbackDomain(feedback)

	if err := repo.db.WithContext(ctx).Create(feedbackM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown donor or event reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required feedback information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create feedback")
	}

	feedback.ID = feedbackM.ID
	feedback.CreatedAt = feedbackM.CreatedAt
	feedback.UpdatedAt = feedbackM.UpdatedAt

	return nil
}

// FindByID retrieves a single feedback entry by its unique ID.
func (repo *feedbackRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error) {
	var feedbackM model.FeedbackModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&feedbackM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFeedbackNotFound
		}

		return nil, errors.Wrap(err, "failed to find feedback by id")
	}

	return toFeedbackDomain(&feedbackM), nil
}

// FindAll retrieves every feedback entry.
func (repo *feedbackRepository) FindAll(ctx context.Context) ([]*entity.Feedback, error) {
	var feedbackModels []*model.FeedbackModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&feedbackModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	feedbacks := make([]*entity.Feedback, 0, len(feedbackModels))
	for _, feedbackM := range feedbackModels {
		feedbacks = append(feedbacks, toFeedbackDomain(feedbackM))
	}

	return feedbacks, nil
}

// Update modifies an existing feedback entry.
func (repo *feedbackRepository) Update(ctx context.Context, feedback *entity.Feedback) error {
	feedbackM := fromFeedbackDomain(feedback)

	result := repo.db.WithContext(ctx).
		Model(&model.FeedbackModel{}).
		Where("id = ?", feedback.ID).
		Updates(feedbackM)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update feedback")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFeedbackNotFound
	}

	return nil
}

// Delete removes a feedback entry.
func (repo *feedbackRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FeedbackModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete feedback")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFeedbackNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toFeedbackDomain(data *model.FeedbackModel) *entity.Feedback {
	if data == nil {
		return nil
	}

	return &entity.Feedback{
		ID:        data.ID,
		DonorID:   data.DonorID,
		EventID:   data.EventID,
		Rating:    data.Rating,
		Comments:  data.Comments,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromFeedbackDomain(feedback *entity.Feedback) *model.FeedbackModel {
	if feedback == nil {
		return nil
	}

	return &model.FeedbackModel{
		ID:        feedback.ID,
		DonorID:   feedback.DonorID,
		EventID:   feedback.EventID,
		Rating:    feedback.Rating,
		Comments:  feedback.Comments,
		CreatedAt: feedback.CreatedAt,
		UpdatedAt: feedback.UpdatedAt,
	}
}
