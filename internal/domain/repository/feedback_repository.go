package repository

import (
	"context"
	"errors"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFeedbackNotFound is returned when a feedback record is not found.
var ErrFeedbackNotFound = errors.New("feedback not found")

// FeedbackRepository defines the standard operations for feedback persistence.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error)
	FindAll(ctx context.Context) ([]*entity.Feedback, error)
	Update(ctx context.Context, feedback *entity.Feedback) error
	Delete(ctx context.Context, id uuid.UUID) error
}
