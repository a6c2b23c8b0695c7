package usecase

import (
	"context"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedbackInput defines the data accepted when submitting or updating feedback.
type FeedbackInput struct {
	DonorID  uuid.UUID
	EventID  uuid.UUID
	Rating   int
	Comments string
}

// FeedbackUsecase defines the interface for donor feedback management.
type FeedbackUsecase interface {
	Create(ctx context.Context, input FeedbackInput) (*entity.Feedback, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Feedback, error)
	List(ctx context.Context) ([]*entity.Feedback, error)
	Update(ctx context.Context, id uuid.UUID, input FeedbackInput) (*entity.Feedback, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
