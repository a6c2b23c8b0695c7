package impl

import (
	"context"
	"log/slog"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// feedbackService implements the FeedbackUsecase interface.
type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
	logger       *slog.Logger
}

// FeedbackServiceParams holds dependencies for feedbackService, injected by Fx.
type FeedbackServiceParams struct {
	fx.In

	FeedbackRepo repository.FeedbackRepository
	Logger       *slog.Logger
}

// NewFeedbackService is the constructor for feedbackService.
func NewFeedbackService(params FeedbackServiceParams) usecase.FeedbackUsecase {
	return &feedbackService{
		feedbackRepo: params.FeedbackRepo,
		logger:       params.Logger,
	}
}

func (srv *feedbackService) Create(ctx context.Context, input usecase.FeedbackInput) (*entity.Feedback, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}

	feedback := &entity.Feedback{
		DonorID:  input.DonorID,
		EventID:  input.EventID,
		Rating:   input.Rating,
		Comments: input.Comments,
	}

	if err := srv.feedbackRepo.Create(ctx, feedback); err != nil {
		srv.logger.Warn("Failed to create feedback", slog.Any("error", err))

		return nil, err
	}

	return feedback, nil
}

func (srv *feedbackService) Get(ctx context.Context, id uuid.UUID) (*entity.Feedback, error) {
	feedback, err := srv.feedbackRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return nil, domainerrors.ErrFeedbackNotFound
		}

		return nil, err
	}

	return feedback, nil
}

func (srv *feedbackService) List(ctx context.Context) ([]*entity.Feedback, error) {
	return srv.feedbackRepo.FindAll(ctx)
}

func (srv *feedbackService) Update(ctx context.Context, id uuid.UUID, input usecase.FeedbackInput) (*entity.Feedback, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}

	feedback := &entity.Feedback{
		ID:       id,
		DonorID:  input.DonorID,
		EventID:  input.EventID,
		Rating:   input.Rating,
		Comments: input.Comments,
	}

	if err := srv.feedbackRepo.Update(ctx, feedback); err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return nil, domainerrors.ErrFeedbackNotFound
		}

		return nil, err
	}

	return srv.Get(ctx, id)
}

func (srv *feedbackService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.feedbackRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return domainerrors.ErrFeedbackNotFound
		}

		return err
	}

	return nil
}
