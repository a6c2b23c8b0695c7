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

// eventService implements the EventUsecase interface.
type eventService struct {
	eventRepo repository.EventRepository
	logger    *slog.Logger
}

// EventServiceParams holds dependencies for eventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	EventRepo repository.EventRepository
	Logger    *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		eventRepo: params.EventRepo,
		logger:    params.Logger,
	}
}

func (srv *eventService) Create(ctx context.Context, input usecase.EventInput) (*entity.DonationEvent, error) {
	if input.TotalBloodCollected < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("total blood collected must not be negative")
	}

	event := &entity.DonationEvent{
		EventName:           input.EventName,
		EventDate:           input.EventDate,
		CenterID:            input.CenterID,
		Organizer:           input.Organizer,
		TotalBloodCollected: input.TotalBloodCollected,
	}

	if err := srv.eventRepo.Create(ctx, event); err != nil {
		srv.logger.Warn("Failed to create donation event", slog.Any("error", err))

		return nil, err
	}

	return event, nil
}

func (srv *eventService) Get(ctx context.Context, id uuid.UUID) (*entity.DonationEvent, error) {
	event, err := srv.eventRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, err
	}

	return event, nil
}

func (srv *eventService) List(ctx context.Context) ([]*entity.DonationEvent, error) {
	return srv.eventRepo.FindAll(ctx)
}

func (srv *eventService) Update(ctx context.Context, id uuid.UUID, input usecase.EventInput) (*entity.DonationEvent, error) {
	if input.TotalBloodCollected < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("total blood collected must not be negative")
	}

	event := &entity.DonationEvent{
		ID:                  id,
		EventName:           input.EventName,
		EventDate:           input.EventDate,
		CenterID:            input.CenterID,
		Organizer:           input.Organizer,
		TotalBloodCollected: input.TotalBloodCollected,
	}

	if err := srv.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, err
	}

	return srv.Get(ctx, id)
}

func (srv *eventService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domainerrors.ErrEventNotFound
		}

		return err
	}

	return nil
}
