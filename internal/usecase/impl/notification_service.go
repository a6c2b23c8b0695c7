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

// defaultNotificationStatus is applied when a notification is created
// without an explicit delivery status.
const defaultNotificationStatus = "sent"

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for notificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		logger:           params.Logger,
	}
}

func (srv *notificationService) Create(ctx context.Context, input usecase.NotificationInput) (*entity.Notification, error) {
	status := input.Status
	if status == "" {
		status = defaultNotificationStatus
	}

	notification := &entity.Notification{
		RecipientID:      input.RecipientID,
		Message:          input.Message,
		NotificationType: input.NotificationType,
		Status:           status,
	}

	if err := srv.notificationRepo.Create(ctx, notification); err != nil {
		srv.logger.Warn("Failed to create notification", slog.Any("error", err))

		return nil, err
	}

	return notification, nil
}

func (srv *notificationService) Get(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	notification, err := srv.notificationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}

		return nil, err
	}

	return notification, nil
}

func (srv *notificationService) List(ctx context.Context) ([]*entity.Notification, error) {
	return srv.notificationRepo.FindAll(ctx)
}

func (srv *notificationService) ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*entity.Notification, error) {
	return srv.notificationRepo.FindByRecipient(ctx, recipientID)
}

func (srv *notificationService) Update(ctx context.Context, id uuid.UUID, input usecase.NotificationInput) (*entity.Notification, error) {
	notification := &entity.Notification{
		ID:               id,
		RecipientID:      input.RecipientID,
		Message:          input.Message,
		NotificationType: input.NotificationType,
		Status:           input.Status,
	}

	if err := srv.notificationRepo.Update(ctx, notification); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}

		return nil, err
	}

	return srv.Get(ctx, id)
}

func (srv *notificationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.notificationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return err
	}

	return nil
}
