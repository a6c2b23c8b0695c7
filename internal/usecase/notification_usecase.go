package usecase

import (
	"context"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationInput defines the data accepted when creating or updating a notification.
type NotificationInput struct {
	RecipientID      uuid.UUID
	Message          string
	NotificationType string
	Status           string
}

// NotificationUsecase defines the interface for notification management.
type NotificationUsecase interface {
	Create(ctx context.Context, input NotificationInput) (*entity.Notification, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Notification, error)
	List(ctx context.Context) ([]*entity.Notification, error)
	ListByRecipient(ctx context.Context, recipientID uuid.UUID) ([]*entity.Notification, error)
	Update(ctx context.Context, id uuid.UUID, input NotificationInput) (*entity.Notification, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
