package repository

import (
	"context"
	"errors"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEventNotFound is returned when a donation event is not found.
var ErrEventNotFound = errors.New("donation event not found")

// EventRepository defines the standard operations for donation event persistence.
type EventRepository interface {
	Create(ctx context.Context, event *entity.DonationEvent) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DonationEvent, error)
	FindAll(ctx context.Context) ([]*entity.DonationEvent, error)
	Update(ctx context.Context, event *entity.DonationEvent) error
	Delete(ctx context.Context, id uuid.UUID) error
}
