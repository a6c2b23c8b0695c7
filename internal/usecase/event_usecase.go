package usecase

import (
	"context"
	"time"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// EventInput defines the data accepted when creating or updating a donation event.
type EventInput struct {
	EventName           string
	EventDate           time.Time
	CenterID            uuid.UUID
	Organizer           string
	TotalBloodCollected int
}

// EventUsecase defines the interface for donation event management.
type EventUsecase interface {
	Create(ctx context.Context, input EventInput) (*entity.DonationEvent, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.DonationEvent, error)
	List(ctx context.Context) ([]*entity.DonationEvent, error)
	Update(ctx context.Context, id uuid.UUID, input EventInput) (*entity.DonationEvent, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
