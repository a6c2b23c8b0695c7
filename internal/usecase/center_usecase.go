package usecase

import (
	"context"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// CenterInput defines the data accepted when creating or updating a donation center.
type CenterInput struct {
	CenterName   string
	Address      entity.Address
	Contact      entity.ContactInfo
	WorkingHours entity.WorkingHours
}

// CenterUsecase defines the interface for donation center management.
type CenterUsecase interface {
	Create(ctx context.Context, input CenterInput) (*entity.Center, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Center, error)
	List(ctx context.Context) ([]*entity.Center, error)
	Update(ctx context.Context, id uuid.UUID, input CenterInput) (*entity.Center, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
