package repository

import (
	"context"
	"errors"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCenterNotFound is returned when a donation center is not found.
var ErrCenterNotFound = errors.New("center not found")

// CenterRepository defines the standard operations for donation center persistence.
type CenterRepository interface {
	Create(ctx context.Context, center *entity.Center) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Center, error)
	FindAll(ctx context.Context) ([]*entity.Center, error)
	Update(ctx context.Context, center *entity.Center) error
	Delete(ctx context.Context, id uuid.UUID) error
}
