package repository

import (
	"context"
	"errors"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDonorNotFound is returned when a donor profile is not found.
var ErrDonorNotFound = errors.New("donor not found")

// DonorRepository defines the standard operations for donor persistence.
type DonorRepository interface {
	Create(ctx context.Context, donor *entity.Donor) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Donor, error)
	FindAll(ctx context.Context) ([]*entity.Donor, error)
	Update(ctx context.Context, donor *entity.Donor) error
	Delete(ctx context.Context, id uuid.UUID) error
}
