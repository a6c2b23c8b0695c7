package usecase

import (
	"context"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminInput defines the updatable profile fields of an admin account. The
// password is not among them; credential changes go through registration or
// a dedicated reset flow, never a profile update.
type AdminInput struct {
	FirstName string
	LastName  string
	Email     string
	Role      entity.Role
}

// AdminUsecase manages admin accounts. Admin accounts are created through
// registration, so there is no separate create path here; the remaining
// operations only ever see non-donor accounts.
type AdminUsecase interface {
	Get(ctx context.Context, id uuid.UUID) (*entity.Account, error)
	List(ctx context.Context) ([]*entity.Account, error)
	Update(ctx context.Context, id uuid.UUID, input AdminInput) (*entity.Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
