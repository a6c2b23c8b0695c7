package usecase

import (
	"context"
	"time"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// DonorInput defines the data accepted when creating or updating a donor profile.
type DonorInput struct {
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	Gender      string
	BloodType   entity.BloodType
	Contact     entity.ContactInfo
	Eligibility entity.Eligibility
	AccountID   *uuid.UUID
}

// DonorUsecase defines the interface for donor profile management.
type DonorUsecase interface {
	Create(ctx context.Context, input DonorInput) (*entity.Donor, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Donor, error)
	List(ctx context.Context) ([]*entity.Donor, error)
	Update(ctx context.Context, id uuid.UUID, input DonorInput) (*entity.Donor, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
