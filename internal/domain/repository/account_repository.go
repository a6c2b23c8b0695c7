// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when no account matches the lookup.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for credential persistence.
type AccountRepository interface {
	// Create persists a new account. The password hash must already be set.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its login email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindAll retrieves every account, optionally filtered by role.
	FindAll(ctx context.Context, role *entity.Role) ([]*entity.Account, error)

	// Update modifies the account's profile fields (name, email, role). The
	// password hash is never touched by this operation.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes the account by its unique ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
