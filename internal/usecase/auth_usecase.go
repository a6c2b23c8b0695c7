// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"lifeline/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterDonorInput defines the data required to register a new donor account.
type RegisterDonorInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// RegisterAdminInput defines the data required to register a new admin account.
type RegisterAdminInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      entity.Role
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account, plus the linked donor
// profile when the registration created one. The password hash is never
// included in the wire shape built from this.
type RegisterOutput struct {
	Account *entity.Account
	Donor   *entity.Donor
}

// LoginOutput returns the signed access token after a successful login.
type LoginOutput struct {
	Token string
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	RegisterDonor(ctx context.Context, input RegisterDonorInput) (*RegisterOutput, error)
	RegisterAdmin(ctx context.Context, input RegisterAdminInput) (*RegisterOutput, error)

	// Login verifies the credentials against accounts holding the expected
	// role and issues an access token. An unknown email or a role mismatch
	// both surface as account-not-found.
	Login(ctx context.Context, input LoginInput, expectedRole entity.Role) (*LoginOutput, error)
}
