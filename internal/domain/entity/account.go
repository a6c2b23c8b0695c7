// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the credential record behind every login, whether the person is
// a donor, an administrator, or hospital staff. The password is only ever
// stored as a bcrypt digest; the plaintext never reaches the persistence
// layer.
type Account struct {
	ID           uuid.UUID `json:"id"`        // The unique identifier for the account, assigned by the store on creation.
	FirstName    string    `json:"firstName"` // The account holder's first name.
	LastName     string    `json:"lastName"`  // The account holder's last name.
	Email        string    `json:"email"`     // Unique login key for the account.
	PasswordHash string    `json:"-"`         // bcrypt digest of the password. Compared only via the hashing service, never by equality.
	Role         Role      `json:"role"`      // Coarse role of the account (donor, admin, hospital).
	CreatedAt    time.Time `json:"createdAt"` // Timestamp of when this account was created.
	UpdatedAt    time.Time `json:"updatedAt"` // Timestamp of the last modification to this account.
}
