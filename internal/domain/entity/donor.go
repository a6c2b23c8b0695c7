package entity

import (
	"time"

	"github.com/google/uuid"
)

// Donor is the profile of a registered blood donor. The credential half of a
// donor lives in Account; this entity carries everything the coordination
// side needs (blood type, contact details, eligibility).
type Donor struct {
	ID          uuid.UUID   `json:"id"`          // The unique identifier for the donor profile.
	AccountID   *uuid.UUID  `json:"accountId"`   // Optional link to the credential record created at registration.
	FirstName   string      `json:"firstName"`   // The donor's first name.
	LastName    string      `json:"lastName"`    // The donor's last name.
	DateOfBirth time.Time   `json:"dateOfBirth"` // Used to determine age-based eligibility.
	Gender      string      `json:"gender"`      // Free-form gender as provided at registration.
	BloodType   BloodType   `json:"bloodType"`   // The donor's ABO/Rh blood group.
	Contact     ContactInfo `json:"contactInfo"` // Phone, email and postal address.
	Eligibility Eligibility `json:"eligibility"` // Current donation eligibility.
	CreatedAt   time.Time   `json:"createdAt"`   // Timestamp of when the donor profile was created.
	UpdatedAt   time.Time   `json:"updatedAt"`   // Timestamp of the last modification.
}

// ContactInfo groups the reachable coordinates of a donor or a center.
type ContactInfo struct {
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

// Eligibility tracks whether a donor may donate and, if deferred, when they
// become eligible again.
type Eligibility struct {
	IsEligible       bool       `json:"isEligible"`
	NextEligibleDate *time.Time `json:"nextEligibleDate"`
}
