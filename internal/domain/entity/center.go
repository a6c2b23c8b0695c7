package entity

import (
	"time"

	"github.com/google/uuid"
)

// Center is a blood donation center where appointments and donation events
// take place.
type Center struct {
	ID           uuid.UUID    `json:"id"`           // The unique identifier for the center.
	CenterName   string       `json:"centerName"`   // Display name of the center.
	Address      Address      `json:"address"`      // Physical location.
	Contact      ContactInfo  `json:"contact"`      // Phone and email; the email is unique per center.
	WorkingHours WorkingHours `json:"workingHours"` // Daily opening window.
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Address is a postal address.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

// WorkingHours is the daily opening window of a center, kept as display
// strings ("08:00", "17:30") exactly as entered.
type WorkingHours struct {
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}
