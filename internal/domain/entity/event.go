package entity

import (
	"time"

	"github.com/google/uuid"
)

// DonationEvent is an organized donation drive hosted at a center.
type DonationEvent struct {
	ID                  uuid.UUID `json:"id"`                  // The unique identifier for the event.
	EventName           string    `json:"eventName"`           // Display name of the drive.
	EventDate           time.Time `json:"eventDate"`           // When the drive takes place.
	CenterID            uuid.UUID `json:"centerId"`            // The hosting center.
	Organizer           string    `json:"organizer"`           // Name of the organizing person or body.
	TotalBloodCollected int       `json:"totalBloodCollected"` // Units collected over the course of the event.
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
