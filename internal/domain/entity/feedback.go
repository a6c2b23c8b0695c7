package entity

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is a donor's rating of a donation event, on a 1-5 scale.
type Feedback struct {
	ID        uuid.UUID `json:"id"`        // The unique identifier for the feedback record.
	DonorID   uuid.UUID `json:"donorId"`   // The donor who submitted the feedback.
	EventID   uuid.UUID `json:"eventId"`   // The event being rated.
	Rating    int       `json:"rating"`    // 1 (worst) to 5 (best).
	Comments  string    `json:"comments"`  // Optional free-form comments.
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
