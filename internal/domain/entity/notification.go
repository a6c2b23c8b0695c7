package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a message addressed to an account (donor or admin).
// Delivery is out of scope here; the record is the source of truth for what
// was queued and its last known status.
type Notification struct {
	ID               uuid.UUID `json:"id"`               // The unique identifier for the notification.
	RecipientID      uuid.UUID `json:"recipientId"`      // The account the notification is addressed to.
	Message          string    `json:"message"`          // Message body.
	NotificationType string    `json:"notificationType"` // e.g. "appointment-reminder", "alert".
	Status           string    `json:"status"`           // sent, delivered or read; defaults to "sent".
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
