package model

import (
	"time"

	"github.com/google/uuid"
)

// DonationEventModel mirrors the 'donation_events' table.
type DonationEventModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EventName           string    `gorm:"type:varchar(255);not null"`
	EventDate           time.Time `gorm:"not null"`
	CenterID            uuid.UUID `gorm:"type:uuid;not null;index"`
	Organizer           string    `gorm:"type:varchar(255);not null"`
	TotalBloodCollected int       `gorm:"not null;default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (DonationEventModel) TableName() string {
	return "donation_events"
}
