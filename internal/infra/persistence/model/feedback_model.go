package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackModel mirrors the 'feedback' table.
type FeedbackModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DonorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comments  string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeedbackModel) TableName() string {
	return "feedback"
}
