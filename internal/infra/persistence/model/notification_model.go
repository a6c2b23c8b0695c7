package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table.
type NotificationModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecipientID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Message          string    `gorm:"type:text;not null"`
	NotificationType string    `gorm:"type:varchar(50);not null"`
	Status           string    `gorm:"type:varchar(20);not null;default:'sent'"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
