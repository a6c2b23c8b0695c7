package model

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentModel mirrors the 'appointments' table.
type AppointmentModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DonorID         uuid.UUID `gorm:"type:uuid;not null;index"`
	CenterID        uuid.UUID `gorm:"type:uuid;not null;index"`
	AppointmentDate time.Time `gorm:"not null"`
	AppointmentTime string    `gorm:"type:varchar(20);not null"`
	Status          string    `gorm:"type:varchar(20);not null;default:'scheduled'"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (AppointmentModel) TableName() string {
	return "appointments"
}
