package model

import (
	"time"

	"github.com/google/uuid"
)

// BloodInventoryModel mirrors the 'blood_inventories' table.
// The check constraint keeps units from going negative.
type BloodInventoryModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CenterID       uuid.UUID `gorm:"type:uuid;not null;index"`
	BloodType      string    `gorm:"type:varchar(3);not null"`
	UnitsAvailable int       `gorm:"not null;default:0;check:units_available >= 0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (BloodInventoryModel) TableName() string {
	return "blood_inventories"
}
