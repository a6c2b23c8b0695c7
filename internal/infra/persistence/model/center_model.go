package model

import (
	"time"

	"github.com/google/uuid"
)

// CenterModel mirrors the 'centers' table.
type CenterModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CenterName string    `gorm:"type:varchar(255);not null"`
	Street     string    `gorm:"type:varchar(255)"`
	City       string    `gorm:"type:varchar(100)"`
	State      string    `gorm:"type:varchar(100)"`
	PostalCode string    `gorm:"type:varchar(20)"`
	Phone      string    `gorm:"type:varchar(30)"`
	Email      string    `gorm:"type:varchar(255);unique;not null"`
	OpenTime   string    `gorm:"type:varchar(10)"`
	CloseTime  string    `gorm:"type:varchar(10)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CenterModel) TableName() string {
	return "centers"
}
