package model

import (
	"time"

	"github.com/google/uuid"
)

// DonorModel mirrors the 'donors' table. Contact and eligibility are
// flattened into columns rather than nested documents.
type DonorModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID        *uuid.UUID `gorm:"type:uuid;index"`
	FirstName        string     `gorm:"type:varchar(100);not null"`
	LastName         string     `gorm:"type:varchar(100);not null"`
	DateOfBirth      time.Time
	Gender           string `gorm:"type:varchar(20)"`
	BloodType        string `gorm:"type:varchar(3)"`
	Phone            string `gorm:"type:varchar(30)"`
	Email            string `gorm:"type:varchar(255);index"`
	Street           string `gorm:"type:varchar(255)"`
	City             string `gorm:"type:varchar(100)"`
	State            string `gorm:"type:varchar(100)"`
	PostalCode       string `gorm:"type:varchar(20)"`
	IsEligible       bool   `gorm:"not null;default:false"`
	NextEligibleDate *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (DonorModel) TableName() string {
	return "donors"
}
