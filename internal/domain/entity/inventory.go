package entity

import (
	"time"

	"github.com/google/uuid"
)

// BloodInventory tracks the units of one blood type held by a center.
// UnitsAvailable never goes negative; the store enforces the floor.
type BloodInventory struct {
	ID             uuid.UUID `json:"id"`             // The unique identifier for the inventory record.
	CenterID       uuid.UUID `json:"centerId"`       // The center holding the stock.
	BloodType      BloodType `json:"bloodType"`      // The ABO/Rh group of the stocked units.
	UnitsAvailable int       `json:"unitsAvailable"` // Number of units currently on hand.
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
