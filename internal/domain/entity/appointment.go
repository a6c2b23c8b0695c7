package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus is the lifecycle state of a donation appointment.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCanceled  AppointmentStatus = "canceled"
)

// IsValid checks if the AppointmentStatus is a valid value.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentScheduled, AppointmentCompleted, AppointmentCanceled:
		return true
	default:
		return false
	}
}

// Appointment books a donor into a center at a given date and time.
type Appointment struct {
	ID              uuid.UUID         `json:"id"`              // The unique identifier for the appointment.
	DonorID         uuid.UUID         `json:"donorId"`         // The donor attending the appointment.
	CenterID        uuid.UUID         `json:"centerId"`        // The center hosting the appointment.
	AppointmentDate time.Time         `json:"appointmentDate"` // The calendar date of the appointment.
	AppointmentTime string            `json:"appointmentTime"` // Display time slot, e.g. "10:00 AM".
	Status          AppointmentStatus `json:"status"`          // scheduled, completed or canceled.
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}
