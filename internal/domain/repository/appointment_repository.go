package repository

import (
	"context"
	"errors"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAppointmentNotFound is returned when an appointment is not found.
var ErrAppointmentNotFound = errors.New("appointment not found")

// AppointmentRepository defines the standard operations for appointment persistence.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	FindAll(ctx context.Context) ([]*entity.Appointment, error)
	Update(ctx context.Context, appointment *entity.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
}
