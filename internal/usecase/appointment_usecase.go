package usecase

import (
	"context"
	"time"

	"lifeline/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentInput defines the data accepted when booking or updating an appointment.
type AppointmentInput struct {
	DonorID         uuid.UUID
	CenterID        uuid.UUID
	AppointmentDate time.Time
	AppointmentTime string
	Status          entity.AppointmentStatus
}

// AppointmentUsecase defines the interface for appointment management.
type AppointmentUsecase interface {
	Create(ctx context.Context, input AppointmentInput) (*entity.Appointment, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Appointment, error)
	List(ctx context.Context) ([]*entity.Appointment, error)
	Update(ctx context.Context, id uuid.UUID, input AppointmentInput) (*entity.Appointment, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Ticket renders the appointment as a QR code PNG for check-in at the center.
	Ticket(ctx context.Context, id uuid.UUID) ([]byte, error)
}
