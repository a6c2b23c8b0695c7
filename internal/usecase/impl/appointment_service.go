package impl

import (
	"context"
	"fmt"
	"log/slog"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
	"go.uber.org/fx"
)

// ticketQRSize is the pixel width of the generated check-in QR code.
const ticketQRSize = 256

// appointmentService implements the AppointmentUsecase interface.
type appointmentService struct {
	appointmentRepo repository.AppointmentRepository
	logger          *slog.Logger
}

// AppointmentServiceParams holds dependencies for appointmentService, injected by Fx.
type AppointmentServiceParams struct {
	fx.In

	AppointmentRepo repository.AppointmentRepository
	Logger          *slog.Logger
}

// NewAppointmentService is the constructor for appointmentService.
func NewAppointmentService(params AppointmentServiceParams) usecase.AppointmentUsecase {
	return &appointmentService{
		appointmentRepo: params.AppointmentRepo,
		logger:          params.Logger,
	}
}

func (srv *appointmentService) Create(ctx context.Context, input usecase.AppointmentInput) (*entity.Appointment, error) {
	status := input.Status
	if status == "" {
		status = entity.AppointmentScheduled
	}
	if !status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("status must be scheduled, completed or canceled")
	}

	appointment := &entity.Appointment{
		DonorID:         input.DonorID,
		CenterID:        input.CenterID,
		AppointmentDate: input.AppointmentDate,
		AppointmentTime: input.AppointmentTime,
		Status:          status,
	}

	if err := srv.appointmentRepo.Create(ctx, appointment); err != nil {
		srv.logger.Warn("Failed to create appointment", slog.Any("error", err))

		return nil, err
	}

	return appointment, nil
}

func (srv *appointmentService) Get(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	appointment, err := srv.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			return nil, domainerrors.ErrAppointmentNotFound
		}

		return nil, err
	}

	return appointment, nil
}

func (srv *appointmentService) List(ctx context.Context) ([]*entity.Appointment, error) {
	return srv.appointmentRepo.FindAll(ctx)
}

func (srv *appointmentService) Update(ctx context.Context, id uuid.UUID, input usecase.AppointmentInput) (*entity.Appointment, error) {
	if input.Status != "" && !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("status must be scheduled, completed or canceled")
	}

	appointment := &entity.Appointment{
		ID:              id,
		DonorID:         input.DonorID,
		CenterID:        input.CenterID,
		AppointmentDate: input.AppointmentDate,
		AppointmentTime: input.AppointmentTime,
		Status:          input.Status,
	}

	if err := srv.appointmentRepo.Update(ctx, appointment); err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			return nil, domainerrors.ErrAppointmentNotFound
		}

		return nil, err
	}

	return srv.Get(ctx, id)
}

func (srv *appointmentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			return domainerrors.ErrAppointmentNotFound
		}

		return err
	}

	return nil
}

// Ticket renders the appointment as a QR code PNG. The payload carries just
// enough for the front desk to pull up the booking.
func (srv *appointmentService) Ticket(ctx context.Context, id uuid.UUID) ([]byte, error) {
	appointment, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	payload := fmt.Sprintf(
		"appointment:%s donor:%s center:%s date:%s %s",
		appointment.ID,
		appointment.DonorID,
		appointment.CenterID,
		appointment.AppointmentDate.Format("2006-01-02"),
		appointment.AppointmentTime,
	)

	png, err := qrcode.Encode(payload, qrcode.Medium, ticketQRSize)
	if err != nil {
		srv.logger.Error("Failed to render appointment QR code", slog.Any("appointmentID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render appointment QR code")
	}

	return png, nil
}
