package handler

import (
	"log/slog"
	"net/http"
	"time"

	"lifeline/internal/delivery/http/response"
	"lifeline/internal/domain/entity"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AppointmentHandler holds dependencies for appointment handlers.
type AppointmentHandler struct {
	uc     usecase.AppointmentUsecase
	logger *slog.Logger
}

// NewAppointmentHandler is the constructor for AppointmentHandler, injected by Fx.
func NewAppointmentHandler(uc usecase.AppointmentUsecase, logger *slog.Logger) *AppointmentHandler {
	return &AppointmentHandler{uc: uc, logger: logger}
}

type appointmentRequest struct {
	DonorID         uuid.UUID `json:"donorId" validate:"required"`
	CenterID        uuid.UUID `json:"centerId" validate:"required"`
	AppointmentDate time.Time `json:"appointmentDate" validate:"required"`
	AppointmentTime string    `json:"appointmentTime" validate:"required"`
	Status          string    `json:"status"`
}

func (req *appointmentRequest) toInput() usecase.AppointmentInput {
	return usecase.AppointmentInput{
		DonorID:         req.DonorID,
		CenterID:        req.CenterID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Status:          entity.AppointmentStatus(req.Status),
	}
}

// Create handles POST /appointments.
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid appointment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	appointment, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, appointment, "Appointment booked successfully")
}

// Get handles GET /appointments/:id.
func (h *AppointmentHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid appointment id")
	}

	appointment, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointment, "")
}

// List handles GET /appointments.
func (h *AppointmentHandler) List(c echo.Context) error {
	appointments, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointments, "")
}

// Update handles PUT /appointments/:id.
func (h *AppointmentHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid appointment id")
	}

	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid appointment input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	appointment, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointment, "Appointment updated successfully")
}

// Delete handles DELETE /appointments/:id.
func (h *AppointmentHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid appointment id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Ticket handles GET /appointments/:id/qr and streams a PNG QR code.
func (h *AppointmentHandler) Ticket(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid appointment id")
	}

	png, err := h.uc.Ticket(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
