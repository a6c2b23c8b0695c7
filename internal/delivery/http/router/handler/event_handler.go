package handler

import (
	"log/slog"
	"net/http"
	"time"

	"lifeline/internal/delivery/http/response"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EventHandler holds dependencies for donation event handlers.
type EventHandler struct {
	uc     usecase.EventUsecase
	logger *slog.Logger
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(uc usecase.EventUsecase, logger *slog.Logger) *EventHandler {
	return &EventHandler{uc: uc, logger: logger}
}

type eventRequest struct {
	EventName           string    `json:"eventName" validate:"required"`
	EventDate           time.Time `json:"eventDate" validate:"required"`
	CenterID            uuid.UUID `json:"centerId" validate:"required"`
	Organizer           string    `json:"organizer" validate:"required"`
	TotalBloodCollected int       `json:"totalBloodCollected" validate:"gte=0"`
}

func (req *eventRequest) toInput() usecase.EventInput {
	return usecase.EventInput{
		EventName:           req.EventName,
		EventDate:           req.EventDate,
		CenterID:            req.CenterID,
		Organizer:           req.Organizer,
		TotalBloodCollected: req.TotalBloodCollected,
	}
}

// Create handles POST /donation-events.
func (h *EventHandler) Create(c echo.Context) error {
	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	event, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, event, "Donation event created successfully")
}

// Get handles GET /donation-events/:id.
func (h *EventHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	event, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "")
}

// List handles GET /donation-events.
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "")
}

// Update handles PUT /donation-events/:id.
func (h *EventHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	var req eventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	event, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, event, "Donation event updated successfully")
}

// Delete handles DELETE /donation-events/:id.
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid event id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
