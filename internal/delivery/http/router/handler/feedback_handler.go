package handler

import (
	"log/slog"
	"net/http"

	"lifeline/internal/delivery/http/response"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FeedbackHandler holds dependencies for donor feedback handlers.
type FeedbackHandler struct {
	uc     usecase.FeedbackUsecase
	logger *slog.Logger
}

// NewFeedbackHandler is the constructor for FeedbackHandler, injected by Fx.
func NewFeedbackHandler(uc usecase.FeedbackUsecase, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{uc: uc, logger: logger}
}

type feedbackRequest struct {
	DonorID  uuid.UUID `json:"donorId" validate:"required"`
	EventID  uuid.UUID `json:"eventId" validate:"required"`
	Rating   int       `json:"rating" validate:"required,gte=1,lte=5"`
	Comments string    `json:"comments"`
}

func (req *feedbackRequest) toInput() usecase.FeedbackInput {
	return usecase.FeedbackInput{
		DonorID:  req.DonorID,
		EventID:  req.EventID,
		Rating:   req.Rating,
		Comments: req.Comments,
	}
}

// Create handles POST /feedback.
func (h *FeedbackHandler) Create(c echo.Context) error {
	var req feedbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid feedback input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	feedback, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, feedback, "Feedback submitted successfully")
}

// Get handles GET /feedback/:id.
func (h *FeedbackHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid feedback id")
	}

	feedback, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, feedback, "")
}

// List handles GET /feedback.
func (h *FeedbackHandler) List(c echo.Context) error {
	feedbacks, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, feedbacks, "")
}

// Update handles PUT /feedback/:id.
func (h *FeedbackHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid feedback id")
	}

	var req feedbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid feedback input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	feedback, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, feedback, "Feedback updated successfully")
}

// Delete handles DELETE /feedback/:id.
func (h *FeedbackHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid feedback id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
