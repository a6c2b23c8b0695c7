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

// NotificationHandler holds dependencies for notification handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{uc: uc, logger: logger}
}

type notificationRequest struct {
	RecipientID      uuid.UUID `json:"recipientId" validate:"required"`
	Message          string    `json:"message" validate:"required"`
	NotificationType string    `json:"notificationType" validate:"required"`
	Status           string    `json:"status" validate:"omitempty,oneof=sent delivered read"`
}

func (req *notificationRequest) toInput() usecase.NotificationInput {
	return usecase.NotificationInput{
		RecipientID:      req.RecipientID,
		Message:          req.Message,
		NotificationType: req.NotificationType,
		Status:           req.Status,
	}
}

// Create handles POST /notifications.
func (h *NotificationHandler) Create(c echo.Context) error {
	var req notificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	notification, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, notification, "Notification created successfully")
}

// Get handles GET /notifications/:id.
func (h *NotificationHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notification id")
	}

	notification, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notification, "")
}

// List handles GET /notifications. An optional recipientId query parameter
// narrows the listing to one account.
func (h *NotificationHandler) List(c echo.Context) error {
	if recipient := c.QueryParam("recipientId"); recipient != "" {
		recipientID, err := uuid.Parse(recipient)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid recipient id")
		}

		notifications, err := h.uc.ListByRecipient(c.Request().Context(), recipientID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, notifications, "")
	}

	notifications, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications, "")
}

// Update handles PUT /notifications/:id.
func (h *NotificationHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notification id")
	}

	var req notificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	notification, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notification, "Notification updated successfully")
}

// Delete handles DELETE /notifications/:id.
func (h *NotificationHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notification id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
