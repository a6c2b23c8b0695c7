package handler

import (
	"log/slog"
	"net/http"

	"lifeline/internal/delivery/http/response"
	"lifeline/internal/domain/entity"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler manages admin accounts. Creation goes through registration;
// this handler covers the remaining operations.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, logger: logger}
}

// adminRequest carries the updatable profile fields. There is no password
// field, so a credential change cannot ride in through a profile update.
type adminRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Role      string `json:"role" validate:"omitempty,oneof=admin hospital"`
}

// Get handles GET /admins/:id.
func (h *AdminHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid admin id")
	}

	account, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account), "")
}

// List handles GET /admins.
func (h *AdminHandler) List(c echo.Context) error {
	accounts, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]*accountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, toAccountResponse(account))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// Update handles PUT /admins/:id.
func (h *AdminHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid admin id")
	}

	var req adminRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid admin input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	account, err := h.uc.Update(c.Request().Context(), id, usecase.AdminInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Role:      entity.Role(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account), "Admin updated successfully")
}

// Delete handles DELETE /admins/:id.
func (h *AdminHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid admin id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
