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

// CenterHandler holds dependencies for donation center handlers.
type CenterHandler struct {
	uc     usecase.CenterUsecase
	logger *slog.Logger
}

// NewCenterHandler is the constructor for CenterHandler, injected by Fx.
func NewCenterHandler(uc usecase.CenterUsecase, logger *slog.Logger) *CenterHandler {
	return &CenterHandler{uc: uc, logger: logger}
}

type centerRequest struct {
	CenterName string       `json:"centerName" validate:"required"`
	Address    donorAddress `json:"address"`
	Contact    struct {
		Phone string `json:"phone"`
		Email string `json:"email" validate:"required,email"`
	} `json:"contactInfo"`
	WorkingHours struct {
		Open  string `json:"open"`
		Close string `json:"close"`
	} `json:"workingHours"`
}

func (req *centerRequest) toInput() usecase.CenterInput {
	return usecase.CenterInput{
		CenterName: req.CenterName,
		Address: entity.Address{
			Street:     req.Address.Street,
			City:       req.Address.City,
			State:      req.Address.State,
			PostalCode: req.Address.PostalCode,
		},
		Contact: entity.ContactInfo{
			Phone: req.Contact.Phone,
			Email: req.Contact.Email,
		},
		WorkingHours: entity.WorkingHours{
			OpenTime:  req.WorkingHours.Open,
			CloseTime: req.WorkingHours.Close,
		},
	}
}

// Create handles POST /centers.
func (h *CenterHandler) Create(c echo.Context) error {
	var req centerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid center input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	center, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, center, "Center created successfully")
}

// Get handles GET /centers/:id.
func (h *CenterHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid center id")
	}

	center, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, center, "")
}

// List handles GET /centers.
func (h *CenterHandler) List(c echo.Context) error {
	centers, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, centers, "")
}

// Update handles PUT /centers/:id.
func (h *CenterHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid center id")
	}

	var req centerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid center input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	center, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, center, "Center updated successfully")
}

// Delete handles DELETE /centers/:id.
func (h *CenterHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid center id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
