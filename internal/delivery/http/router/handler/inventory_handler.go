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

// InventoryHandler holds dependencies for blood inventory handlers.
type InventoryHandler struct {
	uc     usecase.InventoryUsecase
	logger *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler, injected by Fx.
func NewInventoryHandler(uc usecase.InventoryUsecase, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, logger: logger}
}

type inventoryRequest struct {
	CenterID       uuid.UUID `json:"centerId" validate:"required"`
	BloodType      string    `json:"bloodType" validate:"required"`
	UnitsAvailable int       `json:"unitsAvailable" validate:"gte=0"`
}

func (req *inventoryRequest) toInput() usecase.InventoryInput {
	return usecase.InventoryInput{
		CenterID:       req.CenterID,
		BloodType:      entity.BloodType(req.BloodType),
		UnitsAvailable: req.UnitsAvailable,
	}
}

// Create handles POST /blood-inventory.
func (h *InventoryHandler) Create(c echo.Context) error {
	var req inventoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inventory input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	inventory, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, inventory, "Inventory record created successfully")
}

// Get handles GET /blood-inventory/:id.
func (h *InventoryHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid inventory id")
	}

	inventory, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, inventory, "")
}

// List handles GET /blood-inventory.
func (h *InventoryHandler) List(c echo.Context) error {
	inventories, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, inventories, "")
}

// Update handles PUT /blood-inventory/:id.
func (h *InventoryHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid inventory id")
	}

	var req inventoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inventory input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	inventory, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, inventory, "Inventory record updated successfully")
}

// Delete handles DELETE /blood-inventory/:id.
func (h *InventoryHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid inventory id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
