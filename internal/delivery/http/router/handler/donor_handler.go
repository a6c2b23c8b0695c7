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

// DonorHandler holds dependencies for donor profile handlers.
type DonorHandler struct {
	uc     usecase.DonorUsecase
	logger *slog.Logger
}

// NewDonorHandler is the constructor for DonorHandler, injected by Fx.
func NewDonorHandler(uc usecase.DonorUsecase, logger *slog.Logger) *DonorHandler {
	return &DonorHandler{uc: uc, logger: logger}
}

type donorAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

type donorContactInfo struct {
	Phone   string       `json:"phone"`
	Email   string       `json:"email" validate:"omitempty,email"`
	Address donorAddress `json:"address"`
}

type donorEligibility struct {
	IsEligible       bool       `json:"isEligible"`
	NextEligibleDate *time.Time `json:"nextEligibleDate"`
}

type donorRequest struct {
	FirstName   string           `json:"firstName" validate:"required"`
	LastName    string           `json:"lastName" validate:"required"`
	DateOfBirth time.Time        `json:"dateOfBirth"`
	Gender      string           `json:"gender"`
	BloodType   string           `json:"bloodType"`
	ContactInfo donorContactInfo `json:"contactInfo"`
	Eligibility donorEligibility `json:"eligibility"`
}

func (req *donorRequest) toInput() usecase.DonorInput {
	return usecase.DonorInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
		BloodType:   entity.BloodType(req.BloodType),
		Contact: entity.ContactInfo{
			Phone:      req.ContactInfo.Phone,
			Email:      req.ContactInfo.Email,
			Street:     req.ContactInfo.Address.Street,
			City:       req.ContactInfo.Address.City,
			State:      req.ContactInfo.Address.State,
			PostalCode: req.ContactInfo.Address.PostalCode,
		},
		Eligibility: entity.Eligibility{
			IsEligible:       req.Eligibility.IsEligible,
			NextEligibleDate: req.Eligibility.NextEligibleDate,
		},
	}
}

// Create handles POST /donors.
func (h *DonorHandler) Create(c echo.Context) error {
	var req donorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid donor input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	donor, err := h.uc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, donor, "Donor created successfully")
}

// Get handles GET /donors/:id.
func (h *DonorHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid donor id")
	}

	donor, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, donor, "")
}

// List handles GET /donors.
func (h *DonorHandler) List(c echo.Context) error {
	donors, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, donors, "")
}

// Update handles PUT /donors/:id.
func (h *DonorHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid donor id")
	}

	var req donorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid donor input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	donor, err := h.uc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, donor, "Donor updated successfully")
}

// Delete handles DELETE /donors/:id.
func (h *DonorHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid donor id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
