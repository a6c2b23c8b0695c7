package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lifeline/internal/delivery/http/validator"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockAuthUsecase is a testify mock of usecase.AuthUsecase.
type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) RegisterDonor(ctx context.Context, input usecase.RegisterDonorInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RegisterOutput), args.Error(1)
}

func (m *mockAuthUsecase) RegisterAdmin(ctx context.Context, input usecase.RegisterAdminInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RegisterOutput), args.Error(1)
}

func (m *mockAuthUsecase) Login(ctx context.Context, input usecase.LoginInput, expectedRole entity.Role) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input, expectedRole)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.LoginOutput), args.Error(1)
}

func newAuthTestContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_RegisterDonor_NeverEchoesPasswordHash(t *testing.T) {
	uc := new(mockAuthUsecase)
	h := NewAuthHandler(uc, slog.New(slog.DiscardHandler))

	account := &entity.Account{
		ID:           uuid.New(),
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@example.com",
		PasswordHash: "$2a$10$secret-digest",
		Role:         entity.RoleDonor,
	}
	profile := &entity.Donor{
		ID:        uuid.New(),
		AccountID: &account.ID,
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
	uc.On("RegisterDonor", mock.Anything, mock.AnythingOfType("usecase.RegisterDonorInput")).
		Return(&usecase.RegisterOutput{Account: account, Donor: profile}, nil)

	c, rec := newAuthTestContext(`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"plaintext-pw"}`)
	require.NoError(t, h.RegisterDonor(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret-digest")
	assert.NotContains(t, rec.Body.String(), "passwordHash")

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Account struct {
				Email string `json:"email"`
				Role  string `json:"role"`
			} `json:"account"`
			DonorProfile struct {
				FirstName string `json:"firstName"`
			} `json:"donorProfile"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "ada@example.com", envelope.Data.Account.Email)
	assert.Equal(t, "donor", envelope.Data.Account.Role)
	assert.Equal(t, "Ada", envelope.Data.DonorProfile.FirstName)
	assert.NotContains(t, rec.Body.String(), "FirstName")
}

func TestAuthHandler_RegisterDonor_ValidationFailure(t *testing.T) {
	uc := new(mockAuthUsecase)
	h := NewAuthHandler(uc, slog.New(slog.DiscardHandler))

	c, _ := newAuthTestContext(`{"firstName":"Ada","lastName":"Lovelace","email":"not-an-email","password":"pw"}`)
	err := h.RegisterDonor(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	uc.AssertNotCalled(t, "RegisterDonor")
}

func TestAuthHandler_LoginDonor_ReturnsToken(t *testing.T) {
	uc := new(mockAuthUsecase)
	h := NewAuthHandler(uc, slog.New(slog.DiscardHandler))

	uc.On("Login", mock.Anything, usecase.LoginInput{
		Email:    "ada@example.com",
		Password: "plaintext-pw",
	}, entity.RoleDonor).Return(&usecase.LoginOutput{Token: "signed.jwt.token"}, nil)

	c, rec := newAuthTestContext(`{"email":"ada@example.com","password":"plaintext-pw"}`)
	require.NoError(t, h.LoginDonor(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed.jwt.token")
}

func TestAuthHandler_LoginAdmin_UnknownEmailBubblesUp(t *testing.T) {
	uc := new(mockAuthUsecase)
	h := NewAuthHandler(uc, slog.New(slog.DiscardHandler))

	uc.On("Login", mock.Anything, mock.AnythingOfType("usecase.LoginInput"), entity.RoleAdmin).
		Return(nil, domainerrors.ErrAccountNotFound)

	c, _ := newAuthTestContext(`{"email":"ghost@example.com","password":"pw"}`)
	err := h.LoginAdmin(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}
