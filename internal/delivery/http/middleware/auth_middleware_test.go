package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lifeline/internal/domain/service"
	"lifeline/internal/infra/metrics"
	mockService "lifeline/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestMetrics builds unregistered collectors so tests do not collide on
// the default registry.
func newTestMetrics() *metrics.Metrics {
	return &metrics.Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "http_requests_total"},
			[]string{"method", "path", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "http_request_duration_seconds"},
			[]string{"method", "path", "status"},
		),
		AuthFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "auth_failures_total"},
			[]string{"reason"},
		),
	}
}

type authMiddlewareFixtures struct {
	middleware *AuthMiddleware
	tokenSvc   *mockService.MockTokenService
	metrics    *metrics.Metrics
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	t.Helper()

	tokenSvc := new(mockService.MockTokenService)
	m := newTestMetrics()

	return authMiddlewareFixtures{
		middleware: NewAuthMiddleware(tokenSvc, m),
		tokenSvc:   tokenSvc,
		metrics:    m,
	}
}

func invokeAuthenticate(fx authMiddlewareFixtures, authHeader string) (*httptest.ResponseRecorder, echo.Context, int) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/donors", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	invocations := 0
	handler := fx.middleware.Authenticate(func(c echo.Context) error {
		invocations++

		return c.NoContent(http.StatusOK)
	})
	_ = handler(c)

	return rec, c, invocations
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	rec, _, invocations := invokeAuthenticate(fx, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, invocations)
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.AuthFailures.WithLabelValues("missing_token")))
	fx.tokenSvc.AssertNotCalled(t, "Verify")
}

func TestAuthMiddleware_NonBearerScheme(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	rec, _, invocations := invokeAuthenticate(fx, "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, invocations)
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.AuthFailures.WithLabelValues("bad_scheme")))
	fx.tokenSvc.AssertNotCalled(t, "Verify")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)
	fx.tokenSvc.On("Verify", "garbage").Return(nil, service.ErrInvalidToken)

	rec, _, invocations := invokeAuthenticate(fx, "Bearer garbage")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, invocations)
	assert.Equal(t, 1.0, testutil.ToFloat64(fx.metrics.AuthFailures.WithLabelValues("invalid_token")))
	fx.tokenSvc.AssertExpectations(t)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	accountID := uuid.New()
	fx.tokenSvc.On("Verify", "good-token").Return(&service.TokenClaims{
		AccountID: accountID,
		Email:     "donor@example.com",
	}, nil)

	rec, c, invocations := invokeAuthenticate(fx, "Bearer good-token")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, invocations)
	assert.Equal(t, accountID, c.Get("accountID"))
	assert.Equal(t, "donor@example.com", c.Get("email"))
	fx.tokenSvc.AssertExpectations(t)
}
