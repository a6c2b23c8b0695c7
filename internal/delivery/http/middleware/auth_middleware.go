// Package middleware contains the HTTP middleware for the delivery layer.
package middleware

import (
	"strings"

	"lifeline/internal/delivery/http/response"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/service"
	"lifeline/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	metrics  *metrics.Metrics
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, m *metrics.Metrics) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, metrics: m}
}

// Authenticate validates the Bearer token on the request. A missing header
// and a bad token are the only two distinguishable outcomes; every token
// defect (expired, forged, malformed) collapses into the same 401 body. On
// success the verified claims are attached to the request context and the
// handler runs without any store lookup.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.metrics.AuthFailures.WithLabelValues("missing_token").Inc()

			return response.Unauthorized(c, domainerrors.ErrTokenRequired.ErrorCode(), domainerrors.ErrTokenRequired.Message())
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			m.metrics.AuthFailures.WithLabelValues("bad_scheme").Inc()

			return response.Unauthorized(c, domainerrors.ErrTokenRequired.ErrorCode(), domainerrors.ErrTokenRequired.Message())
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			m.metrics.AuthFailures.WithLabelValues("invalid_token").Inc()

			return response.Unauthorized(c, domainerrors.ErrTokenInvalid.ErrorCode(), domainerrors.ErrTokenInvalid.Message())
		}

		// Set account info on the context for handlers to use
		c.Set("accountID", claims.AccountID)
		c.Set("email", claims.Email)

		return next(c)
	}
}
