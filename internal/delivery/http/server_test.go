package http

import (
	"log/slog"
	"testing"
	"time"

	"lifeline/config"
	deliverymiddleware "lifeline/internal/delivery/http/middleware"
	"lifeline/internal/delivery/http/router"
	"lifeline/internal/infra/metrics"
	"lifeline/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestServerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.Port = 5001
	cfg.HTTP.Timeouts.ReadTimeout = 10 * time.Second
	cfg.HTTP.Timeouts.ReadHeaderTimeout = 5 * time.Second
	cfg.HTTP.Timeouts.WriteTimeout = 10 * time.Second
	cfg.HTTP.Timeouts.IdleTimeout = 60 * time.Second

	return cfg
}

func TestNewServer_AppliesConfiguredTimeouts(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	cfg := newTestServerConfig()
	m := metrics.New()

	delivered, err := NewServer(HTTPParams{
		Lifecycle:       fxtest.NewLifecycle(t),
		Config:          cfg,
		Logger:          logger,
		ErrorMiddleware: deliverymiddleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			Config:            cfg,
			AuthMiddleware:    deliverymiddleware.NewAuthMiddleware(new(service.MockTokenService), m),
			MetricsMiddleware: deliverymiddleware.NewMetricsMiddleware(m),
		},
	})
	require.NoError(t, err)

	srv, ok := delivered.(*httpServer)
	require.True(t, ok)

	assert.Equal(t, 10*time.Second, srv.server.Server.ReadTimeout)
	assert.Equal(t, 5*time.Second, srv.server.Server.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, srv.server.Server.WriteTimeout)
	assert.Equal(t, 60*time.Second, srv.server.Server.IdleTimeout)
}
