// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lifeline/config"
	"lifeline/internal/delivery/http/middleware"
	"lifeline/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// RouterParams holds every handler and middleware the router wires up,
// injected by Fx.
type RouterParams struct {
	fx.In

	Config              *config.Config
	AuthHandler         *handler.AuthHandler
	DonorHandler        *handler.DonorHandler
	AdminHandler        *handler.AdminHandler
	CenterHandler       *handler.CenterHandler
	AppointmentHandler  *handler.AppointmentHandler
	InventoryHandler    *handler.InventoryHandler
	EventHandler        *handler.EventHandler
	FeedbackHandler     *handler.FeedbackHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
	MetricsMiddleware   *middleware.MetricsMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.params.MetricsMiddleware.Observe)

	// Health check and metrics endpoints
	e.GET("/health", handler.HealthCheck)
	if r.params.Config.Metrics == nil || r.params.Config.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	api := e.Group("/api")

	// Auth routes are the only public API surface.
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register-donor", r.params.AuthHandler.RegisterDonor)
		authGroup.POST("/register-admin", r.params.AuthHandler.RegisterAdmin)
		authGroup.POST("/login-donor", r.params.AuthHandler.LoginDonor)
		authGroup.POST("/login-admin", r.params.AuthHandler.LoginAdmin)
	}

	// Everything below requires a valid Bearer token.
	protected := api.Group("", r.params.AuthMiddleware.Authenticate)

	donorGroup := protected.Group("/donors")
	{
		donorGroup.POST("", r.params.DonorHandler.Create)
		donorGroup.GET("", r.params.DonorHandler.List)
		donorGroup.GET("/:id", r.params.DonorHandler.Get)
		donorGroup.PUT("/:id", r.params.DonorHandler.Update)
		donorGroup.DELETE("/:id", r.params.DonorHandler.Delete)
	}

	adminGroup := protected.Group("/admins")
	{
		adminGroup.GET("", r.params.AdminHandler.List)
		adminGroup.GET("/:id", r.params.AdminHandler.Get)
		adminGroup.PUT("/:id", r.params.AdminHandler.Update)
		adminGroup.DELETE("/:id", r.params.AdminHandler.Delete)
	}

	centerGroup := protected.Group("/centers")
	{
		centerGroup.POST("", r.params.CenterHandler.Create)
		centerGroup.GET("", r.params.CenterHandler.List)
		centerGroup.GET("/:id", r.params.CenterHandler.Get)
		centerGroup.PUT("/:id", r.params.CenterHandler.Update)
		centerGroup.DELETE("/:id", r.params.CenterHandler.Delete)
	}

	appointmentGroup := protected.Group("/appointments")
	{
		appointmentGroup.POST("", r.params.AppointmentHandler.Create)
		appointmentGroup.GET("", r.params.AppointmentHandler.List)
		appointmentGroup.GET("/:id", r.params.AppointmentHandler.Get)
		appointmentGroup.GET("/:id/qr", r.params.AppointmentHandler.Ticket)
		appointmentGroup.PUT("/:id", r.params.AppointmentHandler.Update)
		appointmentGroup.DELETE("/:id", r.params.AppointmentHandler.Delete)
	}

	inventoryGroup := protected.Group("/blood-inventory")
	{
		inventoryGroup.POST("", r.params.InventoryHandler.Create)
		inventoryGroup.GET("", r.params.InventoryHandler.List)
		inventoryGroup.GET("/:id", r.params.InventoryHandler.Get)
		inventoryGroup.PUT("/:id", r.params.InventoryHandler.Update)
		inventoryGroup.DELETE("/:id", r.params.InventoryHandler.Delete)
	}

	eventGroup := protected.Group("/donation-events")
	{
		eventGroup.POST("", r.params.EventHandler.Create)
		eventGroup.GET("", r.params.EventHandler.List)
		eventGroup.GET("/:id", r.params.EventHandler.Get)
		eventGroup.PUT("/:id", r.params.EventHandler.Update)
		eventGroup.DELETE("/:id", r.params.EventHandler.Delete)
	}

	feedbackGroup := protected.Group("/feedback")
	{
		feedbackGroup.POST("", r.params.FeedbackHandler.Create)
		feedbackGroup.GET("", r.params.FeedbackHandler.List)
		feedbackGroup.GET("/:id", r.params.FeedbackHandler.Get)
		feedbackGroup.PUT("/:id", r.params.FeedbackHandler.Update)
		feedbackGroup.DELETE("/:id", r.params.FeedbackHandler.Delete)
	}

	notificationGroup := protected.Group("/notifications")
	{
		notificationGroup.POST("", r.params.NotificationHandler.Create)
		notificationGroup.GET("", r.params.NotificationHandler.List)
		notificationGroup.GET("/:id", r.params.NotificationHandler.Get)
		notificationGroup.PUT("/:id", r.params.NotificationHandler.Update)
		notificationGroup.DELETE("/:id", r.params.NotificationHandler.Delete)
	}
}
