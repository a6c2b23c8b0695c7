package main

import (
	"context"
	"log/slog"
	"os"

	"lifeline/config"
	"lifeline/internal/delivery"
	"lifeline/internal/delivery/http"
	"lifeline/internal/delivery/http/middleware"
	"lifeline/internal/delivery/http/router/handler"
	"lifeline/internal/infra/auth"
	logs "lifeline/internal/infra/log"
	"lifeline/internal/infra/metrics"
	"lifeline/internal/infra/persistence/postgres"
	"lifeline/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewAccountRepository,
			postgres.NewDonorRepository,
			postgres.NewCenterRepository,
			postgres.NewAppointmentRepository,
			postgres.NewInventoryRepository,
			postgres.NewEventRepository,
			postgres.NewFeedbackRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewDonorService,
			impl.NewAdminService,
			impl.NewCenterService,
			impl.NewAppointmentService,
			impl.NewInventoryService,
			impl.NewEventService,
			impl.NewFeedbackService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewMetricsMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewDonorHandler,
			handler.NewAdminHandler,
			handler.NewCenterHandler,
			handler.NewAppointmentHandler,
			handler.NewInventoryHandler,
			handler.NewEventHandler,
			handler.NewFeedbackHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
