package main

import (
	"context"
	"log/slog"
	"os"

	"hauspet/config"
	"hauspet/internal/delivery"
	"hauspet/internal/delivery/http"
	"hauspet/internal/delivery/http/middleware"
	"hauspet/internal/delivery/http/router/handler"
	"hauspet/internal/infra/ai"
	"hauspet/internal/infra/archive"
	"hauspet/internal/infra/auth"
	logs "hauspet/internal/infra/log"
	"hauspet/internal/infra/persistence/migrations"
	"hauspet/internal/infra/persistence/postgres"
	"hauspet/internal/infra/pubsub"
	"hauspet/internal/infra/qrcode"
	"hauspet/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
			autoMigrate,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewPetRepository,
			postgres.NewSensorRepository,
			postgres.NewAlertRepository,
			postgres.NewDeviceRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			ai.NewOpenAIAssistant,
			qrcode.NewQRCodeService,
			archive.NewAudioArchive,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewPetService,
			impl.NewAIService,
			impl.NewHealthService,
			impl.NewAlertService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewPetHandler,
			handler.NewAIHandler,
			handler.NewTelemetryHandler,
			handler.NewAlertHandler,
			handler.NewDeviceHandler,
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

// autoMigrate brings the schema up to date before the server accepts traffic.
func autoMigrate(cfg *config.Config, logger *slog.Logger) error {
	if !cfg.Postgres.AutoMigrate {
		return nil
	}

	migrator, err := migrations.New(cfg.Postgres.MigrationURL(), logger)
	if err != nil {
		return errors.Wrap(err, "failed to open migrator")
	}
	defer migrator.Close()

	return errors.Wrap(migrator.Up(), "failed to migrate database")
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
