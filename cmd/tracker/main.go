package main

import (
	"context"
	"log/slog"
	"os"

	"safetrack/config"
	"safetrack/internal/delivery"
	"safetrack/internal/delivery/api"
	"safetrack/internal/delivery/api/router/handler"
	"safetrack/internal/delivery/mqtt"
	"safetrack/internal/domain/policy"
	"safetrack/internal/infra/cache"
	logs "safetrack/internal/infra/log"
	"safetrack/internal/infra/metrics"
	"safetrack/internal/infra/notification"
	"safetrack/internal/infra/persistence/postgres"
	"safetrack/internal/infra/pubsub"
	"safetrack/internal/infra/sms"
	"safetrack/internal/usecase/impl"

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
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
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
			cache.NewRedisClient,
			metrics.New,
			newAlertingWindow,
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewChildRepository,
			postgres.NewSafeZoneRepository,
			postgres.NewLocationRepository,
			postgres.NewAlertRepository,
			postgres.NewRecipientRepository,
			postgres.NewDeliveryLogRepository,
			postgres.NewDeviceRepository,
		),
		fx.Decorate(cache.DecorateSafeZoneRepository),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			sms.NewGateway,
			notification.NewPushService,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRecipientService,
			impl.NewDispatchService,
			impl.NewIngestionService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewLocationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				mqtt.NewSubscriber,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// newAlertingWindow builds the school-day window from the alerting config
func newAlertingWindow(cfg *config.Config) (*policy.AlertingWindow, error) {
	return policy.NewAlertingWindow(cfg.Alerting.Timezone, cfg.Alerting.WindowStart, cfg.Alerting.WindowEnd)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		// Optional transports provide nil when disabled
		if delivery == nil {
			continue
		}

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
