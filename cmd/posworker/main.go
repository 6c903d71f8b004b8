package main

import (
	"context"
	"log/slog"
	"os"

	"pos/config"
	"pos/internal/delivery"
	"pos/internal/delivery/worker"
	"pos/internal/delivery/worker/handler"
	"pos/internal/domain/constants"
	"pos/internal/domain/repository"
	logs "pos/internal/infra/log"
	"pos/internal/infra/persistence/memory"
	"pos/internal/infra/persistence/postgres"
	"pos/internal/usecase/impl"

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
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newSettlementJournalRepository,
		),
	)
}

// newSettlementJournalRepository keeps the journal in PostgreSQL when configured, in memory otherwise
func newSettlementJournalRepository(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (repository.SettlementJournalRepository, error) {
	if cfg.Postgres == nil {
		logger.Warn("PostgreSQL not configured, settlement journal is kept in memory")

		return memory.NewSettlementJournalRepository(), nil
	}

	db, err := postgres.New(postgres.Params{Lifecycle: lc, Config: cfg, Logger: logger})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create settlement journal store")
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return postgres.AutoMigrate(ctx, db)
		},
	})

	return postgres.NewSettlementJournalRepository(db), nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewJournalService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
			handler.NewJournalHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				newQueueConsumers,
				fx.ResultTags(`group:"deliveries,flatten"`),
			),
		),
	)
}

// newQueueConsumers adds the RabbitMQ consumer when settlements are published through RabbitMQ
func newQueueConsumers(params worker.RabbitMQConsumerParams) ([]delivery.Delivery, error) {
	if params.Cfg.PubSub == nil || params.Cfg.PubSub.Provider != constants.PubSubProviderRabbitMQ {
		return nil, nil
	}

	consumer, err := worker.NewRabbitMQConsumer(params)
	if err != nil {
		return nil, err
	}

	return []delivery.Delivery{consumer}, nil
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
