package main

import (
	"context"
	"log/slog"
	"os"

	"pos/config"
	"pos/internal/delivery"
	"pos/internal/delivery/api"
	"pos/internal/delivery/api/router/handler"
	"pos/internal/domain/repository"
	"pos/internal/domain/service"
	"pos/internal/infra/backend"
	logs "pos/internal/infra/log"
	"pos/internal/infra/persistence/memory"
	"pos/internal/infra/persistence/postgres"
	"pos/internal/infra/pubsub"
	"pos/internal/infra/qrcode"
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
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		backend.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newTableRepository,
			memory.NewSessionRepository,
		),
	)
}

// newTableRepository keeps open tables in PostgreSQL when configured, in memory otherwise
func newTableRepository(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (repository.TableRepository, error) {
	if cfg.Postgres == nil {
		logger.Info("PostgreSQL not configured, keeping open tables in memory")

		return memory.NewTableRepository(), nil
	}

	db, err := postgres.New(postgres.Params{Lifecycle: lc, Config: cfg, Logger: logger})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create table store")
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return postgres.AutoMigrate(ctx, db)
		},
	})

	return postgres.NewTableRepository(db), nil
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			backend.NewOrderGateway,
			backend.NewCustomerDirectory,
			pubsub.NewEventPublisher,
			newReceiptCodeService,
		),
	)
}

// newReceiptCodeService creates a receipt QR code service with dependency injection
func newReceiptCodeService(cfg *config.Config) service.ReceiptCodeService {
	if cfg.Receipt == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.Receipt.Size, cfg.Receipt.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTableLocks,
			impl.NewTableService,
			impl.NewCustomerService,
			impl.NewSettlementService,
			impl.NewCheckoutService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewTableHandler,
			handler.NewCustomerHandler,
			handler.NewCheckoutHandler,
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
		),
	)
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
