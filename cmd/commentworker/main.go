package main

import (
	"context"
	"log/slog"
	"os"

	"bitablog/config"
	"bitablog/internal/delivery"
	"bitablog/internal/delivery/worker"
	"bitablog/internal/delivery/worker/handler"
	logs "bitablog/internal/infra/log"
	"bitablog/internal/infra/persistence"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
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
	return fx.Provide(
		persistence.NewCommentRepository,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewPushHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			worker.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(ctx); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))

						// Trigger graceful shutdown to execute all OnStop hooks
						if shutdownErr := params.Shutdown(); shutdownErr != nil {
							params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
							os.Exit(1)
						}
					}
				}()
			}

			return nil
		},
	})
}
