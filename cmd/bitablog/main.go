package main

import (
	"context"
	"log/slog"
	"os"

	"bitablog/config"
	"bitablog/internal/delivery"
	"bitablog/internal/delivery/api"
	"bitablog/internal/delivery/api/router/handler"
	"bitablog/internal/infra/feishu"
	logs "bitablog/internal/infra/log"
	"bitablog/internal/infra/persistence"
	"bitablog/internal/infra/pubsub"
	"bitablog/internal/infra/qrcode"
	"bitablog/internal/usecase/impl"

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
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
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
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Provide(
		persistence.NewCommentRepository,
	)
}

func injectService() fx.Option {
	return fx.Provide(
		feishu.NewClientFromConfig,
		qrcode.NewQRCodeServiceFromConfig,
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewTokenCache,
		impl.NewRecordFetcher,
		impl.NewArticleService,
		impl.NewCommentService,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewArticleHandler,
		handler.NewCommentHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			api.NewServer,
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
