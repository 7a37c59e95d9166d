package pubsub

import (
	"context"
	"log/slog"

	"bitablog/config"
	"bitablog/internal/domain/constants"
	"bitablog/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops comment events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishCommentCreated(_ context.Context, event *service.CommentCreatedEvent) error {
	p.logger.Debug("Comment events disabled", slog.String("comment_id", event.CommentID))

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher selects the comment event publisher from pubsub.provider.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger.With(slog.String("component", "comment-events"))

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Comment events disabled")

		return &noopPublisher{logger: logger}, nil
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	timeout := cfg.PublishTimeout
	if timeout <= 0 {
		timeout = config.DefaultPublishTimeout
	}

	var publisher service.EventPublisher
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		logger.Info("Comment events pushed over HTTP", slog.String("endpoint", cfg.LocalEndpoint))
		publisher = newLocalHTTPPublisher(cfg.LocalEndpoint, timeout, logger)
	case constants.PubSubProviderGoogle:
		google, err := newGooglePublisher(params.Ctx, googlePublisherOptions{
			ProjectID:      cfg.ProjectID,
			TopicID:        cfg.TopicID,
			OrderByArticle: cfg.OrderByArticle,
			Timeout:        timeout,
		}, logger)
		if err != nil {
			return nil, err
		}
		publisher = google
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func validate(cfg *config.PubSubConfig) error {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return errors.New("pubsub.localEndpoint is required for the local provider")
		}
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return errors.New("pubsub.projectId and pubsub.topicId are required for the google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	return nil
}

//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
