package pubsub

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bitablog/internal/delivery/context"
	"bitablog/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePublisher sends comment events to a Cloud Pub/Sub topic and waits for the ack.
type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	ordered   bool
	timeout   time.Duration
	logger    *slog.Logger
}

type googlePublisherOptions struct {
	ProjectID      string
	TopicID        string
	OrderByArticle bool
	Timeout        time.Duration
}

// newGooglePublisher connects to the project and checks that the topic exists.
func newGooglePublisher(ctx context.Context, opts googlePublisherOptions, logger *slog.Logger) (*googlePublisher, error) {
	client, err := pubsub.NewClient(ctx, opts.ProjectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topic := "projects/" + opts.ProjectID + "/topics/" + opts.TopicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "comment topic %s is not available", topic)
	}

	publisher := client.Publisher(opts.TopicID)
	publisher.EnableMessageOrdering = opts.OrderByArticle

	logger.Info("Comment events go to Google Pub/Sub",
		slog.String("topic", topic),
		slog.Bool("ordered", opts.OrderByArticle),
	)

	return &googlePublisher{
		client:    client,
		publisher: publisher,
		ordered:   opts.OrderByArticle,
		timeout:   opts.Timeout,
		logger:    logger,
	}, nil
}

func (p *googlePublisher) PublishCommentCreated(ctx context.Context, event *service.CommentCreatedEvent) error {
	msg, err := newCommentMessage(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	out := &pubsub.Message{Data: msg.Data, Attributes: msg.Attributes}
	if p.ordered {
		out.OrderingKey = msg.OrderingKey
	}

	serverID, err := p.publisher.Publish(ctx, out).Get(ctx)
	if err != nil {
		if p.ordered {
			// A failed ordered publish pauses its key until resumed.
			p.publisher.ResumePublish(msg.OrderingKey)
		}

		return errors.Wrapf(err, "failed to publish comment %s", event.CommentID)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("Comment event published",
		slog.String("comment_id", event.CommentID),
		slog.String("message_id", serverID),
	)

	return nil
}

func (p *googlePublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
