package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "bitablog/internal/delivery/context"
	"bitablog/internal/domain/service"

	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/comment-events"

// PushMessage is the body Pub/Sub delivers to push subscriptions. The local publisher sends
// the same shape so the comment worker runs unchanged in development.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// localHTTPPublisher pushes comment events straight to a worker endpoint.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

func newLocalHTTPPublisher(endpoint string, timeout time.Duration, logger *slog.Logger) *localHTTPPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		now:        time.Now,
	}
}

func (p *localHTTPPublisher) PublishCommentCreated(ctx context.Context, event *service.CommentCreatedEvent) error {
	msg, err := newCommentMessage(event)
	if err != nil {
		return err
	}

	var push PushMessage
	push.Subscription = localSubscription
	push.Message.Data = base64.StdEncoding.EncodeToString(msg.Data)
	push.Message.Attributes = msg.Attributes
	push.Message.MessageID = event.CommentID
	push.Message.OrderingKey = msg.OrderingKey
	push.Message.PublishTime = p.now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(push)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to push comment %s", event.CommentID)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("comment push to %s returned status %d", p.endpoint, resp.StatusCode)
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Debug("Comment event pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("comment_id", event.CommentID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
