package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"bitablog/config"
	deliverycontext "bitablog/internal/delivery/context"
	"bitablog/internal/domain/constants"
	"bitablog/internal/domain/entity"
	"bitablog/internal/domain/repository"
	"bitablog/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage is the body of a Pub/Sub push request.
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// pushError ends a push with status. 2xx acks, 503 asks Pub/Sub to redeliver.
type pushError struct {
	status int
	err    error
}

func (e *pushError) Error() string { return e.err.Error() }

func (e *pushError) Unwrap() error { return e.err }

func rejectPush(status int, err error) error {
	return &pushError{status: status, err: err}
}

func pushStatus(err error) int {
	var pe *pushError
	if errors.As(err, &pe) {
		return pe.status
	}

	return http.StatusInternalServerError
}

// tokenVerifier validates the OIDC token Google attaches to push requests.
type tokenVerifier interface {
	Verify(req *http.Request) error
}

// PushHandler consumes comment events pushed by Pub/Sub and confirms each comment is stored.
type PushHandler struct {
	verifier    tokenVerifier
	logger      *slog.Logger
	commentRepo repository.CommentRepository
}

type PushHandlerParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	CommentRepo repository.CommentRepository
}

// NewPushHandler verifies push tokens only for the google provider outside local runs.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		logger:      params.Logger.With(slog.String("component", "comment-worker")),
		commentRepo: params.CommentRepo,
	}

	cfg := params.Config.PubSub
	if cfg != nil && cfg.Provider == constants.PubSubProviderGoogle && params.Config.Env.Env != constants.EnvLocal {
		h.verifier = &googleTokenVerifier{
			audience:       cfg.PushAudience,
			serviceAccount: cfg.PushServiceAccount,
			validate:       idtoken.Validate,
		}
	}

	return h
}

// HandlePush processes one pushed comment event. Malformed messages are acked with 400 so
// they are not redelivered; store failures answer 503.
func (h *PushHandler) HandlePush(c echo.Context) error {
	if h.verifier != nil {
		if err := h.verifier.Verify(c.Request()); err != nil {
			h.logger.Warn("Rejected push request", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	msg, event, err := decodePush(c)
	if err != nil {
		h.logger.Warn("Dropping malformed comment event", slog.Any("error", err))

		return c.NoContent(pushStatus(err))
	}

	requestID := pushRequestID(c.Request().Context(), msg, event)
	logger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("message_id", msg.Message.MessageID),
	)
	ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	if err := h.confirmComment(ctx, event); err != nil {
		status := pushStatus(err)
		logger.Error("Comment event not processed",
			slog.String("comment_id", event.CommentID),
			slog.Int("status", status),
			slog.Any("error", err),
		)

		return c.NoContent(status)
	}

	return c.NoContent(http.StatusOK)
}

func decodePush(c echo.Context) (*PubSubMessage, *service.CommentCreatedEvent, error) {
	var msg PubSubMessage
	if err := c.Bind(&msg); err != nil {
		return nil, nil, rejectPush(http.StatusBadRequest, errors.Wrap(err, "push body"))
	}

	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return nil, nil, rejectPush(http.StatusBadRequest, errors.Wrap(err, "message data"))
	}

	var event service.CommentCreatedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, nil, rejectPush(http.StatusBadRequest, errors.Wrap(err, "comment event"))
	}
	if event.CommentID == "" || event.ArticleID == "" {
		return nil, nil, rejectPush(http.StatusBadRequest, errors.New("comment event without comment_id or article_id"))
	}

	return &msg, &event, nil
}

// pushRequestID keeps the trace of the submission that produced the event: message
// attribute, then event payload, then the push request's own ID.
func pushRequestID(ctx context.Context, msg *PubSubMessage, event *service.CommentCreatedEvent) string {
	for _, id := range []string{
		msg.Message.Attributes[constants.AttrRequestID],
		event.RequestID,
		deliverycontext.GetRequestIDFromContext(ctx),
	} {
		if id != "" {
			return id
		}
	}

	return uuid.NewString()
}

// confirmComment looks the comment up among its article's comments and logs the article's
// activity. A comment that is not stored is acked: redelivery cannot make it appear.
func (h *PushHandler) confirmComment(ctx context.Context, event *service.CommentCreatedEvent) error {
	comments, err := h.commentRepo.FindByArticle(ctx, event.ArticleID)
	if err != nil {
		return rejectPush(http.StatusServiceUnavailable, err)
	}

	if !slices.ContainsFunc(comments, func(comment *entity.Comment) bool { return comment.ID == event.CommentID }) {
		return rejectPush(http.StatusOK, errors.Errorf("comment %s is not stored for article %s", event.CommentID, event.ArticleID))
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Comment activity recorded",
		slog.String("comment_id", event.CommentID),
		slog.String("article_id", event.ArticleID),
		slog.String("author", event.Author),
		slog.Int("article_comments", len(comments)),
	)

	return nil
}

// googleTokenVerifier checks push tokens as described in
// https://cloud.google.com/pubsub/docs/authenticate-push-subscriptions
type googleTokenVerifier struct {
	audience       string
	serviceAccount string
	validate       func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

func (v *googleTokenVerifier) Verify(req *http.Request) error {
	token, ok := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || token == "" {
		return errors.New("missing bearer token")
	}

	audience := v.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = scheme + "://" + req.Host + req.URL.Path
	}

	payload, err := v.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "invalid push token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("unexpected token issuer %s", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("token email is not verified")
	}
	if v.serviceAccount != "" {
		if email, _ := payload.Claims["email"].(string); email != v.serviceAccount {
			return errors.Errorf("token issued to %q, want %q", email, v.serviceAccount)
		}
	}

	return nil
}
