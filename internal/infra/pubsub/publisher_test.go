package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bitablog/config"
	"bitablog/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.CommentCreatedEvent {
	return &service.CommentCreatedEvent{
		RequestID: "req-1",
		CommentID: "c-1",
		ArticleID: "rec1",
		Author:    "alice",
		CreatedAt: "2024-01-05 10:00:00",
	}
}

func TestLocalHTTPPublisher_PublishCommentCreated(t *testing.T) {
	var (
		received    PushMessage
		gotHeaderID string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaderID = r.Header.Get("X-Request-Id")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := newLocalHTTPPublisher(server.URL, time.Second, testLogger())
	require.NoError(t, publisher.PublishCommentCreated(context.Background(), testEvent()))

	assert.Equal(t, "req-1", gotHeaderID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "c-1", received.Message.MessageID)
	assert.Equal(t, "rec1", received.Message.OrderingKey)
	assert.Equal(t, map[string]string{
		"comment_id": "c-1",
		"article_id": "rec1",
		"request_id": "req-1",
	}, received.Message.Attributes)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.CommentCreatedEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, *testEvent(), event)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	err := newLocalHTTPPublisher(server.URL, time.Second, testLogger()).PublishCommentCreated(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestLocalHTTPPublisher_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	err := newLocalHTTPPublisher(server.URL, 20*time.Millisecond, testLogger()).
		PublishCommentCreated(context.Background(), testEvent())
	assert.Error(t, err)
}

func TestNewCommentMessage(t *testing.T) {
	msg, err := newCommentMessage(testEvent())
	require.NoError(t, err)
	assert.Equal(t, "rec1", msg.OrderingKey)
	assert.JSONEq(t, `{
		"request_id": "req-1",
		"comment_id": "c-1",
		"article_id": "rec1",
		"author": "alice",
		"created_at": "2024-01-05 10:00:00"
	}`, string(msg.Data))

	untraced := testEvent()
	untraced.RequestID = ""
	msg, err = newCommentMessage(untraced)
	require.NoError(t, err)
	assert.NotContains(t, msg.Attributes, "request_id")

	_, err = newCommentMessage(&service.CommentCreatedEvent{CommentID: "c-1"})
	assert.Error(t, err)
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured"},
		{name: "empty provider", cfg: &config.PubSubConfig{}},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:9/push"}},
		{name: "local with timeout", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:9/push", PublishTimeout: time.Second}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: true},
		{name: "unknown provider", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: testLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, publisher)
			switch {
			case tt.cfg == nil || tt.cfg.Provider == "":
				assert.IsType(t, &noopPublisher{}, publisher)
				assert.NoError(t, publisher.PublishCommentCreated(context.Background(), testEvent()))
			case tt.cfg.Provider == "local":
				require.IsType(t, &localHTTPPublisher{}, publisher)
				want := tt.cfg.PublishTimeout
				if want == 0 {
					want = config.DefaultPublishTimeout
				}
				assert.Equal(t, want, publisher.(*localHTTPPublisher).httpClient.Timeout)
			}
		})
	}
}
