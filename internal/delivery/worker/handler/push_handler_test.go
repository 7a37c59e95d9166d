package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bitablog/config"
	deliverycontext "bitablog/internal/delivery/context"
	"bitablog/internal/domain/entity"
	"bitablog/internal/domain/service"
	mockRepo "bitablog/internal/mocks/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockRepo.MockCommentRepository) {
	repo := mockRepo.NewMockCommentRepository(t)

	return NewPushHandler(PushHandlerParams{
		Config:      cfg,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		CommentRepo: repo,
	}), repo
}

func pushBody(t *testing.T, event any, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "m1"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func push(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

var commentEvent = service.CommentCreatedEvent{
	RequestID: "req-1",
	CommentID: "c1",
	ArticleID: "r1",
	Author:    "alice",
	CreatedAt: "2024-01-05 10:00:00",
}

func TestHandlePush_RecordsActivity(t *testing.T) {
	h, repo := newTestPushHandler(t, &config.Config{})

	repo.EXPECT().FindByArticle(mock.Anything, "r1").Return([]*entity.Comment{{ID: "c0"}, {ID: "c1"}}, nil)

	rec := push(h, pushBody(t, commentEvent, map[string]string{"request_id": "req-attr"}))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_UnknownCommentIsAcknowledged(t *testing.T) {
	h, repo := newTestPushHandler(t, &config.Config{})

	repo.EXPECT().FindByArticle(mock.Anything, "r1").Return([]*entity.Comment{}, nil)

	rec := push(h, pushBody(t, commentEvent, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_StoreFailureIsRetried(t *testing.T) {
	h, repo := newTestPushHandler(t, &config.Config{})

	repo.EXPECT().FindByArticle(mock.Anything, "r1").Return(nil, errors.New("store unavailable"))

	rec := push(h, pushBody(t, commentEvent, nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_MalformedMessages(t *testing.T) {
	h, _ := newTestPushHandler(t, &config.Config{})

	tests := map[string]string{
		"not json":       `{"message":`,
		"bad base64":     `{"message":{"data":"%%%"}}`,
		"bad event":      `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("nope")) + `"}}`,
		"missing fields": pushBody(t, service.CommentCreatedEvent{Author: "x"}, nil),
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, push(h, body).Code)
		})
	}
}

type stubVerifier struct{ err error }

func (v stubVerifier) Verify(*http.Request) error { return v.err }

func TestHandlePush_VerifiesToken(t *testing.T) {
	h, repo := newTestPushHandler(t, &config.Config{})

	h.verifier = stubVerifier{err: errors.New("bad token")}
	assert.Equal(t, http.StatusUnauthorized, push(h, pushBody(t, commentEvent, nil)).Code)

	repo.EXPECT().FindByArticle(mock.Anything, "r1").Return([]*entity.Comment{{ID: "c1"}}, nil)
	h.verifier = stubVerifier{}
	assert.Equal(t, http.StatusOK, push(h, pushBody(t, commentEvent, nil)).Code)
}

func TestNewPushHandler_Verification(t *testing.T) {
	tests := []struct {
		name   string
		pubsub *config.PubSubConfig
		env    string
		want   bool
	}{
		{name: "google in production", pubsub: &config.PubSubConfig{Provider: "google"}, env: "production", want: true},
		{name: "google locally", pubsub: &config.PubSubConfig{Provider: "google"}, env: "local"},
		{name: "local provider", pubsub: &config.PubSubConfig{Provider: "local"}, env: "production"},
		{name: "disabled", env: "production"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PubSub: tt.pubsub}
			cfg.Env.Env = tt.env

			h, _ := newTestPushHandler(t, cfg)
			assert.Equal(t, tt.want, h.verifier != nil)
		})
	}
}

func TestPushRequestID(t *testing.T) {
	var msg PubSubMessage
	event := commentEvent

	msg.Message.Attributes = map[string]string{"request_id": "from-attr"}
	assert.Equal(t, "from-attr", pushRequestID(context.Background(), &msg, &event))

	msg.Message.Attributes = nil
	assert.Equal(t, "req-1", pushRequestID(context.Background(), &msg, &event))

	event.RequestID = ""
	ctx := deliverycontext.WithRequestID(context.Background(), "from-push")
	assert.Equal(t, "from-push", pushRequestID(ctx, &msg, &event))

	assert.NotEmpty(t, pushRequestID(context.Background(), &msg, &event))
}

func TestGoogleTokenVerifier(t *testing.T) {
	validPayload := func(claims map[string]any) *idtoken.Payload {
		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: claims}
	}

	tests := []struct {
		name           string
		header         string
		serviceAccount string
		payload        *idtoken.Payload
		validateErr    error
		wantAudience   string
		wantErr        bool
	}{
		{name: "missing header", wantErr: true},
		{name: "not bearer", header: "Basic abc", wantErr: true},
		{name: "invalid token", header: "Bearer t", validateErr: errors.New("expired"), wantAudience: "http://worker.test/push", wantErr: true},
		{name: "wrong issuer", header: "Bearer t", payload: &idtoken.Payload{Issuer: "evil"}, wantAudience: "http://worker.test/push", wantErr: true},
		{name: "unverified email", header: "Bearer t", payload: validPayload(map[string]any{"email_verified": false}), wantAudience: "http://worker.test/push", wantErr: true},
		{
			name: "wrong service account", header: "Bearer t", serviceAccount: "push@p.iam.gserviceaccount.com",
			payload: validPayload(map[string]any{"email": "other@p.iam.gserviceaccount.com"}), wantAudience: "http://worker.test/push", wantErr: true,
		},
		{
			name: "valid", header: "Bearer t", serviceAccount: "push@p.iam.gserviceaccount.com",
			payload:      validPayload(map[string]any{"email": "push@p.iam.gserviceaccount.com", "email_verified": true}),
			wantAudience: "http://worker.test/push",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAudience string
			v := &googleTokenVerifier{
				serviceAccount: tt.serviceAccount,
				validate: func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
					assert.Equal(t, "t", token)
					gotAudience = audience

					return tt.payload, tt.validateErr
				},
			}

			req := httptest.NewRequest(http.MethodPost, "http://worker.test/push", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			err := v.Verify(req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantAudience, gotAudience)
		})
	}
}

func TestGoogleTokenVerifier_ConfiguredAudience(t *testing.T) {
	v := &googleTokenVerifier{
		audience: "https://comments.example.com/push",
		validate: func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "https://comments.example.com/push", audience)

			return &idtoken.Payload{Issuer: "accounts.google.com"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	req.Header.Set("Authorization", "Bearer t")
	assert.NoError(t, v.Verify(req))
}
