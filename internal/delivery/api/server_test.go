package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bitablog/config"
	"bitablog/internal/delivery/api/response"
	"bitablog/internal/delivery/api/router"
	"bitablog/internal/delivery/api/router/handler"
	"bitablog/internal/domain/entity"
	domainerrors "bitablog/internal/domain/errors"
	mockUC "bitablog/internal/mocks/usecase"
	"bitablog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

func newTestServer(t *testing.T) (*echo.Echo, *mockUC.MockArticleUsecase, *mockUC.MockCommentUsecase) {
	articleUC := mockUC.NewMockArticleUsecase(t)
	commentUC := mockUC.NewMockCommentUsecase(t)

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1K"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := router.NewRouter(router.RouterParams{
		ArticleHandler: handler.NewArticleHandler(handler.ArticleHandlerParams{ArticleUC: articleUC}),
		CommentHandler: handler.NewCommentHandler(handler.CommentHandlerParams{CommentUC: commentUC}),
	})

	return newEcho(cfg, logger, r), articleUC, commentUC
}

func do(t *testing.T, e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestHealth(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec, env := do(t, e, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	require.NotNil(t, env.Meta)
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, env.Meta.RequestID, rec.Header().Get(echo.HeaderXRequestID))
}

func TestRequestIDIsPropagated(t *testing.T) {
	e, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(echo.HeaderXRequestID, "client-id")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "client-id", rec.Header().Get(echo.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), `"request_id":"client-id"`)
}

func TestListArticles(t *testing.T) {
	e, articleUC, _ := newTestServer(t)

	articleUC.EXPECT().ListArticles(mock.Anything).Return([]*entity.Article{
		{ID: "r2", Title: "B", Date: "2024-01-05"},
		{ID: "r1", Title: "A", Date: "2024-01-02"},
	})

	rec, env := do(t, e, http.MethodGet, "/api/v1/articles", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var articles []entity.Article
	require.NoError(t, json.Unmarshal(env.Data, &articles))
	require.Len(t, articles, 2)
	assert.Equal(t, "r2", articles[0].ID)
}

func TestGetArticle(t *testing.T) {
	e, articleUC, _ := newTestServer(t)

	articleUC.EXPECT().GetArticleDetail(mock.Anything, "r1").Return(&usecase.ArticleDetail{
		Article:  &entity.Article{ID: "r1", Title: "A"},
		Comments: []*entity.Comment{},
	}, nil)

	rec, env := do(t, e, http.MethodGet, "/api/v1/articles/r1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var detail usecase.ArticleDetail
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, "A", detail.Article.Title)
	assert.NotNil(t, detail.Comments)
}

func TestGetArticle_NotFound(t *testing.T) {
	e, articleUC, _ := newTestServer(t)

	articleUC.EXPECT().GetArticleDetail(mock.Anything, "nope").
		Return(nil, errors.Wrap(domainerrors.ErrArticleNotFound, "article nope"))

	rec, env := do(t, e, http.MethodGet, "/api/v1/articles/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ARTICLE_NOT_FOUND", env.Error.Code)
}

func TestCreateComment(t *testing.T) {
	e, _, commentUC := newTestServer(t)

	commentUC.EXPECT().AddComment(mock.Anything, &usecase.CommentInput{ArticleID: "r1", Author: "", Content: "hello"}).
		Return(&entity.Comment{ID: "c1", ArticleID: "r1", Author: "anonymous", Content: "hello", CreatedAt: "2024-01-05 10:00:00"}, nil)

	rec, env := do(t, e, http.MethodPost, "/api/v1/articles/r1/comments", `{"content":"hello"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"c1","blog_id":"r1","author":"anonymous","content":"hello","created_at":"2024-01-05 10:00:00"}`, string(env.Data))
}

func TestCreateComment_FormBody(t *testing.T) {
	e, _, commentUC := newTestServer(t)

	commentUC.EXPECT().AddComment(mock.Anything, &usecase.CommentInput{ArticleID: "r1", Author: "ann", Content: "hi"}).
		Return(&entity.Comment{ID: "c1"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/articles/r1/comments", strings.NewReader("author=ann&content=hi"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateComment_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		ucErr    error
		wantCode int
		wantErr  string
	}{
		{name: "empty content", body: `{"content":"  "}`, ucErr: errors.WithStack(domainerrors.ErrEmptyComment), wantCode: http.StatusBadRequest, wantErr: "EMPTY_COMMENT"},
		{name: "unknown article", body: `{"content":"hi"}`, ucErr: errors.WithStack(domainerrors.ErrArticleNotFound), wantCode: http.StatusNotFound, wantErr: "ARTICLE_NOT_FOUND"},
		{name: "store failure", body: `{"content":"hi"}`, ucErr: errors.Wrap(domainerrors.ErrCommentSaveFailed, "disk full"), wantCode: http.StatusInternalServerError, wantErr: "COMMENT_SAVE_FAILED"},
		{name: "malformed body", body: `{"content":`, wantCode: http.StatusBadRequest, wantErr: "INVALID_INPUT"},
		{name: "author too long", body: `{"author":"` + strings.Repeat("a", 65) + `","content":"hi"}`, wantCode: http.StatusBadRequest, wantErr: "VALIDATION_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, commentUC := newTestServer(t)
			if tt.ucErr != nil {
				commentUC.EXPECT().AddComment(mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec, env := do(t, e, http.MethodPost, "/api/v1/articles/r1/comments", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantErr, env.Error.Code)
		})
	}
}

func TestCreateComment_BodyTooLarge(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec, env := do(t, e, http.MethodPost, "/api/v1/articles/r1/comments", `{"content":"`+strings.Repeat("x", 2048)+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}

func TestListComments(t *testing.T) {
	e, _, commentUC := newTestServer(t)

	commentUC.EXPECT().ListComments(mock.Anything, "r1").Return([]*entity.Comment{{ID: "c1"}, {ID: "c2"}})

	rec, env := do(t, e, http.MethodGet, "/api/v1/articles/r1/comments", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var comments []entity.Comment
	require.NoError(t, json.Unmarshal(env.Data, &comments))
	assert.Len(t, comments, 2)
}

func TestShareQRCode(t *testing.T) {
	e, articleUC, _ := newTestServer(t)

	articleUC.EXPECT().ShareQRCode(mock.Anything, "r1").Return([]byte("\x89PNG"), nil)

	rec, _ := do(t, e, http.MethodGet, "/api/v1/articles/r1/qrcode", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestClearCache(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		e, articleUC, _ := newTestServer(t)
		articleUC.EXPECT().ClearCache(mock.Anything).Return(nil)

		rec, _ := do(t, e, http.MethodGet, "/clear-cache", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("forbidden", func(t *testing.T) {
		e, articleUC, _ := newTestServer(t)
		articleUC.EXPECT().ClearCache(mock.Anything).Return(errors.WithStack(domainerrors.ErrCacheClearDisabled))

		rec, env := do(t, e, http.MethodGet, "/clear-cache", "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "CACHE_CLEAR_DISABLED", env.Error.Code)
		assert.Equal(t, "禁止存取", env.Error.Message)
	})
}

func TestUnknownRoute(t *testing.T) {
	e, _, _ := newTestServer(t)

	rec, env := do(t, e, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}
