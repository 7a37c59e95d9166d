package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "bitablog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "not found", err: errors.Wrap(domainerrors.ErrArticleNotFound, "article r9"), wantStatus: http.StatusNotFound, wantCode: domainerrors.ErrArticleNotFound.ErrorCode()},
		{name: "echo error", err: echo.ErrMethodNotAllowed, wantStatus: http.StatusMethodNotAllowed, wantCode: "HTTP_ERROR"},
		{name: "unknown", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := classify(tt.err)
			assert.Equal(t, tt.wantStatus, f.status)
			assert.Equal(t, tt.wantCode, f.code)
			assert.NotEmpty(t, f.message)
		})
	}
}

func TestHandleHTTPError_LogsServerErrors(t *testing.T) {
	var buf bytes.Buffer
	m := NewErrorMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

	e := echo.New()
	rec := httptest.NewRecorder()
	m.HandleHTTPError(errors.New("disk on fire"), e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "disk on fire")
	assert.Contains(t, buf.String(), "disk on fire")

	buf.Reset()
	rec = httptest.NewRecorder()
	m.HandleHTTPError(echo.ErrNotFound, e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, buf.String())
}

func TestHandleHTTPError_Head(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))

	rec := httptest.NewRecorder()
	m.HandleHTTPError(echo.ErrNotFound, echo.New().NewContext(httptest.NewRequest(http.MethodHead, "/", nil), rec))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}
