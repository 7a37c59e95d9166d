package middleware

import (
	"log/slog"
	"net/http"

	"bitablog/internal/delivery/api/response"
	deliverycontext "bitablog/internal/delivery/context"
	domainerrors "bitablog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware is the API's echo.HTTPErrorHandler. It turns any error a handler returns
// into the JSON error envelope; internal details never reach the client.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

type failure struct {
	status  int
	code    string
	message string
}

func classify(err error) failure {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return failure{status: appErr.HTTPCode(), code: appErr.ErrorCode(), message: appErr.Message()}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}

		return failure{status: httpErr.Code, code: response.CodeHTTPError, message: message}
	}

	return failure{
		status:  http.StatusInternalServerError,
		code:    response.CodeInternalError,
		message: "Internal server error, please try again later",
	}
}

func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	f := classify(err)
	if f.status >= http.StatusInternalServerError {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Request failed",
			slog.String("code", f.code),
			slog.String("method", c.Request().Method),
			slog.String("route", c.Path()),
			slog.Any("error", err),
		)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(f.status)

		return
	}

	_ = response.Error(c, f.status, f.code, f.message, nil)
}
