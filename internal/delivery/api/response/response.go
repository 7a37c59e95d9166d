// Package response writes the blog API's JSON envelopes.
package response

import (
	"net/http"

	deliverycontext "bitablog/internal/delivery/context"
	domainerrors "bitablog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeValidationError = "VALIDATION_ERROR"
	CodeHTTPError       = "HTTP_ERROR"
	CodeInternalError   = "INTERNAL_ERROR"
)

// SuccessResponse wraps every successful JSON payload.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse wraps every JSON error.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Details carries per-field validation messages; never set for 5xx.
	Details any `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// PNG writes an inline image download named filename.
func PNG(c echo.Context, filename string, png []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, "inline; filename="+filename)

	return c.Blob(http.StatusOK, "image/png", png)
}

func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

// InvalidInput reports a body that could not be bound.
func InvalidInput(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, CodeInvalidInput, message, nil)
}

// ValidationFailed reports field-level validation messages keyed by JSON field name.
func ValidationFailed(c echo.Context, message string, fields map[string]string) error {
	return Error(c, http.StatusBadRequest, CodeValidationError, message, fields)
}

func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, CodeInternalError, "Internal server error, please try again later", nil)
}

// HandleAppError writes client errors directly; server errors and unknown errors are
// returned to the central error handler, which logs them.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)
	}

	return errors.WithStack(err)
}
