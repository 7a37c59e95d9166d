package errors

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// AppError is an error the HTTP layer can render: a status, a stable code and a message
// safe to show to readers.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
}

// BaseError is a fixed AppError. Wrap it with errors.Wrap to add context; errors.As still
// finds it.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message}
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

var (
	ErrArticleNotFound    = NewBaseError(http.StatusNotFound, "ARTICLE_NOT_FOUND", "找不到該文章")
	ErrEmptyComment       = NewBaseError(http.StatusBadRequest, "EMPTY_COMMENT", "評論內容不可為空")
	ErrCommentSaveFailed  = NewBaseError(http.StatusInternalServerError, "COMMENT_SAVE_FAILED", "儲存評論失敗")
	ErrCacheClearDisabled = NewBaseError(http.StatusForbidden, "CACHE_CLEAR_DISABLED", "禁止存取")
	ErrQRCodeFailed       = NewBaseError(http.StatusInternalServerError, "QRCODE_FAILED", "產生 QR Code 失敗")
)

// FailureKind classifies upstream failures.
type FailureKind string

const (
	// AuthFailure covers bad credentials or transport errors while obtaining a token.
	AuthFailure FailureKind = "auth"
	// FetchFailure covers non-zero upstream codes or transport errors while listing records.
	FetchFailure FailureKind = "fetch"
)

// UpstreamError describes a failed call to the Bitable API. Code is the upstream business
// code when a response was decoded, zero otherwise.
type UpstreamError struct {
	Kind  FailureKind
	Code  int
	Msg   string
	Cause error
}

// NewUpstreamError builds an UpstreamError from a transport or decode failure.
func NewUpstreamError(kind FailureKind, cause error) *UpstreamError {
	return &UpstreamError{Kind: kind, Cause: cause}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("upstream %s failure: %v", e.Kind, e.Cause)
	}

	return fmt.Sprintf("upstream %s failure: code=%d msg=%s", e.Kind, e.Code, e.Msg)
}

// Unwrap returns the underlying cause
func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// IsUpstreamFailure reports whether err carries an UpstreamError of the given kind.
func IsUpstreamFailure(err error, kind FailureKind) bool {
	var upstreamErr *UpstreamError
	if !errors.As(err, &upstreamErr) {
		return false
	}

	return upstreamErr.Kind == kind
}

// PersistenceError describes an unreadable, unwritable or corrupt comment store.
type PersistenceError struct {
	Op    string
	Path  string
	Cause error
}

// NewPersistenceError creates a persistence error for the given operation
func NewPersistenceError(op, path string, cause error) *PersistenceError {
	return &PersistenceError{Op: op, Path: path, Cause: cause}
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("comment store %s failed: %v", e.Op, e.Cause)
	}

	return fmt.Sprintf("comment store %s %s failed: %v", e.Op, e.Path, e.Cause)
}

// Unwrap returns the underlying cause
func (e *PersistenceError) Unwrap() error {
	return e.Cause
}

// DatabaseExecuteError is a failed statement against the comments database.
type DatabaseExecuteError struct {
	err       error
	statement string
}

func NewDatabaseExecuteError(err error, statement string) AppError {
	return &DatabaseExecuteError{err: err, statement: statement}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrapf(e.err, "database %s failed", e.statement).Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "資料庫執行失敗" }
