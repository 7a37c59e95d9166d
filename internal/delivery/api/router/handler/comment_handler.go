package handler

import (
	"net/http"

	"bitablog/internal/delivery/api/response"
	"bitablog/internal/delivery/api/validator"
	"bitablog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CommentHandlerParams holds dependencies for CommentHandler, injected by Fx.
type CommentHandlerParams struct {
	fx.In

	CommentUC usecase.CommentUsecase
}

// CommentHandler serves article comments.
type CommentHandler struct {
	commentUC usecase.CommentUsecase
}

// NewCommentHandler is the constructor for CommentHandler
func NewCommentHandler(params CommentHandlerParams) *CommentHandler {
	return &CommentHandler{
		commentUC: params.CommentUC,
	}
}

// CreateCommentRequest represents the request body for submitting a comment
type CreateCommentRequest struct {
	Author  string `json:"author" form:"author" validate:"max=64"`
	Content string `json:"content" form:"content" validate:"max=2000"`
}

// ListComments returns the comments of an article in submission order.
func (h *CommentHandler) ListComments(c echo.Context) error {
	comments := h.commentUC.ListComments(c.Request().Context(), c.Param("id"))

	return response.Success(c, http.StatusOK, comments)
}

// CreateComment stores a new comment on an article.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	var req CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidInput(c, "Invalid comment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, "Invalid comment input", validator.FieldErrors(err))
	}

	comment, err := h.commentUC.AddComment(c.Request().Context(), &usecase.CommentInput{
		ArticleID: c.Param("id"),
		Author:    req.Author,
		Content:   req.Content,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, comment)
}
