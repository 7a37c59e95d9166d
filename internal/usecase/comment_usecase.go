package usecase

import (
	"context"

	"bitablog/internal/domain/entity"
)

// CommentInput is a visitor's comment submission
type CommentInput struct {
	ArticleID string
	Author    string
	Content   string
}

// CommentUsecase defines the comment operations
type CommentUsecase interface {
	// AddComment validates and persists a comment. Empty content yields ErrEmptyComment and
	// nothing is stored.
	AddComment(ctx context.Context, input *CommentInput) (*entity.Comment, error)

	// ListComments returns the comments of an article in insertion order. Store failures
	// yield an empty list.
	ListComments(ctx context.Context, articleID string) []*entity.Comment
}
