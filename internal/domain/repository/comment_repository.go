// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"bitablog/internal/domain/entity"
)

// CommentRepository is the append-only comment store. Implementations return comments in
// insertion order.
type CommentRepository interface {
	// Save appends a new comment to the store.
	Save(ctx context.Context, comment *entity.Comment) error

	// FindAll returns every stored comment.
	FindAll(ctx context.Context) ([]*entity.Comment, error)

	// FindByArticle returns the comments attached to articleID.
	FindByArticle(ctx context.Context, articleID string) ([]*entity.Comment, error)
}
