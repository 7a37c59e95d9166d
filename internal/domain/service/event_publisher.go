package service

import (
	"context"
)

// CommentCreatedEvent is published after a comment has been persisted
type CommentCreatedEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	CommentID string `json:"comment_id"`
	ArticleID string `json:"article_id"`
	Author    string `json:"author"`
	CreatedAt string `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCommentCreated publishes a comment event for downstream consumers
	PublishCommentCreated(ctx context.Context, event *CommentCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
