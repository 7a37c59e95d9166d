package pubsub

import (
	"encoding/json"

	"bitablog/internal/domain/constants"
	"bitablog/internal/domain/service"

	"github.com/pkg/errors"
)

// commentMessage is a comment event as it travels on the topic.
type commentMessage struct {
	Data       []byte
	Attributes map[string]string
	// OrderingKey groups the events of one article.
	OrderingKey string
}

func newCommentMessage(event *service.CommentCreatedEvent) (*commentMessage, error) {
	if event == nil || event.CommentID == "" || event.ArticleID == "" {
		return nil, errors.New("comment event requires comment_id and article_id")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		constants.AttrCommentID: event.CommentID,
		constants.AttrArticleID: event.ArticleID,
	}
	if event.RequestID != "" {
		attributes[constants.AttrRequestID] = event.RequestID
	}

	return &commentMessage{
		Data:        data,
		Attributes:  attributes,
		OrderingKey: event.ArticleID,
	}, nil
}
