package postgres

import (
	"errors"
	"testing"

	"bitablog/internal/domain/entity"
	"bitablog/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestCommentMappers(t *testing.T) {
	comment := &entity.Comment{
		ID:        "5f0c1a52-6a4e-4c1e-9f3e-2d2b1f6f9a10",
		ArticleID: "r1",
		Author:    "anonymous",
		Content:   "hello",
		CreatedAt: "2024-01-05 10:00:00",
	}

	commentM := fromCommentDomain(comment)
	assert.Equal(t, "r1", commentM.BlogID)
	assert.Equal(t, comment, toCommentDomain(commentM))

	assert.Nil(t, toCommentDomain(nil))
	assert.Nil(t, fromCommentDomain(nil))
	assert.Equal(t, []*entity.Comment{comment}, toCommentsDomain([]*model.CommentModel{commentM}))
	assert.Empty(t, toCommentsDomain(nil))
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_comments_id" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
}
