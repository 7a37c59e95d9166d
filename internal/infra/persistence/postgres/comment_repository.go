// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"bitablog/internal/domain/entity"
	domainerrors "bitablog/internal/domain/errors"
	"bitablog/internal/domain/repository"
	"bitablog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrDuplicateComment is returned when a comment ID is already stored.
var ErrDuplicateComment = errors.New("comment already exists")

// commentRepository implements the repository.CommentRepository interface.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{
		db: db,
	}
}

// Save appends a comment row.
func (repo *commentRepository) Save(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return ErrDuplicateComment
		}

		return domainerrors.NewPersistenceError("insert", commentM.TableName(), domainerrors.NewDatabaseExecuteError(err, "insert comment"))
	}

	return nil
}

// FindAll retrieves every comment in insertion order.
func (repo *commentRepository) FindAll(ctx context.Context) ([]*entity.Comment, error) {
	var commentModels []*model.CommentModel

	if err := repo.db.WithContext(ctx).
		Order("seq ASC").
		Find(&commentModels).Error; err != nil {
		return nil, domainerrors.NewPersistenceError("select", model.CommentModel{}.TableName(), errors.Wrap(err, "failed to find comments"))
	}

	return toCommentsDomain(commentModels), nil
}

// FindByArticle retrieves the comments of one article in insertion order.
func (repo *commentRepository) FindByArticle(ctx context.Context, articleID string) ([]*entity.Comment, error) {
	var commentModels []*model.CommentModel

	if err := repo.db.WithContext(ctx).
		Where("blog_id = ?", articleID).
		Order("seq ASC").
		Find(&commentModels).Error; err != nil {
		return nil, domainerrors.NewPersistenceError("select", model.CommentModel{}.TableName(), errors.Wrap(err, "failed to find comments by article"))
	}

	return toCommentsDomain(commentModels), nil
}

// --- Mapper Functions ---

func toCommentsDomain(data []*model.CommentModel) []*entity.Comment {
	comments := make([]*entity.Comment, 0, len(data))
	for _, commentM := range data {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments
}

// toCommentDomain converts a GORM CommentModel to a domain Comment entity.
func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:        data.ID,
		ArticleID: data.BlogID,
		Author:    data.Author,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
	}
}

// fromCommentDomain converts a domain Comment entity to a GORM CommentModel.
func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        data.ID,
		BlogID:    data.ArticleID,
		Author:    data.Author,
		Content:   data.Content,
		CreatedAt: data.CreatedAt,
	}
}
