package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bitablog/config"
	deliverycontext "bitablog/internal/delivery/context"
	"bitablog/internal/domain/entity"
	domainerrors "bitablog/internal/domain/errors"
	"bitablog/internal/domain/repository"
	"bitablog/internal/domain/service"
	"bitablog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// CommentServiceParams holds dependencies for the comment service, injected by Fx.
type CommentServiceParams struct {
	fx.In

	CommentRepo repository.CommentRepository
	Articles    usecase.ArticleUsecase
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

type commentService struct {
	commentRepo   repository.CommentRepository
	articles      usecase.ArticleUsecase
	publisher     service.EventPublisher
	defaultAuthor string
	logger        *slog.Logger
	now           func() time.Time
}

// NewCommentService creates a new comment service instance
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		commentRepo:   params.CommentRepo,
		articles:      params.Articles,
		publisher:     params.Publisher,
		defaultAuthor: params.Config.Comments.DefaultAuthor,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddComment persists a comment for an existing article.
func (srv *commentService) AddComment(ctx context.Context, input *usecase.CommentInput) (*entity.Comment, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, errors.WithStack(domainerrors.ErrEmptyComment)
	}

	if _, err := srv.articles.GetArticle(ctx, input.ArticleID); err != nil {
		return nil, err
	}

	author := strings.TrimSpace(input.Author)
	if author == "" {
		author = srv.defaultAuthor
	}

	comment := &entity.Comment{
		ID:        uuid.NewString(),
		ArticleID: input.ArticleID,
		Author:    author,
		Content:   content,
		CreatedAt: srv.now().Format(entity.CommentTimeLayout),
	}

	if err := srv.commentRepo.Save(ctx, comment); err != nil {
		srv.log(ctx).Error("Failed to save comment",
			slog.String("article_id", comment.ArticleID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrCommentSaveFailed, err.Error())
	}

	srv.log(ctx).Info("Comment saved",
		slog.String("comment_id", comment.ID),
		slog.String("article_id", comment.ArticleID),
	)

	srv.publish(ctx, comment)

	return comment, nil
}

// ListComments returns an article's comments in insertion order.
func (srv *commentService) ListComments(ctx context.Context, articleID string) []*entity.Comment {
	return loadComments(ctx, srv.commentRepo, srv.log(ctx), articleID)
}

// publish announces a saved comment. Publishing failures are logged only.
func (srv *commentService) publish(ctx context.Context, comment *entity.Comment) {
	event := &service.CommentCreatedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		CommentID: comment.ID,
		ArticleID: comment.ArticleID,
		Author:    comment.Author,
		CreatedAt: comment.CreatedAt,
	}

	if err := srv.publisher.PublishCommentCreated(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish comment event",
			slog.String("comment_id", comment.ID),
			slog.Any("error", err),
		)
	}
}
