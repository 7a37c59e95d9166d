package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"bitablog/config"
	deliverycontext "bitablog/internal/delivery/context"
	"bitablog/internal/domain/entity"
	domainerrors "bitablog/internal/domain/errors"
	"bitablog/internal/domain/repository"
	"bitablog/internal/domain/service"
	"bitablog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ArticleServiceParams holds dependencies for the article service, injected by Fx.
type ArticleServiceParams struct {
	fx.In

	Fetcher     usecase.RecordFetcher
	Tokens      usecase.TokenProvider
	CommentRepo repository.CommentRepository
	QRCode      service.QRCodeService
	Config      *config.Config
	Logger      *slog.Logger
}

type articleService struct {
	fetcher     usecase.RecordFetcher
	tokens      usecase.TokenProvider
	commentRepo repository.CommentRepository
	qrcode      service.QRCodeService
	fields      config.FieldMapping
	shareBase   string
	debug       bool
	logger      *slog.Logger
}

// NewArticleService creates a new article service instance
func NewArticleService(params ArticleServiceParams) usecase.ArticleUsecase {
	var shareBase string
	if params.Config.QRCode != nil {
		shareBase = strings.TrimRight(params.Config.QRCode.BaseURL, "/")
	}

	return &articleService{
		fetcher:     params.Fetcher,
		tokens:      params.Tokens,
		commentRepo: params.CommentRepo,
		qrcode:      params.QRCode,
		fields:      params.Config.Feishu.Fields,
		shareBase:   shareBase,
		debug:       params.Config.Env.Debug,
		logger:      params.Logger,
	}
}

func (srv *articleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListArticles returns every article, newest first.
func (srv *articleService) ListArticles(ctx context.Context) []*entity.Article {
	result := srv.fetcher.Fetch(ctx)
	if result.Err != nil {
		srv.log(ctx).Warn("Serving empty article list", slog.Any("error", result.Err))
	}

	return TransformRecords(result.Records, srv.fields)
}

// GetArticle looks an article up by its record ID among the current record set.
func (srv *articleService) GetArticle(ctx context.Context, id string) (*entity.Article, error) {
	result := srv.fetcher.Fetch(ctx)
	if result.Err != nil {
		srv.log(ctx).Warn("Article lookup without records", slog.String("article_id", id), slog.Any("error", result.Err))
	}

	for _, record := range result.Records {
		if record.RecordID == id {
			return toArticle(record, srv.fields), nil
		}
	}

	return nil, errors.Wrapf(domainerrors.ErrArticleNotFound, "article %s", id)
}

// GetArticleDetail returns an article and its comments. Comment read failures degrade to
// an empty list.
func (srv *articleService) GetArticleDetail(ctx context.Context, id string) (*usecase.ArticleDetail, error) {
	article, err := srv.GetArticle(ctx, id)
	if err != nil {
		return nil, err
	}

	return &usecase.ArticleDetail{
		Article:  article,
		Comments: loadComments(ctx, srv.commentRepo, srv.log(ctx), id),
	}, nil
}

// ShareQRCode encodes the article link, or the article's page when it has none.
func (srv *articleService) ShareQRCode(ctx context.Context, id string) ([]byte, error) {
	article, err := srv.GetArticle(ctx, id)
	if err != nil {
		return nil, err
	}

	target := article.Link
	if target == "" {
		target = srv.shareBase + "/articles/" + url.PathEscape(article.ID)
	}

	png, err := srv.qrcode.GenerateArticleQR(target)
	if err != nil {
		srv.log(ctx).Error("Failed to generate article QR code", slog.String("article_id", id), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrQRCodeFailed, err.Error())
	}

	return png, nil
}

// ClearCache drops memoized records and the cached token.
func (srv *articleService) ClearCache(ctx context.Context) error {
	if !srv.debug {
		return errors.WithStack(domainerrors.ErrCacheClearDisabled)
	}

	srv.fetcher.Clear()
	srv.tokens.Invalidate()
	srv.log(ctx).Info("Article cache cleared")

	return nil
}

// loadComments reads an article's comments, degrading store failures to an empty list.
func loadComments(ctx context.Context, repo repository.CommentRepository, logger *slog.Logger, articleID string) []*entity.Comment {
	comments, err := repo.FindByArticle(ctx, articleID)
	if err != nil {
		logger.Error("Failed to load comments", slog.String("article_id", articleID), slog.Any("error", err))

		return []*entity.Comment{}
	}

	return comments
}
