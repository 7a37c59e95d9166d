// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"bitablog/internal/domain/entity"
)

// ArticleDetail is an article together with its comments.
type ArticleDetail struct {
	Article  *entity.Article   `json:"article"`
	Comments []*entity.Comment `json:"comments"`
}

// FetchResult carries the outcome of a record fetch. Records is never nil; when Err is set
// Records is empty and the caller is expected to degrade instead of failing.
type FetchResult struct {
	Records   []entity.RawRecord
	Err       error
	FetchedAt time.Time
	Cached    bool
}

// TokenProvider hands out a valid upstream token, refreshing it on expiry.
type TokenProvider interface {
	Get(ctx context.Context) (entity.Token, error)
	Invalidate()
}

// RecordFetcher retrieves the upstream record set, memoized for a fixed TTL.
type RecordFetcher interface {
	Fetch(ctx context.Context) FetchResult
	Clear()
}

// ArticleUsecase defines the page-facing article operations.
type ArticleUsecase interface {
	// ListArticles returns all articles, newest first. Upstream failures yield an empty list.
	ListArticles(ctx context.Context) []*entity.Article

	// GetArticle returns a single article or ErrArticleNotFound.
	GetArticle(ctx context.Context, id string) (*entity.Article, error)

	// GetArticleDetail returns an article and its comments.
	GetArticleDetail(ctx context.Context, id string) (*ArticleDetail, error)

	// ShareQRCode renders a PNG QR code pointing at the article.
	ShareQRCode(ctx context.Context, id string) ([]byte, error)

	// ClearCache drops memoized records and the cached token. Only allowed in debug mode.
	ClearCache(ctx context.Context) error
}
