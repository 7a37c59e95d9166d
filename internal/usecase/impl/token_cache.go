// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"bitablog/config"
	deliverycontext "bitablog/internal/delivery/context"
	"bitablog/internal/domain/entity"
	"bitablog/internal/domain/service"
	"bitablog/internal/usecase"

	"github.com/pkg/errors"
)

// tokenCache keeps one tenant token in memory. The lock only guards the cached value;
// the upstream call runs unlocked, so concurrent refreshes may race and the last one wins.
type tokenCache struct {
	client service.BitableClient
	margin time.Duration
	logger *slog.Logger
	now    func() time.Time

	mu    sync.Mutex
	token entity.Token
}

// NewTokenCache is the constructor for the credential cache.
func NewTokenCache(client service.BitableClient, cfg *config.Config, logger *slog.Logger) usecase.TokenProvider {
	return newTokenCache(client, cfg.Cache.TokenSafetyMargin, logger, time.Now)
}

func newTokenCache(client service.BitableClient, margin time.Duration, logger *slog.Logger, now func() time.Time) *tokenCache {
	return &tokenCache{
		client: client,
		margin: margin,
		logger: logger,
		now:    now,
	}
}

// Get returns the cached token while it is valid, otherwise performs a single refresh.
func (c *tokenCache) Get(ctx context.Context) (entity.Token, error) {
	if token, ok := c.cached(); ok {
		return token, nil
	}

	token, err := c.client.TenantAccessToken(ctx)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, c.logger).Error("Failed to obtain tenant access token",
			slog.Any("error", err),
		)

		return entity.Token{}, errors.Wrap(err, "tenant access token")
	}

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	return token, nil
}

// Invalidate forgets the cached token.
func (c *tokenCache) Invalidate() {
	c.mu.Lock()
	c.token = entity.Token{}
	c.mu.Unlock()
}

func (c *tokenCache) cached() (entity.Token, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token.ValidAt(c.now(), c.margin) {
		return c.token, true
	}

	return entity.Token{}, false
}
