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
	"golang.org/x/sync/singleflight"
)

const recordsFlightKey = "records"

// recordFetcher memoizes the upstream record set for ttl. Failed fetches are not memoized.
type recordFetcher struct {
	client service.BitableClient
	tokens usecase.TokenProvider
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time

	group singleflight.Group

	mu        sync.RWMutex
	records   []entity.RawRecord
	fetchedAt time.Time
	valid     bool
}

// NewRecordFetcher is the constructor for the memoized record fetcher.
func NewRecordFetcher(
	client service.BitableClient,
	tokens usecase.TokenProvider,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.RecordFetcher {
	return newRecordFetcher(client, tokens, cfg.Cache.TTL, logger, time.Now)
}

func newRecordFetcher(
	client service.BitableClient,
	tokens usecase.TokenProvider,
	ttl time.Duration,
	logger *slog.Logger,
	now func() time.Time,
) *recordFetcher {
	return &recordFetcher{
		client: client,
		tokens: tokens,
		ttl:    ttl,
		logger: logger,
		now:    now,
	}
}

// Fetch returns the memoized records when fresh, otherwise fetches them once. Concurrent
// misses share one upstream request.
func (f *recordFetcher) Fetch(ctx context.Context) usecase.FetchResult {
	if result, ok := f.memoized(); ok {
		return result
	}

	v, _, _ := f.group.Do(recordsFlightKey, func() (any, error) {
		// Another flight may have filled the memo while we waited for the key.
		if result, ok := f.memoized(); ok {
			return result, nil
		}

		// Detached so one cancelled caller does not fail every waiter; the HTTP client
		// timeout still bounds the call.
		return f.fetch(context.WithoutCancel(ctx)), nil
	})

	return v.(usecase.FetchResult)
}

// Clear drops the memoized records.
func (f *recordFetcher) Clear() {
	f.mu.Lock()
	f.records = nil
	f.fetchedAt = time.Time{}
	f.valid = false
	f.mu.Unlock()
}

func (f *recordFetcher) memoized() (usecase.FetchResult, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if !f.valid || f.now().Sub(f.fetchedAt) >= f.ttl {
		return usecase.FetchResult{}, false
	}

	return usecase.FetchResult{
		Records:   f.records,
		FetchedAt: f.fetchedAt,
		Cached:    true,
	}, true
}

func (f *recordFetcher) fetch(ctx context.Context) usecase.FetchResult {
	logger := deliverycontext.GetLoggerOrDefault(ctx, f.logger)
	fetchedAt := f.now()

	token, err := f.tokens.Get(ctx)
	if err != nil {
		return usecase.FetchResult{
			Records:   []entity.RawRecord{},
			Err:       errors.Wrap(err, "records unavailable"),
			FetchedAt: fetchedAt,
		}
	}

	records, err := f.client.ListRecords(ctx, token.Value)
	if err != nil {
		logger.Error("Failed to fetch bitable records", slog.Any("error", err))

		return usecase.FetchResult{
			Records:   []entity.RawRecord{},
			Err:       errors.Wrap(err, "list records"),
			FetchedAt: fetchedAt,
		}
	}

	f.mu.Lock()
	f.records = records
	f.fetchedAt = fetchedAt
	f.valid = true
	f.mu.Unlock()

	logger.Debug("Fetched bitable records", slog.Int("count", len(records)))

	return usecase.FetchResult{
		Records:   records,
		FetchedAt: fetchedAt,
	}
}
