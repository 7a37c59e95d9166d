package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"bitablog/config"
	"bitablog/internal/domain/lifecycle"
	"bitablog/internal/infra/persistence/model"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL connection used by the comment store. The comments table is
// migrated once the connection has been verified on start.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Each write is a single-row insert.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if err := db.WithContext(ctx).AutoMigrate(&model.CommentModel{}); err != nil {
				return errors.Wrap(err, "failed to migrate comments table")
			}

			monitor := &poolMonitor{
				logger:        params.Logger.With(slog.String("store", "comments")),
				stats:         sqlDB.Stats,
				warnThreshold: dbPoolWarnDurationThreshold,
			}
			go monitor.run(monitorCtx, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolMonitor reports connection pool contention on the comments database.
type poolMonitor struct {
	logger        *slog.Logger
	stats         func() sql.DBStats
	warnThreshold time.Duration
}

func (m *poolMonitor) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := m.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := m.stats()
			m.observe(ctx, prev, cur)
			prev = cur
		}
	}
}

// observe logs when callers waited for a connection since the previous sample.
func (m *poolMonitor) observe(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if waited >= m.warnThreshold {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Comment store pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("max_open", cur.MaxOpenConnections),
	)
}
