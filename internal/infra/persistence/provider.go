// Package persistence selects the comment store backend from configuration.
package persistence

import (
	"log/slog"

	"bitablog/config"
	"bitablog/internal/domain/repository"
	"bitablog/internal/infra/persistence/jsonfile"
	"bitablog/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the comment store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewCommentRepository creates the comment store named by comments.driver
func NewCommentRepository(params Params) (repository.CommentRepository, error) {
	cfg := params.Config.Comments

	switch cfg.Driver {
	case config.CommentsDriverFile:
		params.Logger.Info("Using JSON file comment store", slog.String("path", cfg.FilePath))

		return jsonfile.NewCommentRepository(cfg.FilePath), nil

	case config.CommentsDriverPostgres:
		params.Logger.Info("Using PostgreSQL comment store")

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewCommentRepository(db), nil

	default:
		return nil, errors.Errorf("unknown comments driver: %s", cfg.Driver)
	}
}
