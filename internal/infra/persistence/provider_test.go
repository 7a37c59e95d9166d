package persistence

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"bitablog/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewCommentRepository_FileDriver(t *testing.T) {
	cfg := &config.Config{Comments: &config.CommentsConfig{
		Driver:   config.CommentsDriverFile,
		FilePath: filepath.Join(t.TempDir(), "comments.json"),
	}}

	repo, err := NewCommentRepository(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	comments, err := repo.FindAll(t.Context())
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestNewCommentRepository_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Comments: &config.CommentsConfig{Driver: "bolt"}}

	_, err := NewCommentRepository(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.ErrorContains(t, err, "unknown comments driver")
}
