// Package jsonfile stores comments as a single JSON array file.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"bitablog/internal/domain/entity"
	domainerrors "bitablog/internal/domain/errors"
	"bitablog/internal/domain/repository"

	"github.com/pkg/errors"
)

const filePerm = 0o644

// commentRepository implements repository.CommentRepository on top of one JSON file.
// Every Save rewrites the complete array. Saves are serialized within the process and the
// file is replaced atomically, so concurrent submissions cannot drop each other.
type commentRepository struct {
	path string
	mu   sync.Mutex
}

// NewCommentRepository is the constructor for the file-backed comment store.
func NewCommentRepository(path string) repository.CommentRepository {
	return &commentRepository{path: path}
}

// Save appends comment to the stored array.
func (repo *commentRepository) Save(ctx context.Context, comment *entity.Comment) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	comments, err := repo.read()
	if err != nil {
		return err
	}

	comments = append(comments, comment)

	return repo.write(comments)
}

// FindAll returns every stored comment; a missing file is an empty store.
func (repo *commentRepository) FindAll(ctx context.Context) ([]*entity.Comment, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	return repo.read()
}

// FindByArticle returns the comments whose blog_id equals articleID.
func (repo *commentRepository) FindByArticle(ctx context.Context, articleID string) ([]*entity.Comment, error) {
	comments, err := repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*entity.Comment, 0, len(comments))
	for _, comment := range comments {
		if comment.ArticleID == articleID {
			filtered = append(filtered, comment)
		}
	}

	return filtered, nil
}

func (repo *commentRepository) read() ([]*entity.Comment, error) {
	data, err := os.ReadFile(repo.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []*entity.Comment{}, nil
	}
	if err != nil {
		return nil, domainerrors.NewPersistenceError("read", repo.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []*entity.Comment{}, nil
	}

	var comments []*entity.Comment
	if err := json.Unmarshal(data, &comments); err != nil {
		return nil, domainerrors.NewPersistenceError("decode", repo.path, err)
	}
	if comments == nil {
		comments = []*entity.Comment{}
	}

	return comments, nil
}

func (repo *commentRepository) write(comments []*entity.Comment) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(comments); err != nil {
		return domainerrors.NewPersistenceError("encode", repo.path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(repo.path), filepath.Base(repo.path)+".*.tmp")
	if err != nil {
		return domainerrors.NewPersistenceError("write", repo.path, err)
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return domainerrors.NewPersistenceError("chmod", repo.path, err)
	}

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return domainerrors.NewPersistenceError("write", repo.path, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return domainerrors.NewPersistenceError("sync", repo.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return domainerrors.NewPersistenceError("write", repo.path, err)
	}

	if err := os.Rename(tmpName, repo.path); err != nil {
		os.Remove(tmpName)

		return domainerrors.NewPersistenceError("rename", repo.path, err)
	}

	return nil
}
