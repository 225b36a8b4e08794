package git

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v6"
	"go.uber.org/zap"
)

const metadataDir = ".git"

// Exists reports whether path holds an already cloned working copy.
func Exists(path string) bool {
	_, err := os.Stat(filepath.Join(path, metadataDir))
	return err == nil
}

// workingCopy is an open handle on one local clone. It must be closed by
// whoever opened it.
type workingCopy struct {
	path     string
	repo     *git.Repository
	worktree *git.Worktree
}

func openWorkingCopy(path string) (*workingCopy, error) {
	if !Exists(path) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	repo, err := git.PlainOpen(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBackend, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		closeStorer(repo)
		return nil, fmt.Errorf("%w: %w", ErrBackend, err)
	}

	return &workingCopy{
		path:     path,
		repo:     repo,
		worktree: worktree,
	}, nil
}

// Close releases file handles held by the object storage.
func (w *workingCopy) Close() error {
	return closeStorer(w.repo)
}

func closeStorer(repo *git.Repository) error {
	if closer, ok := repo.Storer.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("failed to close repository storage: %w", err)
		}
	}
	return nil
}

// withWorkingCopy opens the working copy at path, runs fn and always releases
// the handle afterwards.
func (s *Service) withWorkingCopy(path string, fn func(*workingCopy) error) error {
	wc, err := openWorkingCopy(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := wc.Close(); closeErr != nil {
			s.logger.Warn("failed to release working copy", zap.String("path", path), zap.Error(closeErr))
		}
	}()

	return fn(wc)
}

// networkContext bounds a network call by the configured timeout.
func (s *Service) networkContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.config.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.config.Timeout)
}
