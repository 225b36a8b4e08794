package git

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"go.uber.org/zap"
)

// CloneOrPull clones remoteURL into path when no working copy exists there,
// otherwise pulls the current branch unless it only exists locally. It returns
// the refreshed branch list.
func (s *Service) CloneOrPull(ctx context.Context, remoteURL, path string) ([]string, error) {
	logger := s.logger.With(zap.String("url", remoteURL), zap.String("path", path))

	if !Exists(path) {
		if err := s.clone(ctx, remoteURL, path, logger); err != nil {
			return nil, err
		}
	} else if err := s.pull(ctx, path, logger); err != nil {
		return nil, err
	}

	return s.Branches(path)
}

func (s *Service) clone(ctx context.Context, remoteURL, path string, logger *zap.Logger) error {
	logger.Info("cloning repository")

	ctx, cancel := s.networkContext(ctx)
	defer cancel()

	_, statErr := os.Stat(path)
	created := errors.Is(statErr, fs.ErrNotExist)

	_, err := git.PlainCloneContext(ctx, path, &git.CloneOptions{
		URL:        remoteURL,
		RemoteName: DefaultRemote,
		Auth:       s.credentials.Auth(),
	})
	if err != nil {
		logger.Error("failed to clone repository", zap.Error(err))
		if cleanErr := removeFailedClone(path, created); cleanErr != nil {
			logger.Warn("failed to remove partial clone", zap.Error(cleanErr))
		}
		return classify(err)
	}

	logger.Info("repository cloned successfully")
	return nil
}

// removeFailedClone drops whatever a failed clone left at path so the next
// sync retries the clone. A directory that existed before only loses the
// repository metadata.
func removeFailedClone(path string, created bool) error {
	if created {
		return os.RemoveAll(path)
	}
	return os.RemoveAll(filepath.Join(path, metadataDir))
}

func (s *Service) pull(ctx context.Context, path string, logger *zap.Logger) error {
	return s.withWorkingCopy(path, func(wc *workingCopy) error {
		branch, err := currentBranch(wc.repo)
		if err != nil {
			return classify(err)
		}

		logger = logger.With(zap.String("branch", branch))

		branchType := s.ClassifyBranch(wc.repo, branch)
		if branchType == BranchTypeLocal {
			logger.Info("skipping pull of local-only branch")
			return nil
		}

		logger.Info("pulling repository", zap.Stringer("branch_type", branchType))

		ctx, cancel := s.networkContext(ctx)
		defer cancel()

		err = wc.worktree.PullContext(ctx, &git.PullOptions{
			RemoteName:    DefaultRemote,
			ReferenceName: plumbing.NewBranchReferenceName(branch),
			Auth:          s.credentials.Auth(),
		})
		if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
			logger.Error("failed to pull repository", zap.Error(err))
			return classify(err)
		}

		logger.Info("repository pulled successfully")
		return nil
	})
}

// Branches returns the display-ordered branch list of the working copy.
func (s *Service) Branches(path string) ([]string, error) {
	var branches []string

	err := s.withWorkingCopy(path, func(wc *workingCopy) error {
		var listErr error
		branches, listErr = listBranches(wc.repo)
		if listErr != nil {
			return fmt.Errorf("%w: %w", ErrBackend, listErr)
		}
		return nil
	})

	return branches, err
}
