package git

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v6"
	gitconfig "github.com/go-git/go-git/v6/config"
	"github.com/go-git/go-git/v6/plumbing"
	"go.uber.org/zap"
)

// CreateBranch creates branch at HEAD and checks it out.
func (s *Service) CreateBranch(_ context.Context, path, branch string) error {
	logger := s.logger.With(zap.String("path", path), zap.String("branch", branch))
	logger.Info("creating branch")

	return s.withWorkingCopy(path, func(wc *workingCopy) error {
		name := plumbing.NewBranchReferenceName(branch)

		exists, err := referenceExists(wc.repo, name)
		if err != nil {
			return classify(err)
		}
		if exists {
			return fmt.Errorf("%w: branch %s", ErrRefAlreadyExists, branch)
		}

		// Keep leaves index and working tree untouched; the new branch starts
		// at the commit HEAD already points to.
		if err := wc.worktree.Checkout(&git.CheckoutOptions{
			Branch: name,
			Create: true,
			Keep:   true,
		}); err != nil {
			logger.Error("failed to create branch", zap.Error(err))
			return classify(err)
		}

		logger.Info("branch created")
		return nil
	})
}

// SwitchBranch checks out branch, first materializing it from origin when it
// only exists there.
func (s *Service) SwitchBranch(ctx context.Context, path, branch string) error {
	logger := s.logger.With(zap.String("path", path), zap.String("branch", branch))

	return s.withWorkingCopy(path, func(wc *workingCopy) error {
		current, err := currentBranch(wc.repo)
		if err != nil {
			return classify(err)
		}
		if current == branch {
			logger.Info("branch already checked out")
			return nil
		}

		logger.Info("switching branch", zap.String("from", current))

		if s.ClassifyBranch(wc.repo, branch) == BranchTypeRemote {
			if err := s.fetchBranch(ctx, wc, branch); err != nil {
				logger.Error("failed to fetch remote branch", zap.Error(err))
				return err
			}
		}

		if err := wc.worktree.Checkout(&git.CheckoutOptions{
			Branch: plumbing.NewBranchReferenceName(branch),
		}); err != nil {
			logger.Error("failed to switch branch", zap.Error(err))
			return classify(err)
		}

		logger.Info("branch switched")
		return nil
	})
}

// fetchBranch fetches heads/<branch> from origin into the same-named local ref.
func (s *Service) fetchBranch(ctx context.Context, wc *workingCopy, branch string) error {
	ctx, cancel := s.networkContext(ctx)
	defer cancel()

	name := plumbing.NewBranchReferenceName(branch)
	err := wc.repo.FetchContext(ctx, &git.FetchOptions{
		RemoteName: DefaultRemote,
		RefSpecs:   []gitconfig.RefSpec{gitconfig.RefSpec(name.String() + ":" + name.String())},
		Auth:       s.credentials.Auth(),
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return classify(err)
	}

	return nil
}

// DeleteCurrentBranch checks out the safe branch, force-deletes the branch
// that was current and removes it from origin when it exists there. It
// returns the deleted branch name.
func (s *Service) DeleteCurrentBranch(ctx context.Context, path string) (string, error) {
	var deleted string

	err := s.withWorkingCopy(path, func(wc *workingCopy) error {
		branch, err := currentBranch(wc.repo)
		if err != nil {
			return classify(err)
		}

		logger := s.logger.With(zap.String("path", path), zap.String("branch", branch))

		safe := s.config.safeBranch()
		if branch == safe || s.config.isProtected(branch) {
			logger.Warn("refusing to delete protected branch")
			return fmt.Errorf("%w: %s", ErrProtectedBranch, branch)
		}

		logger.Info("deleting branch")

		if err := wc.worktree.Checkout(&git.CheckoutOptions{
			Branch: plumbing.NewBranchReferenceName(safe),
		}); err != nil {
			logger.Error("failed to check out safe branch", zap.String("safe_branch", safe), zap.Error(err))
			return classify(err)
		}

		if err := wc.repo.Storer.RemoveReference(plumbing.NewBranchReferenceName(branch)); err != nil {
			return classify(err)
		}
		if err := wc.repo.DeleteBranch(branch); err != nil && !errors.Is(err, git.ErrBranchNotFound) {
			return classify(err)
		}

		onRemote, err := s.remoteHasReference(ctx, wc, plumbing.NewBranchReferenceName(branch))
		if err != nil {
			logger.Error("failed to list remote branches", zap.Error(err))
			return err
		}
		if onRemote {
			if err := s.push(ctx, wc, deleteRefSpec(plumbing.NewBranchReferenceName(branch))); err != nil {
				logger.Error("failed to delete remote branch", zap.Error(err))
				return err
			}
		}
		if err := wc.repo.Storer.RemoveReference(plumbing.NewRemoteReferenceName(DefaultRemote, branch)); err != nil {
			return classify(err)
		}

		deleted = branch
		logger.Info("branch deleted", zap.Bool("remote", onRemote))
		return nil
	})

	return deleted, err
}
