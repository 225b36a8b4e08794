package git

import (
	"context"
	"errors"

	"github.com/go-git/go-git/v6"
	gitconfig "github.com/go-git/go-git/v6/config"
	"github.com/go-git/go-git/v6/plumbing"
	"go.uber.org/zap"
)

var pushBranchesRefSpec = gitconfig.RefSpec("refs/heads/*:refs/heads/*")

const defaultPushMessage = "Update working copy"

// Push stages and commits every change in the working tree when there is
// any, then pushes all local branches to origin. It reports whether a commit
// was created.
func (s *Service) Push(ctx context.Context, path, message string) (bool, error) {
	logger := s.logger.With(zap.String("path", path))
	committed := false

	err := s.withWorkingCopy(path, func(wc *workingCopy) error {
		status, err := wc.worktree.Status()
		if err != nil {
			return classify(err)
		}

		if !status.IsClean() {
			if message == "" {
				message = defaultPushMessage
			}

			logger.Info("committing local changes", zap.Int("files", len(status)))

			if err := wc.worktree.AddWithOptions(&git.AddOptions{All: true}); err != nil {
				return classify(err)
			}

			hash, err := wc.worktree.Commit(message, &git.CommitOptions{
				All:    true,
				Author: s.signature(),
			})
			if err != nil {
				logger.Error("failed to commit", zap.Error(err))
				return classify(err)
			}

			committed = true
			logger.Info("changes committed", zap.String("commit", hash.String()))
		}

		if err := s.push(ctx, wc, pushBranchesRefSpec); err != nil {
			logger.Error("failed to push", zap.Error(err))
			return err
		}

		logger.Info("pushed branches")
		return nil
	})

	return committed, err
}

// push sends refSpecs to origin. An already up-to-date remote is not an error.
func (s *Service) push(ctx context.Context, wc *workingCopy, refSpecs ...gitconfig.RefSpec) error {
	ctx, cancel := s.networkContext(ctx)
	defer cancel()

	err := wc.repo.PushContext(ctx, &git.PushOptions{
		RemoteName: DefaultRemote,
		RefSpecs:   refSpecs,
		Auth:       s.credentials.Auth(),
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return classify(err)
	}

	return nil
}

func deleteRefSpec(name plumbing.ReferenceName) gitconfig.RefSpec {
	return gitconfig.RefSpec(":" + name.String())
}
