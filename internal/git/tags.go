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

var pushTagsRefSpec = gitconfig.RefSpec("refs/tags/*:refs/tags/*")

// CreateTag creates an annotated tag at HEAD and pushes all tags to origin.
// An empty message defaults to the tag name.
func (s *Service) CreateTag(ctx context.Context, path, tag, message string) error {
	logger := s.logger.With(zap.String("path", path), zap.String("tag", tag))
	logger.Info("creating tag")

	return s.withWorkingCopy(path, func(wc *workingCopy) error {
		head, err := wc.repo.Head()
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return fmt.Errorf("%w: cannot tag %s", ErrNoCommitsYet, tag)
		}
		if err != nil {
			return classify(err)
		}

		exists, err := referenceExists(wc.repo, plumbing.NewTagReferenceName(tag))
		if err != nil {
			return classify(err)
		}
		if exists {
			return fmt.Errorf("%w: tag %s", ErrRefAlreadyExists, tag)
		}

		if message == "" {
			message = tag
		}

		if _, err := wc.repo.CreateTag(tag, head.Hash(), &git.CreateTagOptions{
			Tagger:  s.signature(),
			Message: message,
		}); err != nil {
			logger.Error("failed to create tag", zap.Error(err))
			return classify(err)
		}

		if err := s.push(ctx, wc, pushTagsRefSpec); err != nil {
			logger.Error("failed to push tags", zap.Error(err))
			return err
		}

		logger.Info("tag created", zap.String("commit", head.Hash().String()))
		return nil
	})
}

// DeleteTag removes tag locally and from origin. It fails with ErrRefNotFound
// only when the tag exists in neither place.
func (s *Service) DeleteTag(ctx context.Context, path, tag string) error {
	logger := s.logger.With(zap.String("path", path), zap.String("tag", tag))
	logger.Info("deleting tag")

	return s.withWorkingCopy(path, func(wc *workingCopy) error {
		name := plumbing.NewTagReferenceName(tag)

		local, err := referenceExists(wc.repo, name)
		if err != nil {
			return classify(err)
		}
		if local {
			if err := wc.repo.DeleteTag(tag); err != nil && !errors.Is(err, git.ErrTagNotFound) {
				return classify(err)
			}
		}

		remote, err := s.remoteHasReference(ctx, wc, name)
		if err != nil {
			logger.Error("failed to list remote tags", zap.Error(err))
			return err
		}
		if remote {
			if err := s.push(ctx, wc, deleteRefSpec(name)); err != nil {
				logger.Error("failed to delete remote tag", zap.Error(err))
				return err
			}
		}

		if !local && !remote {
			return fmt.Errorf("%w: tag %s", ErrRefNotFound, tag)
		}

		logger.Info("tag deleted", zap.Bool("local", local), zap.Bool("remote", remote))
		return nil
	})
}

func (s *Service) remoteHasReference(ctx context.Context, wc *workingCopy, name plumbing.ReferenceName) (bool, error) {
	remote, err := wc.repo.Remote(DefaultRemote)
	if errors.Is(err, git.ErrRemoteNotFound) {
		return false, nil
	}
	if err != nil {
		return false, classify(err)
	}

	ctx, cancel := s.networkContext(ctx)
	defer cancel()

	refs, err := remote.ListContext(ctx, &git.ListOptions{Auth: s.credentials.Auth()})
	if err != nil {
		return false, classify(err)
	}

	for _, ref := range refs {
		if ref.Name() == name {
			return true, nil
		}
	}
	return false, nil
}

// CreateBranchFromTag creates branch at the commit tag points to and checks
// it out.
func (s *Service) CreateBranchFromTag(_ context.Context, path, tag, branch string) error {
	logger := s.logger.With(zap.String("path", path), zap.String("tag", tag), zap.String("branch", branch))
	logger.Info("creating branch from tag")

	return s.withWorkingCopy(path, func(wc *workingCopy) error {
		ref, err := wc.repo.Tag(tag)
		if errors.Is(err, git.ErrTagNotFound) {
			return fmt.Errorf("%w: tag %s", ErrRefNotFound, tag)
		}
		if err != nil {
			return classify(err)
		}

		hash, err := peelTag(wc.repo, ref)
		if err != nil {
			return classify(err)
		}

		name := plumbing.NewBranchReferenceName(branch)
		exists, err := referenceExists(wc.repo, name)
		if err != nil {
			return classify(err)
		}
		if exists {
			return fmt.Errorf("%w: branch %s", ErrRefAlreadyExists, branch)
		}

		if err := wc.worktree.Checkout(&git.CheckoutOptions{
			Hash:   hash,
			Branch: name,
			Create: true,
		}); err != nil {
			logger.Error("failed to check out tag", zap.Error(err))
			return classify(err)
		}

		logger.Info("branch created from tag", zap.String("commit", hash.String()))
		return nil
	})
}

// peelTag resolves an annotated or lightweight tag ref to its commit hash.
func peelTag(repo *git.Repository, ref *plumbing.Reference) (plumbing.Hash, error) {
	tagObject, err := repo.TagObject(ref.Hash())
	if errors.Is(err, plumbing.ErrObjectNotFound) {
		return ref.Hash(), nil
	}
	if err != nil {
		return plumbing.ZeroHash, err
	}

	commit, err := tagObject.Commit()
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return commit.Hash, nil
}
