package git

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/object"
)

// Log returns every commit reachable from HEAD, newest first.
func (s *Service) Log(ctx context.Context, path string) ([]Commit, error) {
	var commits []Commit

	err := s.withWorkingCopy(path, func(wc *workingCopy) error {
		head, err := wc.repo.Head()
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return fmt.Errorf("%w: %s", ErrNoCommitsYet, path)
		}
		if err != nil {
			return classify(err)
		}

		iter, err := wc.repo.Log(&git.LogOptions{From: head.Hash()})
		if err != nil {
			return classify(err)
		}
		defer iter.Close()

		return iter.ForEach(func(c *object.Commit) error {
			if ctx.Err() != nil {
				return classify(ctx.Err())
			}
			commits = append(commits, newCommit(c))
			return nil
		})
	})

	return commits, err
}
