package git

import (
	"context"
	"errors"
	"sort"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"go.uber.org/zap"
)

// Snapshot derives the current state of the working copy at path. A
// repository without commits yields a snapshot with a nil LastCommit.
func (s *Service) Snapshot(_ context.Context, path string) (*Snapshot, error) {
	var snapshot *Snapshot

	err := s.withWorkingCopy(path, func(wc *workingCopy) error {
		snap := &Snapshot{}

		head, err := wc.repo.Head()
		switch {
		case errors.Is(err, plumbing.ErrReferenceNotFound):
		case err != nil:
			return classify(err)
		default:
			commit, commitErr := wc.repo.CommitObject(head.Hash())
			if commitErr != nil {
				return classify(commitErr)
			}
			c := newCommit(commit)
			snap.LastCommit = &c
		}

		if snap.CurrentBranch, err = currentBranch(wc.repo); err != nil {
			return classify(err)
		}
		if snap.Branches, err = listBranches(wc.repo); err != nil {
			return classify(err)
		}
		if snap.Tags, err = listTags(wc.repo); err != nil {
			return classify(err)
		}

		status, err := wc.worktree.Status()
		if err != nil {
			return classify(err)
		}
		snap.Status = newWorkingTreeStatus(status)

		snapshot = snap
		return nil
	})
	if err != nil {
		s.logger.Warn("failed to read snapshot", zap.String("path", path), zap.Error(err))
	}

	return snapshot, err
}

func newWorkingTreeStatus(status git.Status) WorkingTreeStatus {
	result := WorkingTreeStatus{
		Untracked:   []string{},
		Modified:    []string{},
		Missing:     []string{},
		Conflicting: []string{},
	}

	for file, st := range status {
		switch {
		case st.Staging == git.UpdatedButUnmerged || st.Worktree == git.UpdatedButUnmerged:
			result.Conflicting = append(result.Conflicting, file)
		case st.Worktree == git.Untracked:
			result.Untracked = append(result.Untracked, file)
		case st.Worktree == git.Modified:
			result.Modified = append(result.Modified, file)
		case st.Worktree == git.Deleted && st.Staging != git.Deleted:
			result.Missing = append(result.Missing, file)
		}
	}

	sort.Strings(result.Untracked)
	sort.Strings(result.Modified)
	sort.Strings(result.Missing)
	sort.Strings(result.Conflicting)

	return result
}
