package git

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v6/util"
	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/object"
	"go.uber.org/zap"
)

// MergeResult describes the outcome of a successful merge.
type MergeResult struct {
	Commit   string   // Merge commit hash; empty when already up to date
	UpToDate bool     // Source was already reachable from target
	Paths    []string // Paths brought over from the source side
}

// Merge checks out target and merges source into it, always recording a
// merge commit (no fast-forward), then pushes all branches to origin.
// Paths changed on both sides are merged line by line. Overlapping hunks
// abort with ErrMergeConflict and leave HEAD at target.
func (s *Service) Merge(ctx context.Context, path, target, source, message string) (*MergeResult, error) {
	logger := s.logger.With(zap.String("path", path), zap.String("target", target), zap.String("source", source))
	logger.Info("merging branches")

	var result *MergeResult

	err := s.withWorkingCopy(path, func(wc *workingCopy) error {
		if err := s.checkoutForMerge(wc, target); err != nil {
			return err
		}

		headRef, err := wc.repo.Head()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrNoCommitsYet, err)
		}
		head, err := wc.repo.CommitObject(headRef.Hash())
		if err != nil {
			return classify(err)
		}

		sourceHash, err := wc.repo.ResolveRevision(plumbing.Revision(source))
		if err != nil {
			return fmt.Errorf("%w: %s", ErrRefNotFound, source)
		}
		sourceCommit, err := wc.repo.CommitObject(*sourceHash)
		if err != nil {
			return classify(err)
		}

		upToDate, err := sourceCommit.IsAncestor(head)
		if err != nil {
			return classify(err)
		}
		if upToDate {
			logger.Info("already up to date")
			if err := s.push(ctx, wc, pushBranchesRefSpec); err != nil {
				logger.Error("failed to push branches", zap.Error(err))
				return err
			}
			result = &MergeResult{UpToDate: true, Paths: []string{}}
			return nil
		}

		paths, err := s.applyMerge(wc, head, sourceCommit)
		if err != nil {
			logger.Warn("merge aborted", zap.Error(err))
			return err
		}

		if message == "" {
			message = fmt.Sprintf("Merge branch '%s' into %s", source, target)
		}

		hash, err := wc.worktree.Commit(message, &git.CommitOptions{
			Author:            s.signature(),
			Parents:           []plumbing.Hash{head.Hash, sourceCommit.Hash},
			AllowEmptyCommits: true,
		})
		if err != nil {
			logger.Error("failed to record merge commit", zap.Error(err))
			return classify(err)
		}

		if err := s.push(ctx, wc, pushBranchesRefSpec); err != nil {
			logger.Error("failed to push merge", zap.Error(err))
			return err
		}

		result = &MergeResult{Commit: hash.String(), Paths: paths}
		logger.Info("branches merged", zap.String("commit", hash.String()), zap.Int("paths", len(paths)))
		return nil
	})

	return result, err
}

func (s *Service) checkoutForMerge(wc *workingCopy, target string) error {
	current, err := currentBranch(wc.repo)
	if err != nil {
		return classify(err)
	}

	if current != target {
		if err := wc.worktree.Checkout(&git.CheckoutOptions{
			Branch: plumbing.NewBranchReferenceName(target),
		}); err != nil {
			return classify(err)
		}
	}

	status, err := wc.worktree.Status()
	if err != nil {
		return classify(err)
	}
	for file, st := range status {
		if st.Staging != git.Unmodified && st.Staging != git.Untracked ||
			st.Worktree != git.Unmodified && st.Worktree != git.Untracked {
			return fmt.Errorf("%w: %s", ErrDirtyWorkingTree, file)
		}
	}

	return nil
}

// applyMerge brings every path changed on the source side since the merge
// base into the index and working tree, merging paths both sides touched.
// It returns the applied paths.
func (s *Service) applyMerge(wc *workingCopy, head, source *object.Commit) ([]string, error) {
	bases, err := head.MergeBase(source)
	if err != nil {
		return nil, classify(err)
	}
	if len(bases) == 0 {
		return nil, fmt.Errorf("%w: unrelated histories", ErrMergeConflict)
	}

	baseTree, err := bases[0].Tree()
	if err != nil {
		return nil, classify(err)
	}
	ourTree, err := head.Tree()
	if err != nil {
		return nil, classify(err)
	}
	theirTree, err := source.Tree()
	if err != nil {
		return nil, classify(err)
	}

	ours, err := changedPaths(baseTree, ourTree)
	if err != nil {
		return nil, classify(err)
	}
	theirs, err := changedPaths(baseTree, theirTree)
	if err != nil {
		return nil, classify(err)
	}

	merged := make(map[string][]byte)
	var conflicts []string
	for file, theirHash := range theirs {
		ourHash, ok := ours[file]
		if !ok || ourHash == theirHash {
			continue
		}

		content, clean, err := mergeFile(baseTree, ourTree, theirTree, file, ourHash, theirHash)
		if err != nil {
			return nil, classify(err)
		}
		if !clean {
			conflicts = append(conflicts, file)
			continue
		}
		merged[file] = content
	}
	if len(conflicts) > 0 {
		sort.Strings(conflicts)
		return nil, fmt.Errorf("%w: %s", ErrMergeConflict, strings.Join(conflicts, ", "))
	}

	paths := make([]string, 0, len(theirs))
	for file, theirHash := range theirs {
		if ourHash, ok := ours[file]; ok && ourHash == theirHash {
			continue
		}
		paths = append(paths, file)
	}
	sort.Strings(paths)

	for _, file := range paths {
		if theirs[file].IsZero() {
			if _, err := wc.worktree.Remove(file); err != nil {
				return nil, classify(err)
			}
			continue
		}

		var err error
		if content, ok := merged[file]; ok {
			err = writeMergedFile(wc, ourTree, file, content)
		} else {
			err = writeTreeFile(wc, theirTree, file)
		}
		if err != nil {
			return nil, classify(err)
		}
		if _, err := wc.worktree.Add(file); err != nil {
			return nil, classify(err)
		}
	}

	return paths, nil
}

// changedPaths maps every path that differs between from and to onto its
// blob hash in to. Deleted paths map to the zero hash.
func changedPaths(from, to *object.Tree) (map[string]plumbing.Hash, error) {
	changes, err := object.DiffTree(from, to)
	if err != nil {
		return nil, err
	}

	paths := make(map[string]plumbing.Hash, len(changes))
	for _, change := range changes {
		if change.From.Name != "" && change.From.Name != change.To.Name {
			paths[change.From.Name] = plumbing.ZeroHash
		}
		if change.To.Name != "" {
			paths[change.To.Name] = change.To.TreeEntry.Hash
		}
	}

	return paths, nil
}

// mergeFile merges a path changed on both sides line by line. Deleting a
// path on one side while the other edits it never merges cleanly.
func mergeFile(baseTree, ourTree, theirTree *object.Tree, file string, ourHash, theirHash plumbing.Hash) ([]byte, bool, error) {
	if ourHash.IsZero() || theirHash.IsZero() {
		return nil, false, nil
	}

	base, _, err := readTreeFile(baseTree, file)
	if err != nil && !errors.Is(err, object.ErrFileNotFound) {
		return nil, false, err
	}
	ours, _, err := readTreeFile(ourTree, file)
	if err != nil {
		return nil, false, err
	}
	theirs, _, err := readTreeFile(theirTree, file)
	if err != nil {
		return nil, false, err
	}

	content, clean := mergeLines(base, ours, theirs)
	return content, clean, nil
}

func readTreeFile(tree *object.Tree, file string) ([]byte, os.FileMode, error) {
	f, err := tree.File(file)
	if err != nil {
		return nil, 0, err
	}

	reader, err := f.Reader()
	if err != nil {
		return nil, 0, err
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, 0, err
	}

	mode, err := f.Mode.ToOSFileMode()
	if err != nil {
		return nil, 0, err
	}

	return data, mode, nil
}

func writeTreeFile(wc *workingCopy, tree *object.Tree, file string) error {
	data, mode, err := readTreeFile(tree, file)
	if err != nil {
		return err
	}
	return writeWorktreeFile(wc, file, data, mode)
}

// writeMergedFile writes merged content keeping the mode of our side.
func writeMergedFile(wc *workingCopy, ourTree *object.Tree, file string, data []byte) error {
	f, err := ourTree.File(file)
	if err != nil {
		return err
	}
	mode, err := f.Mode.ToOSFileMode()
	if err != nil {
		return err
	}
	return writeWorktreeFile(wc, file, data, mode)
}

func writeWorktreeFile(wc *workingCopy, file string, data []byte, mode os.FileMode) error {
	fs := wc.worktree.Filesystem
	if dir := filepath.Dir(file); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return util.WriteFile(fs, file, data, mode)
}
