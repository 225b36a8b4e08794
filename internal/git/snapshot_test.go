package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Snapshot(t *testing.T) {
	f := cloned(t)
	require.NoError(t, f.service.CreateTag(t.Context(), f.work, "v1.0.0", ""))
	require.NoError(t, f.service.CreateBranch(t.Context(), f.work, "develop"))

	require.NoError(t, os.WriteFile(filepath.Join(f.work, "untracked.txt"), []byte("u\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(f.work, "README.md"), []byte("changed\n"), 0o644))

	snap, err := f.service.Snapshot(t.Context(), f.work)
	require.NoError(t, err)

	require.NotNil(t, snap.LastCommit)
	assert.Equal(t, "initial commit", snap.LastCommit.ShortMessage)
	assert.Equal(t, "Test Author", snap.LastCommit.AuthorName)
	assert.Equal(t, "develop", snap.CurrentBranch)
	assert.Equal(t, []string{"master", "develop"}, snap.Branches)
	assert.Equal(t, []string{"v1.0.0"}, snap.Tags)
	assert.Equal(t, []string{"untracked.txt"}, snap.Status.Untracked)
	assert.Equal(t, []string{"README.md"}, snap.Status.Modified)
	assert.Empty(t, snap.Status.Missing)
	assert.False(t, snap.Status.IsClean())
}

func TestService_Snapshot_NoCommits(t *testing.T) {
	f := newFixture(t)

	empty := t.TempDir()
	_, err := git.PlainInit(empty, false, git.WithDefaultBranch("refs/heads/master"))
	require.NoError(t, err)

	snap, err := f.service.Snapshot(t.Context(), empty)
	require.NoError(t, err)
	assert.Nil(t, snap.LastCommit)
	assert.Equal(t, "master", snap.CurrentBranch)
	assert.Empty(t, snap.Branches)
	assert.Empty(t, snap.Tags)

	_, err = f.service.Log(t.Context(), empty)
	require.ErrorIs(t, err, ErrNoCommitsYet)
}

func TestService_Snapshot_NotCloned(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Snapshot(t.Context(), f.work)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNewWorkingTreeStatus(t *testing.T) {
	status := git.Status{
		"new.txt":      {Staging: git.Untracked, Worktree: git.Untracked},
		"changed.txt":  {Staging: git.Unmodified, Worktree: git.Modified},
		"gone.txt":     {Staging: git.Unmodified, Worktree: git.Deleted},
		"removed.txt":  {Staging: git.Deleted, Worktree: git.Deleted},
		"conflict.txt": {Staging: git.UpdatedButUnmerged, Worktree: git.Modified},
		"staged.txt":   {Staging: git.Added, Worktree: git.Unmodified},
	}

	got := newWorkingTreeStatus(status)

	assert.Equal(t, []string{"new.txt"}, got.Untracked)
	assert.Equal(t, []string{"changed.txt"}, got.Modified)
	assert.Equal(t, []string{"gone.txt"}, got.Missing)
	assert.Equal(t, []string{"conflict.txt"}, got.Conflicting)
	assert.False(t, got.IsClean())

	assert.True(t, newWorkingTreeStatus(git.Status{}).IsClean())
}
