package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v6/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Push(t *testing.T) {
	f := cloned(t)

	require.NoError(t, os.WriteFile(filepath.Join(f.work, "new.txt"), []byte("new\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(f.work, "README.md"), []byte("changed\n"), 0o644))

	committed, err := f.service.Push(t.Context(), f.work, "sync changes")
	require.NoError(t, err)
	assert.True(t, committed)

	snap, err := f.service.Snapshot(t.Context(), f.work)
	require.NoError(t, err)
	assert.True(t, snap.Status.IsClean())
	assert.Equal(t, "sync changes", snap.LastCommit.ShortMessage)

	remote := openRepo(t, f.remote)
	defer closeStorer(remote)
	ref, err := remote.Reference(plumbing.NewBranchReferenceName("master"), true)
	require.NoError(t, err)
	assert.Equal(t, snap.LastCommit.ID, ref.Hash().String())
}

func TestService_Push_Clean(t *testing.T) {
	f := cloned(t)

	committed, err := f.service.Push(t.Context(), f.work, "nothing")
	require.NoError(t, err)
	assert.False(t, committed)

	commits, err := f.service.Log(t.Context(), f.work)
	require.NoError(t, err)
	assert.Len(t, commits, 1)
}
