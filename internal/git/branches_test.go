package git

import (
	"testing"

	"github.com/go-git/go-git/v6/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_CreateBranch(t *testing.T) {
	f := cloned(t)

	require.NoError(t, f.service.CreateBranch(t.Context(), f.work, "feature"))

	snap, err := f.service.Snapshot(t.Context(), f.work)
	require.NoError(t, err)
	assert.Equal(t, "feature", snap.CurrentBranch)
	assert.Contains(t, snap.Branches, "feature")

	err = f.service.CreateBranch(t.Context(), f.work, "feature")
	require.ErrorIs(t, err, ErrRefAlreadyExists)
}

func TestService_SwitchBranch(t *testing.T) {
	f := cloned(t)

	checkout(t, f.seed, "release", true)
	commitFile(t, f.seed, "release.txt", "r\n", "release")
	pushAll(t, f.seed)
	_, err := f.service.CloneOrPull(t.Context(), f.remote, f.work)
	require.NoError(t, err)

	// remote-only branch is materialized locally
	require.NoError(t, f.service.SwitchBranch(t.Context(), f.work, "release"))

	repo := openRepo(t, f.work)
	current, err := currentBranch(repo)
	require.NoError(t, err)
	assert.Equal(t, "release", current)
	assert.Equal(t, BranchTypeLocalAndRemote, f.service.ClassifyBranch(repo, "release"))
	require.NoError(t, closeStorer(repo))

	// switching to the current branch is a no-op
	require.NoError(t, f.service.SwitchBranch(t.Context(), f.work, "release"))

	err = f.service.SwitchBranch(t.Context(), f.work, "missing")
	require.ErrorIs(t, err, ErrRefNotFound)
}

func TestService_DeleteCurrentBranch(t *testing.T) {
	f := cloned(t)

	require.NoError(t, f.service.CreateBranch(t.Context(), f.work, "feature"))
	_, err := f.service.Push(t.Context(), f.work, "")
	require.NoError(t, err)
	require.True(t, remoteHas(t, f, plumbing.NewBranchReferenceName("feature")))

	_, err = f.service.CloneOrPull(t.Context(), f.remote, f.work)
	require.NoError(t, err)

	deleted, err := f.service.DeleteCurrentBranch(t.Context(), f.work)
	require.NoError(t, err)
	assert.Equal(t, "feature", deleted)
	assert.False(t, remoteHas(t, f, plumbing.NewBranchReferenceName("feature")))

	snap, err := f.service.Snapshot(t.Context(), f.work)
	require.NoError(t, err)
	assert.Equal(t, "master", snap.CurrentBranch)
	assert.NotContains(t, snap.Branches, "feature")
}

func TestService_DeleteCurrentBranch_Protected(t *testing.T) {
	f := cloned(t)

	_, err := f.service.DeleteCurrentBranch(t.Context(), f.work)
	require.ErrorIs(t, err, ErrProtectedBranch)

	require.NoError(t, f.service.CreateBranch(t.Context(), f.work, "develop"))
	_, err = f.service.DeleteCurrentBranch(t.Context(), f.work)
	require.ErrorIs(t, err, ErrProtectedBranch)
}
