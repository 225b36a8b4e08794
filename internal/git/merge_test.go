package git

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-git/v6/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Merge(t *testing.T) {
	f := cloned(t)

	require.NoError(t, f.service.CreateBranch(t.Context(), f.work, "feature"))
	commitFile(t, f.work, "docs/feature.md", "feature\n", "add feature docs")
	require.NoError(t, f.service.SwitchBranch(t.Context(), f.work, "master"))
	masterHead := commitFile(t, f.work, "main.txt", "main\n", "master change")

	result, err := f.service.Merge(t.Context(), f.work, "master", "feature", "")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.UpToDate)
	assert.Equal(t, []string{"docs/feature.md"}, result.Paths)

	repo := openRepo(t, f.work)
	defer closeStorer(repo)

	commit, err := repo.CommitObject(plumbing.NewHash(result.Commit))
	require.NoError(t, err)
	require.Len(t, commit.ParentHashes, 2)
	assert.Equal(t, masterHead, commit.ParentHashes[0])
	assert.Equal(t, "Merge branch 'feature' into master", shortMessage(commit.Message))

	content, err := os.ReadFile(filepath.Join(f.work, "docs", "feature.md"))
	require.NoError(t, err)
	assert.Equal(t, "feature\n", string(content))

	assert.True(t, remoteHas(t, f, plumbing.NewBranchReferenceName("feature")))
}

func TestService_Merge_NoFastForward(t *testing.T) {
	f := cloned(t)

	require.NoError(t, f.service.CreateBranch(t.Context(), f.work, "feature"))
	featureHead := commitFile(t, f.work, "feature.txt", "f\n", "feature work")

	result, err := f.service.Merge(t.Context(), f.work, "master", "feature", "merge feature")
	require.NoError(t, err)
	require.NotEmpty(t, result.Commit)
	assert.NotEqual(t, featureHead.String(), result.Commit)

	snap, err := f.service.Snapshot(t.Context(), f.work)
	require.NoError(t, err)
	assert.Equal(t, "master", snap.CurrentBranch)
	assert.Equal(t, "merge feature", snap.LastCommit.ShortMessage)
}

func TestService_Merge_UpToDate(t *testing.T) {
	f := cloned(t)
	require.NoError(t, f.service.CreateBranch(t.Context(), f.work, "feature"))
	featureHead := commitFile(t, f.work, "feature.txt", "f\n", "feature work")

	result, err := f.service.Merge(t.Context(), f.work, "feature", "master", "")
	require.NoError(t, err)
	assert.True(t, result.UpToDate)
	assert.Empty(t, result.Commit)

	// branches are pushed even when nothing was merged
	remote := openRepo(t, f.remote)
	defer closeStorer(remote)

	ref, err := remote.Reference(plumbing.NewBranchReferenceName("feature"), true)
	require.NoError(t, err)
	assert.Equal(t, featureHead, ref.Hash())
}

func TestService_Merge_Conflict(t *testing.T) {
	f := cloned(t)

	require.NoError(t, f.service.CreateBranch(t.Context(), f.work, "feature"))
	commitFile(t, f.work, "README.md", "feature\n", "feature readme")
	require.NoError(t, f.service.SwitchBranch(t.Context(), f.work, "master"))
	masterHead := commitFile(t, f.work, "README.md", "master\n", "master readme")

	_, err := f.service.Merge(t.Context(), f.work, "master", "feature", "")
	require.ErrorIs(t, err, ErrMergeConflict)
	assert.Contains(t, err.Error(), "README.md")

	snap, err := f.service.Snapshot(t.Context(), f.work)
	require.NoError(t, err)
	assert.Equal(t, "master", snap.CurrentBranch)
	assert.Equal(t, masterHead.String(), snap.LastCommit.ID)
	assert.True(t, snap.Status.IsClean())
}

func TestService_Merge_DisjointEditsSameFile(t *testing.T) {
	f := cloned(t)

	pom := "<project>\n  <version>1.0</version>\n  <name>app</name>\n  <packaging>jar</packaging>\n" +
		"  <url>https://example.com</url>\n  <dependencies/>\n  <build/>\n</project>\n"
	commitFile(t, f.work, "pom.xml", pom, "add pom")

	require.NoError(t, f.service.CreateBranch(t.Context(), f.work, "feature"))
	commitFile(t, f.work, "pom.xml", strings.Replace(pom, "<project>", "<project xmlns=\"pom\">", 1), "feature pom")
	require.NoError(t, f.service.SwitchBranch(t.Context(), f.work, "master"))
	commitFile(t, f.work, "pom.xml", strings.Replace(pom, "</project>", "</project><!-- end -->", 1), "master pom")

	result, err := f.service.Merge(t.Context(), f.work, "master", "feature", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"pom.xml"}, result.Paths)

	content, err := os.ReadFile(filepath.Join(f.work, "pom.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `<project xmlns="pom">`)
	assert.Contains(t, string(content), "</project><!-- end -->")

	snap, err := f.service.Snapshot(t.Context(), f.work)
	require.NoError(t, err)
	assert.True(t, snap.Status.IsClean())
}

func TestService_Merge_UnknownSource(t *testing.T) {
	f := cloned(t)

	_, err := f.service.Merge(t.Context(), f.work, "master", "nope", "")
	require.ErrorIs(t, err, ErrRefNotFound)
}

func TestService_Merge_DirtyWorkingTree(t *testing.T) {
	f := cloned(t)
	require.NoError(t, f.service.CreateBranch(t.Context(), f.work, "feature"))
	commitFile(t, f.work, "feature.txt", "f\n", "feature work")
	require.NoError(t, f.service.SwitchBranch(t.Context(), f.work, "master"))

	require.NoError(t, os.WriteFile(filepath.Join(f.work, "README.md"), []byte("dirty\n"), 0o644))

	_, err := f.service.Merge(t.Context(), f.work, "master", "feature", "")
	require.ErrorIs(t, err, ErrDirtyWorkingTree)
}
