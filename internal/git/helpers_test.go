package git

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v6"
	gitconfig "github.com/go-git/go-git/v6/config"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fixture struct {
	service *Service
	remote  string // bare repository acting as origin
	seed    string // independent clone used to publish upstream changes
	work    string // path managed by the service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dir := t.TempDir()
	f := &fixture{
		remote: filepath.Join(dir, "remote.git"),
		seed:   filepath.Join(dir, "seed"),
		work:   filepath.Join(dir, "work"),
	}

	_, err := git.PlainInit(f.remote, true, git.WithDefaultBranch(plumbing.Master))
	require.NoError(t, err)

	seed, err := git.PlainInit(f.seed, false, git.WithDefaultBranch(plumbing.Master))
	require.NoError(t, err)
	_, err = seed.CreateRemote(&gitconfig.RemoteConfig{Name: DefaultRemote, URLs: []string{f.remote}})
	require.NoError(t, err)

	commitFile(t, f.seed, "README.md", "hello\n", "initial commit")
	pushAll(t, f.seed)

	f.service = NewService(
		Config{Timeout: 30 * time.Second, ProtectedBranches: []string{"develop"}},
		NewCredentials("", ""),
		zaptest.NewLogger(t),
	)

	return f
}

// cloned returns a fixture whose work path is already cloned.
func cloned(t *testing.T) *fixture {
	t.Helper()

	f := newFixture(t)
	_, err := f.service.CloneOrPull(t.Context(), f.remote, f.work)
	require.NoError(t, err)

	return f
}

func commitFile(t *testing.T, path, name, content, message string) plumbing.Hash {
	t.Helper()

	full := filepath.Join(path, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))

	repo, err := git.PlainOpen(path)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	_, err = wt.Add(name)
	require.NoError(t, err)

	hash, err := wt.Commit(message, &git.CommitOptions{
		Author: &object.Signature{Name: "Test Author", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return hash
}

func pushAll(t *testing.T, path string) {
	t.Helper()

	repo, err := git.PlainOpen(path)
	require.NoError(t, err)

	err = repo.Push(&git.PushOptions{
		RemoteName: DefaultRemote,
		RefSpecs:   []gitconfig.RefSpec{pushBranchesRefSpec, pushTagsRefSpec},
	})
	if err != git.NoErrAlreadyUpToDate {
		require.NoError(t, err)
	}
}

func checkout(t *testing.T, path, branch string, create bool) {
	t.Helper()

	repo, err := git.PlainOpen(path)
	require.NoError(t, err)
	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, wt.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(branch),
		Create: create,
	}))
}

func remoteHas(t *testing.T, f *fixture, name plumbing.ReferenceName) bool {
	t.Helper()

	repo, err := git.PlainOpen(f.remote)
	require.NoError(t, err)

	exists, err := referenceExists(repo, name)
	require.NoError(t, err)

	return exists
}

func openRepo(t *testing.T, path string) *git.Repository {
	t.Helper()

	repo, err := git.PlainOpen(path)
	require.NoError(t, err)

	return repo
}

// corruptPackedRefs makes every ref enumeration in path fail while direct
// lookups of loose refs such as HEAD keep working.
func corruptPackedRefs(t *testing.T, path string) {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(path, metadataDir, "packed-refs"), []byte("not-a-ref-line\n"), 0o644))
}
