//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/require"
)

// GitFixture is a throwaway on-disk repository built with go-git.
type GitFixture struct {
	Dir  string
	Repo *git.Repository
	t    *testing.T
	tick int
}

// NewGitFixture initialises an empty repository on branch main in a
// temporary directory.
func NewGitFixture(t *testing.T) *GitFixture {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	head := plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName("main"))
	require.NoError(t, repo.Storer.SetReference(head))
	return &GitFixture{Dir: dir, Repo: repo, t: t}
}

// Commit writes the files, stages them and commits; it returns the commit hash.
func (f *GitFixture) Commit(files map[string]string, message string) string {
	f.t.Helper()

	worktree, err := f.Repo.Worktree()
	require.NoError(f.t, err)

	for name, content := range files {
		fullPath := filepath.Join(f.Dir, filepath.FromSlash(name))
		require.NoError(f.t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
		require.NoError(f.t, os.WriteFile(fullPath, []byte(content), 0o600))
		_, err = worktree.Add(name)
		require.NoError(f.t, err)
	}

	f.tick++
	//nolint:exhaustruct // author is enough for test commits
	hash, err := worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Test",
			Email: "test@example.com",
			When:  time.Date(2024, 1, 1, 0, 0, f.tick, 0, time.UTC),
		},
	})
	require.NoError(f.t, err)
	return hash.String()
}

// Checkout switches to a branch, creating it at HEAD when create is set.
func (f *GitFixture) Checkout(branch string, create bool) {
	f.t.Helper()

	worktree, err := f.Repo.Worktree()
	require.NoError(f.t, err)
	//nolint:exhaustruct // branch switching only
	require.NoError(f.t, worktree.Checkout(&git.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(branch),
		Create: create,
	}))
}

// SetRemoteBranch points refs/remotes/origin/<branch> at a commit.
func (f *GitFixture) SetRemoteBranch(branch, hash string) {
	f.t.Helper()

	ref := plumbing.NewHashReference(plumbing.NewRemoteReferenceName("origin", branch), plumbing.NewHash(hash))
	require.NoError(f.t, f.Repo.Storer.SetReference(ref))
}
