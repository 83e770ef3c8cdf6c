//go:build integration

package commands //nolint:testpackage // tests unexported functions

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/requpdate/internal/domain/entities"
	"github.com/rios0rios0/requpdate/internal/infrastructure/repositories/history"
	"github.com/rios0rios0/requpdate/internal/infrastructure/repositories/shell"
	"github.com/rios0rios0/requpdate/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/requpdate/test/infrastructure/repositorydoubles"
)

// initRepository creates a repository with one commit holding requirements.txt.
func initRepository(t *testing.T, requirements string) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "requirements.txt"), []byte(requirements), 0o644))

	worktree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add("requirements.txt")
	require.NoError(t, err)
	_, err = worktree.Commit("Initial commit", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return dir
}

func TestUpdaterAgainstGit(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not available")
	}
	t.Setenv("GIT_AUTHOR_NAME", "Test")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "Test")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")

	t.Run("should create exactly one commit naming the package and version", func(t *testing.T) {
		// given
		dir := initRepository(t, "varsnap==1.0.0\n")
		cfg := entities.RunConfiguration{RepoDir: dir}
		u := newUpdater(cfg, testSettings(), shell.NewRealRunner(dir), &doubles.SpyOutputRepository{})
		pkg := entitybuilders.NewOutdatedPackageBuilder().BuildOutdatedPackage()
		edit, err := u.applyUpdate(context.Background(), pkg)
		require.NoError(t, err)

		// when
		err = u.commitUpdate(context.Background(), pkg, edit.Files)

		// then
		require.NoError(t, err)
		commits, err := history.NewGitHistoryRepository().RecentCommits(dir, 3)
		require.NoError(t, err)
		require.Len(t, commits, 2)
		assert.Contains(t, commits[0].Message, "varsnap")
		assert.Contains(t, commits[0].Message, "1.2.3")
		assert.Equal(t, "Initial commit", commits[1].Message)
	})

	t.Run("should detect a dirty tree and accept a clean one", func(t *testing.T) {
		// given
		dir := initRepository(t, "varsnap==1.0.0\n")
		u := newUpdater(entities.RunConfiguration{RepoDir: dir}, testSettings(), shell.NewRealRunner(dir), &doubles.SpyOutputRepository{})
		require.NoError(t, u.checkCleanliness(context.Background()))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

		// when
		err := u.checkCleanliness(context.Background())

		// then
		assert.ErrorIs(t, err, entities.ErrDirtyRepository)
	})

	t.Run("should leave a clean tree after rolling back a failed commit", func(t *testing.T) {
		// given
		dir := initRepository(t, "varsnap==1.0.0\n")
		settings := testSettings()
		u := newUpdater(entities.RunConfiguration{RepoDir: dir}, settings, shell.NewRealRunner(dir), &doubles.SpyOutputRepository{})
		pkg := entitybuilders.NewOutdatedPackageBuilder().BuildOutdatedPackage()
		edit, err := u.applyUpdate(context.Background(), pkg)
		require.NoError(t, err)
		_, err = u.runner.Run(context.Background(), u.git("add", "--", "requirements.txt"))
		require.NoError(t, err)

		// when
		u.rollback(context.Background(), edit)

		// then
		assert.NoError(t, u.checkCleanliness(context.Background()))
	})
}
