//go:build unit

package history_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/requpdate/internal/infrastructure/repositories/history"
)

func commitFile(t *testing.T, repo *git.Repository, dir, content, message string) string {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "requirements.txt"), []byte(content), 0o644))
	worktree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add("requirements.txt")
	require.NoError(t, err)

	hash, err := worktree.Commit(message, &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	return hash.String()
}

func TestGitHistoryRepository_RecentCommits(t *testing.T) {
	t.Parallel()

	t.Run("should return the newest commits first", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		repo, err := git.PlainInit(dir, false)
		require.NoError(t, err)
		commitFile(t, repo, dir, "varsnap==1.0.0\n", "Initial commit")
		for _, version := range []string{"1.1.0", "1.2.3"} {
			commitFile(t, repo, dir, fmt.Sprintf("varsnap==%s\n", version), "Update varsnap package to "+version)
		}

		// when
		commits, err := history.NewGitHistoryRepository().RecentCommits(dir, 2)

		// then
		require.NoError(t, err)
		require.Len(t, commits, 2)
		assert.Equal(t, "Update varsnap package to 1.2.3", commits[0].Message)
		assert.Equal(t, "Update varsnap package to 1.1.0", commits[1].Message)
		assert.Len(t, commits[0].Hash, 40)
	})

	t.Run("should find the repository from a subdirectory", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		repo, err := git.PlainInit(dir, false)
		require.NoError(t, err)
		hash := commitFile(t, repo, dir, "varsnap==1.0.0\n", "Initial commit")
		sub := filepath.Join(dir, "src")
		require.NoError(t, os.Mkdir(sub, 0o755))

		// when
		commits, err := history.NewGitHistoryRepository().RecentCommits(sub, 5)

		// then
		require.NoError(t, err)
		require.Len(t, commits, 1)
		assert.Equal(t, hash, commits[0].Hash)
	})

	t.Run("should return nothing when no commits are requested", func(t *testing.T) {
		t.Parallel()

		// given
		repository := history.NewGitHistoryRepository()

		// when
		commits, err := repository.RecentCommits(t.TempDir(), 0)

		// then
		require.NoError(t, err)
		assert.Empty(t, commits)
	})

	t.Run("should fail outside a repository", func(t *testing.T) {
		t.Parallel()

		// given
		repository := history.NewGitHistoryRepository()

		// when
		_, err := repository.RecentCommits(t.TempDir(), 1)

		// then
		require.Error(t, err)
	})
}
