package history

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/rios0rios0/requpdate/internal/domain/entities"
	"github.com/rios0rios0/requpdate/internal/domain/repositories"
)

var errStopWalk = errors.New("stop walk")

// GitHistoryRepository reads commit history with go-git, without shelling out.
type GitHistoryRepository struct{}

// NewGitHistoryRepository creates a new GitHistoryRepository.
func NewGitHistoryRepository() repositories.HistoryRepository {
	return &GitHistoryRepository{}
}

// RecentCommits opens the repository containing repoDir and returns up to
// n commits reachable from HEAD, newest first.
func (h *GitHistoryRepository) RecentCommits(repoDir string, n int) ([]entities.Commit, error) {
	if n <= 0 {
		return []entities.Commit{}, nil
	}

	repo, err := git.PlainOpenWithOptions(repoDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at %q: %w", repoDir, err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	iter, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("failed to read log: %w", err)
	}
	defer iter.Close()

	commits := make([]entities.Commit, 0, n)
	walkErr := iter.ForEach(func(c *object.Commit) error {
		commits = append(commits, entities.Commit{
			Hash:    c.Hash.String(),
			Message: strings.TrimSpace(c.Message),
		})
		if len(commits) >= n {
			return errStopWalk
		}
		return nil
	})
	if walkErr != nil && !errors.Is(walkErr, errStopWalk) && !errors.Is(walkErr, io.EOF) {
		return nil, fmt.Errorf("failed to walk log: %w", walkErr)
	}

	return commits, nil
}
