package repositories

import (
	"github.com/rios0rios0/requpdate/internal/domain/entities"
)

// HistoryRepository reads commits back from a local repository.
type HistoryRepository interface {
	// RecentCommits returns up to n commits reachable from HEAD, newest first.
	RecentCommits(repoDir string, n int) ([]entities.Commit, error)
}
