//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/requpdate/internal/domain/entities"
	"github.com/rios0rios0/requpdate/internal/domain/repositories"
)

// StubHistoryRepository is a stub implementation of repositories.HistoryRepository.
type StubHistoryRepository struct {
	Commits    []entities.Commit
	CommitsErr error
	// spy: requested commit counts
	Requested []int
}

var _ repositories.HistoryRepository = (*StubHistoryRepository)(nil)

func (s *StubHistoryRepository) RecentCommits(_ string, n int) ([]entities.Commit, error) {
	s.Requested = append(s.Requested, n)
	if s.CommitsErr != nil {
		return nil, s.CommitsErr
	}
	if n < len(s.Commits) {
		return s.Commits[:n], nil
	}
	return s.Commits, nil
}
