//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/requpdate/internal/domain/repositories"
)

// SpyOutputRepository implements repositories.OutputRepository and records every line.
type SpyOutputRepository struct {
	Logs      []string
	Successes []string
	Failures  []string
	Tables    [][][]string
}

var _ repositories.OutputRepository = (*SpyOutputRepository)(nil)

func (s *SpyOutputRepository) Log(message string)     { s.Logs = append(s.Logs, message) }
func (s *SpyOutputRepository) Success(message string) { s.Successes = append(s.Successes, message) }
func (s *SpyOutputRepository) Failure(message string) { s.Failures = append(s.Failures, message) }
func (s *SpyOutputRepository) Table(rows [][]string)  { s.Tables = append(s.Tables, rows) }

// Called reports whether any output method was invoked.
func (s *SpyOutputRepository) Called() bool {
	return len(s.Logs)+len(s.Successes)+len(s.Failures)+len(s.Tables) > 0
}
