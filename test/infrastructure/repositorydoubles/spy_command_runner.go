//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"strings"

	"github.com/rios0rios0/requpdate/internal/domain/entities"
	"github.com/rios0rios0/requpdate/internal/domain/repositories"
)

// SpyCommandRunner implements repositories.CommandRunner as a configurable spy.
// Responses are keyed by the command line with arguments joined by spaces;
// a key matches when the command line starts with it.
type SpyCommandRunner struct {
	// --- Run ---
	Stdout map[string]string // command prefix -> stdout
	Errors map[string]error  // command prefix -> error
	// spy: every argv received, in order
	Calls [][]string
}

var _ repositories.CommandRunner = (*SpyCommandRunner)(nil)

func (s *SpyCommandRunner) Run(_ context.Context, argv []string) (*entities.ShellResult, error) {
	s.Calls = append(s.Calls, argv)
	line := strings.Join(argv, " ")

	result := &entities.ShellResult{Arguments: argv, Stdout: []byte{}, Stderr: []byte{}}
	for prefix, stdout := range s.Stdout {
		if strings.HasPrefix(line, prefix) {
			result.Stdout = []byte(stdout)
		}
	}
	for prefix, err := range s.Errors {
		if strings.HasPrefix(line, prefix) {
			result.ExitCode = 1
			return result, err
		}
	}
	return result, nil
}

// CommandLines returns the received calls joined by spaces.
func (s *SpyCommandRunner) CommandLines() []string {
	lines := make([]string, 0, len(s.Calls))
	for _, call := range s.Calls {
		lines = append(lines, strings.Join(call, " "))
	}
	return lines
}

// CountPrefix returns how many received calls start with prefix.
func (s *SpyCommandRunner) CountPrefix(prefix string) int {
	count := 0
	for _, line := range s.CommandLines() {
		if strings.HasPrefix(line, prefix) {
			count++
		}
	}
	return count
}
