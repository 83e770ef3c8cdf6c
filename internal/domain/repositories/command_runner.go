package repositories

import (
	"context"

	"github.com/rios0rios0/requpdate/internal/domain/entities"
)

// CommandRunner is the single point through which external processes are
// invoked. Implementations decide whether the command really runs.
type CommandRunner interface {
	// Run executes argv and returns its captured result. A non-zero exit is
	// reported as *entities.ShellExecutionError alongside the result.
	Run(ctx context.Context, argv []string) (*entities.ShellResult, error)
}
