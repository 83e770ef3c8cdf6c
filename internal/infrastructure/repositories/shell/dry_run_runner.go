package shell

import (
	"context"
	"strings"

	"github.com/rios0rios0/requpdate/internal/domain/entities"
	"github.com/rios0rios0/requpdate/internal/domain/repositories"
)

// DryRunRunner reports the commands it is asked to run without running them.
type DryRunRunner struct {
	output repositories.OutputRepository
}

// NewDryRunRunner creates a runner that only logs commands to output.
func NewDryRunRunner(output repositories.OutputRepository) repositories.CommandRunner {
	return &DryRunRunner{output: output}
}

// Run logs argv and returns a successful, empty result.
func (r *DryRunRunner) Run(_ context.Context, argv []string) (*entities.ShellResult, error) {
	r.output.Log(strings.Join(argv, " "))
	return &entities.ShellResult{
		Arguments: argv,
		ExitCode:  0,
		Stdout:    []byte{},
		Stderr:    []byte{},
	}, nil
}
