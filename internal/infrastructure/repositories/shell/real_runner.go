package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/requpdate/internal/domain/entities"
	"github.com/rios0rios0/requpdate/internal/domain/repositories"
)

// RealRunner executes commands in a working directory and captures their output.
type RealRunner struct {
	dir string
}

// NewRealRunner creates a runner that executes commands inside dir.
// An empty dir means the current process directory.
func NewRealRunner(dir string) repositories.CommandRunner {
	return &RealRunner{dir: dir}
}

// Run executes argv and captures stdout and stderr separately.
func (r *RealRunner) Run(ctx context.Context, argv []string) (*entities.ShellResult, error) {
	result := &entities.ShellResult{Arguments: argv}
	if len(argv) == 0 {
		result.ExitCode = -1
		return result, &entities.ShellExecutionError{Result: result, Err: errors.New("empty command")}
	}

	logger.Debugf("[shell] Running %s", strings.Join(argv, " "))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // argv comes from settings
	cmd.Dir = r.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	result.Stdout = stdout.Bytes()
	result.Stderr = stderr.Bytes()

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
		logger.Debugf("[shell] %s failed with status %d", argv[0], result.ExitCode)
		return result, &entities.ShellExecutionError{Result: result, Err: runErr}
	}

	return result, nil
}
