package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDirtyRepository is returned when the working tree has uncommitted changes.
	ErrDirtyRepository = errors.New("must run on a clean repository")

	// ErrMalformedOutput is returned when the package manager output cannot be decoded.
	ErrMalformedOutput = errors.New("malformed package manager output")

	// ErrPinNotFound is returned when no manifest pins the requested package.
	ErrPinNotFound = errors.New("package is not pinned in any manifest")

	// ErrAlreadyPinned is returned when every pin of the package already has the requested version.
	ErrAlreadyPinned = errors.New("package is already pinned at the requested version")
)

// ShellExecutionError is returned when an external command exits with a
// non-zero status or cannot be started at all.
type ShellExecutionError struct {
	Result *ShellResult
	Err    error
}

func (e *ShellExecutionError) Error() string {
	msg := fmt.Sprintf("command %q exited with status %d",
		strings.Join(e.Result.Arguments, " "), e.Result.ExitCode)
	if stderr := strings.TrimSpace(string(e.Result.Stderr)); stderr != "" {
		msg += ": " + stderr
	}
	if e.Err != nil {
		msg += " (" + e.Err.Error() + ")"
	}
	return msg
}

func (e *ShellExecutionError) Unwrap() error { return e.Err }
