package entities

// ShellResult is the captured outcome of one external command.
type ShellResult struct {
	Arguments []string
	ExitCode  int
	Stdout    []byte
	Stderr    []byte
}
