package entities

// RunConfiguration holds the runtime options of a single invocation.
// It is built once from the command line and never mutated afterwards.
type RunConfiguration struct {
	DryRun     bool
	Verbose    bool
	RepoDir    string
	ConfigPath string
}
