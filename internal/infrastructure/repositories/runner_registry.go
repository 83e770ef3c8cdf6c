package repositories

import (
	"fmt"

	"github.com/rios0rios0/requpdate/internal/domain/entities"
	domainRepos "github.com/rios0rios0/requpdate/internal/domain/repositories"
)

const (
	RunnerReal   = "real"
	RunnerDryRun = "dryrun"
)

// RunnerFactory builds a CommandRunner for one run.
type RunnerFactory func(cfg entities.RunConfiguration, output domainRepos.OutputRepository) domainRepos.CommandRunner

// RunnerRegistry manages the registered command runner implementations.
type RunnerRegistry struct {
	runners map[string]RunnerFactory
}

// NewRunnerRegistry creates an empty runner registry.
func NewRunnerRegistry() *RunnerRegistry {
	return &RunnerRegistry{
		runners: make(map[string]RunnerFactory),
	}
}

// Register adds a runner factory under the given name (e.g. "dryrun").
func (r *RunnerRegistry) Register(name string, factory RunnerFactory) {
	r.runners[name] = factory
}

// Get returns a runner built by the factory registered under name.
func (r *RunnerRegistry) Get(
	name string,
	cfg entities.RunConfiguration,
	output domainRepos.OutputRepository,
) (domainRepos.CommandRunner, error) {
	factory, ok := r.runners[name]
	if !ok {
		return nil, fmt.Errorf("unknown runner type: %q", name)
	}
	return factory(cfg, output), nil
}

// ForConfiguration picks the dry-run runner when cfg asks for it and the
// real runner otherwise.
func (r *RunnerRegistry) ForConfiguration(
	cfg entities.RunConfiguration,
	output domainRepos.OutputRepository,
) (domainRepos.CommandRunner, error) {
	if cfg.DryRun {
		return r.Get(RunnerDryRun, cfg, output)
	}
	return r.Get(RunnerReal, cfg, output)
}

// Names returns the list of registered runner names.
func (r *RunnerRegistry) Names() []string {
	names := make([]string, 0, len(r.runners))
	for name := range r.runners {
		names = append(names, name)
	}
	return names
}
