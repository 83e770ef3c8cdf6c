package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/requpdate/internal/domain/entities"
	"github.com/rios0rios0/requpdate/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/requpdate/internal/infrastructure/repositories"
)

// List is the interface for the list command.
type List interface {
	Execute(ctx context.Context, settings *entities.Settings, cfg entities.RunConfiguration) ([]entities.OutdatedPackage, error)
}

// ListCommand prints the outdated packages without touching the repository.
type ListCommand struct {
	runnerRegistry *infraRepos.RunnerRegistry
	output         repositories.OutputRepository
}

// NewListCommand creates a new ListCommand.
func NewListCommand(
	runnerRegistry *infraRepos.RunnerRegistry,
	output repositories.OutputRepository,
) *ListCommand {
	return &ListCommand{
		runnerRegistry: runnerRegistry,
		output:         output,
	}
}

// Execute always queries pip for real: listing is read-only, so dry run
// has nothing to suppress.
func (it *ListCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	cfg entities.RunConfiguration,
) ([]entities.OutdatedPackage, error) {
	if cfg.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	runner, err := it.runnerRegistry.Get(infraRepos.RunnerReal, cfg, it.output)
	if err != nil {
		return nil, err
	}

	packages, err := newUpdater(cfg, settings, runner, it.output).fetchOutdatedPackages(ctx)
	if err != nil {
		return nil, err
	}

	if len(packages) == 0 {
		it.output.Log("All packages are up to date.")
		return packages, nil
	}

	rows := [][]string{{"PACKAGE", "CURRENT", "LATEST", "BUMP"}}
	for _, pkg := range packages {
		rows = append(rows, []string{pkg.Name, pkg.CurrentVersion, pkg.LatestVersion, string(pkg.Bump())})
	}
	it.output.Table(rows)

	return packages, nil
}
