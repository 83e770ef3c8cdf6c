package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/requpdate/internal/domain/entities"
	domainRepos "github.com/rios0rios0/requpdate/internal/domain/repositories"
	"github.com/rios0rios0/requpdate/internal/infrastructure/repositories/console"
	"github.com/rios0rios0/requpdate/internal/infrastructure/repositories/history"
	"github.com/rios0rios0/requpdate/internal/infrastructure/repositories/shell"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(func() *RunnerRegistry {
		reg := NewRunnerRegistry()
		reg.Register(RunnerReal, func(cfg entities.RunConfiguration, _ domainRepos.OutputRepository) domainRepos.CommandRunner {
			return shell.NewRealRunner(cfg.RepoDir)
		})
		reg.Register(RunnerDryRun, func(_ entities.RunConfiguration, output domainRepos.OutputRepository) domainRepos.CommandRunner {
			return shell.NewDryRunRunner(output)
		})
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(console.NewConsoleOutputRepository); err != nil {
		return err
	}
	if err := container.Provide(history.NewGitHistoryRepository); err != nil {
		return err
	}

	return nil
}
