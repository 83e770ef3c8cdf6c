package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/requpdate/internal/domain/entities"
	"github.com/rios0rios0/requpdate/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/requpdate/internal/infrastructure/repositories"
)

const shortHashLength = 7

// Update is the interface for the update command (the default mode).
type Update interface {
	Execute(ctx context.Context, settings *entities.Settings, cfg entities.RunConfiguration) (*entities.UpdateReport, error)
}

// UpdateCommand bumps every outdated pinned package on a fresh branch,
// one commit per package.
type UpdateCommand struct {
	runnerRegistry *infraRepos.RunnerRegistry
	output         repositories.OutputRepository
	history        repositories.HistoryRepository
}

// NewUpdateCommand creates a new UpdateCommand.
func NewUpdateCommand(
	runnerRegistry *infraRepos.RunnerRegistry,
	output repositories.OutputRepository,
	history repositories.HistoryRepository,
) *UpdateCommand {
	return &UpdateCommand{
		runnerRegistry: runnerRegistry,
		output:         output,
		history:        history,
	}
}

// Execute runs the whole update workflow. Only a dirty tree, a failing
// branch creation or an unusable outdated query return an error; packages
// that fail individually are reported and skipped.
func (it *UpdateCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	cfg entities.RunConfiguration,
) (*entities.UpdateReport, error) {
	if cfg.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	runner, err := it.runnerRegistry.ForConfiguration(cfg, it.output)
	if err != nil {
		return nil, err
	}

	report, err := newUpdater(cfg, settings, runner, it.output).run(ctx)
	if err != nil {
		return nil, err
	}

	if !cfg.DryRun && len(report.Updated) > 0 {
		commits, historyErr := it.history.RecentCommits(cfg.RepoDir, len(report.Updated))
		if historyErr != nil {
			logger.Warnf("[git] Failed to read back created commits: %v", historyErr)
		} else {
			report.Commits = commits
		}
	}

	it.printSummary(report, cfg)
	return report, nil
}

func (it *UpdateCommand) printSummary(report *entities.UpdateReport, cfg entities.RunConfiguration) {
	if len(report.Updated)+len(report.Skipped)+len(report.Failed) == 0 {
		it.output.Log("All pinned packages are up to date.")
		return
	}

	rows := [][]string{{"PACKAGE", "FROM", "TO", "RESULT"}}
	for _, pkg := range report.Updated {
		rows = append(rows, []string{pkg.Name, pkg.CurrentVersion, pkg.LatestVersion, "updated"})
	}
	for _, pkg := range report.Skipped {
		rows = append(rows, []string{pkg.Name, pkg.CurrentVersion, pkg.LatestVersion, "skipped"})
	}
	for _, failure := range report.Failed {
		rows = append(rows, []string{
			failure.Package.Name, failure.Package.CurrentVersion, failure.Package.LatestVersion, "failed",
		})
	}
	it.output.Table(rows)

	for _, commit := range report.Commits {
		hash := commit.Hash
		if len(hash) > shortHashLength {
			hash = hash[:shortHashLength]
		}
		it.output.Log(fmt.Sprintf("%s %s", hash, commit.Message))
	}

	verb := "Updated"
	if cfg.DryRun {
		verb = "Would update"
	}
	it.output.Success(fmt.Sprintf("%s %d package(s) on branch %s", verb, len(report.Updated), report.Branch))

	for _, failure := range report.Failed {
		it.output.Failure(fmt.Sprintf("%s: %v", failure.Package.Name, failure.Err))
	}
}
