package controllers

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/requpdate/internal/domain/entities"
)

// readRunConfiguration builds the run configuration from the persistent
// flags and the optional repository path argument.
func readRunConfiguration(cmd *cobra.Command, args []string) (entities.RunConfiguration, *entities.Settings, error) {
	dryRun, _ := cmd.Flags().GetBool("dryrun")
	verbose, _ := cmd.Flags().GetBool("verbose")
	configPath, _ := cmd.Flags().GetString("config")

	repoDir := "."
	if len(args) > 0 {
		repoDir = args[0]
	}
	absDir, err := filepath.Abs(repoDir)
	if err != nil {
		return entities.RunConfiguration{}, nil, fmt.Errorf("invalid path: %w", err)
	}

	settings, err := entities.LoadSettings(configPath)
	if err != nil {
		return entities.RunConfiguration{}, nil, fmt.Errorf("failed to load config: %w", err)
	}

	return entities.RunConfiguration{
		DryRun:     dryRun,
		Verbose:    verbose,
		RepoDir:    absDir,
		ConfigPath: configPath,
	}, settings, nil
}
