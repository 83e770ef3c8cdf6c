package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/requpdate/internal/domain/commands"
	"github.com/rios0rios0/requpdate/internal/domain/entities"
)

// UpdateController handles the root command: bump every outdated package.
type UpdateController struct {
	command commands.Update
}

// NewUpdateController creates a new UpdateController.
func NewUpdateController(command commands.Update) *UpdateController {
	return &UpdateController{command: command}
}

// GetBind returns the Cobra command metadata for the update controller.
func (it *UpdateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "requpdate [path]",
		Short: "Bump outdated pip requirements, one commit per package",
		Long: `Update the pinned versions in requirements files of a local Git repository.

requpdate refuses to run on a dirty working tree. It creates a work branch,
asks pip which packages are outdated, rewrites each pin in place and commits
every bump separately so that each one can be reviewed or reverted alone.`,
	}
}

// Execute runs the update mode.
func (it *UpdateController) Execute(cmd *cobra.Command, args []string) error {
	cfg, settings, err := readRunConfiguration(cmd, args)
	if err != nil {
		return err
	}

	if cfg.DryRun {
		logger.Info("Dry run: commands are printed, nothing is changed")
	}

	_, err = it.command.Execute(cmd.Context(), settings, cfg)
	return err
}
