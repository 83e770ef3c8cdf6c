package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/requpdate/internal/domain/commands"
	"github.com/rios0rios0/requpdate/internal/domain/entities"
)

// ListController handles the "list" subcommand.
type ListController struct {
	command commands.List
}

// NewListController creates a new ListController.
func NewListController(command commands.List) *ListController {
	return &ListController{command: command}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list [path]",
		Short: "List outdated packages without changing anything",
		Long: `Ask pip for outdated packages and print them with the kind of
version bump (major, minor, patch) each one would receive.`,
	}
}

// Execute runs the list mode.
func (it *ListController) Execute(cmd *cobra.Command, args []string) error {
	cfg, settings, err := readRunConfiguration(cmd, args)
	if err != nil {
		return err
	}

	_, err = it.command.Execute(cmd.Context(), settings, cfg)
	return err
}
