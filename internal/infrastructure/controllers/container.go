package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/requpdate/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewUpdateController); err != nil {
		return err
	}
	if err := container.Provide(NewListController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates the subcommand controllers for the AppInternal.
// The update controller is bound to the root command instead.
func NewControllers(
	listController *ListController,
) *[]entities.Controller {
	return &[]entities.Controller{
		listController,
	}
}
