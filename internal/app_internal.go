package internal

import (
	"github.com/rios0rios0/requpdate/internal/domain/entities"
	"github.com/rios0rios0/requpdate/internal/infrastructure/controllers"
)

// AppInternal holds the controllers wired by the container.
type AppInternal struct {
	root        *controllers.UpdateController
	controllers []entities.Controller
}

// NewAppInternal creates the application context.
func NewAppInternal(root *controllers.UpdateController, subcommands *[]entities.Controller) *AppInternal {
	return &AppInternal{root: root, controllers: *subcommands}
}

// GetRootController returns the controller bound to the root command.
func (it *AppInternal) GetRootController() *controllers.UpdateController {
	return it.root
}

// GetControllers returns the controllers bound to subcommands.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
