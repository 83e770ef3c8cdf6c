package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewUpdateCommand); err != nil {
		return err
	}
	if err := container.Provide(NewListCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *UpdateCommand) Update {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ListCommand) List {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
