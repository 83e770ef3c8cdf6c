//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/requpdate/internal/domain/commands"
	"github.com/rios0rios0/requpdate/internal/domain/entities"
)

// StubListCommand is a stub implementation of commands.List.
type StubListCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Packages         []entities.OutdatedPackage
	LastConfig       entities.RunConfiguration
}

var _ commands.List = (*StubListCommand)(nil)

func (s *StubListCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	cfg entities.RunConfiguration,
) ([]entities.OutdatedPackage, error) {
	s.ExecuteCallCount++
	s.LastConfig = cfg
	return s.Packages, s.ExecuteErr
}
