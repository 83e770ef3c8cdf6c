//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/requpdate/internal/domain/commands"
	"github.com/rios0rios0/requpdate/internal/domain/entities"
)

// StubUpdateCommand is a stub implementation of commands.Update.
type StubUpdateCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Report           *entities.UpdateReport
	LastSettings     *entities.Settings
	LastConfig       entities.RunConfiguration
}

var _ commands.Update = (*StubUpdateCommand)(nil)

func (s *StubUpdateCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	cfg entities.RunConfiguration,
) (*entities.UpdateReport, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastConfig = cfg
	return s.Report, s.ExecuteErr
}
