//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depreview/internal/domain/commands"
	"github.com/rios0rios0/depreview/internal/domain/entities"
)

// StubForceCommand is a stub implementation of commands.Force.
type StubForceCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           entities.DetectionResult
	LastSettings     entities.Settings
}

var _ commands.Force = (*StubForceCommand)(nil)

func (s *StubForceCommand) Execute(
	_ context.Context,
	settings entities.Settings,
) (entities.DetectionResult, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.Result, s.ExecuteErr
}
