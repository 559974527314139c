//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depreview/internal/domain/commands"
	"github.com/rios0rios0/depreview/internal/domain/entities"
)

// StubDetectCommand is a stub implementation of commands.Detect.
type StubDetectCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           entities.DetectionResult
	LastSettings     entities.Settings
}

var _ commands.Detect = (*StubDetectCommand)(nil)

func (s *StubDetectCommand) Execute(
	_ context.Context,
	settings entities.Settings,
) (entities.DetectionResult, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.Result, s.ExecuteErr
}
