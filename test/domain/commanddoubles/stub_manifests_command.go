//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depreview/internal/domain/commands"
	"github.com/rios0rios0/depreview/internal/domain/entities"
)

// StubManifestsCommand is a stub implementation of commands.Manifests.
type StubManifestsCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           entities.ChangedManifests
	LastSettings     entities.Settings
}

var _ commands.Manifests = (*StubManifestsCommand)(nil)

func (s *StubManifestsCommand) Execute(
	_ context.Context,
	settings entities.Settings,
) (entities.ChangedManifests, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.Result, s.ExecuteErr
}
