package commands

import (
	"context"
	"fmt"

	"github.com/rios0rios0/depreview/internal/domain/entities"
	infraRepos "github.com/rios0rios0/depreview/internal/infrastructure/repositories"
)

// Manifests is the interface for the changed-manifest listing.
type Manifests interface {
	Execute(ctx context.Context, settings entities.Settings) (entities.ChangedManifests, error)
}

// ManifestsCommand runs the change scan on its own.
type ManifestsCommand struct {
	revisionRegistry *infraRepos.RevisionRegistry
}

// NewManifestsCommand creates a new ManifestsCommand.
func NewManifestsCommand(revisionRegistry *infraRepos.RevisionRegistry) *ManifestsCommand {
	return &ManifestsCommand{revisionRegistry: revisionRegistry}
}

// Execute lists the changed files between the configured revisions.
func (it *ManifestsCommand) Execute(
	ctx context.Context,
	settings entities.Settings,
) (entities.ChangedManifests, error) {
	store, err := it.revisionRegistry.Get(settings.Backend, settings.RepoRoot)
	if err != nil {
		return entities.ChangedManifests{}, fmt.Errorf("%w: %w", entities.ErrInvalidSettings, err)
	}
	return scanChanges(ctx, store, settings.Revisions), nil
}
