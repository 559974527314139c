package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depreview/internal/domain/entities"
	"github.com/rios0rios0/depreview/internal/domain/repositories"
)

// Force is the interface for force-mode resolution.
type Force interface {
	Execute(ctx context.Context, settings entities.Settings) (entities.DetectionResult, error)
}

// ForceCommand reports an explicitly supplied dependency without diffing,
// inferring the ecosystem when none was given.
type ForceCommand struct {
	tree repositories.TreeRepository
}

// NewForceCommand creates a new ForceCommand.
func NewForceCommand(tree repositories.TreeRepository) *ForceCommand {
	return &ForceCommand{tree: tree}
}

// Execute resolves the ecosystem: explicit override, then a domain-qualified
// leading token, then a crate manifest near the repository root, then Go.
// The dependency input is passed through verbatim.
func (it *ForceCommand) Execute(
	_ context.Context,
	settings entities.Settings,
) (entities.DetectionResult, error) {
	ecosystem := it.inferEcosystem(settings)
	logger.Infof("Force mode: dependency=%q ecosystem=%s", settings.ForcedDependency, ecosystem)

	return entities.DetectionResult{
		HasChanges:   true,
		Ecosystem:    ecosystem,
		Dependencies: []string{settings.ForcedDependency},
	}, nil
}

func (it *ForceCommand) inferEcosystem(settings entities.Settings) entities.EcosystemLabel {
	if settings.ForcedEcosystem != "" {
		return settings.ForcedEcosystem
	}
	if entities.HasDomainShape(settings.ForcedDependency) {
		return entities.EcosystemGo
	}

	depth := settings.SearchDepth
	if depth <= 0 {
		depth = entities.DefaultManifestSearchDepth
	}
	if found, ok := it.tree.FindFile(settings.RepoRoot, entities.RustManifest.FileName(), depth); ok {
		logger.Debugf("Found crate manifest at %s", found)
		return entities.EcosystemRust
	}
	return entities.EcosystemGo
}
