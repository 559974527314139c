package commands

import (
	"context"
	"fmt"
	"sort"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depreview/internal/domain/entities"
	"github.com/rios0rios0/depreview/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/depreview/internal/infrastructure/repositories"
)

// Detect is the interface for the detection pipeline.
type Detect interface {
	Execute(ctx context.Context, settings entities.Settings) (entities.DetectionResult, error)
}

// DetectCommand runs one detection:
// enumerate changed files -> parse each touched manifest kind -> classify.
// Force mode short-circuits the pipeline.
type DetectCommand struct {
	force            Force
	parserRegistry   *infraRepos.ParserRegistry
	revisionRegistry *infraRepos.RevisionRegistry
}

// NewDetectCommand creates a new DetectCommand with the given collaborators.
func NewDetectCommand(
	force Force,
	parserRegistry *infraRepos.ParserRegistry,
	revisionRegistry *infraRepos.RevisionRegistry,
) *DetectCommand {
	return &DetectCommand{
		force:            force,
		parserRegistry:   parserRegistry,
		revisionRegistry: revisionRegistry,
	}
}

// Execute runs the detection described by settings. Only configuration
// errors are returned; store failures degrade to empty data.
func (it *DetectCommand) Execute(
	ctx context.Context,
	settings entities.Settings,
) (entities.DetectionResult, error) {
	if settings.Mode == entities.ModeForce {
		return it.force.Execute(ctx, settings)
	}

	store, err := it.revisionRegistry.Get(settings.Backend, settings.RepoRoot)
	if err != nil {
		return entities.DetectionResult{}, fmt.Errorf("%w: %w", entities.ErrInvalidSettings, err)
	}

	changed := scanChanges(ctx, store, settings.Revisions)
	if !changed.HasFiles() || !changed.AnyManifest() {
		logger.Info("No dependency manifest changes detected")
		return entities.NoChangesResult(), nil
	}

	records := it.parseRecords(ctx, store, settings.Revisions, changed)
	ecosystem := entities.ClassifyEcosystem(changed.Flags())
	result := entities.NewDetectionResult(ecosystem, records, settings.IncludeUnchanged)

	logger.Infof(
		"Detection complete: ecosystem=%s, %d dependencies across %d changed files",
		result.Ecosystem, len(result.Dependencies), len(changed.Files),
	)
	return result, nil
}

// parseRecords runs every parser owning a touched kind and orders the
// combined records by kind, keeping per-file order within a kind.
func (it *DetectCommand) parseRecords(
	ctx context.Context,
	store repositories.RevisionRepository,
	revisions entities.RevisionRange,
	changed entities.ChangedManifests,
) []entities.DependencyRecord {
	var records []entities.DependencyRecord
	for _, parser := range it.parserRegistry.All() {
		if !ownsTouchedKind(parser, changed) {
			continue
		}
		found := parser.Parse(ctx, store, revisions, changed)
		logger.Infof("[%s] %d dependency changes: %v", parser.Name(), len(found), renderAll(found))
		records = append(records, found...)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Kind < records[j].Kind
	})
	return records
}

// scanChanges lists and classifies the changed files. A failing store is
// treated as an empty change set.
func scanChanges(
	ctx context.Context,
	store repositories.RevisionRepository,
	revisions entities.RevisionRange,
) entities.ChangedManifests {
	files, err := store.ChangedFiles(ctx, revisions)
	if err != nil {
		logger.Warnf("Failed to list changed files between %s and %s: %v", revisions.Base, revisions.Head, err)
		files = nil
	}

	changed := entities.ScanChangedFiles(files)
	logger.Debugf("Changed files: %v", changed.Files)

	flags := changed.Flags()
	logger.Infof(
		"Touched manifests: go.mod=%t go.sum=%t Cargo.toml=%t Cargo.lock=%t",
		flags.GoModule, flags.GoSum, flags.RustManifest, flags.RustLock,
	)
	return changed
}

func ownsTouchedKind(parser repositories.ManifestParserRepository, changed entities.ChangedManifests) bool {
	for _, kind := range parser.Kinds() {
		if changed.Touched(kind) {
			return true
		}
	}
	return false
}

func renderAll(records []entities.DependencyRecord) []string {
	tokens := make([]string, 0, len(records))
	for _, record := range records {
		tokens = append(tokens, record.Render())
	}
	return tokens
}
