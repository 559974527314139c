package rust

import (
	"context"
	"errors"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depreview/internal/domain/entities"
	"github.com/rios0rios0/depreview/internal/domain/repositories"
)

const parserName = "rust"

// RustParserRepository implements repositories.ManifestParserRepository for
// Cargo.toml (declared dependencies) and Cargo.lock (resolved packages).
type RustParserRepository struct{}

// NewRustParserRepository creates a new Rust manifest parser.
func NewRustParserRepository() repositories.ManifestParserRepository {
	return &RustParserRepository{}
}

func (p *RustParserRepository) Name() string { return parserName }

func (p *RustParserRepository) Kinds() []entities.ManifestKind {
	return []entities.ManifestKind{entities.RustManifest, entities.RustLock}
}

// Parse extracts records from every changed Cargo.toml first, then from
// every changed Cargo.lock. Nothing is deduplicated across files.
func (p *RustParserRepository) Parse(
	ctx context.Context,
	store repositories.RevisionRepository,
	revisions entities.RevisionRange,
	changed entities.ChangedManifests,
) []entities.DependencyRecord {
	var records []entities.DependencyRecord

	for _, filePath := range changed.ByKind[entities.RustManifest] {
		for _, record := range p.parseManifest(ctx, store, revisions, filePath) {
			records = append(records, record.In(entities.RustManifest, filePath))
		}
	}

	for _, filePath := range changed.ByKind[entities.RustLock] {
		patch := readPatch(ctx, store, revisions, filePath)
		for _, record := range ParseLockPatch(patch) {
			records = append(records, record.In(entities.RustLock, filePath))
		}
	}

	return records
}

func (p *RustParserRepository) parseManifest(
	ctx context.Context,
	store repositories.RevisionRepository,
	revisions entities.RevisionRange,
	filePath string,
) []entities.DependencyRecord {
	patch := readPatch(ctx, store, revisions, filePath)
	if patch == "" {
		return nil
	}

	head := lazyContent(ctx, store, revisions.Head, filePath)
	tracker := entities.NewSectionTracker(func(hunkStart int) string {
		return entities.SectionAt(head(), hunkStart)
	})
	declared := AddedDeclarations(tracker, entities.ParsePatch(patch))
	if len(declared) == 0 {
		return nil
	}

	base, baseErr := store.ContentAt(ctx, revisions.Base, filePath)
	if baseErr != nil && !errors.Is(baseErr, repositories.ErrFileNotFound) {
		logger.Warnf("[rust] Failed to read %s at %s: %v", filePath, revisions.Base, baseErr)
	}
	baseManifest := NewBaseManifest(base)

	records := make([]entities.DependencyRecord, 0, len(declared))
	for _, decl := range declared {
		records = append(records, entities.NewDependencyRecord(
			decl.Name, baseManifest.Lookup(decl.Section, decl.Name), decl.Version,
		))
	}
	return records
}

func readPatch(
	ctx context.Context,
	store repositories.RevisionRepository,
	revisions entities.RevisionRange,
	filePath string,
) string {
	patch, err := store.Diff(ctx, revisions, filePath)
	if err != nil {
		logger.Warnf("[rust] Failed to read diff for %s: %v", filePath, err)
		return ""
	}
	return patch
}

func lazyContent(
	ctx context.Context,
	store repositories.RevisionRepository,
	revision entities.Revision,
	filePath string,
) func() string {
	loaded := false
	content := ""
	return func() string {
		if !loaded {
			loaded = true
			var err error
			content, err = store.ContentAt(ctx, revision, filePath)
			if err != nil {
				logger.Debugf("[rust] No content for %s at %s: %v", filePath, revision, err)
				content = ""
			}
		}
		return content
	}
}
