package repositories

import (
	"context"

	"github.com/rios0rios0/depreview/internal/domain/entities"
)

// ManifestParserRepository extracts dependency records for one ecosystem.
// Parsers never fail: unreadable revisions or unparseable lines degrade to
// fewer (or bare-name) records.
type ManifestParserRepository interface {
	// Name returns the parser identifier (e.g. "golang", "rust").
	Name() string

	// Kinds returns the manifest kinds the parser owns, in emission order.
	Kinds() []entities.ManifestKind

	// Parse returns the records for every changed manifest the parser owns.
	Parse(
		ctx context.Context,
		store RevisionRepository,
		revisions entities.RevisionRange,
		changed entities.ChangedManifests,
	) []entities.DependencyRecord
}
