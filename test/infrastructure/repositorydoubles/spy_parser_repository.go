//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depreview/internal/domain/entities"
	"github.com/rios0rios0/depreview/internal/domain/repositories"
)

// SpyParserRepository implements repositories.ManifestParserRepository with
// canned records.
type SpyParserRepository struct {
	ParserName  string
	ParserKinds []entities.ManifestKind
	Records     []entities.DependencyRecord

	// spy
	ParseCallCount int
	LastChanged    entities.ChangedManifests
}

var _ repositories.ManifestParserRepository = (*SpyParserRepository)(nil)

func (s *SpyParserRepository) Name() string { return s.ParserName }

func (s *SpyParserRepository) Kinds() []entities.ManifestKind { return s.ParserKinds }

func (s *SpyParserRepository) Parse(
	_ context.Context,
	_ repositories.RevisionRepository,
	_ entities.RevisionRange,
	changed entities.ChangedManifests,
) []entities.DependencyRecord {
	s.ParseCallCount++
	s.LastChanged = changed
	return s.Records
}
