//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/depreview/internal/domain/entities"
	"github.com/rios0rios0/depreview/internal/domain/repositories"
)

// SpyOutputRepository implements repositories.OutputRepository and records
// every emitted result.
type SpyOutputRepository struct {
	OutputFormat string
	EmitErr      error

	// spy
	Emitted []entities.DetectionResult
}

var _ repositories.OutputRepository = (*SpyOutputRepository)(nil)

func (s *SpyOutputRepository) Format() string { return s.OutputFormat }

func (s *SpyOutputRepository) Emit(result entities.DetectionResult) error {
	s.Emitted = append(s.Emitted, result)
	return s.EmitErr
}
