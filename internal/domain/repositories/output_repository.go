package repositories

import "github.com/rios0rios0/depreview/internal/domain/entities"

// OutputRepository publishes a detection result to downstream consumers.
type OutputRepository interface {
	// Format returns the output format identifier.
	Format() string

	// Emit writes the result.
	Emit(result entities.DetectionResult) error
}
