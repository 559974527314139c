package repositories

import (
	"fmt"
	"io"

	domainRepos "github.com/rios0rios0/depreview/internal/domain/repositories"
)

// OutputFactory creates an emitter. path is the output file for file-based
// formats; writer receives stream formats.
type OutputFactory func(path string, writer io.Writer) domainRepos.OutputRepository

// OutputRegistry manages all registered output formats.
type OutputRegistry struct {
	outputs map[string]OutputFactory
}

// NewOutputRegistry creates an empty output registry.
func NewOutputRegistry() *OutputRegistry {
	return &OutputRegistry{
		outputs: make(map[string]OutputFactory),
	}
}

// Register adds an output factory under the given format name.
func (r *OutputRegistry) Register(format string, factory OutputFactory) {
	r.outputs[format] = factory
}

// Get returns an emitter for the given format.
func (r *OutputRegistry) Get(format, path string, writer io.Writer) (domainRepos.OutputRepository, error) {
	factory, ok := r.outputs[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format: %q", format)
	}
	return factory(path, writer), nil
}
