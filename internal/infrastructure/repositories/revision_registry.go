package repositories

import (
	"fmt"
	"sort"
	"strings"

	domainRepos "github.com/rios0rios0/depreview/internal/domain/repositories"
)

// RevisionFactory creates a revision backend rooted at a repository path.
type RevisionFactory func(root string) domainRepos.RevisionBackend

// RevisionRegistry manages all registered version-control backends.
type RevisionRegistry struct {
	backends map[string]RevisionFactory
}

// NewRevisionRegistry creates an empty revision registry.
func NewRevisionRegistry() *RevisionRegistry {
	return &RevisionRegistry{
		backends: make(map[string]RevisionFactory),
	}
}

// Register adds a backend factory under the given name (e.g. "gogit").
func (r *RevisionRegistry) Register(name string, factory RevisionFactory) {
	r.backends[name] = factory
}

// Get returns a backend instance for the given name and repository root.
func (r *RevisionRegistry) Get(name, root string) (domainRepos.RevisionBackend, error) {
	factory, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown revision backend: %q (available: %s)", name, strings.Join(r.Names(), ", "))
	}
	return factory(root), nil
}

// Names returns the sorted list of registered backend names.
func (r *RevisionRegistry) Names() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
