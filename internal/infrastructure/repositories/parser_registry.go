package repositories

import (
	domainRepos "github.com/rios0rios0/depreview/internal/domain/repositories"
)

// ParserRegistry manages all registered manifest parsers, in registration order.
type ParserRegistry struct {
	parsers []domainRepos.ManifestParserRepository
}

// NewParserRegistry creates an empty parser registry.
func NewParserRegistry() *ParserRegistry {
	return &ParserRegistry{}
}

// Register adds a parser, replacing in place any parser with the same name.
func (r *ParserRegistry) Register(p domainRepos.ManifestParserRepository) {
	for i, registered := range r.parsers {
		if registered.Name() == p.Name() {
			r.parsers[i] = p
			return
		}
	}
	r.parsers = append(r.parsers, p)
}

// All returns every registered parser in registration order.
func (r *ParserRegistry) All() []domainRepos.ManifestParserRepository {
	result := make([]domainRepos.ManifestParserRepository, len(r.parsers))
	copy(result, r.parsers)
	return result
}
