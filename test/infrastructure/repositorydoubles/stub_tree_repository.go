//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/depreview/internal/domain/repositories"
)

// StubTreeRepository implements repositories.TreeRepository.
type StubTreeRepository struct {
	FoundPath string
	Found     bool

	// spy
	Searches []TreeSearch
}

// TreeSearch records one FindFile call.
type TreeSearch struct {
	Root     string
	Filename string
	MaxDepth int
}

var _ repositories.TreeRepository = (*StubTreeRepository)(nil)

func (s *StubTreeRepository) FindFile(root, filename string, maxDepth int) (string, bool) {
	s.Searches = append(s.Searches, TreeSearch{Root: root, Filename: filename, MaxDepth: maxDepth})
	return s.FoundPath, s.Found
}
