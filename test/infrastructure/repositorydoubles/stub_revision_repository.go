//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations; no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rios0rios0/depreview/internal/domain/entities"
	"github.com/rios0rios0/depreview/internal/domain/repositories"
)

// StubRevisionRepository implements repositories.RevisionBackend in memory.
// Use WithChange to register a file at both revisions; the patch is
// generated with UnifiedDiff.
type StubRevisionRepository struct {
	Revisions entities.RevisionRange

	// --- ChangedFiles ---
	Files           []string
	ChangedFilesErr error

	// --- Diff ---
	Patches map[string]string // path -> patch
	DiffErr error

	// --- ContentAt ---
	Contents   map[entities.Revision]map[string]string
	ContentErr error

	// --- DefaultHead / DefaultBase ---
	DefaultHeadRevision entities.Revision
	DefaultHeadErr      error
	DefaultBaseRevision entities.Revision
	DefaultBaseErr      error

	// spy
	ChangedFilesCalls int
	DiffPaths         []string
	ContentRequests   []string // "revision:path"
}

var _ repositories.RevisionBackend = (*StubRevisionRepository)(nil)

// NewStubRevisionRepository creates an empty store for the given revisions.
func NewStubRevisionRepository(revisions entities.RevisionRange) *StubRevisionRepository {
	return &StubRevisionRepository{
		Revisions: revisions,
		Patches:   make(map[string]string),
		Contents: map[entities.Revision]map[string]string{
			revisions.Base: {},
			revisions.Head: {},
		},
	}
}

// WithChange registers path as changed from before to after. An empty
// before means the file did not exist at the base revision.
func (s *StubRevisionRepository) WithChange(path, before, after string) *StubRevisionRepository {
	s.Files = append(s.Files, path)
	s.Patches[path] = UnifiedDiff(path, before, after)
	if before != "" {
		s.Contents[s.Revisions.Base][path] = before
	}
	if after != "" {
		s.Contents[s.Revisions.Head][path] = after
	}
	return s
}

// WithChangedFile registers a changed path with no content.
func (s *StubRevisionRepository) WithChangedFile(path string) *StubRevisionRepository {
	s.Files = append(s.Files, path)
	return s
}

func (s *StubRevisionRepository) ChangedFiles(
	_ context.Context,
	_ entities.RevisionRange,
) ([]string, error) {
	s.ChangedFilesCalls++
	if s.ChangedFilesErr != nil {
		return nil, s.ChangedFilesErr
	}
	return s.Files, nil
}

func (s *StubRevisionRepository) Diff(
	_ context.Context,
	_ entities.RevisionRange,
	path string,
) (string, error) {
	s.DiffPaths = append(s.DiffPaths, path)
	if s.DiffErr != nil {
		return "", s.DiffErr
	}
	return s.Patches[path], nil
}

func (s *StubRevisionRepository) ContentAt(
	_ context.Context,
	revision entities.Revision,
	path string,
) (string, error) {
	s.ContentRequests = append(s.ContentRequests, fmt.Sprintf("%s:%s", revision, path))
	if s.ContentErr != nil {
		return "", s.ContentErr
	}
	content, ok := s.Contents[revision][path]
	if !ok {
		return "", fmt.Errorf("%w: %s at %s", repositories.ErrFileNotFound, path, revision)
	}
	return content, nil
}

func (s *StubRevisionRepository) DefaultHead(_ context.Context) (entities.Revision, error) {
	return s.DefaultHeadRevision, s.DefaultHeadErr
}

func (s *StubRevisionRepository) DefaultBase(
	_ context.Context,
	_ entities.Revision,
) (entities.Revision, error) {
	return s.DefaultBaseRevision, s.DefaultBaseErr
}
