package repositories

import (
	"context"
	"errors"

	"github.com/rios0rios0/depreview/internal/domain/entities"
)

// ErrFileNotFound is returned by ContentAt when the path does not exist at
// the requested revision.
var ErrFileNotFound = errors.New("file not found at revision")

// RevisionRepository abstracts the version-control backend a detection run
// reads from. Diffs and changed-file lists follow "base...head" semantics:
// they compare the merge base of the two revisions with head.
type RevisionRepository interface {
	// ChangedFiles lists the slash-separated paths touched between the revisions.
	ChangedFiles(ctx context.Context, revisions entities.RevisionRange) ([]string, error)

	// Diff returns the unified patch of one path, or "" when it did not change.
	Diff(ctx context.Context, revisions entities.RevisionRange, path string) (string, error)

	// ContentAt returns the full content of a path at a revision.
	ContentAt(ctx context.Context, revision entities.Revision, path string) (string, error)
}

// RevisionResolver fills in default revisions when the caller supplied none.
type RevisionResolver interface {
	// DefaultHead returns the revision checked out in the working tree.
	DefaultHead(ctx context.Context) (entities.Revision, error)

	// DefaultBase returns the merge base with the remote default branch,
	// falling back to the parent of head.
	DefaultBase(ctx context.Context, head entities.Revision) (entities.Revision, error)
}

// RevisionBackend is a revision store that can also resolve defaults.
type RevisionBackend interface {
	RevisionRepository
	RevisionResolver
}
