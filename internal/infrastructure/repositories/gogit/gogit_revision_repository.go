package gogit

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depreview/internal/domain/entities"
	"github.com/rios0rios0/depreview/internal/domain/repositories"
)

const (
	remoteName      = "origin"
	fallbackBranch  = "main"
	parentRevSuffix = "~1"
)

// GoGitRevisionRepository reads revisions straight from the object database
// with go-git, so no git binary is needed on the runner.
type GoGitRevisionRepository struct {
	root    string
	repo    *git.Repository
	changes map[entities.RevisionRange]object.Changes
}

// NewGoGitRevisionRepository creates a store for the repository containing root.
func NewGoGitRevisionRepository(root string) repositories.RevisionBackend {
	return &GoGitRevisionRepository{
		root:    root,
		changes: make(map[entities.RevisionRange]object.Changes),
	}
}

// ChangedFiles lists the paths touched between the merge base and head.
func (r *GoGitRevisionRepository) ChangedFiles(
	ctx context.Context,
	revisions entities.RevisionRange,
) ([]string, error) {
	changes, err := r.diffTrees(ctx, revisions)
	if err != nil {
		return nil, err
	}

	files := make([]string, 0, len(changes))
	for _, change := range changes {
		files = append(files, changePath(change))
	}
	sort.Strings(files)
	return files, nil
}

// Diff returns the unified patch of one path.
func (r *GoGitRevisionRepository) Diff(
	ctx context.Context,
	revisions entities.RevisionRange,
	path string,
) (string, error) {
	changes, err := r.diffTrees(ctx, revisions)
	if err != nil {
		return "", err
	}

	for _, change := range changes {
		if changePath(change) != path {
			continue
		}
		patch, patchErr := change.PatchContext(ctx)
		if patchErr != nil {
			return "", fmt.Errorf("failed to build patch for %s: %w", path, patchErr)
		}
		return patch.String(), nil
	}
	return "", nil
}

// ContentAt returns the blob content of a path at a revision.
func (r *GoGitRevisionRepository) ContentAt(
	_ context.Context,
	revision entities.Revision,
	path string,
) (string, error) {
	commit, err := r.commit(revision)
	if err != nil {
		return "", err
	}

	file, err := commit.File(path)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return "", fmt.Errorf("%s at %s: %w", path, revision, repositories.ErrFileNotFound)
		}
		return "", fmt.Errorf("failed to read %s at %s: %w", path, revision, err)
	}
	return file.Contents()
}

// DefaultHead returns the commit HEAD points to.
func (r *GoGitRevisionRepository) DefaultHead(_ context.Context) (entities.Revision, error) {
	repo, err := r.open()
	if err != nil {
		return "", err
	}
	ref, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return entities.Revision(ref.Hash().String()), nil
}

// DefaultBase returns the merge base of head with the remote default branch
// (origin/HEAD, then origin/main), falling back to head's parent.
func (r *GoGitRevisionRepository) DefaultBase(
	_ context.Context,
	head entities.Revision,
) (entities.Revision, error) {
	repo, err := r.open()
	if err != nil {
		return "", err
	}
	headCommit, err := r.commit(head)
	if err != nil {
		return "", err
	}

	for _, refName := range []plumbing.ReferenceName{
		plumbing.NewRemoteHEADReferenceName(remoteName),
		plumbing.NewRemoteReferenceName(remoteName, fallbackBranch),
	} {
		ref, refErr := repo.Reference(refName, true)
		if refErr != nil {
			continue
		}
		branchCommit, commitErr := repo.CommitObject(ref.Hash())
		if commitErr != nil {
			continue
		}
		bases, baseErr := branchCommit.MergeBase(headCommit)
		if baseErr == nil && len(bases) > 0 {
			return entities.Revision(bases[0].Hash.String()), nil
		}
	}

	parent, err := r.commit(head + parentRevSuffix)
	if err != nil {
		return "", fmt.Errorf("could not determine base revision: %w", err)
	}
	return entities.Revision(parent.Hash.String()), nil
}

func (r *GoGitRevisionRepository) open() (*git.Repository, error) {
	if r.repo != nil {
		return r.repo, nil
	}
	//nolint:exhaustruct // only repository discovery is configured
	repo, err := git.PlainOpenWithOptions(r.root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %q: %w", r.root, err)
	}
	r.repo = repo
	return repo, nil
}

func (r *GoGitRevisionRepository) commit(revision entities.Revision) (*object.Commit, error) {
	repo, err := r.open()
	if err != nil {
		return nil, err
	}
	hash, err := repo.ResolveRevision(plumbing.Revision(revision))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve revision %q: %w", revision, err)
	}
	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return nil, fmt.Errorf("failed to load commit %q: %w", revision, err)
	}
	return commit, nil
}

// diffTrees compares the merge base of the range with head, once per range.
func (r *GoGitRevisionRepository) diffTrees(
	ctx context.Context,
	revisions entities.RevisionRange,
) (object.Changes, error) {
	if changes, ok := r.changes[revisions]; ok {
		return changes, nil
	}

	baseCommit, err := r.commit(revisions.Base)
	if err != nil {
		return nil, err
	}
	headCommit, err := r.commit(revisions.Head)
	if err != nil {
		return nil, err
	}

	fromCommit := baseCommit
	if bases, baseErr := baseCommit.MergeBase(headCommit); baseErr == nil && len(bases) > 0 {
		fromCommit = bases[0]
	} else if baseErr != nil {
		logger.Debugf("Merge base of %s and %s not found, diffing directly: %v", revisions.Base, revisions.Head, baseErr)
	}

	fromTree, err := fromCommit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to load tree of %s: %w", revisions.Base, err)
	}
	headTree, err := headCommit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to load tree of %s: %w", revisions.Head, err)
	}

	changes, err := object.DiffTreeWithOptions(ctx, fromTree, headTree, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to diff %s...%s: %w", revisions.Base, revisions.Head, err)
	}
	r.changes[revisions] = changes
	return changes, nil
}

func changePath(change *object.Change) string {
	if change.To.Name != "" {
		return change.To.Name
	}
	return change.From.Name
}
