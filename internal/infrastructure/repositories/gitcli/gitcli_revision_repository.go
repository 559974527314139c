package gitcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rios0rios0/depreview/internal/domain/entities"
	"github.com/rios0rios0/depreview/internal/domain/repositories"
)

const remoteHeadRef = "refs/remotes/origin/"

// GitCLIRevisionRepository shells out to the git binary, the same way the
// checkout in a CI job would be inspected by hand.
type GitCLIRevisionRepository struct {
	root string
}

// NewGitCLIRevisionRepository creates a store running git inside root.
func NewGitCLIRevisionRepository(root string) repositories.RevisionBackend {
	return &GitCLIRevisionRepository{root: root}
}

// ChangedFiles runs `git diff --name-only base...head`.
func (r *GitCLIRevisionRepository) ChangedFiles(
	ctx context.Context,
	revisions entities.RevisionRange,
) ([]string, error) {
	output, err := r.run(ctx, "diff", "--name-only", tripleDot(revisions))
	if err != nil {
		return nil, err
	}

	var files []string
	for _, line := range strings.Split(output, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			files = append(files, trimmed)
		}
	}
	return files, nil
}

// Diff runs `git diff base...head -- path`.
func (r *GitCLIRevisionRepository) Diff(
	ctx context.Context,
	revisions entities.RevisionRange,
	path string,
) (string, error) {
	return r.run(ctx, "diff", tripleDot(revisions), "--", path)
}

// ContentAt runs `git show revision:path`.
func (r *GitCLIRevisionRepository) ContentAt(
	ctx context.Context,
	revision entities.Revision,
	path string,
) (string, error) {
	output, err := r.run(ctx, "show", revision.String()+":"+path)
	if err != nil {
		if isMissingPath(err) {
			return "", fmt.Errorf("%s at %s: %w", path, revision, repositories.ErrFileNotFound)
		}
		return "", err
	}
	return output, nil
}

// DefaultHead runs `git rev-parse HEAD`.
func (r *GitCLIRevisionRepository) DefaultHead(ctx context.Context) (entities.Revision, error) {
	output, err := r.run(ctx, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return entities.Revision(strings.TrimSpace(output)), nil
}

// DefaultBase merges head with the remote default branch, falling back to
// head's parent.
func (r *GitCLIRevisionRepository) DefaultBase(
	ctx context.Context,
	head entities.Revision,
) (entities.Revision, error) {
	branch := "main"
	if ref, err := r.run(ctx, "symbolic-ref", remoteHeadRef+"HEAD"); err == nil {
		if trimmed := strings.TrimPrefix(strings.TrimSpace(ref), remoteHeadRef); trimmed != "" {
			branch = trimmed
		}
	}

	if base, err := r.run(ctx, "merge-base", "origin/"+branch, head.String()); err == nil {
		if trimmed := strings.TrimSpace(base); trimmed != "" {
			return entities.Revision(trimmed), nil
		}
	}

	parent, err := r.run(ctx, "rev-parse", head.String()+"~1")
	if err != nil {
		return "", fmt.Errorf("could not determine base revision: %w", err)
	}
	return entities.Revision(strings.TrimSpace(parent)), nil
}

// gitError keeps git's stderr next to the exit error.
type gitError struct {
	args   []string
	stderr string
	err    error
}

func (e *gitError) Error() string {
	return fmt.Sprintf("git %s: %v: %s", strings.Join(e.args, " "), e.err, strings.TrimSpace(e.stderr))
}

func (e *gitError) Unwrap() error { return e.err }

func (r *GitCLIRevisionRepository) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.root

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		return "", &gitError{args: args, stderr: stderr.String(), err: err}
	}
	return string(output), nil
}

func tripleDot(revisions entities.RevisionRange) string {
	return revisions.Base.String() + "..." + revisions.Head.String()
}

func isMissingPath(err error) bool {
	var gitErr *gitError
	if !errors.As(err, &gitErr) {
		return false
	}
	return strings.Contains(gitErr.stderr, "does not exist in") ||
		strings.Contains(gitErr.stderr, "exists on disk, but not in")
}
