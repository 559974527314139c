package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/rios0rios0/depreview/internal/domain/entities"
	"github.com/rios0rios0/depreview/internal/domain/repositories"
)

const (
	outputFileMode   = 0o644
	heredocDelimiter = "DEPREVIEW_EOF"
)

// GitHubOutputRepository appends the result to a GitHub Actions output file
// ($GITHUB_OUTPUT) as has_changes, ecosystem and dependencies entries.
type GitHubOutputRepository struct {
	path string
}

// NewGitHubOutputRepository creates an emitter appending to path.
func NewGitHubOutputRepository(path string) repositories.OutputRepository {
	return &GitHubOutputRepository{path: path}
}

func (o *GitHubOutputRepository) Format() string { return entities.OutputGitHub }

// Emit appends one entry per output key.
func (o *GitHubOutputRepository) Emit(result entities.DetectionResult) error {
	file, err := os.OpenFile(o.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, outputFileMode)
	if err != nil {
		return fmt.Errorf("failed to open output file %q: %w", o.path, err)
	}
	defer file.Close()

	var sb strings.Builder
	for _, entry := range outputEntries(result) {
		writeEntry(&sb, entry.key, entry.value)
	}

	if _, writeErr := file.WriteString(sb.String()); writeErr != nil {
		return fmt.Errorf("failed to write output file %q: %w", o.path, writeErr)
	}
	return nil
}

type outputEntry struct {
	key   string
	value string
}

func outputEntries(result entities.DetectionResult) []outputEntry {
	return []outputEntry{
		{key: "has_changes", value: fmt.Sprintf("%t", result.HasChanges)},
		{key: "ecosystem", value: result.Ecosystem.String()},
		{key: "dependencies", value: result.DependencyList()},
	}
}

// writeEntry uses the multiline delimiter syntax only when a value needs it.
func writeEntry(sb *strings.Builder, key, value string) {
	if !strings.ContainsAny(value, "\r\n") {
		fmt.Fprintf(sb, "%s=%s\n", key, value)
		return
	}
	fmt.Fprintf(sb, "%s<<%s\n%s\n%s\n", key, heredocDelimiter, value, heredocDelimiter)
}
