//go:build unit

package output_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/depreview/internal/domain/entities"
	"github.com/rios0rios0/depreview/internal/infrastructure/repositories/output"
)

func mixedResult() entities.DetectionResult {
	return entities.DetectionResult{
		HasChanges:   true,
		Ecosystem:    entities.EcosystemMixed,
		Dependencies: []string{"github.com/lib/pq@v1.10.9..v1.10.10", "serde@1.0.197"},
	}
}

func TestGitHubOutputRepositoryEmit(t *testing.T) {
	t.Parallel()

	t.Run("should append key=value entries to the output file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "github_output")
		require.NoError(t, os.WriteFile(path, []byte("previous=1\n"), 0o600))
		emitter := output.NewGitHubOutputRepository(path)

		// when
		err := emitter.Emit(mixedResult())

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "previous=1\n"+
			"has_changes=true\n"+
			"ecosystem=mixed\n"+
			"dependencies=github.com/lib/pq@v1.10.9..v1.10.10,serde@1.0.197\n", string(content))
		assert.Equal(t, entities.OutputGitHub, emitter.Format())
	})

	t.Run("should write an empty dependency list when nothing changed", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "github_output")
		emitter := output.NewGitHubOutputRepository(path)

		// when
		err := emitter.Emit(entities.NoChangesResult())

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "has_changes=false\necosystem=none\ndependencies=\n", string(content))
	})

	t.Run("should use the delimiter syntax for multiline values", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "github_output")
		emitter := output.NewGitHubOutputRepository(path)
		result := entities.DetectionResult{HasChanges: true, Ecosystem: entities.EcosystemGo, Dependencies: []string{"a\nb"}}

		// when
		err := emitter.Emit(result)

		// then
		require.NoError(t, err)
		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Contains(t, string(content), "dependencies<<DEPREVIEW_EOF\na\nb\nDEPREVIEW_EOF\n")
	})

	t.Run("should fail when the output file cannot be opened", func(t *testing.T) {
		t.Parallel()

		// given
		emitter := output.NewGitHubOutputRepository(filepath.Join(t.TempDir(), "missing", "github_output"))

		// when
		err := emitter.Emit(mixedResult())

		// then
		require.Error(t, err)
	})
}

func TestStreamOutputRepositories(t *testing.T) {
	t.Parallel()

	t.Run("should print key=value lines as text", func(t *testing.T) {
		t.Parallel()

		// given
		var buf bytes.Buffer

		// when
		err := output.NewTextOutputRepository(&buf).Emit(mixedResult())

		// then
		require.NoError(t, err)
		assert.Equal(t, "has_changes=true\n"+
			"ecosystem=mixed\n"+
			"dependencies=github.com/lib/pq@v1.10.9..v1.10.10,serde@1.0.197\n", buf.String())
	})

	t.Run("should print a JSON object with a dependency list", func(t *testing.T) {
		t.Parallel()

		// given
		var buf bytes.Buffer

		// when
		err := output.NewJSONOutputRepository(&buf).Emit(mixedResult())

		// then
		require.NoError(t, err)
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, true, decoded["has_changes"])
		assert.Equal(t, "mixed", decoded["ecosystem"])
		assert.Equal(t, []any{"github.com/lib/pq@v1.10.9..v1.10.10", "serde@1.0.197"}, decoded["dependencies"])
	})

	t.Run("should print an empty JSON list rather than null", func(t *testing.T) {
		t.Parallel()

		// given
		var buf bytes.Buffer
		result := entities.DetectionResult{Ecosystem: entities.EcosystemNone}

		// when
		err := output.NewJSONOutputRepository(&buf).Emit(result)

		// then
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"dependencies": []`)
	})

	t.Run("should print a YAML document", func(t *testing.T) {
		t.Parallel()

		// given
		var buf bytes.Buffer

		// when
		err := output.NewYAMLOutputRepository(&buf).Emit(mixedResult())

		// then
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "has_changes: true\n")
		var decoded struct {
			HasChanges   bool     `yaml:"has_changes"`
			Ecosystem    string   `yaml:"ecosystem"`
			Dependencies []string `yaml:"dependencies"`
		}
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, "mixed", decoded.Ecosystem)
		assert.Len(t, decoded.Dependencies, 2)
	})
}
