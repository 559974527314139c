//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depreview/internal/domain/commands"
	"github.com/rios0rios0/depreview/internal/domain/entities"
	"github.com/rios0rios0/depreview/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/depreview/test/infrastructure/repositorydoubles"
)

func TestForceCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should infer go for a domain-qualified dependency", func(t *testing.T) {
		t.Parallel()

		// given
		tree := &doubles.StubTreeRepository{Found: true, FoundPath: "Cargo.toml"}
		cmd := commands.NewForceCommand(tree)
		settings := entitybuilders.NewSettingsBuilder().WithForcedDependency("github.com/lib/pq").BuildSettings()

		// when
		result, err := cmd.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.True(t, result.HasChanges)
		assert.Equal(t, entities.EcosystemGo, result.Ecosystem)
		assert.Equal(t, []string{"github.com/lib/pq"}, result.Dependencies)
		assert.Empty(t, tree.Searches)
	})

	t.Run("should infer rust when a crate manifest is nearby", func(t *testing.T) {
		t.Parallel()

		// given
		tree := &doubles.StubTreeRepository{Found: true, FoundPath: "crates/app/Cargo.toml"}
		cmd := commands.NewForceCommand(tree)
		settings := entitybuilders.NewSettingsBuilder().
			WithForcedDependency("serde").
			WithRepoRoot("/work").
			BuildSettings()

		// when
		result, err := cmd.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.EcosystemRust, result.Ecosystem)
		assert.Equal(t, "serde", result.DependencyList())
		require.Len(t, tree.Searches, 1)
		assert.Equal(t, doubles.TreeSearch{Root: "/work", Filename: "Cargo.toml", MaxDepth: 3}, tree.Searches[0])
	})

	t.Run("should fall back to go when no crate manifest is found", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewForceCommand(&doubles.StubTreeRepository{})
		settings := entitybuilders.NewSettingsBuilder().WithForcedDependency("serde").BuildSettings()

		// when
		result, err := cmd.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.EcosystemGo, result.Ecosystem)
	})

	t.Run("should honour an explicit ecosystem override", func(t *testing.T) {
		t.Parallel()

		// given
		tree := &doubles.StubTreeRepository{}
		cmd := commands.NewForceCommand(tree)
		settings := entitybuilders.NewSettingsBuilder().
			WithForcedDependency("github.com/lib/pq").
			WithForcedEcosystem(entities.EcosystemRust).
			BuildSettings()

		// when
		result, err := cmd.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.EcosystemRust, result.Ecosystem)
		assert.Empty(t, tree.Searches)
	})

	t.Run("should pass a multi-token dependency through verbatim", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewForceCommand(&doubles.StubTreeRepository{})
		settings := entitybuilders.NewSettingsBuilder().
			WithForcedDependency("golang.org/x/text@v0.14.0,github.com/lib/pq").
			BuildSettings()

		// when
		result, err := cmd.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.EcosystemGo, result.Ecosystem)
		assert.Equal(t, []string{"golang.org/x/text@v0.14.0,github.com/lib/pq"}, result.Dependencies)
	})

	t.Run("should use the default depth when none is configured", func(t *testing.T) {
		t.Parallel()

		// given
		tree := &doubles.StubTreeRepository{}
		cmd := commands.NewForceCommand(tree)
		settings := entitybuilders.NewSettingsBuilder().
			WithForcedDependency("tokio").
			WithSearchDepth(0).
			BuildSettings()

		// when
		_, err := cmd.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		require.Len(t, tree.Searches, 1)
		assert.Equal(t, entities.DefaultManifestSearchDepth, tree.Searches[0].MaxDepth)
	})
}
