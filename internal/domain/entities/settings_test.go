//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depreview/internal/domain/entities"
)

func TestNewSettings(t *testing.T) {
	t.Parallel()

	t.Run("should build auto mode settings with defaults", func(t *testing.T) {
		t.Parallel()

		// given
		input := entities.SettingsInput{Base: " abc123 ", Head: "def456"}

		// when
		settings, err := entities.NewSettings(input)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ModeAuto, settings.Mode)
		assert.Equal(t, entities.Revision("abc123"), settings.Revisions.Base)
		assert.Equal(t, entities.Revision("def456"), settings.Revisions.Head)
		assert.Equal(t, ".", settings.RepoRoot)
		assert.Equal(t, entities.BackendGoGit, settings.Backend)
		assert.Equal(t, entities.OutputText, settings.OutputFormat)
		assert.Equal(t, entities.DefaultManifestSearchDepth, settings.SearchDepth)
	})

	t.Run("should default to github output when an output file is set", func(t *testing.T) {
		t.Parallel()

		// given
		input := entities.SettingsInput{Base: "a", Head: "b", OutputPath: "/tmp/github_output"}

		// when
		settings, err := entities.NewSettings(input)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.OutputGitHub, settings.OutputFormat)
	})

	t.Run("should select force mode when a dependency is given", func(t *testing.T) {
		t.Parallel()

		// given
		input := entities.SettingsInput{Dependency: "tokio", Ecosystem: "rust"}

		// when
		settings, err := entities.NewSettings(input)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.ModeForce, settings.Mode)
		assert.Equal(t, "tokio", settings.ForcedDependency)
		assert.Equal(t, entities.EcosystemRust, settings.ForcedEcosystem)
	})

	t.Run("should reject auto mode without a base revision", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.NewSettings(entities.SettingsInput{Head: "b"})

		// then
		require.ErrorIs(t, err, entities.ErrInvalidSettings)
		assert.Contains(t, err.Error(), "base revision")
	})

	t.Run("should reject auto mode without a head revision", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.NewSettings(entities.SettingsInput{Base: "a"})

		// then
		require.ErrorIs(t, err, entities.ErrInvalidSettings)
		assert.Contains(t, err.Error(), "head revision")
	})

	t.Run("should reject an unknown ecosystem override", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.NewSettings(entities.SettingsInput{Dependency: "x", Ecosystem: "npm"})

		// then
		require.ErrorIs(t, err, entities.ErrInvalidSettings)
	})

	t.Run("should reject an unknown output format", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.NewSettings(entities.SettingsInput{Base: "a", Head: "b", OutputFormat: "xml"})

		// then
		require.ErrorIs(t, err, entities.ErrInvalidSettings)
	})

	t.Run("should reject github output without an output file", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.NewSettings(entities.SettingsInput{Base: "a", Head: "b", OutputFormat: "github"})

		// then
		require.ErrorIs(t, err, entities.ErrInvalidSettings)
	})

	t.Run("should reject an unknown backend", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.NewSettings(entities.SettingsInput{Base: "a", Head: "b", Backend: "svn"})

		// then
		require.ErrorIs(t, err, entities.ErrInvalidSettings)
	})
}
