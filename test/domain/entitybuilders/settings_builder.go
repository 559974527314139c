//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/depreview/internal/domain/entities"
)

// StubBackend is the backend name tests register their in-memory store under.
const StubBackend = "stub"

// SettingsBuilder helps create detection settings without going through validation.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	settings entities.Settings
}

// NewSettingsBuilder creates an auto-mode builder diffing "base" against "head".
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		settings:    defaultSettings(),
	}
}

func defaultSettings() entities.Settings {
	return entities.Settings{
		Mode:         entities.ModeAuto,
		Revisions:    entities.RevisionRange{Base: "base", Head: "head"},
		RepoRoot:     ".",
		Backend:      StubBackend,
		OutputFormat: entities.OutputText,
		SearchDepth:  entities.DefaultManifestSearchDepth,
	}
}

// WithRevisions sets the base and head revisions.
func (b *SettingsBuilder) WithRevisions(base, head entities.Revision) *SettingsBuilder {
	b.settings.Revisions = entities.RevisionRange{Base: base, Head: head}
	return b
}

// WithForcedDependency switches to force mode with the given token.
func (b *SettingsBuilder) WithForcedDependency(dependency string) *SettingsBuilder {
	b.settings.Mode = entities.ModeForce
	b.settings.ForcedDependency = dependency
	return b
}

// WithForcedEcosystem sets the force mode ecosystem override.
func (b *SettingsBuilder) WithForcedEcosystem(ecosystem entities.EcosystemLabel) *SettingsBuilder {
	b.settings.ForcedEcosystem = ecosystem
	return b
}

// WithRepoRoot sets the repository root.
func (b *SettingsBuilder) WithRepoRoot(root string) *SettingsBuilder {
	b.settings.RepoRoot = root
	return b
}

// WithBackend sets the revision backend name.
func (b *SettingsBuilder) WithBackend(backend string) *SettingsBuilder {
	b.settings.Backend = backend
	return b
}

// WithIncludeUnchanged toggles no-change markers.
func (b *SettingsBuilder) WithIncludeUnchanged(include bool) *SettingsBuilder {
	b.settings.IncludeUnchanged = include
	return b
}

// WithSearchDepth sets the crate manifest search depth.
func (b *SettingsBuilder) WithSearchDepth(depth int) *SettingsBuilder {
	b.settings.SearchDepth = depth
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() entities.Settings {
	return b.settings
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.settings = defaultSettings()
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		settings:    b.settings,
	}
}
