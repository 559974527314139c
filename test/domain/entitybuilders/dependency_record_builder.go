//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/depreview/internal/domain/entities"
)

// DependencyRecordBuilder helps create test dependency records with a fluent interface.
type DependencyRecordBuilder struct {
	*testkit.BaseBuilder
	name       string
	oldVersion string
	newVersion string
	kind       entities.ManifestKind
	filePath   string
}

// NewDependencyRecordBuilder creates a new record builder with sensible defaults.
func NewDependencyRecordBuilder() *DependencyRecordBuilder {
	return &DependencyRecordBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "github.com/test/dep",
		oldVersion:  "v1.0.0",
		newVersion:  "v2.0.0",
		kind:        entities.GoModule,
		filePath:    "go.mod",
	}
}

// WithName sets the dependency name.
func (b *DependencyRecordBuilder) WithName(name string) *DependencyRecordBuilder {
	b.name = name
	return b
}

// WithOldVersion sets the base revision version.
func (b *DependencyRecordBuilder) WithOldVersion(version string) *DependencyRecordBuilder {
	b.oldVersion = version
	return b
}

// WithNewVersion sets the head revision version.
func (b *DependencyRecordBuilder) WithNewVersion(version string) *DependencyRecordBuilder {
	b.newVersion = version
	return b
}

// WithKind sets the manifest kind and its default file path.
func (b *DependencyRecordBuilder) WithKind(kind entities.ManifestKind) *DependencyRecordBuilder {
	b.kind = kind
	b.filePath = kind.FileName()
	return b
}

// WithFilePath sets the manifest path.
func (b *DependencyRecordBuilder) WithFilePath(path string) *DependencyRecordBuilder {
	b.filePath = path
	return b
}

// Build creates the record (satisfies testkit.Builder interface).
func (b *DependencyRecordBuilder) Build() interface{} {
	return b.BuildRecord()
}

// BuildRecord creates the record with a concrete return type.
func (b *DependencyRecordBuilder) BuildRecord() entities.DependencyRecord {
	return entities.NewDependencyRecord(b.name, b.oldVersion, b.newVersion).In(b.kind, b.filePath)
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyRecordBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "github.com/test/dep"
	b.oldVersion = "v1.0.0"
	b.newVersion = "v2.0.0"
	b.kind = entities.GoModule
	b.filePath = "go.mod"
	return b
}

// Clone creates a deep copy of the DependencyRecordBuilder.
func (b *DependencyRecordBuilder) Clone() testkit.Builder {
	return &DependencyRecordBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		oldVersion:  b.oldVersion,
		newVersion:  b.newVersion,
		kind:        b.kind,
		filePath:    b.filePath,
	}
}
