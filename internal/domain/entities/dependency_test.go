//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/depreview/internal/domain/entities"
	"github.com/rios0rios0/depreview/test/domain/entitybuilders"
)

func TestNewDependencyRecord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		old      string
		new      string
		expected entities.ChangeType
	}{
		{name: "should classify differing versions as updated", old: "v1.10.9", new: "v1.10.10", expected: entities.ChangeUpdated},
		{name: "should classify a new version alone as added", old: "", new: "v0.14.0", expected: entities.ChangeAdded},
		{name: "should classify an old version alone as removed", old: "1.0.0", new: "", expected: entities.ChangeRemoved},
		{name: "should classify equal versions as unknown", old: "1.0.0", new: "1.0.0", expected: entities.ChangeUnknown},
		{name: "should classify a bare name as unknown", old: "", new: "", expected: entities.ChangeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given / when
			record := entities.NewDependencyRecord("dep", tt.old, tt.new)

			// then
			assert.Equal(t, tt.expected, record.ChangeType)
		})
	}

	t.Run("should treat a downgrade as an update", func(t *testing.T) {
		t.Parallel()

		// given / when
		record := entities.NewDependencyRecord("serde", "1.0.210", "1.0.197")

		// then
		assert.Equal(t, entities.ChangeUpdated, record.ChangeType)
		assert.Equal(t, "serde@1.0.210..1.0.197", record.Render())
	})
}

func TestDependencyRecordRender(t *testing.T) {
	t.Parallel()

	t.Run("should render a transition when both versions differ", func(t *testing.T) {
		t.Parallel()

		// given
		record := entitybuilders.NewDependencyRecordBuilder().
			WithName("github.com/lib/pq").
			WithOldVersion("v1.10.9").
			WithNewVersion("v1.10.10").
			BuildRecord()

		// when
		token := record.Render()

		// then
		assert.Equal(t, "github.com/lib/pq@v1.10.9..v1.10.10", token)
	})

	t.Run("should render only the new version when there was no prior entry", func(t *testing.T) {
		t.Parallel()

		// given
		record := entitybuilders.NewDependencyRecordBuilder().
			WithName("golang.org/x/text").
			WithOldVersion("").
			WithNewVersion("v0.14.0").
			BuildRecord()

		// when
		token := record.Render()

		// then
		assert.Equal(t, "golang.org/x/text@v0.14.0", token)
	})

	t.Run("should render the old version when only it is known", func(t *testing.T) {
		t.Parallel()

		// given
		record := entities.NewDependencyRecord("tokio", "1.36.0", "")

		// when
		token := record.Render()

		// then
		assert.Equal(t, "tokio@1.36.0", token)
	})

	t.Run("should render the bare name when no version was extracted", func(t *testing.T) {
		t.Parallel()

		// given
		record := entities.NewDependencyRecord("local-crate", "", "")

		// when
		token := record.Render()

		// then
		assert.Equal(t, "local-crate", token)
	})

	t.Run("should render a single version for a no-op record", func(t *testing.T) {
		t.Parallel()

		// given
		record := entities.NewDependencyRecord("serde", "1.0.197", "1.0.197")

		// when
		token := record.Render()

		// then
		assert.True(t, record.IsNoOp())
		assert.Equal(t, "serde@1.0.197", token)
	})
}

func TestDependencyRecordIn(t *testing.T) {
	t.Parallel()

	t.Run("should attach kind and path without touching versions", func(t *testing.T) {
		t.Parallel()

		// given
		record := entities.NewDependencyRecord("serde", "", "1.0.197")

		// when
		located := record.In(entities.RustManifest, "crates/core/Cargo.toml")

		// then
		assert.Equal(t, entities.RustManifest, located.Kind)
		assert.Equal(t, "crates/core/Cargo.toml", located.FilePath)
		assert.Equal(t, "1.0.197", located.NewVersion)
		assert.Empty(t, record.FilePath)
	})
}
