//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/depreview/internal/domain/entities"
	"github.com/rios0rios0/depreview/test/domain/entitybuilders"
)

func TestNoChangesResult(t *testing.T) {
	t.Parallel()

	t.Run("should report no changes, ecosystem none and an empty list", func(t *testing.T) {
		t.Parallel()

		// when
		result := entities.NoChangesResult()

		// then
		assert.False(t, result.HasChanges)
		assert.Equal(t, entities.EcosystemNone, result.Ecosystem)
		assert.Empty(t, result.Dependencies)
		assert.Empty(t, result.DependencyList())
	})
}

func TestNewDetectionResult(t *testing.T) {
	t.Parallel()

	t.Run("should join rendered tokens in record order", func(t *testing.T) {
		t.Parallel()

		// given
		records := []entities.DependencyRecord{
			entitybuilders.NewDependencyRecordBuilder().
				WithName("github.com/lib/pq").WithOldVersion("v1.10.9").WithNewVersion("v1.10.10").BuildRecord(),
			entitybuilders.NewDependencyRecordBuilder().
				WithKind(entities.RustManifest).WithName("serde").WithOldVersion("").WithNewVersion("1.0.197").BuildRecord(),
		}

		// when
		result := entities.NewDetectionResult(entities.EcosystemMixed, records, false)

		// then
		assert.True(t, result.HasChanges)
		assert.Equal(t, entities.EcosystemMixed, result.Ecosystem)
		assert.Equal(t, "github.com/lib/pq@v1.10.9..v1.10.10,serde@1.0.197", result.DependencyList())
	})

	t.Run("should suppress no-op records by default", func(t *testing.T) {
		t.Parallel()

		// given
		records := []entities.DependencyRecord{
			entities.NewDependencyRecord("serde", "1.0.197", "1.0.197"),
			entities.NewDependencyRecord("tokio", "1.36.0", "1.37.0"),
		}

		// when
		result := entities.NewDetectionResult(entities.EcosystemRust, records, false)

		// then
		assert.Equal(t, []string{"tokio@1.36.0..1.37.0"}, result.Dependencies)
	})

	t.Run("should emit no-change markers when requested", func(t *testing.T) {
		t.Parallel()

		// given
		records := []entities.DependencyRecord{
			entities.NewDependencyRecord("serde", "1.0.197", "1.0.197"),
		}

		// when
		result := entities.NewDetectionResult(entities.EcosystemRust, records, true)

		// then
		assert.Equal(t, []string{"serde@1.0.197"}, result.Dependencies)
	})

	t.Run("should keep has changes with an empty list when nothing was extracted", func(t *testing.T) {
		t.Parallel()

		// when
		result := entities.NewDetectionResult(entities.EcosystemGo, nil, false)

		// then
		assert.True(t, result.HasChanges)
		assert.Empty(t, result.Dependencies)
		assert.NotNil(t, result.Dependencies)
	})

	t.Run("should skip records without a name", func(t *testing.T) {
		t.Parallel()

		// given
		records := []entities.DependencyRecord{entities.NewDependencyRecord("", "", "v1.0.0")}

		// when
		result := entities.NewDetectionResult(entities.EcosystemGo, records, false)

		// then
		assert.Empty(t, result.Dependencies)
	})

	t.Run("should keep the same name from two manifest files", func(t *testing.T) {
		t.Parallel()

		// given
		records := []entities.DependencyRecord{
			entities.NewDependencyRecord("serde", "", "1.0.197").In(entities.RustManifest, "Cargo.toml"),
			entities.NewDependencyRecord("serde", "", "1.0.197").In(entities.RustManifest, "crates/a/Cargo.toml"),
		}

		// when
		result := entities.NewDetectionResult(entities.EcosystemRust, records, false)

		// then
		assert.Equal(t, "serde@1.0.197,serde@1.0.197", result.DependencyList())
	})
}
