//go:build unit

package rust_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depreview/internal/domain/entities"
	"github.com/rios0rios0/depreview/internal/infrastructure/repositories/rust"
	doubles "github.com/rios0rios0/depreview/test/infrastructure/repositorydoubles"
)

const baseCargoLock = `version = 3

[[package]]
name = "anyhow"
version = "1.0.80"

[[package]]
name = "tokio"
version = "1.36.0"
`

func TestParseLockPatch(t *testing.T) {
	t.Parallel()

	t.Run("should report a block inserted between existing blocks", func(t *testing.T) {
		t.Parallel()

		// given
		head := replaceOnce(baseCargoLock, "[[package]]\nname = \"tokio\"",
			"[[package]]\nname = \"syn\"\nversion = \"2.0.50\"\n\n[[package]]\nname = \"tokio\"")
		patch := doubles.UnifiedDiff("Cargo.lock", baseCargoLock, head)

		// when
		records := rust.ParseLockPatch(patch)

		// then
		assert.Equal(t, []string{"syn@2.0.50"}, renderAll(records))
	})

	t.Run("should pair a removed and an added version of the same block", func(t *testing.T) {
		t.Parallel()

		// given
		head := replaceOnce(baseCargoLock, "version = \"1.36.0\"", "version = \"1.37.0\"")
		patch := doubles.UnifiedDiff("Cargo.lock", baseCargoLock, head)

		// when
		records := rust.ParseLockPatch(patch)

		// then
		assert.Equal(t, []string{"tokio@1.36.0..1.37.0"}, renderAll(records))
	})

	t.Run("should take the block name from context in a hunk starting mid-block", func(t *testing.T) {
		t.Parallel()

		// given
		patch := "@@ -40,3 +40,3 @@\n" +
			" name = \"regex\"\n" +
			"-version = \"1.10.3\"\n" +
			"+version = \"1.10.4\"\n" +
			" source = \"registry+https://github.com/rust-lang/crates.io-index\"\n"

		// when
		records := rust.ParseLockPatch(patch)

		// then
		assert.Equal(t, []string{"regex@1.10.3..1.10.4"}, renderAll(records))
	})

	t.Run("should not carry a replaced package's version onto its successor", func(t *testing.T) {
		t.Parallel()

		// given
		patch := "@@ -12,4 +12,4 @@\n" +
			" [[package]]\n" +
			"-name = \"foo\"\n" +
			"-version = \"1.0.0\"\n" +
			"+name = \"fop\"\n" +
			"+version = \"2.0.0\"\n" +
			" source = \"registry+https://github.com/rust-lang/crates.io-index\"\n"

		// when
		records := rust.ParseLockPatch(patch)

		// then
		require.Len(t, records, 1)
		assert.Equal(t, "fop@2.0.0", records[0].Render())
		assert.Equal(t, entities.ChangeAdded, records[0].ChangeType)
	})

	t.Run("should pair versions when the same name is removed and re-added", func(t *testing.T) {
		t.Parallel()

		// given
		patch := "@@ -12,4 +12,4 @@\n" +
			" [[package]]\n" +
			"-name = \"foo\"\n" +
			"-version = \"1.0.0\"\n" +
			"+name = \"foo\"\n" +
			"+version = \"1.1.0\"\n" +
			" source = \"registry+https://github.com/rust-lang/crates.io-index\"\n"

		// when
		records := rust.ParseLockPatch(patch)

		// then
		assert.Equal(t, []string{"foo@1.0.0..1.1.0"}, renderAll(records))
	})

	t.Run("should not report removed blocks", func(t *testing.T) {
		t.Parallel()

		// given
		head := "version = 3\n\n[[package]]\nname = \"anyhow\"\nversion = \"1.0.80\"\n"
		patch := doubles.UnifiedDiff("Cargo.lock", baseCargoLock, head)

		// when
		records := rust.ParseLockPatch(patch)

		// then
		assert.Empty(t, records)
	})

	t.Run("should not report blocks whose dependency list changed only", func(t *testing.T) {
		t.Parallel()

		// given
		base := "[[package]]\nname = \"app\"\nversion = \"0.1.0\"\ndependencies = [\n \"anyhow\",\n]\n"
		head := "[[package]]\nname = \"app\"\nversion = \"0.1.0\"\ndependencies = [\n \"anyhow\",\n \"syn\",\n]\n"
		patch := doubles.UnifiedDiff("Cargo.lock", base, head)

		// when
		records := rust.ParseLockPatch(patch)

		// then
		assert.Empty(t, records)
	})

	t.Run("should return nothing for an empty patch", func(t *testing.T) {
		t.Parallel()

		// when / then
		assert.Empty(t, rust.ParseLockPatch(""))
	})
}
