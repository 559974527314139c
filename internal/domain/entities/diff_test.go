//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depreview/internal/domain/entities"
	doubles "github.com/rios0rios0/depreview/test/infrastructure/repositorydoubles"
)

func TestParsePatch(t *testing.T) {
	t.Parallel()

	t.Run("should skip file headers and number new-file lines", func(t *testing.T) {
		t.Parallel()

		// given
		patch := "diff --git a/go.mod b/go.mod\n" +
			"index 1111111..2222222 100644\n" +
			"--- a/go.mod\n" +
			"+++ b/go.mod\n" +
			"@@ -3,3 +3,3 @@ go 1.22\n" +
			" require (\n" +
			"-\tgithub.com/lib/pq v1.10.9\n" +
			"+\tgithub.com/lib/pq v1.10.10\n" +
			" )\n"

		// when
		lines := entities.ParsePatch(patch)

		// then
		require.Len(t, lines, 5)
		assert.Equal(t, entities.DiffHunkHeader, lines[0].Kind)
		assert.Equal(t, 3, lines[0].NewLine)
		assert.Equal(t, entities.DiffContext, lines[1].Kind)
		assert.Equal(t, "require (", lines[1].Text)
		assert.True(t, lines[2].IsRemoved())
		assert.True(t, lines[3].IsAdded())
		assert.Equal(t, "\tgithub.com/lib/pq v1.10.10", lines[3].Text)
		assert.Equal(t, 4, lines[3].NewLine)
		assert.Equal(t, 5, lines[4].NewLine)
	})

	t.Run("should keep content lines that look like file headers", func(t *testing.T) {
		t.Parallel()

		// given
		patch := "--- a/Cargo.toml\n" +
			"+++ b/Cargo.toml\n" +
			"@@ -1,1 +1,2 @@\n" +
			" [package]\n" +
			"+++counter = 1\n"

		// when
		added := doubles.AddedLines(entities.ParsePatch(patch))

		// then
		require.Len(t, added, 1)
		assert.Equal(t, "++counter = 1", added[0].Text)
	})

	t.Run("should ignore the no-newline marker", func(t *testing.T) {
		t.Parallel()

		// given
		patch := "@@ -1 +1 @@\n" +
			"-a\n" +
			"\\ No newline at end of file\n" +
			"+b\n" +
			"\\ No newline at end of file\n"

		// when
		lines := entities.ParsePatch(patch)

		// then
		require.Len(t, lines, 3)
		assert.Equal(t, "a", lines[1].Text)
		assert.Equal(t, "b", lines[2].Text)
	})

	t.Run("should read several hunks", func(t *testing.T) {
		t.Parallel()

		// given
		patch := "@@ -1,1 +1,1 @@\n" +
			"-a\n" +
			"+b\n" +
			"@@ -10,1 +10,2 @@\n" +
			" c\n" +
			"+d\n"

		// when
		lines := entities.ParsePatch(patch)

		// then
		added := doubles.AddedLines(lines)
		require.Len(t, added, 2)
		assert.Equal(t, 1, added[0].NewLine)
		assert.Equal(t, 11, added[1].NewLine)
	})

	t.Run("should return nothing for an empty patch", func(t *testing.T) {
		t.Parallel()

		// when
		lines := entities.ParsePatch("")

		// then
		assert.Empty(t, lines)
	})
}
