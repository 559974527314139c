//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"strings"

	"github.com/rios0rios0/depreview/internal/domain/entities"
)

// UnifiedDiff renders a single-hunk unified diff of two file contents, with
// every unchanged line kept as context. Lines are aligned on their longest
// common subsequence, the way git aligns small files.
func UnifiedDiff(path, before, after string) string {
	oldLines := splitLines(before)
	newLines := splitLines(after)
	if strings.Join(oldLines, "\n") == strings.Join(newLines, "\n") {
		return ""
	}

	var body strings.Builder
	for _, op := range align(oldLines, newLines) {
		body.WriteString(op)
		body.WriteString("\n")
	}

	var patch strings.Builder
	fmt.Fprintf(&patch, "diff --git a/%s b/%s\n", path, path)
	if len(oldLines) == 0 {
		patch.WriteString("new file mode 100644\n")
		patch.WriteString("--- /dev/null\n")
	} else {
		fmt.Fprintf(&patch, "--- a/%s\n", path)
	}
	fmt.Fprintf(&patch, "+++ b/%s\n", path)
	fmt.Fprintf(&patch, "@@ -%s +%s @@\n", hunkRange(len(oldLines)), hunkRange(len(newLines)))
	patch.WriteString(body.String())
	return patch.String()
}

func hunkRange(count int) string {
	if count == 0 {
		return "0,0"
	}
	return fmt.Sprintf("1,%d", count)
}

func splitLines(content string) []string {
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}

// align emits " ", "-" and "+" prefixed lines. Removals come before
// additions at every divergence point.
func align(oldLines, newLines []string) []string {
	n, m := len(oldLines), len(newLines)
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if oldLines[i] == newLines[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	ops := make([]string, 0, n+m)
	i, j := 0, 0
	for i < n || j < m {
		switch {
		case i < n && j < m && oldLines[i] == newLines[j]:
			ops = append(ops, " "+oldLines[i])
			i++
			j++
		case i < n && (j == m || lcs[i+1][j] >= lcs[i][j+1]):
			ops = append(ops, "-"+oldLines[i])
			i++
		default:
			ops = append(ops, "+"+newLines[j])
			j++
		}
	}
	return ops
}

// AddedLines filters the added lines of a parsed patch.
func AddedLines(lines []entities.DiffLine) []entities.DiffLine {
	added := make([]entities.DiffLine, 0, len(lines))
	for _, line := range lines {
		if line.IsAdded() {
			added = append(added, line)
		}
	}
	return added
}
