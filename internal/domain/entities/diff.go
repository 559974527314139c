package entities

import (
	"regexp"
	"strconv"
	"strings"
)

// DiffLineKind tells apart the lines of a unified diff hunk.
type DiffLineKind int

const (
	DiffContext DiffLineKind = iota
	DiffAdded
	DiffRemoved
	DiffHunkHeader
)

// DiffLine is one body line of a unified diff, with its +/-/space marker
// stripped. NewLine is the 1-based line number in the new file for context
// and added lines, and the new-file start line for hunk headers.
type DiffLine struct {
	Kind    DiffLineKind
	Text    string
	NewLine int
}

// IsAdded reports whether the line was added by the change.
func (l DiffLine) IsAdded() bool { return l.Kind == DiffAdded }

// IsRemoved reports whether the line was removed by the change.
func (l DiffLine) IsRemoved() bool { return l.Kind == DiffRemoved }

// InNewFile reports whether the line exists in the new revision.
func (l DiffLine) InNewFile() bool { return l.Kind == DiffAdded || l.Kind == DiffContext }

var hunkHeaderPattern = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

// ParsePatch reads unified diff text. File headers (diff --git, index, ---,
// +++, mode lines) are skipped; hunk bodies are bounded by the line counts
// in their @@ header so that content lines starting with "---" or "+++" are
// not mistaken for headers.
func ParsePatch(patch string) []DiffLine {
	if patch == "" {
		return nil
	}

	var lines []DiffLine
	oldLeft, newLeft, newLine := 0, 0, 0

	for _, raw := range strings.Split(strings.TrimSuffix(patch, "\n"), "\n") {
		raw = strings.TrimSuffix(raw, "\r")

		if oldLeft <= 0 && newLeft <= 0 {
			match := hunkHeaderPattern.FindStringSubmatch(raw)
			if match == nil {
				continue // file header or trailing noise
			}
			oldLeft = hunkCount(match[2])
			newLine = atoi(match[3])
			newLeft = hunkCount(match[4])
			lines = append(lines, DiffLine{Kind: DiffHunkHeader, Text: raw, NewLine: newLine})
			continue
		}

		switch {
		case strings.HasPrefix(raw, "\\"):
			continue // "\ No newline at end of file"
		case strings.HasPrefix(raw, "+"):
			lines = append(lines, DiffLine{Kind: DiffAdded, Text: raw[1:], NewLine: newLine})
			newLine++
			newLeft--
		case strings.HasPrefix(raw, "-"):
			lines = append(lines, DiffLine{Kind: DiffRemoved, Text: raw[1:]})
			oldLeft--
		default:
			text := raw
			if strings.HasPrefix(text, " ") {
				text = text[1:]
			}
			lines = append(lines, DiffLine{Kind: DiffContext, Text: text, NewLine: newLine})
			newLine++
			oldLeft--
			newLeft--
		}
	}

	return lines
}

func hunkCount(raw string) int {
	if raw == "" {
		return 1
	}
	return atoi(raw)
}

func atoi(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
