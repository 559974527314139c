package entities

import "strings"

const dependencySectionMarker = "dependencies"

// SectionKind describes what a TOML section holds for dependency purposes.
type SectionKind int

const (
	// SectionUnknown means no header has been seen yet.
	SectionUnknown SectionKind = iota
	// SectionOther is any non dependency-bearing section ([package], [features], ...).
	SectionOther
	// SectionDependencies holds one dependency per key ([dependencies], [dev-dependencies], ...).
	SectionDependencies
	// SectionDependencyTable is the table form of a single dependency ([dependencies.serde]).
	SectionDependencyTable
)

// Section is the state a SectionTracker is in.
type Section struct {
	Name  string
	Kind  SectionKind
	Entry string // dependency name for SectionDependencyTable
}

// IsDependencyBearing reports whether lines in the section may declare dependencies.
func (s Section) IsDependencyBearing() bool {
	return s.Kind == SectionDependencies || s.Kind == SectionDependencyTable
}

// ClassifySection maps a header name to a Section. Any name containing
// "dependencies" is dependency-bearing, which covers dev-, build-,
// workspace. and target.'cfg(...)'. variants.
func ClassifySection(name string) Section {
	if !strings.Contains(name, dependencySectionMarker) {
		return Section{Name: name, Kind: SectionOther}
	}
	if idx := strings.LastIndex(name, dependencySectionMarker+"."); idx >= 0 {
		entry := strings.Trim(name[idx+len(dependencySectionMarker)+1:], `"' `)
		if entry != "" {
			return Section{Name: name, Kind: SectionDependencyTable, Entry: entry}
		}
	}
	return Section{Name: name, Kind: SectionDependencies}
}

// ParseSectionHeader recognises "[name]" and "[[name]]" header lines.
func ParseSectionHeader(line string) (string, bool, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "[") {
		return "", false, false
	}

	array := strings.HasPrefix(trimmed, "[[")
	closing := "]"
	body := trimmed[1:]
	if array {
		closing = "]]"
		body = trimmed[2:]
	}

	end := strings.LastIndex(body, closing)
	if end < 0 {
		return "", false, false
	}
	rest := strings.TrimSpace(body[end+len(closing):])
	if rest != "" && !strings.HasPrefix(rest, "#") {
		return "", false, false // e.g. an inline array value on its own line
	}

	name := strings.TrimSpace(body[:end])
	if name == "" {
		return "", false, false
	}
	return name, array, true
}

// SectionAt returns the header name governing a 1-based line of content,
// or "" when the line precedes every header.
func SectionAt(content string, line int) string {
	current := ""
	for i, text := range strings.Split(content, "\n") {
		if i+1 >= line {
			break
		}
		if name, _, ok := ParseSectionHeader(text); ok {
			current = name
		}
	}
	return current
}

// TrackedLine pairs a diff line with the section it belongs to. For header
// lines, Section is the section the header opens.
type TrackedLine struct {
	Line     DiffLine
	Section  Section
	IsHeader bool
}

// SectionTracker is the state machine behind manifest scanning: it consumes
// diff lines and keeps the section of the new file they fall in. Removed
// headers do not move it since they no longer exist in the new file.
type SectionTracker struct {
	current Section
	seed    func(hunkStart int) string
}

// NewSectionTracker creates a tracker. seed, when not nil, resolves the
// section a hunk starts in from the new file content.
func NewSectionTracker(seed func(hunkStart int) string) *SectionTracker {
	return &SectionTracker{seed: seed}
}

// Current returns the section the tracker is in.
func (t *SectionTracker) Current() Section { return t.current }

// Observe consumes one line and reports whether it was a header.
func (t *SectionTracker) Observe(line DiffLine) bool {
	if line.Kind == DiffHunkHeader {
		t.current = Section{}
		if t.seed != nil {
			if name := t.seed(line.NewLine); name != "" {
				t.current = ClassifySection(name)
			}
		}
		return false
	}

	name, _, ok := ParseSectionHeader(line.Text)
	if !ok {
		return false
	}
	if line.InNewFile() {
		t.current = ClassifySection(name)
	}
	return true
}

// Track runs the tracker over a parsed patch and yields every line with the
// section it falls in.
func (t *SectionTracker) Track(lines []DiffLine) []TrackedLine {
	tracked := make([]TrackedLine, 0, len(lines))
	for _, line := range lines {
		isHeader := t.Observe(line)
		tracked = append(tracked, TrackedLine{Line: line, Section: t.current, IsHeader: isHeader})
	}
	return tracked
}
