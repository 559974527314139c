package rust

import (
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depreview/internal/domain/entities"
)

var (
	// keyPattern matches `name = value`, `"name" = value` and dotted
	// `name.sub = value` assignments.
	keyPattern = regexp.MustCompile(`^\s*("[^"]+"|'[^']+'|[A-Za-z0-9_\-]+)\s*(?:\.\s*([A-Za-z0-9_\-]+)\s*)?=\s*(.*)$`)

	quotedPattern     = regexp.MustCompile(`^\s*(?:"([^"]*)"|'([^']*)')`)
	versionKeyPattern = regexp.MustCompile(`(?:^|[{,\s])version\s*=\s*(?:"([^"]*)"|'([^']*)')`)
)

const dependencyKindRoot = "dependencies"

// Declaration is a dependency declared on an added Cargo.toml line.
type Declaration struct {
	Name    string
	Version string // empty for path, git and workspace-inherited deps
	Section entities.Section
}

// AddedDeclarations runs the section tracker over a manifest patch and
// collects dependencies declared on added lines in dependency-bearing
// sections. Table-form sections ([dependencies.serde]) produce one
// declaration from their version key, or a bare one when the header itself
// is new and no version is added.
func AddedDeclarations(tracker *entities.SectionTracker, lines []entities.DiffLine) []Declaration {
	var declarations []Declaration
	pending := -1 // table-form declaration opened by an added header

	for _, tracked := range tracker.Track(lines) {
		line, section := tracked.Line, tracked.Section

		if line.Kind == entities.DiffHunkHeader {
			pending = -1
			continue
		}
		if tracked.IsHeader {
			if !line.InNewFile() {
				continue
			}
			pending = -1
			if line.IsAdded() && section.Kind == entities.SectionDependencyTable {
				declarations = append(declarations, Declaration{Name: section.Entry, Section: section})
				pending = len(declarations) - 1
			}
			continue
		}
		if !line.IsAdded() || !section.IsDependencyBearing() {
			continue
		}

		text := strings.TrimSpace(line.Text)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		match := keyPattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		key, subKey, value := unquote(match[1]), match[2], match[3]

		if section.Kind == entities.SectionDependencyTable {
			if key != "version" || subKey != "" {
				continue
			}
			version := quotedValue(value)
			if pending >= 0 {
				declarations[pending].Version = version
				pending = -1
				continue
			}
			declarations = append(declarations, Declaration{Name: section.Entry, Version: version, Section: section})
			continue
		}

		// dotted feature or flag keys (serde.features, serde.optional) declare nothing
		version := ""
		switch subKey {
		case "":
			version = ExtractVersion(value)
		case "version":
			version = quotedValue(value)
		case "workspace":
		default:
			continue
		}
		declarations = append(declarations, Declaration{Name: key, Version: version, Section: section})
	}

	return declarations
}

// ExtractVersion applies the two extraction rules in order: a quoted literal,
// then the version key of an inline table. Anything else has no version.
func ExtractVersion(value string) string {
	if version := quotedValue(value); version != "" {
		return version
	}
	if strings.HasPrefix(strings.TrimSpace(value), "{") {
		if match := versionKeyPattern.FindStringSubmatch(value); match != nil {
			return match[1] + match[2]
		}
	}
	return ""
}

func quotedValue(value string) string {
	match := quotedPattern.FindStringSubmatch(value)
	if match == nil {
		return ""
	}
	return match[1] + match[2]
}

func unquote(key string) string {
	return strings.Trim(key, `"'`)
}

// BaseManifest answers prior-version lookups against the base Cargo.toml.
type BaseManifest struct {
	content string
	doc     map[string]any
}

// NewBaseManifest decodes the base manifest. When decoding fails, lookups
// fall back to a line scan of the raw content.
func NewBaseManifest(content string) BaseManifest {
	manifest := BaseManifest{content: content}
	if content == "" {
		return manifest
	}
	var doc map[string]any
	if _, err := toml.Decode(content, &doc); err != nil {
		logger.Debugf("[rust] Falling back to line scan for base Cargo.toml: %v", err)
		return manifest
	}
	manifest.doc = doc
	return manifest
}

// Lookup returns the base version of a dependency, preferring the table the
// head declaration lives in.
func (b BaseManifest) Lookup(section entities.Section, name string) string {
	if b.doc == nil {
		return scanManifestVersion(b.content, name)
	}

	if table, ok := b.tableFor(section); ok {
		if value, found := table[name]; found {
			return versionOf(value)
		}
	}
	for _, table := range b.dependencyTables() {
		if value, found := table[name]; found {
			return versionOf(value)
		}
	}
	return ""
}

// tableFor resolves the decoded table matching a section header such as
// "dev-dependencies", "workspace.dependencies" or
// "target.'cfg(unix)'.dependencies".
func (b BaseManifest) tableFor(section entities.Section) (map[string]any, bool) {
	name := section.Name
	if section.Kind == entities.SectionDependencyTable {
		name = strings.TrimSuffix(name, "."+section.Entry)
		name = strings.TrimSuffix(name, `."`+section.Entry+`"`)
	}

	kind := name
	scope := ""
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		kind = name[idx+1:]
		scope = name[:idx]
	}

	var parent map[string]any
	switch {
	case scope == "":
		parent = b.doc
	case scope == "workspace":
		parent = asTable(b.doc["workspace"])
	case strings.HasPrefix(scope, "target."):
		platform := strings.Trim(strings.TrimPrefix(scope, "target."), `"'`)
		parent = asTable(asTable(b.doc["target"])[platform])
	}
	table := asTable(parent[kind])
	return table, table != nil
}

// dependencyTables lists every dependency table in the document, root first.
func (b BaseManifest) dependencyTables() []map[string]any {
	kinds := []string{dependencyKindRoot, "dev-" + dependencyKindRoot, "build-" + dependencyKindRoot}

	var tables []map[string]any
	for _, kind := range kinds {
		if table := asTable(b.doc[kind]); table != nil {
			tables = append(tables, table)
		}
	}
	if table := asTable(asTable(b.doc["workspace"])[dependencyKindRoot]); table != nil {
		tables = append(tables, table)
	}
	for _, platform := range asTable(b.doc["target"]) {
		for _, kind := range kinds {
			if table := asTable(asTable(platform)[kind]); table != nil {
				tables = append(tables, table)
			}
		}
	}
	return tables
}

func asTable(value any) map[string]any {
	table, _ := value.(map[string]any)
	return table
}

func versionOf(value any) string {
	switch typed := value.(type) {
	case string:
		return typed
	case map[string]any:
		version, _ := typed["version"].(string)
		return version
	default:
		return ""
	}
}

// scanManifestVersion finds the first line beginning with the dependency
// name followed by "=" and extracts its version.
func scanManifestVersion(content, name string) string {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		rest, ok := strings.CutPrefix(trimmed, name)
		if !ok {
			continue
		}
		rest = strings.TrimSpace(rest)
		if value, isAssignment := strings.CutPrefix(rest, "="); isAssignment {
			return ExtractVersion(value)
		}
	}
	return ""
}
