package golang

import (
	"context"
	"errors"
	"path"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"

	"github.com/rios0rios0/depreview/internal/domain/entities"
	"github.com/rios0rios0/depreview/internal/domain/repositories"
)

const parserName = "golang"

// requirePattern matches "path vX..." with an optional leading "require"
// keyword for single-line directives. Trailing "// indirect" comments are
// left out of the version token.
var requirePattern = regexp.MustCompile(`^\s*(?:require\s+)?(\S+)\s+(v\d\S*)`)

// GoParserRepository implements repositories.ManifestParserRepository for
// go.mod and go.sum files.
type GoParserRepository struct{}

// NewGoParserRepository creates a new Go manifest parser.
func NewGoParserRepository() repositories.ManifestParserRepository {
	return &GoParserRepository{}
}

func (p *GoParserRepository) Name() string { return parserName }

func (p *GoParserRepository) Kinds() []entities.ManifestKind {
	return []entities.ManifestKind{entities.GoModule, entities.GoSum}
}

// Parse extracts records from every changed go.mod first, then from every
// changed go.sum. go.sum records repeat nothing the sibling go.mod reported.
func (p *GoParserRepository) Parse(
	ctx context.Context,
	store repositories.RevisionRepository,
	revisions entities.RevisionRange,
	changed entities.ChangedManifests,
) []entities.DependencyRecord {
	var records []entities.DependencyRecord
	reported := make(map[string]map[string]bool) // dir -> module -> seen

	for _, filePath := range changed.ByKind[entities.GoModule] {
		modRecords := p.parseModule(ctx, store, revisions, filePath)
		dir := path.Dir(filePath)
		for _, record := range modRecords {
			if reported[dir] == nil {
				reported[dir] = make(map[string]bool)
			}
			reported[dir][record.Name] = true
		}
		records = append(records, modRecords...)
	}

	for _, filePath := range changed.ByKind[entities.GoSum] {
		patch := readPatch(ctx, store, revisions, filePath)
		sumRecords := ParseSumPatch(patch, reported[path.Dir(filePath)])
		for _, record := range sumRecords {
			records = append(records, record.In(entities.GoSum, filePath))
		}
	}

	return records
}

// parseModule reads the diff of one go.mod and resolves prior versions from
// the base revision.
func (p *GoParserRepository) parseModule(
	ctx context.Context,
	store repositories.RevisionRepository,
	revisions entities.RevisionRange,
	filePath string,
) []entities.DependencyRecord {
	patch := readPatch(ctx, store, revisions, filePath)
	if patch == "" {
		return nil
	}

	head := lazyContent(ctx, store, revisions.Head, filePath)
	requirements := AddedRequirements(entities.ParsePatch(patch), func(hunkStart int) string {
		return DirectiveAt(head(), hunkStart)
	})
	if len(requirements) == 0 {
		return nil
	}

	base, baseErr := store.ContentAt(ctx, revisions.Base, filePath)
	if baseErr != nil && !errors.Is(baseErr, repositories.ErrFileNotFound) {
		logger.Warnf("[golang] Failed to read %s at %s: %v", filePath, revisions.Base, baseErr)
	}
	baseVersions := NewBaseVersions(base)

	records := make([]entities.DependencyRecord, 0, len(requirements))
	for _, req := range requirements {
		record := entities.NewDependencyRecord(req.Path, baseVersions.Lookup(req.Path), req.Version)
		records = append(records, record.In(entities.GoModule, filePath))
	}
	return records
}

// Requirement is a module requirement found on an added go.mod line.
type Requirement struct {
	Path    string
	Version string
}

// AddedRequirements scans the added lines of a go.mod patch. Lines inside
// replace, exclude and retract blocks, and replace directives themselves,
// are not requirements. seed resolves the block a hunk starts in.
func AddedRequirements(lines []entities.DiffLine, seed func(hunkStart int) string) []Requirement {
	var requirements []Requirement
	block := ""

	for _, line := range lines {
		if line.Kind == entities.DiffHunkHeader {
			block = ""
			if seed != nil {
				block = seed(line.NewLine)
			}
			continue
		}
		if !line.InNewFile() {
			continue
		}

		if next, ok := blockTransition(line.Text); ok {
			block = next
			continue
		}
		if !line.IsAdded() || (block != "" && block != "require") {
			continue
		}
		if strings.Contains(line.Text, "=>") {
			continue
		}

		if req, ok := matchRequirement(line.Text); ok {
			requirements = append(requirements, req)
		}
	}

	return requirements
}

func matchRequirement(text string) (Requirement, bool) {
	match := requirePattern.FindStringSubmatch(text)
	if match == nil {
		return Requirement{}, false
	}
	modulePath := match[1]
	if !IsDomainQualified(modulePath) {
		return Requirement{}, false
	}
	return Requirement{Path: modulePath, Version: match[2]}, true
}

// IsDomainQualified reports whether a module path starts with a host-like
// element containing a dot, and is otherwise a valid module path.
func IsDomainQualified(modulePath string) bool {
	host, _, _ := strings.Cut(modulePath, "/")
	if !strings.Contains(host, ".") || strings.HasPrefix(host, ".") || strings.HasSuffix(host, ".") {
		return false
	}
	return module.CheckPath(modulePath) == nil
}

// blockTransition recognises "<directive> (" openers and ")" closers.
func blockTransition(text string) (string, bool) {
	trimmed := strings.TrimSpace(stripComment(text))
	if trimmed == ")" {
		return "", true
	}
	if directive, ok := strings.CutSuffix(trimmed, "("); ok {
		directive = strings.TrimSpace(directive)
		if directive != "" && !strings.ContainsAny(directive, " \t") {
			return directive, true
		}
	}
	return "", false
}

// DirectiveAt returns the open block directive ("require", "replace", ...)
// governing a 1-based line of go.mod content, or "" outside any block.
func DirectiveAt(content string, line int) string {
	block := ""
	for i, text := range strings.Split(content, "\n") {
		if i+1 >= line {
			break
		}
		if next, ok := blockTransition(text); ok {
			block = next
		}
	}
	return block
}

func stripComment(text string) string {
	if idx := strings.Index(text, "//"); idx >= 0 {
		return text[:idx]
	}
	return text
}

// BaseVersions answers prior-version lookups against the base go.mod.
type BaseVersions struct {
	content  string
	required map[string]string
	parsed   bool
}

// NewBaseVersions parses base go.mod content with x/mod. Unparseable content
// is still searched line by line.
func NewBaseVersions(content string) BaseVersions {
	versions := BaseVersions{content: content, required: make(map[string]string)}
	if content == "" {
		return versions
	}

	file, err := modfile.ParseLax("go.mod", []byte(content), nil)
	if err != nil {
		logger.Debugf("[golang] Falling back to line scan for base go.mod: %v", err)
		return versions
	}
	for _, req := range file.Require {
		versions.required[req.Mod.Path] = req.Mod.Version
	}
	versions.parsed = true
	return versions
}

// Lookup returns the base version of a module, or "" when absent.
func (b BaseVersions) Lookup(modulePath string) string {
	if b.parsed {
		return b.required[modulePath]
	}
	return scanVersion(b.content, modulePath)
}

// scanVersion finds the first line beginning with the module path followed
// by whitespace and returns its version token.
func scanVersion(content, modulePath string) string {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "require "))
		rest, ok := strings.CutPrefix(trimmed, modulePath)
		if !ok || rest == "" || (rest[0] != ' ' && rest[0] != '\t') {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) > 0 && strings.HasPrefix(fields[0], "v") {
			return fields[0]
		}
	}
	return ""
}

// readPatch fetches a diff, degrading read failures to an empty patch.
func readPatch(
	ctx context.Context,
	store repositories.RevisionRepository,
	revisions entities.RevisionRange,
	filePath string,
) string {
	patch, err := store.Diff(ctx, revisions, filePath)
	if err != nil {
		logger.Warnf("[golang] Failed to read diff for %s: %v", filePath, err)
		return ""
	}
	return patch
}

// lazyContent defers reading a file until a hunk needs seeding.
func lazyContent(
	ctx context.Context,
	store repositories.RevisionRepository,
	revision entities.Revision,
	filePath string,
) func() string {
	loaded := false
	content := ""
	return func() string {
		if !loaded {
			loaded = true
			var err error
			content, err = store.ContentAt(ctx, revision, filePath)
			if err != nil {
				logger.Debugf("[golang] No content for %s at %s: %v", filePath, revision, err)
				content = ""
			}
		}
		return content
	}
}
