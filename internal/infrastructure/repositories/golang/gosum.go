package golang

import (
	"sort"
	"strings"

	"github.com/rios0rios0/depreview/internal/domain/entities"
)

const (
	goModHashSuffix = "/go.mod"
	sumLineFields   = 3 // module, version, hash
)

type sumVersions struct {
	added   map[string]bool
	removed map[string]bool
}

// ParseSumPatch extracts module transitions from a go.sum patch. Each line
// is "module version[/go.mod] hash"; the /go.mod hash variant is folded into
// the plain version so a module is reported once. Modules listed in skip
// were already reported from the sibling go.mod.
func ParseSumPatch(patch string, skip map[string]bool) []entities.DependencyRecord {
	if patch == "" {
		return nil
	}

	var order []string
	modules := make(map[string]*sumVersions)

	for _, line := range entities.ParsePatch(patch) {
		if !line.IsAdded() && !line.IsRemoved() {
			continue
		}
		modulePath, version, ok := parseSumLine(line.Text)
		if !ok {
			continue
		}
		entry, exists := modules[modulePath]
		if !exists {
			entry = &sumVersions{added: map[string]bool{}, removed: map[string]bool{}}
			modules[modulePath] = entry
			order = append(order, modulePath)
		}
		if line.IsAdded() {
			entry.added[version] = true
		} else {
			entry.removed[version] = true
		}
	}

	var records []entities.DependencyRecord
	for _, modulePath := range order {
		if skip[modulePath] {
			continue
		}
		entry := modules[modulePath]
		added := difference(entry.added, entry.removed)
		if len(added) == 0 {
			continue // removed, or only re-hashed
		}
		removed := difference(entry.removed, entry.added)

		oldVersion := ""
		if len(removed) > 0 {
			oldVersion = removed[0]
		}
		records = append(records, entities.NewDependencyRecord(modulePath, oldVersion, added[len(added)-1]))
	}
	return records
}

func parseSumLine(text string) (string, string, bool) {
	fields := strings.Fields(text)
	if len(fields) < sumLineFields {
		return "", "", false
	}
	version := strings.TrimSuffix(fields[1], goModHashSuffix)
	if fields[0] == "" || version == "" {
		return "", "", false
	}
	return fields[0], version, true
}

// difference returns the sorted keys of a that are not in b. Sorting is
// textual only, to keep the choice deterministic.
func difference(a, b map[string]bool) []string {
	result := make([]string, 0, len(a))
	for key := range a {
		if !b[key] {
			result = append(result, key)
		}
	}
	sort.Strings(result)
	return result
}
