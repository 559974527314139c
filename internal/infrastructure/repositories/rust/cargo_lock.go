package rust

import (
	"regexp"

	"github.com/rios0rios0/depreview/internal/domain/entities"
)

const lockPackageHeader = "package"

var (
	lockNamePattern    = regexp.MustCompile(`^\s*name\s*=\s*"([^"]*)"`)
	lockVersionPattern = regexp.MustCompile(`^\s*version\s*=\s*"([^"]*)"`)
)

// lockBlock accumulates one [[package]] block of a Cargo.lock patch.
type lockBlock struct {
	active         bool
	name           string
	nameAdded      bool
	removedName    string
	contextVersion string
	addedVersion   string
	removedVersion string
}

func (b lockBlock) record() (entities.DependencyRecord, bool) {
	if !b.active || b.name == "" {
		return entities.DependencyRecord{}, false
	}
	switch {
	case b.addedVersion != "":
		return entities.NewDependencyRecord(b.name, b.previousVersion(), b.addedVersion), true
	case b.nameAdded:
		return entities.NewDependencyRecord(b.name, "", b.contextVersion), true
	default:
		return entities.DependencyRecord{}, false
	}
}

// previousVersion pairs the removed version only when it belonged to the same
// package: the name is unchanged context, or was removed and re-added as is.
// A block rewritten to another package has no prior version.
func (b lockBlock) previousVersion() string {
	if b.nameAdded && b.removedName != b.name {
		return ""
	}
	return b.removedVersion
}

// ParseLockPatch pairs the name and version fields of every [[package]]
// block touched by a Cargo.lock patch. Lock blocks are flat, so this uses
// its own block state instead of the manifest section tracker. A hunk that
// starts mid-block opens an implicit block. A block is reported when its
// version or its name was added, which keeps diffs that align an added
// header with the following block from reporting that block. Blocks that
// were only removed are not reported.
func ParseLockPatch(patch string) []entities.DependencyRecord {
	if patch == "" {
		return nil
	}

	var records []entities.DependencyRecord
	block := lockBlock{}
	flush := func(next lockBlock) {
		if record, ok := block.record(); ok {
			records = append(records, record)
		}
		block = next
	}

	for _, line := range entities.ParsePatch(patch) {
		if line.Kind == entities.DiffHunkHeader {
			flush(lockBlock{active: true})
			continue
		}

		if name, array, ok := entities.ParseSectionHeader(line.Text); ok {
			switch {
			case line.IsRemoved():
				flush(lockBlock{}) // the rest of a removed block is ignored
			case array && name == lockPackageHeader:
				flush(lockBlock{active: true})
			default:
				flush(lockBlock{})
			}
			continue
		}
		if !block.active {
			continue
		}

		if match := lockNamePattern.FindStringSubmatch(line.Text); match != nil {
			if line.InNewFile() {
				block.name = match[1]
				block.nameAdded = line.IsAdded()
			} else {
				block.removedName = match[1]
			}
			continue
		}
		if match := lockVersionPattern.FindStringSubmatch(line.Text); match != nil {
			switch line.Kind {
			case entities.DiffAdded:
				block.addedVersion = match[1]
			case entities.DiffRemoved:
				block.removedVersion = match[1]
			default:
				block.contextVersion = match[1]
			}
		}
	}
	flush(lockBlock{})

	return records
}
