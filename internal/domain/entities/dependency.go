package entities

// ChangeType classifies a single dependency transition.
type ChangeType string

const (
	ChangeAdded   ChangeType = "added"
	ChangeUpdated ChangeType = "updated"
	ChangeRemoved ChangeType = "removed"
	ChangeUnknown ChangeType = "unknown"
)

// DependencyRecord is one dependency change extracted from a manifest file.
// Names are only meaningful within FilePath; the same name may legitimately
// appear once per touched manifest.
type DependencyRecord struct {
	Name       string
	OldVersion string // empty when unknown
	NewVersion string // empty when unknown
	ChangeType ChangeType
	Kind       ManifestKind
	FilePath   string
}

// NewDependencyRecord builds a record and derives its change type from the
// versions. Comparison is textual: downgrades count as updates.
func NewDependencyRecord(name, oldVersion, newVersion string) DependencyRecord {
	return DependencyRecord{
		Name:       name,
		OldVersion: oldVersion,
		NewVersion: newVersion,
		ChangeType: classifyChange(oldVersion, newVersion),
	}
}

func classifyChange(oldVersion, newVersion string) ChangeType {
	switch {
	case oldVersion != "" && newVersion != "" && oldVersion != newVersion:
		return ChangeUpdated
	case oldVersion == "" && newVersion != "":
		return ChangeAdded
	case oldVersion != "" && newVersion == "":
		return ChangeRemoved
	default:
		return ChangeUnknown
	}
}

// In attaches the originating manifest to the record.
func (d DependencyRecord) In(kind ManifestKind, filePath string) DependencyRecord {
	d.Kind = kind
	d.FilePath = filePath
	return d
}

// IsNoOp reports whether both versions are known and identical.
func (d DependencyRecord) IsNoOp() bool {
	return d.OldVersion != "" && d.OldVersion == d.NewVersion
}

// Render formats the record as name@old..new, name@version, or name.
func (d DependencyRecord) Render() string {
	switch {
	case d.OldVersion != "" && d.NewVersion != "" && d.OldVersion != d.NewVersion:
		return d.Name + "@" + d.OldVersion + ".." + d.NewVersion
	case d.NewVersion != "":
		return d.Name + "@" + d.NewVersion
	case d.OldVersion != "":
		return d.Name + "@" + d.OldVersion
	default:
		return d.Name
	}
}
