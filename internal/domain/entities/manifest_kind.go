package entities

import "path"

// ManifestKind identifies one tracked dependency file type.
type ManifestKind int

const (
	GoModule ManifestKind = iota
	GoSum
	RustManifest
	RustLock
)

// AllManifestKinds lists every tracked kind in emission order.
func AllManifestKinds() []ManifestKind {
	return []ManifestKind{GoModule, GoSum, RustManifest, RustLock}
}

// FileName returns the file name the kind is bound to.
func (k ManifestKind) FileName() string {
	switch k {
	case GoModule:
		return "go.mod"
	case GoSum:
		return "go.sum"
	case RustManifest:
		return "Cargo.toml"
	case RustLock:
		return "Cargo.lock"
	default:
		return ""
	}
}

func (k ManifestKind) String() string { return k.FileName() }

// IsGo reports whether the kind belongs to the Go ecosystem.
func (k ManifestKind) IsGo() bool { return k == GoModule || k == GoSum }

// IsRust reports whether the kind belongs to the Rust ecosystem.
func (k ManifestKind) IsRust() bool { return k == RustManifest || k == RustLock }

// ManifestKindForPath matches a slash-separated repository path against the
// tracked file names at any directory depth.
func ManifestKindForPath(filePath string) (ManifestKind, bool) {
	base := path.Base(filePath)
	for _, kind := range AllManifestKinds() {
		if base == kind.FileName() {
			return kind, true
		}
	}
	return 0, false
}

// ChangedManifests is the ChangeScanner output: every changed path plus the
// manifest paths grouped by kind, in the order the store returned them.
type ChangedManifests struct {
	Files  []string
	ByKind map[ManifestKind][]string
}

// ScanChangedFiles classifies a changed-file list.
func ScanChangedFiles(files []string) ChangedManifests {
	result := ChangedManifests{
		Files:  make([]string, 0, len(files)),
		ByKind: make(map[ManifestKind][]string),
	}
	for _, file := range files {
		if file == "" {
			continue
		}
		result.Files = append(result.Files, file)
		if kind, ok := ManifestKindForPath(file); ok {
			result.ByKind[kind] = append(result.ByKind[kind], file)
		}
	}
	return result
}

// Touched reports whether at least one file of the given kind changed.
func (c ChangedManifests) Touched(kind ManifestKind) bool {
	return len(c.ByKind[kind]) > 0
}

// HasFiles reports whether the revision pair changed anything at all.
func (c ChangedManifests) HasFiles() bool { return len(c.Files) > 0 }

// Flags returns the four touched flags used for classification.
func (c ChangedManifests) Flags() TouchedKinds {
	return TouchedKinds{
		GoModule:     c.Touched(GoModule),
		GoSum:        c.Touched(GoSum),
		RustManifest: c.Touched(RustManifest),
		RustLock:     c.Touched(RustLock),
	}
}

// AnyManifest reports whether any tracked manifest changed.
func (c ChangedManifests) AnyManifest() bool {
	return c.Flags().Any()
}
