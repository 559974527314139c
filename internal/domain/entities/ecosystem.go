package entities

import (
	"fmt"
	"strings"
)

// EcosystemLabel is the detector's single-word ecosystem verdict.
type EcosystemLabel string

const (
	EcosystemGo    EcosystemLabel = "go"
	EcosystemRust  EcosystemLabel = "rust"
	EcosystemMixed EcosystemLabel = "mixed"
	EcosystemNone  EcosystemLabel = "none"
)

func (e EcosystemLabel) String() string { return string(e) }

// ParseEcosystem accepts a user supplied override. "none" is not a valid
// override since force mode always reports changes.
func ParseEcosystem(raw string) (EcosystemLabel, error) {
	switch label := EcosystemLabel(strings.ToLower(strings.TrimSpace(raw))); label {
	case EcosystemGo, EcosystemRust, EcosystemMixed:
		return label, nil
	default:
		return "", fmt.Errorf("unsupported ecosystem %q (expected go, rust, or mixed)", raw)
	}
}

// TouchedKinds holds one flag per ManifestKind.
type TouchedKinds struct {
	GoModule     bool
	GoSum        bool
	RustManifest bool
	RustLock     bool
}

// Any reports whether at least one flag is set.
func (t TouchedKinds) Any() bool {
	return t.GoModule || t.GoSum || t.RustManifest || t.RustLock
}

// ClassifyEcosystem derives the label from the touched flags.
func ClassifyEcosystem(touched TouchedKinds) EcosystemLabel {
	goTouched := touched.GoModule || touched.GoSum
	rustTouched := touched.RustManifest || touched.RustLock

	switch {
	case goTouched && rustTouched:
		return EcosystemMixed
	case goTouched:
		return EcosystemGo
	case rustTouched:
		return EcosystemRust
	default:
		return EcosystemNone
	}
}

// HasDomainShape reports whether the leading token of a forced dependency
// list starts with a host-like element containing a dot, followed by "/".
func HasDomainShape(dependency string) bool {
	leading, _, _ := strings.Cut(dependency, DependencySeparator)
	fields := strings.Fields(leading)
	if len(fields) == 0 {
		return false
	}
	host, rest, found := strings.Cut(fields[0], "/")
	if !found || rest == "" {
		return false
	}
	return strings.Contains(host, ".") && !strings.HasPrefix(host, ".") && !strings.HasSuffix(host, ".")
}
