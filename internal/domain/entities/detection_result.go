package entities

import "strings"

// DependencySeparator joins rendered tokens in the emitted dependency list.
const DependencySeparator = ","

// DetectionResult is the single record a detection run produces.
type DetectionResult struct {
	HasChanges   bool
	Ecosystem    EcosystemLabel
	Dependencies []string
}

// NoChangesResult is the terminal state for revision pairs that touch no
// tracked manifest.
func NoChangesResult() DetectionResult {
	return DetectionResult{
		HasChanges:   false,
		Ecosystem:    EcosystemNone,
		Dependencies: []string{},
	}
}

// NewDetectionResult renders the records in order. No-op records are dropped
// unless includeUnchanged is set.
func NewDetectionResult(
	ecosystem EcosystemLabel,
	records []DependencyRecord,
	includeUnchanged bool,
) DetectionResult {
	tokens := make([]string, 0, len(records))
	for _, record := range records {
		if record.Name == "" {
			continue
		}
		if record.IsNoOp() && !includeUnchanged {
			continue
		}
		tokens = append(tokens, record.Render())
	}
	return DetectionResult{
		HasChanges:   true,
		Ecosystem:    ecosystem,
		Dependencies: tokens,
	}
}

// DependencyList returns the comma-joined token list.
func (r DetectionResult) DependencyList() string {
	return strings.Join(r.Dependencies, DependencySeparator)
}
