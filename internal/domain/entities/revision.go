package entities

// Revision is an opaque, commit-like identifier understood by a revision store
// (a SHA, a branch name, "HEAD~1", ...).
type Revision string

// String returns the raw identifier.
func (r Revision) String() string { return string(r) }

// IsEmpty reports whether no identifier was given.
func (r Revision) IsEmpty() bool { return r == "" }

// RevisionRange is the pair of revisions a detection run compares.
type RevisionRange struct {
	Base Revision
	Head Revision
}
