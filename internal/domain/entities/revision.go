// Package entities defines core domain models and data structures.
package entities

// Revision names a source-control revision (branch, tag, or commit) of the
// upstream script. The zero value is an absent revision.
type Revision struct {
	value string
	set   bool
}

// NoRevision returns an absent revision
func NoRevision() Revision {
	return Revision{}
}

// RevisionOf returns a revision holding value verbatim, including the empty string
func RevisionOf(value string) Revision {
	return Revision{value: value, set: true}
}

// IsSet reports whether a revision was supplied at all
func (r Revision) IsSet() bool {
	return r.set
}

// Value returns the supplied revision, or "" when absent
func (r Revision) Value() string {
	return r.value
}

// IsEmpty reports whether the revision is absent or explicitly empty.
// Both fall back to the default revision.
func (r Revision) IsEmpty() bool {
	return !r.set || r.value == ""
}

func (r Revision) String() string {
	if !r.set {
		return "<unset>"
	}
	return r.value
}
