package diag

import (
	"sort"

	"sgstyle/internal/source"
)

// Edit replaces the text under Span with NewText. OldText, when non-empty,
// is a guard: the applier refuses the edit if the current text under Span
// differs, which catches fixes computed against a stale snapshot.
type Edit struct {
	Span    source.Span
	NewText string
	OldText string
}

// Fix is a structured correction for one violation. Edits must be sorted by
// start offset and must not overlap each other.
type Fix struct {
	Title string
	Edits []Edit
}

// Violation is a single finding of one rule in one file revision. It is
// immutable after creation.
type Violation struct {
	Rule     string
	Severity Severity
	Category Category
	Span     source.Span
	Message  string
	Fix      *Fix
}

// HasFix reports whether the violation carries a non-empty fix.
func (v Violation) HasFix() bool {
	return v.Fix != nil && len(v.Fix.Edits) > 0
}

// SortViolations orders violations by start offset, then rule id. This is
// the canonical diagnostic order within one file.
func SortViolations(vs []Violation) {
	sort.SliceStable(vs, func(i, j int) bool {
		if vs[i].Span.Start != vs[j].Span.Start {
			return vs[i].Span.Start < vs[j].Span.Start
		}
		return vs[i].Rule < vs[j].Rule
	})
}
