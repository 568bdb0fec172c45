// Package fixer turns the fixes attached to violations into a conflict-free
// edit plan and applies it to source text.
//
// Resolution and application are split so the driver can loop: check, plan,
// apply, re-check. All offsets in one plan refer to a single text snapshot;
// edits are never applied against a partially rewritten buffer. Conflicting
// edits are deferred, not dropped: the next pass re-checks the rewritten
// text and the losing rule gets another chance on fresh offsets.
package fixer

import (
	"fmt"
	"sort"
	"strings"

	"sgstyle/internal/diag"
)

// Accepted is one edit that survived conflict resolution, tagged with the
// rule that produced it.
type Accepted struct {
	diag.Edit
	Rule string
}

// Plan is the outcome of one resolution pass over one file revision.
// Accepted edits are disjoint and sorted by start offset; Deferred counts
// the edits rejected because of a conflict.
type Plan struct {
	Accepted []Accepted
	Deferred int
}

// Empty reports whether the plan carries no accepted edits.
func (p Plan) Empty() bool {
	return len(p.Accepted) == 0
}

type candidate struct {
	edit diag.Edit
	rule string
	seq  int
}

// Resolve flattens every fix into individual edits and accepts them
// greedily. Candidates are ordered by start offset, then rule id, so when
// two rules want to rewrite overlapping text the rule earlier in the
// registry wins deterministically; the loser is deferred to the next pass.
func Resolve(violations []diag.Violation) Plan {
	var cands []candidate
	for _, v := range violations {
		if !v.HasFix() {
			continue
		}
		for _, e := range v.Fix.Edits {
			cands = append(cands, candidate{edit: e, rule: v.Rule, seq: len(cands)})
		}
	}

	// Registry order is lexicographic by rule id, so comparing ids directly
	// reproduces the registry tie-break without carrying the registry here.
	sort.SliceStable(cands, func(i, j int) bool {
		ci, cj := cands[i], cands[j]
		if ci.edit.Span.Start != cj.edit.Span.Start {
			return ci.edit.Span.Start < cj.edit.Span.Start
		}
		if ci.rule != cj.rule {
			return ci.rule < cj.rule
		}
		if ci.edit.Span.End != cj.edit.Span.End {
			return ci.edit.Span.End < cj.edit.Span.End
		}
		return ci.seq < cj.seq
	})

	var plan Plan
	for _, c := range cands {
		if conflictsWithAccepted(plan.Accepted, c.edit) {
			plan.Deferred++
			continue
		}
		plan.Accepted = append(plan.Accepted, Accepted{Edit: c.edit, Rule: c.rule})
	}
	return plan
}

// Apply splices the accepted edits into text in one pass. Offsets refer to
// text as given; the disjointness of the plan is what makes a single pass
// sound. The OldText guards are verified here: a mismatch means the plan
// was computed against a different snapshot, and the whole application is
// abandoned rather than producing a half-edited file.
func Apply(text string, accepted []Accepted) (string, error) {
	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, a := range accepted {
		start, end := int(a.Span.Start), int(a.Span.End)
		if start < last || end < start || end > len(text) {
			return "", fmt.Errorf("edit %s out of range (rule %s)", a.Span, a.Rule)
		}
		if a.OldText != "" && text[start:end] != a.OldText {
			return "", fmt.Errorf("text under %s changed since the fix was computed (rule %s)",
				a.Span, a.Rule)
		}
		b.WriteString(text[last:start])
		b.WriteString(a.NewText)
		last = end
	}
	b.WriteString(text[last:])
	return b.String(), nil
}

// Applied reports, per violation, whether the plan accepted every edit of
// its fix. A violation counts as fixed only when its whole fix survived
// resolution; one that lost an edit to a conflict is left for the next
// pass rather than half-applied.
func Applied(plan Plan, violations []diag.Violation) []bool {
	counts := make(map[diag.Edit]int, len(plan.Accepted))
	for _, a := range plan.Accepted {
		counts[a.Edit]++
	}
	applied := make([]bool, len(violations))
	for i, v := range violations {
		if !v.HasFix() {
			continue
		}
		ok := true
		for _, e := range v.Fix.Edits {
			if counts[e] == 0 {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		for _, e := range v.Fix.Edits {
			counts[e]--
		}
		applied[i] = true
	}
	return applied
}

func conflictsWithAccepted(accepted []Accepted, edit diag.Edit) bool {
	for i := range accepted {
		if spansConflict(accepted[i].Edit, edit) {
			return true
		}
	}
	return false
}

// spansConflict reports whether two edits' spans overlap.
// Spans are treated as half-open intervals [Start, End). Two zero-length
// edits (Start == End) never conflict. A zero-length edit conflicts with a
// non-zero span if its position is within that span (Start <= pos < End).
// For two non-zero spans, any overlap yields a conflict.
func spansConflict(a, b diag.Edit) bool {
	aStart, aEnd := a.Span.Start, a.Span.End
	bStart, bEnd := b.Span.Start, b.Span.End

	if aStart == aEnd && bStart == bEnd {
		return false
	}
	if aStart == aEnd {
		return bStart <= aStart && aStart < bEnd
	}
	if bStart == bEnd {
		return aStart <= bStart && bStart < aEnd
	}
	return aStart < bEnd && bStart < aEnd
}
