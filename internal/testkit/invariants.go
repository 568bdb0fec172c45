// Package testkit holds invariant checkers shared by tests across
// packages. Each checker returns an error describing the first breach so
// tests fail with the offending value, not just a position.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"sgstyle/internal/diag"
	"sgstyle/internal/fixer"
	"sgstyle/internal/source"
	"sgstyle/internal/token"
)

// CheckRecordOrder verifies the canonical record order: path, then start
// offset, then rule id.
func CheckRecordOrder(records []diag.Record) error {
	for i := 1; i < len(records); i++ {
		a, b := records[i-1], records[i]
		switch {
		case a.Path < b.Path:
			continue
		case a.Path > b.Path:
			return fmt.Errorf("record %d: path %q sorts after %q", i, a.Path, b.Path)
		case a.Offset < b.Offset:
			continue
		case a.Offset > b.Offset:
			return fmt.Errorf("record %d: offset %d sorts after %d in %s", i, a.Offset, b.Offset, a.Path)
		case a.RuleID > b.RuleID:
			return fmt.Errorf("record %d: rule %q sorts after %q at %s:%d", i, a.RuleID, b.RuleID, a.Path, a.Offset)
		}
	}
	return nil
}

// CheckViolationOrder verifies the canonical violation order within one
// file revision: start offset, then rule id.
func CheckViolationOrder(vs []diag.Violation) error {
	for i := 1; i < len(vs); i++ {
		a, b := vs[i-1], vs[i]
		if a.Span.Start > b.Span.Start {
			return fmt.Errorf("violation %d: offset %d sorts after %d", i, a.Span.Start, b.Span.Start)
		}
		if a.Span.Start == b.Span.Start && a.Rule > b.Rule {
			return fmt.Errorf("violation %d: rule %q sorts after %q at offset %d", i, a.Rule, b.Rule, a.Span.Start)
		}
	}
	return nil
}

// CheckPlanDisjoint verifies that a resolved plan's edits are sorted by
// start offset and pairwise non-overlapping. Zero-width edits may share a
// position; a zero-width edit inside a non-empty span is a breach.
func CheckPlanDisjoint(plan fixer.Plan) error {
	edits := plan.Accepted
	for i := 1; i < len(edits); i++ {
		a, b := edits[i-1], edits[i]
		if a.Span.Start > b.Span.Start {
			return fmt.Errorf("edit %d: start %d sorts after %d", i, a.Span.Start, b.Span.Start)
		}
		if a.Span.End > b.Span.Start && a.Span.Start < b.Span.End {
			return fmt.Errorf("edit %d (%s) overlaps edit %d (%s): %s vs %s",
				i-1, a.Rule, i, b.Rule, a.Span, b.Span)
		}
	}
	return nil
}

// CheckLossless verifies the parser contract: concatenating every token's
// text reproduces the file content exactly, spans tile the file without
// gaps, and the stream ends in EOF.
func CheckLossless(file *source.File, tokens []token.Token) error {
	if len(tokens) == 0 {
		return fmt.Errorf("empty token stream")
	}
	if tokens[len(tokens)-1].Kind != token.EOF {
		return fmt.Errorf("stream ends in %s, not EOF", tokens[len(tokens)-1].Kind)
	}
	lenContent, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return fmt.Errorf("content length overflow: %w", err)
	}
	var at uint32
	for i, tok := range tokens {
		if tok.Span.Start != at {
			return fmt.Errorf("token %d (%s) starts at %d, expected %d", i, tok.Kind, tok.Span.Start, at)
		}
		if tok.Span.End > lenContent {
			return fmt.Errorf("token %d (%s) ends at %d beyond content length %d", i, tok.Kind, tok.Span.End, lenContent)
		}
		if got := string(file.Content[tok.Span.Start:tok.Span.End]); got != tok.Text {
			return fmt.Errorf("token %d (%s) text %q does not match content %q", i, tok.Kind, tok.Text, got)
		}
		at = tok.Span.End
	}
	if at != lenContent {
		return fmt.Errorf("stream covers %d bytes of %d", at, lenContent)
	}
	return nil
}
