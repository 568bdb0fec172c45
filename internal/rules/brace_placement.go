package rules

import (
	"sgstyle/internal/diag"
	"sgstyle/internal/rule"
	"sgstyle/internal/source"
	"sgstyle/internal/token"
)

// BracePlacement keeps an opening brace on the line of its construct,
// `fn main() {` rather than Allman-style braces on their own line. The fix
// collapses the layout between the brace and the previous token to a
// single space. When the previous significant token is a line comment the
// join would pull the brace into the comment, so only the violation is
// reported.
type BracePlacement struct{}

func (BracePlacement) Meta() rule.Meta {
	return rule.Meta{
		ID:              "brace-placement",
		Title:           "opening brace on the construct's line",
		Category:        diag.CatStructure,
		DefaultSeverity: diag.SevError,
		DefaultEnabled:  true,
		CanFix:          true,
	}
}

func (BracePlacement) Kinds() []token.Kind {
	return []token.Kind{token.LBrace}
}

func (BracePlacement) CheckToken(ctx *rule.Context, i int) []diag.Violation {
	m := ctx.Model
	if !m.FirstOnLine(i) {
		return nil
	}
	prev := m.PrevSignificant(i)
	if prev < 0 {
		return nil // opening brace at the very top of the file
	}
	brace := m.At(i)
	v := ctx.Violation(brace.Span, "'{' should be on the previous line")
	// Joining after a line-terminated comment would pull the brace into
	// the comment text; block comments are safe to join after.
	if k := m.At(prev).Kind; k == token.LineComment || k == token.DocComment {
		return []diag.Violation{v}
	}
	f := ctx.File
	gap := source.Span{File: f.ID, Start: m.At(prev).Span.End, End: brace.Span.Start}
	old := string(f.Content[gap.Start:gap.End])
	return []diag.Violation{
		v.WithFix("join with the previous line", diag.Replace(gap, old, " ")),
	}
}
