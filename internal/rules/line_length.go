package rules

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"sgstyle/internal/diag"
	"sgstyle/internal/rule"
	"sgstyle/internal/source"
)

// LineLength flags lines whose display width exceeds the global line_length
// limit. Width is measured per rune so CJK and other wide characters count
// as two columns; a tab counts as indent_width columns. There is no fix,
// wrapping is a judgment call.
type LineLength struct{}

func (LineLength) Meta() rule.Meta {
	return rule.Meta{
		ID:              "line-length",
		Title:           "maximum line width",
		Category:        diag.CatText,
		DefaultSeverity: diag.SevWarning,
		DefaultEnabled:  true,
		CanFix:          false,
	}
}

func (LineLength) Check(ctx *rule.Context) []diag.Violation {
	f := ctx.File
	limit := ctx.LineLength
	var vs []diag.Violation
	for l := uint32(1); l <= f.NumLines(); l++ {
		text := f.GetLine(l)
		width := 0
		overflowAt := -1
		for i, r := range text {
			if r == '\t' {
				width += ctx.IndentWidth
			} else {
				width += runewidth.RuneWidth(r)
			}
			if width > limit && overflowAt < 0 {
				overflowAt = i
			}
		}
		if overflowAt < 0 {
			continue
		}
		span := source.Span{
			File:  f.ID,
			Start: f.LineStart(l) + uint32(overflowAt),
			End:   f.LineStart(l) + uint32(len(text)),
		}
		vs = append(vs, ctx.Violation(span,
			fmt.Sprintf("line is %d columns, limit is %d", width, limit)))
	}
	return vs
}
