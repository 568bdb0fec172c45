package rules

import (
	"strings"

	"sgstyle/internal/diag"
	"sgstyle/internal/rule"
	"sgstyle/internal/source"
)

// IndentStyle enforces the indentation character. With style "spaces" (the
// default) tab indentation is flagged and each tab replaced by indent_width
// spaces; with style "tabs" runs of indent_width spaces are converted to
// tabs instead. The replacement is a flat character swap, not tab-stop
// alignment.
type IndentStyle struct{}

func (IndentStyle) Meta() rule.Meta {
	return rule.Meta{
		ID:              "indent-style",
		Title:           "consistent indentation characters",
		Category:        diag.CatStructure,
		DefaultSeverity: diag.SevError,
		DefaultEnabled:  true,
		CanFix:          true,
		ParamKeys:       []string{"style"},
	}
}

func (IndentStyle) Check(ctx *rule.Context) []diag.Violation {
	style := ctx.Params.String("style", "spaces")
	f := ctx.File
	var vs []diag.Violation
	for l := uint32(1); l <= f.NumLines(); l++ {
		text := f.GetLine(l)
		trimmed := strings.TrimLeft(text, " \t")
		if trimmed == "" {
			continue // blank lines belong to other rules
		}
		indent := text[:len(text)-len(trimmed)]

		var fixed, msg string
		switch style {
		case "tabs":
			if !strings.Contains(indent, strings.Repeat(" ", ctx.IndentWidth)) {
				continue
			}
			fixed = strings.ReplaceAll(indent, strings.Repeat(" ", ctx.IndentWidth), "\t")
			msg = "space indentation, expected tabs"
		default:
			if !strings.Contains(indent, "\t") {
				continue
			}
			fixed = strings.ReplaceAll(indent, "\t", strings.Repeat(" ", ctx.IndentWidth))
			msg = "tab indentation, expected spaces"
		}

		span := source.Span{
			File:  f.ID,
			Start: f.LineStart(l),
			End:   f.LineStart(l) + uint32(len(indent)),
		}
		v := ctx.Violation(span, msg)
		vs = append(vs, v.WithFix("rewrite indentation",
			diag.Replace(span, indent, fixed)))
	}
	return vs
}
