package rules

import (
	"fmt"
	"strings"

	"sgstyle/internal/diag"
	"sgstyle/internal/rule"
	"sgstyle/internal/source"
)

// BlankLines bans blank lines at the start of the file and caps consecutive
// blank line runs at the "max" parameter.
type BlankLines struct{}

func (BlankLines) Meta() rule.Meta {
	return rule.Meta{
		ID:              "blank-lines",
		Title:           "no leading blank lines, limited consecutive blank lines",
		Category:        diag.CatStructure,
		DefaultSeverity: diag.SevError,
		DefaultEnabled:  true,
		CanFix:          true,
		ParamKeys:       []string{"max"},
	}
}

func (BlankLines) Check(ctx *rule.Context) []diag.Violation {
	f := ctx.File
	n := f.NumLines()
	if n == 0 {
		return nil
	}
	maxRun := ctx.Params.Int("max", 1)
	var vs []diag.Violation

	lead := uint32(0)
	for l := uint32(1); l <= n && blankTerminatedLine(f, l); l++ {
		lead++
	}
	if lead > 0 {
		span := source.Span{File: f.ID, Start: 0, End: f.LineStart(lead + 1)}
		v := ctx.Violation(span, fmt.Sprintf("file starts with %d blank line(s)", lead))
		vs = append(vs, v.WithFix("remove leading blank lines",
			diag.Delete(span, string(f.Content[span.Start:span.End]))))
	}

	l := lead + 1
	for l <= n {
		if !blankTerminatedLine(f, l) {
			l++
			continue
		}
		runStart := l
		for l <= n && blankTerminatedLine(f, l) {
			l++
		}
		run := int(l - runStart)
		if run <= maxRun {
			continue
		}
		span := source.Span{
			File:  f.ID,
			Start: f.LineStart(runStart + uint32(maxRun)),
			End:   f.LineStart(runStart + uint32(run)),
		}
		v := ctx.Violation(span,
			fmt.Sprintf("%d consecutive blank lines (limit %d)", run, maxRun))
		vs = append(vs, v.WithFix("remove surplus blank lines",
			diag.Delete(span, string(f.Content[span.Start:span.End]))))
	}
	return vs
}

// FinalNewline requires the file to end with exactly one newline.
type FinalNewline struct{}

func (FinalNewline) Meta() rule.Meta {
	return rule.Meta{
		ID:              "final-newline",
		Title:           "file ends with exactly one newline",
		Category:        diag.CatStructure,
		DefaultSeverity: diag.SevError,
		DefaultEnabled:  true,
		CanFix:          true,
	}
}

func (FinalNewline) Check(ctx *rule.Context) []diag.Violation {
	f := ctx.File
	if len(f.Content) == 0 {
		return nil
	}
	end := uint32(len(f.Content))

	if f.Content[end-1] != '\n' {
		span := source.Span{File: f.ID, Start: end, End: end}
		v := ctx.Violation(span, "missing newline at end of file")
		return []diag.Violation{v.WithFix("append newline",
			diag.Insert(span, "\n"))}
	}

	run := uint32(0)
	for run < end && f.Content[end-1-run] == '\n' {
		run++
	}
	if run <= 1 {
		return nil
	}
	span := source.Span{File: f.ID, Start: end - run + 1, End: end}
	v := ctx.Violation(span,
		fmt.Sprintf("%d newlines at end of file, expected one", run))
	return []diag.Violation{v.WithFix("trim extra newlines",
		diag.Delete(span, string(f.Content[span.Start:span.End])))}
}

// TrailingWhitespace bans spaces and tabs at the end of any line, block
// comment interiors included.
type TrailingWhitespace struct{}

func (TrailingWhitespace) Meta() rule.Meta {
	return rule.Meta{
		ID:              "trailing-whitespace",
		Title:           "no trailing whitespace",
		Category:        diag.CatStructure,
		DefaultSeverity: diag.SevError,
		DefaultEnabled:  true,
		CanFix:          true,
	}
}

func (TrailingWhitespace) Check(ctx *rule.Context) []diag.Violation {
	f := ctx.File
	var vs []diag.Violation
	for l := uint32(1); l <= f.NumLines(); l++ {
		text := f.GetLine(l)
		trimmed := strings.TrimRight(text, " \t")
		if len(trimmed) == len(text) {
			continue
		}
		start := f.LineStart(l) + uint32(len(trimmed))
		span := source.Span{File: f.ID, Start: start, End: f.LineStart(l) + uint32(len(text))}
		v := ctx.Violation(span, "trailing whitespace")
		vs = append(vs, v.WithFix("remove trailing whitespace",
			diag.Delete(span, text[len(trimmed):])))
	}
	return vs
}

// blankTerminatedLine reports whether line l is whitespace-only and carries
// its newline, which makes it deletable as a unit. A whitespace-only final
// line without a newline belongs to the trailing-whitespace rule.
func blankTerminatedLine(f *source.File, l uint32) bool {
	if strings.TrimSpace(f.GetLine(l)) != "" {
		return false
	}
	next := f.LineStart(l + 1)
	return next > f.LineStart(l) && f.Content[next-1] == '\n'
}
