package rules

import (
	"sgstyle/internal/diag"
	"sgstyle/internal/rule"
	"sgstyle/internal/source"
	"sgstyle/internal/token"
)

// OptionSugar prefers the `T?` shorthand over a spelled-out `Option<T>`.
// Only an Ident "Option" immediately followed by `<` (no space between) is
// treated as the generic form; `Option < x` stays untouched because it may
// be a comparison. The rewrite is offered only when the type argument is a
// plain, possibly qualified, identifier; anything nested is reported
// without a fix.
type OptionSugar struct{}

func (OptionSugar) Meta() rule.Meta {
	return rule.Meta{
		ID:              "option-sugar",
		Title:           "prefer T? over Option<T>",
		Category:        diag.CatIdiom,
		DefaultSeverity: diag.SevInfo,
		DefaultEnabled:  true,
		CanFix:          true,
	}
}

func (OptionSugar) Kinds() []token.Kind {
	return []token.Kind{token.Ident}
}

func (OptionSugar) CheckToken(ctx *rule.Context, i int) []diag.Violation {
	m := ctx.Model
	if m.Text(i) != "Option" {
		return nil
	}
	lt := i + 1
	if lt >= m.Len() || m.At(lt).Kind != token.Lt {
		return nil
	}

	depth := 1
	simple := true
	var closeEnd uint32
scan:
	for j := lt + 1; j < m.Len(); j++ {
		t := m.At(j)
		switch t.Kind {
		case token.Lt:
			depth++
			simple = false
		case token.Gt:
			depth--
			if depth == 0 {
				closeEnd = t.Span.End
				break scan
			}
		case token.Shr:
			// The scanner lexes `>>` as one shift token. Its first byte
			// may be our closing bracket.
			if depth == 1 {
				closeEnd = t.Span.Start + 1
				depth = 0
				break scan
			}
			depth -= 2
			simple = false
			if depth == 0 {
				closeEnd = t.Span.End
				break scan
			}
		case token.Newline, token.EOF:
			// Unclosed on this line. Probably not a generic at all.
			return nil
		case token.Ident, token.ColonColon:
		default:
			simple = false
		}
	}
	if depth != 0 {
		return nil
	}

	f := ctx.File
	span := source.Span{File: f.ID, Start: m.At(i).Span.Start, End: closeEnd}
	v := ctx.Violation(span, "prefer the ? sugar over Option<...>")
	if !simple {
		return []diag.Violation{v}
	}
	old := string(f.Content[span.Start:span.End])
	inner := string(f.Content[m.At(lt).Span.End : closeEnd-1])
	return []diag.Violation{
		v.WithFix("rewrite as "+inner+"?", diag.Replace(span, old, inner+"?")),
	}
}
