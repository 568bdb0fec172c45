package rules

import (
	"fmt"

	"sgstyle/internal/diag"
	"sgstyle/internal/rule"
	"sgstyle/internal/srcmodel"
	"sgstyle/internal/token"
)

// ColonSpacing bans space before ':' and requires exactly one after it.
type ColonSpacing struct{}

func (ColonSpacing) Meta() rule.Meta {
	return rule.Meta{
		ID:              "colon-spacing",
		Title:           "no space before ':', one space after",
		Category:        diag.CatSpacing,
		DefaultSeverity: diag.SevError,
		DefaultEnabled:  true,
		CanFix:          true,
	}
}

func (ColonSpacing) Kinds() []token.Kind {
	return []token.Kind{token.Colon}
}

func (ColonSpacing) CheckToken(ctx *rule.Context, i int) []diag.Violation {
	vs := flagSpaceBefore(ctx, i, "':'")
	return append(vs, flagSpaceAfter(ctx, i, "':'")...)
}

// CommaSpacing bans space before ',' and requires one space or a line
// break after it. A comma directly before a closing delimiter is exempt.
type CommaSpacing struct{}

func (CommaSpacing) Meta() rule.Meta {
	return rule.Meta{
		ID:              "comma-spacing",
		Title:           "no space before ',', one space or newline after",
		Category:        diag.CatSpacing,
		DefaultSeverity: diag.SevError,
		DefaultEnabled:  true,
		CanFix:          true,
	}
}

func (CommaSpacing) Kinds() []token.Kind {
	return []token.Kind{token.Comma}
}

func (CommaSpacing) CheckToken(ctx *rule.Context, i int) []diag.Violation {
	vs := flagSpaceBefore(ctx, i, "','")
	return append(vs, flagSpaceAfter(ctx, i, "','")...)
}

// SemicolonSpacing bans space before ';'.
type SemicolonSpacing struct{}

func (SemicolonSpacing) Meta() rule.Meta {
	return rule.Meta{
		ID:              "semicolon-spacing",
		Title:           "no space before ';'",
		Category:        diag.CatSpacing,
		DefaultSeverity: diag.SevError,
		DefaultEnabled:  true,
		CanFix:          true,
	}
}

func (SemicolonSpacing) Kinds() []token.Kind {
	return []token.Kind{token.Semicolon}
}

func (SemicolonSpacing) CheckToken(ctx *rule.Context, i int) []diag.Violation {
	return flagSpaceBefore(ctx, i, "';'")
}

// KeywordSpacing requires one space between a flow keyword and whatever
// follows it on the same line.
type KeywordSpacing struct{}

func (KeywordSpacing) Meta() rule.Meta {
	return rule.Meta{
		ID:              "keyword-spacing",
		Title:           "one space after flow keywords",
		Category:        diag.CatSpacing,
		DefaultSeverity: diag.SevError,
		DefaultEnabled:  true,
		CanFix:          true,
	}
}

func (KeywordSpacing) Kinds() []token.Kind {
	return []token.Kind{
		token.KwIf, token.KwElse, token.KwWhile, token.KwFor,
		token.KwIn, token.KwReturn, token.KwCompare,
	}
}

func (KeywordSpacing) CheckToken(ctx *rule.Context, i int) []diag.Violation {
	m := ctx.Model
	if i+1 >= m.Len() {
		return nil
	}
	kw := m.At(i)
	next := m.At(i + 1)
	what := fmt.Sprintf("%q", kw.Text)

	switch next.Kind {
	case token.Space:
		if next.Text == " " || followedByNewline(m, i+1) {
			return nil
		}
		v := ctx.Violation(next.Span, "multiple spaces after "+what)
		return []diag.Violation{v.WithFix("collapse to one space",
			diag.Replace(next.Span, next.Text, " "))}
	case token.Newline, token.EOF, token.Semicolon:
		return nil
	default:
		if next.Kind.IsCloseDelim() {
			return nil
		}
		v := ctx.Violation(kw.Span.ZeroideToEnd(), "missing space after "+what)
		return []diag.Violation{v.WithFix("insert space",
			diag.Insert(next.Span, " "))}
	}
}

// flagSpaceBefore reports a space run immediately before punctuation token
// i, with a fix that deletes the run. Indentation is not touched: when the
// space run opens the line the punctuation placement is a layout concern,
// not a spacing one.
func flagSpaceBefore(ctx *rule.Context, i int, what string) []diag.Violation {
	m := ctx.Model
	if i == 0 {
		return nil
	}
	prev := m.At(i - 1)
	if prev.Kind != token.Space || m.FirstOnLine(i-1) {
		return nil
	}
	v := ctx.Violation(prev.Span, "space before "+what)
	return []diag.Violation{v.WithFix("remove space",
		diag.Delete(prev.Span, prev.Text))}
}

// flagSpaceAfter requires exactly one space after punctuation token i,
// accepting a line break, the end of file or a closing delimiter instead.
func flagSpaceAfter(ctx *rule.Context, i int, what string) []diag.Violation {
	m := ctx.Model
	if i+1 >= m.Len() {
		return nil
	}
	punct := m.At(i)
	next := m.At(i + 1)

	switch next.Kind {
	case token.Space:
		if next.Text == " " || followedByNewline(m, i+1) {
			return nil
		}
		v := ctx.Violation(next.Span, "multiple spaces after "+what)
		return []diag.Violation{v.WithFix("collapse to one space",
			diag.Replace(next.Span, next.Text, " "))}
	case token.Newline, token.EOF:
		return nil
	default:
		if next.Kind.IsCloseDelim() {
			return nil
		}
		v := ctx.Violation(punct.Span.ZeroideToEnd(), "missing space after "+what)
		return []diag.Violation{v.WithFix("insert space",
			diag.Insert(next.Span, " "))}
	}
}

// followedByNewline reports whether the token after i ends the line, which
// hands the whole space run to the trailing-whitespace rule instead.
func followedByNewline(m *srcmodel.Model, i int) bool {
	if i+1 >= m.Len() {
		return true
	}
	k := m.At(i + 1).Kind
	return k == token.Newline || k == token.EOF
}
