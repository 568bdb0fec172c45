package rules

import (
	"fmt"

	"sgstyle/internal/diag"
	"sgstyle/internal/rule"
	"sgstyle/internal/token"
)

// OperatorSpacing requires single spaces around binary operators.
//
// Only kinds that are unambiguously binary in token space participate; see
// Kind.IsSpacedBinaryOp. For kinds that double as prefix operators the rule
// inspects the previous code token: a binary operator follows something
// that ends a value, a unary one does not.
type OperatorSpacing struct{}

func (OperatorSpacing) Meta() rule.Meta {
	return rule.Meta{
		ID:              "operator-spacing",
		Title:           "binary operators surrounded by single spaces",
		Category:        diag.CatSpacing,
		DefaultSeverity: diag.SevError,
		DefaultEnabled:  true,
		CanFix:          true,
	}
}

func (OperatorSpacing) Kinds() []token.Kind {
	kinds := make([]token.Kind, 0, 32)
	for k := token.Plus; k <= token.Underscore; k++ {
		if k.IsSpacedBinaryOp() {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func (OperatorSpacing) CheckToken(ctx *rule.Context, i int) []diag.Violation {
	m := ctx.Model

	prevCode := m.PrevCode(i)
	if prevCode == -1 || !m.At(prevCode).Kind.EndsValue() {
		return nil // prefix position
	}

	op := m.At(i)
	what := fmt.Sprintf("%q", op.Text)
	var vs []diag.Violation

	// Left side. A line break before the operator is continuation layout
	// and stays untouched, indentation included.
	if i > 0 && !m.FirstOnLine(i) {
		prev := m.At(i - 1)
		switch {
		case prev.Kind == token.Space && prev.Text != " ":
			v := ctx.Violation(prev.Span, "multiple spaces before "+what)
			vs = append(vs, v.WithFix("collapse to one space",
				diag.Replace(prev.Span, prev.Text, " ")))
		case prev.Kind != token.Space:
			v := ctx.Violation(op.Span.ZeroideToStart(), "missing space before "+what)
			vs = append(vs, v.WithFix("insert space",
				diag.Insert(op.Span, " ")))
		}
	}

	// Right side. A trailing operator continues on the next line.
	if i+1 < m.Len() {
		next := m.At(i + 1)
		switch {
		case next.Kind == token.Space:
			if next.Text != " " && !followedByNewline(m, i+1) {
				v := ctx.Violation(next.Span, "multiple spaces after "+what)
				vs = append(vs, v.WithFix("collapse to one space",
					diag.Replace(next.Span, next.Text, " ")))
			}
		case next.Kind == token.Newline || next.Kind == token.EOF:
		default:
			v := ctx.Violation(op.Span.ZeroideToEnd(), "missing space after "+what)
			vs = append(vs, v.WithFix("insert space",
				diag.Insert(next.Span, " ")))
		}
	}
	return vs
}
