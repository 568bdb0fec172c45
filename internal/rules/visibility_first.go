package rules

import (
	"fmt"

	"sgstyle/internal/diag"
	"sgstyle/internal/rule"
	"sgstyle/internal/token"
)

// VisibilityFirst wants `pub` to lead the modifier list of a declaration,
// as in `pub async fn` rather than `async pub fn`. The fix swaps `pub`
// with the leftmost modifier in front of it; the tokens in between keep
// their places.
type VisibilityFirst struct{}

func (VisibilityFirst) Meta() rule.Meta {
	return rule.Meta{
		ID:              "visibility-first",
		Title:           "pub before other modifiers",
		Category:        diag.CatIdiom,
		DefaultSeverity: diag.SevError,
		DefaultEnabled:  true,
		CanFix:          true,
	}
}

func (VisibilityFirst) Kinds() []token.Kind {
	return []token.Kind{token.KwPub}
}

func (VisibilityFirst) CheckToken(ctx *rule.Context, i int) []diag.Violation {
	m := ctx.Model
	leftmost := -1
	for j := m.PrevCode(i); j >= 0; j = m.PrevCode(j) {
		k := m.At(j).Kind
		if !k.IsDeclModifier() || k == token.KwPub {
			break
		}
		leftmost = j
	}
	if leftmost < 0 {
		return nil
	}

	pub := m.At(i)
	first := m.At(leftmost)
	firstText := m.Text(leftmost)
	v := ctx.Violation(pub.Span,
		fmt.Sprintf("'pub' should come before '%s'", firstText))
	return []diag.Violation{
		v.WithFix("move 'pub' to the front",
			diag.Replace(first.Span, firstText, "pub"),
			diag.Replace(pub.Span, "pub", firstText)),
	}
}
