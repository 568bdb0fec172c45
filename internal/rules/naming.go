package rules

import (
	"fmt"
	"unicode"

	"sgstyle/internal/diag"
	"sgstyle/internal/rule"
	"sgstyle/internal/token"
)

// TypeNaming requires PascalCase names on type, tag, contract and enum
// declarations.
type TypeNaming struct{}

func (TypeNaming) Meta() rule.Meta {
	return rule.Meta{
		ID:              "type-naming",
		Title:           "type, tag, contract and enum names use PascalCase",
		Category:        diag.CatNaming,
		DefaultSeverity: diag.SevError,
		DefaultEnabled:  true,
	}
}

func (TypeNaming) Kinds() []token.Kind {
	return []token.Kind{token.KwType, token.KwTag, token.KwContract, token.KwEnum}
}

func (TypeNaming) CheckToken(ctx *rule.Context, i int) []diag.Violation {
	m := ctx.Model
	ni := m.NextCode(i)
	if ni == -1 || m.At(ni).Kind != token.Ident {
		return nil
	}
	name := m.Text(ni)
	if isPascalCase(name) {
		return nil
	}
	return []diag.Violation{ctx.Violation(m.At(ni).Span,
		fmt.Sprintf("%s name %q should be PascalCase", m.Text(i), name))}
}

// FunctionNaming requires snake_case names on fn declarations.
type FunctionNaming struct{}

func (FunctionNaming) Meta() rule.Meta {
	return rule.Meta{
		ID:              "function-naming",
		Title:           "function names use snake_case",
		Category:        diag.CatNaming,
		DefaultSeverity: diag.SevError,
		DefaultEnabled:  true,
	}
}

func (FunctionNaming) Kinds() []token.Kind {
	return []token.Kind{token.KwFn}
}

func (FunctionNaming) CheckToken(ctx *rule.Context, i int) []diag.Violation {
	m := ctx.Model
	ni := m.NextCode(i)
	// Anonymous functions have no name to check.
	if ni == -1 || m.At(ni).Kind != token.Ident {
		return nil
	}
	name := m.Text(ni)
	if isSnakeCase(name) {
		return nil
	}
	return []diag.Violation{ctx.Violation(m.At(ni).Span,
		fmt.Sprintf("function name %q should be snake_case", name))}
}

// ConstantNaming requires SCREAMING_SNAKE_CASE on top-level const names.
type ConstantNaming struct{}

func (ConstantNaming) Meta() rule.Meta {
	return rule.Meta{
		ID:              "constant-naming",
		Title:           "top-level constant names use SCREAMING_SNAKE_CASE",
		Category:        diag.CatNaming,
		DefaultSeverity: diag.SevWarning,
		DefaultEnabled:  true,
	}
}

func (ConstantNaming) Kinds() []token.Kind {
	return []token.Kind{token.KwConst}
}

func (ConstantNaming) CheckToken(ctx *rule.Context, i int) []diag.Violation {
	m := ctx.Model
	// Locals keep their own casing; only file-scope constants are shouted.
	if m.Parent(i) != -1 {
		return nil
	}
	ni := m.NextCode(i)
	if ni == -1 || m.At(ni).Kind != token.Ident {
		return nil
	}
	name := m.Text(ni)
	if isScreamingSnakeCase(name) {
		return nil
	}
	return []diag.Violation{ctx.Violation(m.At(ni).Span,
		fmt.Sprintf("constant name %q should be SCREAMING_SNAKE_CASE", name))}
}

func isPascalCase(name string) bool {
	for i, r := range name {
		if i == 0 {
			if !unicode.IsUpper(r) {
				return false
			}
			continue
		}
		if r == '_' {
			return false
		}
	}
	return name != ""
}

func isSnakeCase(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func isScreamingSnakeCase(name string) bool {
	if name == "" {
		return false
	}
	hasLetter := false
	for _, r := range name {
		switch {
		case unicode.IsUpper(r):
			hasLetter = true
		case unicode.IsDigit(r) || r == '_':
		default:
			return false
		}
	}
	return hasLetter
}
