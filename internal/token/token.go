package token

import (
	"sgstyle/internal/source"
)

// Token represents a single source token with its exact location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsSignificant reports whether the token carries syntax rather than
// layout. Comments count as significant: several rules inspect them.
func (t Token) IsSignificant() bool {
	return !t.Kind.IsLayout()
}

// IsCode reports whether the token is neither layout nor a comment.
func (t Token) IsCode() bool {
	return !t.Kind.IsLayout() && !t.Kind.IsComment()
}

// IsLiteral reports whether the token is a numeric, boolean, string, or
// nothing literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
