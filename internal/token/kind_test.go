package token_test

import (
	"testing"

	"sgstyle/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{
		token.NothingLit, token.IntLit, token.FloatLit,
		token.StringLit, token.FStringLit, token.KwTrue, token.KwFalse,
	}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwLet, token.Plus, token.LParen, token.Space}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsKeyword(t *testing.T) {
	kws := []token.Kind{
		token.KwFn, token.KwLet, token.KwConst, token.KwPub, token.KwField,
		token.KwAsync, token.KwAwait, token.KwEnum, token.KwIs,
	}
	for _, k := range kws {
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should be keyword", k)
		}
	}
	non := []token.Kind{token.Ident, token.NothingLit, token.IntLit, token.Assign, token.EOF}
	for _, k := range non {
		if tok(k).IsKeyword() {
			t.Fatalf("%v must NOT be keyword", k)
		}
	}
}

func TestLayoutAndComments(t *testing.T) {
	if !token.Space.IsLayout() || !token.Newline.IsLayout() {
		t.Fatal("Space and Newline should be layout")
	}
	if token.LineComment.IsLayout() {
		t.Fatal("comments are not layout")
	}
	for _, k := range []token.Kind{token.LineComment, token.BlockComment, token.DocComment} {
		if !k.IsComment() {
			t.Fatalf("%v should be comment", k)
		}
	}

	if tok(token.Space).IsSignificant() {
		t.Fatal("layout must not be significant")
	}
	if !tok(token.LineComment).IsSignificant() {
		t.Fatal("comments are significant")
	}
	if tok(token.LineComment).IsCode() {
		t.Fatal("comments are not code")
	}
	if !tok(token.Ident).IsCode() {
		t.Fatal("identifiers are code")
	}
}

func TestDelimiters(t *testing.T) {
	pairs := map[token.Kind]token.Kind{
		token.LParen:   token.RParen,
		token.LBrace:   token.RBrace,
		token.LBracket: token.RBracket,
	}
	for open, close := range pairs {
		if !open.IsOpenDelim() {
			t.Fatalf("%v should open a pair", open)
		}
		if !close.IsCloseDelim() {
			t.Fatalf("%v should close a pair", close)
		}
		if got := open.CloseFor(); got != close {
			t.Fatalf("CloseFor(%v) = %v, want %v", open, got, close)
		}
	}
	if token.Plus.CloseFor() != token.Invalid {
		t.Fatal("CloseFor on a non-delimiter must be Invalid")
	}
}

func TestIsSpacedBinaryOp(t *testing.T) {
	spaced := []token.Kind{
		token.Assign, token.PlusAssign, token.ShrAssign, token.EqEq,
		token.BangEq, token.LtEq, token.GtEq, token.AndAnd, token.OrOr,
		token.QuestionQuestion, token.Arrow, token.FatArrow, token.Plus, token.Star,
	}
	for _, k := range spaced {
		if !k.IsSpacedBinaryOp() {
			t.Fatalf("%v should be a spaced binary op", k)
		}
	}

	// Angle brackets and shifts double as generics delimiters, so the
	// spacing rule leaves them alone.
	unspaced := []token.Kind{
		token.Lt, token.Gt, token.Shl, token.Shr, token.Amp, token.Pipe,
		token.Bang, token.Dot, token.DotDot, token.Question, token.Comma,
	}
	for _, k := range unspaced {
		if k.IsSpacedBinaryOp() {
			t.Fatalf("%v must NOT be a spaced binary op", k)
		}
	}
}

func TestEndsValue(t *testing.T) {
	ends := []token.Kind{
		token.Ident, token.IntLit, token.StringLit, token.KwTrue,
		token.RParen, token.RBracket, token.Question,
	}
	for _, k := range ends {
		if !k.EndsValue() {
			t.Fatalf("%v should end a value", k)
		}
	}
	non := []token.Kind{token.Assign, token.LParen, token.Comma, token.KwReturn}
	for _, k := range non {
		if k.EndsValue() {
			t.Fatalf("%v must NOT end a value", k)
		}
	}
}

func TestKindString(t *testing.T) {
	cases := map[token.Kind]string{
		token.Ident:            "Ident",
		token.KwFn:             "KwFn",
		token.QuestionQuestion: "QuestionQuestion",
		token.Space:            "Space",
		token.EOF:              "EOF",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("String(%d) = %q, want %q", uint8(k), got, want)
		}
	}
}
