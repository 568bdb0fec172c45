package srcmodel_test

import (
	"errors"
	"strings"
	"testing"

	"sgstyle/internal/scan"
	"sgstyle/internal/source"
	"sgstyle/internal/srcmodel"
	"sgstyle/internal/token"
)

func buildModel(t *testing.T, content string) *srcmodel.Model {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.sg", []byte(content)))
	toks, err := scan.New().Tokens(file)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	m, err := srcmodel.Build(file, toks, 0)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return m
}

func buildError(t *testing.T, content string) *srcmodel.ParseError {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.sg", []byte(content)))
	toks, err := scan.New().Tokens(file)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	_, err = srcmodel.Build(file, toks, 0)
	if err == nil {
		t.Fatalf("expected Build to fail for %q", content)
	}
	var perr *srcmodel.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	return perr
}

func indexOf(t *testing.T, m *srcmodel.Model, text string) int {
	t.Helper()
	for i := 0; i < m.Len(); i++ {
		if m.Text(i) == text {
			return i
		}
	}
	t.Fatalf("token %q not found", text)
	return -1
}

func TestBuildMatchesDelimiters(t *testing.T) {
	m := buildModel(t, "fn main() { call([1, 2]) }\n")

	lbrace := indexOf(t, m, "{")
	rbrace := indexOf(t, m, "}")
	if m.MatchDelim(lbrace) != rbrace {
		t.Errorf("expected brace pair %d<->%d, got %d", lbrace, rbrace, m.MatchDelim(lbrace))
	}
	if m.MatchDelim(rbrace) != lbrace {
		t.Errorf("closing brace should point back to %d, got %d", lbrace, m.MatchDelim(rbrace))
	}

	lbracket := indexOf(t, m, "[")
	rbracket := indexOf(t, m, "]")
	if m.MatchDelim(lbracket) != rbracket {
		t.Errorf("bracket pair broken: %d -> %d", lbracket, m.MatchDelim(lbracket))
	}

	if m.MatchDelim(indexOf(t, m, "main")) != -1 {
		t.Error("non-delimiter must have no partner")
	}
}

func TestBuildParents(t *testing.T) {
	m := buildModel(t, "fn f() { g(x) }\n")

	fn := indexOf(t, m, "fn")
	if m.Parent(fn) != -1 {
		t.Errorf("top-level token should have parent -1, got %d", m.Parent(fn))
	}

	lbrace := indexOf(t, m, "{")
	g := indexOf(t, m, "g")
	if m.Parent(g) != lbrace {
		t.Errorf("expected g inside brace %d, got %d", lbrace, m.Parent(g))
	}

	x := indexOf(t, m, "x")
	// x sits inside g's parens, which sit inside the braces.
	xParen := m.Parent(x)
	if xParen == -1 || m.At(xParen).Kind != token.LParen {
		t.Fatalf("expected x enclosed by a paren, got %d", xParen)
	}
	if m.Parent(xParen) != lbrace {
		t.Errorf("paren should be enclosed by brace %d, got %d", lbrace, m.Parent(xParen))
	}

	rbrace := indexOf(t, m, "}")
	if m.Parent(rbrace) != -1 {
		t.Errorf("closing brace reports the outer scope, got %d", m.Parent(rbrace))
	}
}

func TestBuildRejectsUnbalanced(t *testing.T) {
	cases := []struct {
		source  string
		wantMsg string
	}{
		{"fn f() {\n", "unclosed"},
		{"fn f() }\n", "unmatched"},
		{"fn f( ]\n", "mismatched delimiter"},
	}
	for _, tc := range cases {
		perr := buildError(t, tc.source)
		if !strings.Contains(perr.Msg, tc.wantMsg) {
			t.Errorf("source %q: expected %q in message, got %q", tc.source, tc.wantMsg, perr.Msg)
		}
		if perr.Path != "test.sg" {
			t.Errorf("source %q: expected path test.sg, got %q", tc.source, perr.Path)
		}
	}
}

func TestTokenAt(t *testing.T) {
	m := buildModel(t, "let x = 5\n")

	// Offset 6 is the '='.
	i := m.TokenAt(6)
	if i == -1 || m.At(i).Kind != token.Assign {
		t.Fatalf("TokenAt(6) = %d (%v)", i, m.At(i).Kind)
	}

	// Offset 0 is 'let'.
	i = m.TokenAt(0)
	if i == -1 || m.At(i).Kind != token.KwLet {
		t.Fatalf("TokenAt(0) = %d", i)
	}

	// Past the end of content.
	if i := m.TokenAt(100); i != -1 {
		t.Fatalf("TokenAt(100) = %d, want -1", i)
	}
}

func TestNavigation(t *testing.T) {
	m := buildModel(t, "let x = /* note */ 5\n")

	assign := indexOf(t, m, "=")

	prev := m.PrevCode(assign)
	if prev == -1 || m.Text(prev) != "x" {
		t.Fatalf("PrevCode before '=' should be x, got %q", m.Text(prev))
	}

	// NextCode skips both layout and the block comment.
	next := m.NextCode(assign)
	if next == -1 || m.Text(next) != "5" {
		t.Fatalf("NextCode after '=' should be 5, got %q", m.Text(next))
	}

	// NextSignificant stops at the comment.
	sig := m.NextSignificant(assign)
	if sig == -1 || m.At(sig).Kind != token.BlockComment {
		t.Fatalf("NextSignificant after '=' should be the comment, got %v", m.At(sig).Kind)
	}
}

func TestLinePredicates(t *testing.T) {
	m := buildModel(t, "fn f()\n{\n    body()\n}\n")

	lbrace := indexOf(t, m, "{")
	if !m.FirstOnLine(lbrace) {
		t.Error("brace on its own line must be FirstOnLine")
	}

	fn := indexOf(t, m, "fn")
	if !m.FirstOnLine(fn) {
		t.Error("first token of the file must be FirstOnLine")
	}

	f := indexOf(t, m, "f")
	if m.FirstOnLine(f) {
		t.Error("f follows fn on the same line")
	}

	body := indexOf(t, m, "body")
	if !m.FirstOnLine(body) {
		t.Error("indented first token must be FirstOnLine")
	}

	rparen := indexOf(t, m, ")")
	if !m.LastOnLine(rparen) {
		t.Error("closing paren ends its line")
	}
	if m.LastOnLine(f) {
		t.Error("f is not last on its line")
	}
}

func TestRevisionCarried(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.sg", []byte("x\n")))
	toks, err := scan.New().Tokens(file)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	m, err := srcmodel.Build(file, toks, 3)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if m.Revision != 3 {
		t.Errorf("expected revision 3, got %d", m.Revision)
	}
}
