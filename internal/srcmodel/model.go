// Package srcmodel builds the per-file token view the rule engine works
// on. A Model wraps one revision of one file with its lossless token
// stream, an index from byte offsets to tokens, and matched delimiter
// pairs. Models are immutable; a fix pass produces a new revision and a
// freshly built Model rather than mutating the old one.
package srcmodel

import (
	"sort"

	"sgstyle/internal/source"
	"sgstyle/internal/token"
)

// Model is the checkable view of one file revision.
type Model struct {
	File     *source.File
	Revision int

	tokens []token.Token
	parent []int // enclosing open-delimiter index per token, -1 at top level
	match  []int // open<->close partner index, -1 for non-delimiters
}

// Build indexes the token stream and matches delimiter pairs. Unbalanced
// or mismatched delimiters and a malformed stream yield a ParseError; no
// Model is produced for such files.
func Build(file *source.File, tokens []token.Token, revision int) (*Model, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		return nil, ParseErrorf(file, source.Span{File: file.ID}, "truncated token stream")
	}

	m := &Model{
		File:     file,
		Revision: revision,
		tokens:   tokens,
		parent:   make([]int, len(tokens)),
		match:    make([]int, len(tokens)),
	}

	var stack []int
	for i, tok := range tokens {
		m.match[i] = -1

		switch {
		case tok.Kind.IsOpenDelim():
			if len(stack) > 0 {
				m.parent[i] = stack[len(stack)-1]
			} else {
				m.parent[i] = -1
			}
			stack = append(stack, i)

		case tok.Kind.IsCloseDelim():
			if len(stack) == 0 {
				return nil, ParseErrorf(file, tok.Span, "unmatched %q", tok.Text)
			}
			open := stack[len(stack)-1]
			if tokens[open].Kind.CloseFor() != tok.Kind {
				return nil, ParseErrorf(file, tok.Span,
					"mismatched delimiter: %q closed by %q", tokens[open].Text, tok.Text)
			}
			stack = stack[:len(stack)-1]
			m.match[open] = i
			m.match[i] = open
			if len(stack) > 0 {
				m.parent[i] = stack[len(stack)-1]
			} else {
				m.parent[i] = -1
			}

		default:
			if len(stack) > 0 {
				m.parent[i] = stack[len(stack)-1]
			} else {
				m.parent[i] = -1
			}
		}
	}

	if len(stack) > 0 {
		open := stack[len(stack)-1]
		return nil, ParseErrorf(file, tokens[open].Span, "unclosed %q", tokens[open].Text)
	}

	return m, nil
}

// Len returns the number of tokens, EOF included.
func (m *Model) Len() int {
	return len(m.tokens)
}

// At returns the token at index i.
func (m *Model) At(i int) token.Token {
	return m.tokens[i]
}

// Tokens returns the underlying stream. Callers must not mutate it.
func (m *Model) Tokens() []token.Token {
	return m.tokens
}

// Text returns the source text of the token at index i.
func (m *Model) Text(i int) string {
	return m.tokens[i].Text
}

// Parent returns the index of the nearest enclosing open delimiter for
// token i, or -1 at top level. A closing delimiter reports the scope that
// contains its pair.
func (m *Model) Parent(i int) int {
	return m.parent[i]
}

// MatchDelim returns the partner index for a delimiter token, -1 otherwise.
func (m *Model) MatchDelim(i int) int {
	return m.match[i]
}

// TokenAt returns the index of the token whose span contains the byte
// offset, or -1 when the offset falls outside the stream.
func (m *Model) TokenAt(off uint32) int {
	n := len(m.tokens)
	i := sort.Search(n, func(i int) bool {
		return m.tokens[i].Span.End > off
	})
	if i >= n {
		return -1
	}
	if m.tokens[i].Span.Contains(off) {
		return i
	}
	return -1
}
