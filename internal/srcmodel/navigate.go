package srcmodel

import (
	"sgstyle/internal/token"
)

// PrevCode returns the nearest index before i holding a code token
// (neither layout nor comment), or -1.
func (m *Model) PrevCode(i int) int {
	for j := i - 1; j >= 0; j-- {
		if m.tokens[j].IsCode() {
			return j
		}
	}
	return -1
}

// NextCode returns the nearest index after i holding a code token, or -1.
// EOF does not count as code.
func (m *Model) NextCode(i int) int {
	for j := i + 1; j < len(m.tokens); j++ {
		if m.tokens[j].Kind == token.EOF {
			return -1
		}
		if m.tokens[j].IsCode() {
			return j
		}
	}
	return -1
}

// PrevSignificant returns the nearest index before i that is not layout.
// Comments are significant.
func (m *Model) PrevSignificant(i int) int {
	for j := i - 1; j >= 0; j-- {
		if m.tokens[j].IsSignificant() {
			return j
		}
	}
	return -1
}

// NextSignificant returns the nearest index after i that is not layout,
// or -1 at the end of the stream.
func (m *Model) NextSignificant(i int) int {
	for j := i + 1; j < len(m.tokens); j++ {
		if m.tokens[j].Kind == token.EOF {
			return -1
		}
		if m.tokens[j].IsSignificant() {
			return j
		}
	}
	return -1
}

// FirstOnLine reports whether token i is the first significant token on
// its physical line, with only whitespace before it. A comment earlier on
// the line makes this false.
func (m *Model) FirstOnLine(i int) bool {
	for j := i - 1; j >= 0; j-- {
		switch m.tokens[j].Kind {
		case token.Space:
			continue
		case token.Newline:
			return true
		default:
			return false
		}
	}
	return true
}

// LastOnLine reports whether nothing but whitespace follows token i on
// its physical line.
func (m *Model) LastOnLine(i int) bool {
	for j := i + 1; j < len(m.tokens); j++ {
		switch m.tokens[j].Kind {
		case token.Space:
			continue
		case token.Newline, token.EOF:
			return true
		default:
			return false
		}
	}
	return true
}
