// Package scan is the reference tokenizer bound to the style engine's
// parser seam. It produces the lossless Surge token stream the checker
// consumes: layout and comments are ordinary tokens, every byte of the
// file belongs to exactly one token, and the stream ends with EOF.
//
// The scanner is strict. Lexical damage (an unterminated string or block
// comment, a malformed number, a byte no token can start with) aborts the
// file with a ParseError instead of guessing, because rules must never run
// over a stream that misrepresents the source.
package scan

import (
	"sgstyle/internal/source"
	"sgstyle/internal/srcmodel"
	"sgstyle/internal/token"
)

// Scanner tokenizes Surge source files.
type Scanner struct{}

// New returns a Scanner. It is stateless and safe for concurrent use.
func New() *Scanner {
	return &Scanner{}
}

// Tokens implements srcmodel.Parser.
func (s *Scanner) Tokens(file *source.File) ([]token.Token, error) {
	run := &scanRun{
		file:   file,
		cursor: NewCursor(file),
	}
	return run.scanAll()
}

// scanRun carries the cursor state for one file.
type scanRun struct {
	file   *source.File
	cursor Cursor
	err    *srcmodel.ParseError
}

func (sr *scanRun) scanAll() ([]token.Token, error) {
	var out []token.Token
	for !sr.cursor.EOF() {
		tok := sr.next()
		if sr.err != nil {
			return nil, sr.err
		}
		out = append(out, tok)
	}
	out = append(out, token.Token{
		Kind: token.EOF,
		Span: sr.cursor.SpanFrom(sr.cursor.Mark()),
	})
	return out, nil
}

func (sr *scanRun) next() token.Token {
	ch := sr.cursor.Peek()

	switch {
	case ch == ' ' || ch == '\t':
		return sr.scanSpace()

	case ch == '\n':
		return sr.scanNewline()

	case ch == '/' && sr.isCommentStart():
		return sr.scanComment()

	case ch == 'f' && sr.isFStringStart():
		return sr.scanFString()

	case ch == '_':
		// A lone underscore is its own token; "_foo" is an identifier.
		b0, b1, ok := sr.cursor.Peek2()
		if ok && b0 == '_' && isIdentContinueByte(b1) {
			return sr.scanIdentOrKeyword()
		}
		return sr.scanOperatorOrPunct()

	case isIdentStartByte(ch):
		return sr.scanIdentOrKeyword()

	case ch >= utf8RuneSelf:
		return sr.scanIdentOrKeyword()

	case isDec(ch):
		return sr.scanNumber()

	case ch == '.' && sr.isNumberAfterDot():
		return sr.scanNumber()

	case ch == '"':
		return sr.scanString()

	default:
		return sr.scanOperatorOrPunct()
	}
}

// fail records the first lexical error; scanAll stops on it.
func (sr *scanRun) fail(span source.Span, format string, args ...any) token.Token {
	if sr.err == nil {
		sr.err = srcmodel.ParseErrorf(sr.file, span, format, args...)
	}
	return token.Token{Kind: token.Invalid, Span: span}
}

func (sr *scanRun) text(sp source.Span) string {
	return string(sr.file.Content[sp.Start:sp.End])
}
