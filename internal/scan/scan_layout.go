package scan

import (
	"sgstyle/internal/token"
)

// scanSpace coalesces a run of spaces and tabs into one Space token.
func (sr *scanRun) scanSpace() token.Token {
	start := sr.cursor.Mark()
	for {
		b := sr.cursor.Peek()
		if b != ' ' && b != '\t' {
			break
		}
		sr.cursor.Bump()
	}
	sp := sr.cursor.SpanFrom(start)
	return token.Token{Kind: token.Space, Span: sp, Text: sr.text(sp)}
}

// scanNewline emits one Newline token per '\n'. Runs are not coalesced:
// the structure rules count blank lines token by token.
func (sr *scanRun) scanNewline() token.Token {
	start := sr.cursor.Mark()
	sr.cursor.Bump()
	sp := sr.cursor.SpanFrom(start)
	return token.Token{Kind: token.Newline, Span: sp, Text: sr.text(sp)}
}

func (sr *scanRun) isCommentStart() bool {
	b0, b1, ok := sr.cursor.Peek2()
	return ok && b0 == '/' && (b1 == '/' || b1 == '*')
}

// scanComment handles "//", "///", and nested "/* */" forms. A line
// comment does not include its terminating newline.
func (sr *scanRun) scanComment() token.Token {
	start := sr.cursor.Mark()
	sr.cursor.Bump() // '/'

	switch sr.cursor.Peek() {
	case '/':
		sr.cursor.Bump()
		kind := token.LineComment
		if sr.cursor.Peek() == '/' {
			sr.cursor.Bump()
			kind = token.DocComment
		}
		for !sr.cursor.EOF() && sr.cursor.Peek() != '\n' {
			sr.cursor.Bump()
		}
		sp := sr.cursor.SpanFrom(start)
		return token.Token{Kind: kind, Span: sp, Text: sr.text(sp)}

	case '*':
		sr.cursor.Bump()
		depth := 1
		for !sr.cursor.EOF() && depth > 0 {
			if b0, b1, ok := sr.cursor.Peek2(); ok {
				if b0 == '/' && b1 == '*' {
					sr.cursor.Bump()
					sr.cursor.Bump()
					depth++
					continue
				}
				if b0 == '*' && b1 == '/' {
					sr.cursor.Bump()
					sr.cursor.Bump()
					depth--
					continue
				}
			}
			sr.cursor.Bump()
		}
		sp := sr.cursor.SpanFrom(start)
		if depth > 0 {
			return sr.fail(sp, "unterminated block comment")
		}
		return token.Token{Kind: token.BlockComment, Span: sp, Text: sr.text(sp)}

	default:
		// Not a comment after all; rewind and lex '/' as an operator.
		sr.cursor.Reset(start)
		return sr.scanOperatorOrPunct()
	}
}
