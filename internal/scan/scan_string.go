package scan

import (
	"sgstyle/internal/token"
)

// scanString scans a double-quoted literal. Escapes are consumed pairwise
// without deep validation; a raw newline or EOF inside the literal is a
// lexical error.
func (sr *scanRun) scanString() token.Token {
	start := sr.cursor.Mark()
	sr.cursor.Bump() // opening '"'
	return sr.finishQuoted(start, token.StringLit)
}

func (sr *scanRun) isFStringStart() bool {
	b0, b1, ok := sr.cursor.Peek2()
	return ok && b0 == 'f' && b1 == '"'
}

// scanFString scans f"..." as one token. Interpolation braces inside stay
// uninterpreted, which keeps them out of the delimiter matcher.
func (sr *scanRun) scanFString() token.Token {
	start := sr.cursor.Mark()
	sr.cursor.Bump() // 'f'
	sr.cursor.Bump() // opening '"'
	return sr.finishQuoted(start, token.FStringLit)
}

func (sr *scanRun) finishQuoted(start Mark, kind token.Kind) token.Token {
	for !sr.cursor.EOF() {
		b := sr.cursor.Peek()
		if b == '"' {
			sr.cursor.Bump()
			sp := sr.cursor.SpanFrom(start)
			return token.Token{Kind: kind, Span: sp, Text: sr.text(sp)}
		}
		if b == '\\' {
			sr.cursor.Bump()
			if sr.cursor.EOF() {
				break
			}
			sr.cursor.Bump()
			continue
		}
		if b == '\n' {
			sp := sr.cursor.SpanFrom(start)
			return sr.fail(sp, "newline in string literal")
		}
		sr.cursor.Bump()
	}
	sp := sr.cursor.SpanFrom(start)
	return sr.fail(sp, "unterminated string literal")
}
