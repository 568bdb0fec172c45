package scan

import (
	"sgstyle/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword scans an identifier and classifies it through
// LookupKeyword. Keywords are lowercase only; Token.Text is the exact
// source slice.
func (sr *scanRun) scanIdentOrKeyword() token.Token {
	start := sr.cursor.Mark()

	r, sz := sr.peekRune()
	if sz == 0 {
		sp := sr.cursor.SpanFrom(start)
		return sr.fail(sp, "invalid byte in source")
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return sr.scanOperatorOrPunct()
		}
		sr.cursor.Bump()
	} else {
		if !isIdentStartRune(r) {
			return sr.scanOperatorOrPunct()
		}
		sr.bumpRune()
	}

	// One loop for both ASCII and Unicode continuation, so identifiers
	// that mix the two stay whole.
	for {
		b := sr.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			sr.cursor.Bump()
			continue
		}
		r2, sz2 := sr.peekRune()
		if sz2 == 0 || !isIdentContinueRune(r2) {
			break
		}
		sr.bumpRune()
	}

	sp := sr.cursor.SpanFrom(start)
	text := sr.text(sp)

	if text == "_" {
		return token.Token{Kind: token.Underscore, Span: sp, Text: text}
	}

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
