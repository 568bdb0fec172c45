package scan

import (
	"sgstyle/internal/token"
)

// scanNumber accepts 0, 123, 0b..., 0o..., 0x..., 1.0, 1e-3, 1.0e+10 and
// the leading-dot form ".5". Underscores are allowed between digits and
// validated only loosely. Type suffixes are not consumed; "123u8" lexes
// as IntLit followed by Ident.
func (sr *scanRun) scanNumber() token.Token {
	start := sr.cursor.Mark()
	kind := token.IntLit

	// Leading dot means ".digits".
	if sr.cursor.Peek() == '.' {
		sr.cursor.Bump()
		if !isDec(sr.cursor.Peek()) {
			sp := sr.cursor.SpanFrom(start)
			return sr.fail(sp, "expected digit after '.'")
		}
		kind = token.FloatLit
		for isDec(sr.cursor.Peek()) || sr.cursor.Peek() == '_' {
			sr.cursor.Bump()
		}
		return sr.finishNumberExponent(start, kind)
	}

	// Leading zero may select a base.
	if sr.cursor.Peek() == '0' {
		sr.cursor.Bump()
		switch sr.cursor.Peek() {
		case 'b', 'B':
			sr.cursor.Bump()
			for {
				b := sr.cursor.Peek()
				if b == '0' || b == '1' || b == '_' {
					sr.cursor.Bump()
				} else {
					break
				}
			}
			return sr.emitNumber(start, kind)
		case 'o', 'O':
			sr.cursor.Bump()
			for {
				b := sr.cursor.Peek()
				if (b >= '0' && b <= '7') || b == '_' {
					sr.cursor.Bump()
				} else {
					break
				}
			}
			return sr.emitNumber(start, kind)
		case 'x', 'X':
			sr.cursor.Bump()
			for isHex(sr.cursor.Peek()) || sr.cursor.Peek() == '_' {
				sr.cursor.Bump()
			}
			return sr.emitNumber(start, kind)
		}
	}

	for isDec(sr.cursor.Peek()) || sr.cursor.Peek() == '_' {
		sr.cursor.Bump()
	}

	// Fractional part, unless the dot starts a range operator.
	if sr.cursor.Peek() == '.' {
		b0, b1, ok := sr.cursor.Peek2()
		if !(ok && b0 == '.' && (b1 == '.' || b1 == '=')) {
			sr.cursor.Bump()
			kind = token.FloatLit
			for isDec(sr.cursor.Peek()) || sr.cursor.Peek() == '_' {
				sr.cursor.Bump()
			}
		}
	}

	return sr.finishNumberExponent(start, kind)
}

func (sr *scanRun) finishNumberExponent(start Mark, kind token.Kind) token.Token {
	if sr.cursor.Peek() == 'e' || sr.cursor.Peek() == 'E' {
		kind = token.FloatLit
		sr.cursor.Bump()
		if sr.cursor.Peek() == '+' || sr.cursor.Peek() == '-' {
			sr.cursor.Bump()
		}
		if !isDec(sr.cursor.Peek()) {
			sp := sr.cursor.SpanFrom(start)
			return sr.fail(sp, "expected digit after exponent")
		}
		for isDec(sr.cursor.Peek()) || sr.cursor.Peek() == '_' {
			sr.cursor.Bump()
		}
	}
	return sr.emitNumber(start, kind)
}

func (sr *scanRun) emitNumber(start Mark, kind token.Kind) token.Token {
	sp := sr.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: sr.text(sp)}
}
