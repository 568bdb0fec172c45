package scan

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"
)

// peekRune decodes the rune at the cursor without advancing.
func (sr *scanRun) peekRune() (r rune, size int) {
	if sr.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := sr.cursor.Peek()
	if b < utf8.RuneSelf {
		return rune(b), 1
	}
	r, sz := utf8.DecodeRune(sr.file.Content[sr.cursor.Off:])
	return r, sz
}

// bumpRune advances the cursor by one rune.
func (sr *scanRun) bumpRune() {
	_, sz := sr.peekRune()
	if sz == 0 {
		return
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("rune size overflow: %w", err))
	}
	sr.cursor.Off += usz
}

// ASCII fast path for identifiers; Unicode goes through the rune variants.
func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinueRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

// Is the current dot the start of a ".5" style float?
func (sr *scanRun) isNumberAfterDot() bool {
	b0, b1, ok := sr.cursor.Peek2()
	return ok && b0 == '.' && isDec(b1)
}

// try2/try3 consume a fixed byte sequence when it matches.
func (sr *scanRun) try3(a, b, c byte) bool {
	b0, b1, b2, ok := sr.cursor.Peek3()
	if !ok || b0 != a || b1 != b || b2 != c {
		return false
	}
	sr.cursor.Bump()
	sr.cursor.Bump()
	sr.cursor.Bump()
	return true
}

func (sr *scanRun) try2(a, b byte) bool {
	b0, b1, ok := sr.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	sr.cursor.Bump()
	sr.cursor.Bump()
	return true
}
