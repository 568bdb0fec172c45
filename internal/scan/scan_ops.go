package scan

import (
	"sgstyle/internal/token"
)

// scanOperatorOrPunct matches greedily: three-byte sequences first, then
// two, then one.
func (sr *scanRun) scanOperatorOrPunct() token.Token {
	start := sr.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := sr.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: sr.text(sp)}
	}

	switch {
	case sr.try3('.', '.', '='):
		return emit(token.DotDotEq)
	case sr.try3('.', '.', '.'):
		return emit(token.DotDotDot)
	case sr.try3('<', '<', '='):
		return emit(token.ShlAssign)
	case sr.try3('>', '>', '='):
		return emit(token.ShrAssign)
	case sr.try2('.', '.'):
		return emit(token.DotDot)
	case sr.try2(':', ':'):
		return emit(token.ColonColon)
	case sr.try2(':', '='):
		return emit(token.ColonAssign)
	case sr.try2('-', '>'):
		return emit(token.Arrow)
	case sr.try2('=', '>'):
		return emit(token.FatArrow)
	case sr.try2('&', '&'):
		return emit(token.AndAnd)
	case sr.try2('|', '|'):
		return emit(token.OrOr)
	case sr.try2('=', '='):
		return emit(token.EqEq)
	case sr.try2('!', '='):
		return emit(token.BangEq)
	case sr.try2('<', '='):
		return emit(token.LtEq)
	case sr.try2('>', '='):
		return emit(token.GtEq)
	case sr.try2('<', '<'):
		return emit(token.Shl)
	case sr.try2('>', '>'):
		return emit(token.Shr)
	case sr.try2('?', '?'):
		return emit(token.QuestionQuestion)
	case sr.try2('+', '='):
		return emit(token.PlusAssign)
	case sr.try2('-', '='):
		return emit(token.MinusAssign)
	case sr.try2('*', '='):
		return emit(token.StarAssign)
	case sr.try2('/', '='):
		return emit(token.SlashAssign)
	case sr.try2('%', '='):
		return emit(token.PercentAssign)
	case sr.try2('&', '='):
		return emit(token.AmpAssign)
	case sr.try2('|', '='):
		return emit(token.PipeAssign)
	case sr.try2('^', '='):
		return emit(token.CaretAssign)
	}

	ch := sr.cursor.Bump()
	switch ch {
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '%':
		return emit(token.Percent)
	case '=':
		return emit(token.Assign)
	case '!':
		return emit(token.Bang)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '&':
		return emit(token.Amp)
	case '|':
		return emit(token.Pipe)
	case '^':
		return emit(token.Caret)
	case '?':
		return emit(token.Question)
	case ':':
		return emit(token.Colon)
	case ';':
		return emit(token.Semicolon)
	case ',':
		return emit(token.Comma)
	case '.':
		return emit(token.Dot)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case '@':
		return emit(token.At)
	case '_':
		return emit(token.Underscore)
	default:
		sp := sr.cursor.SpanFrom(start)
		return sr.fail(sp, "unknown character")
	}
}
