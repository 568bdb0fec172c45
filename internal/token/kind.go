package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Space represents a run of spaces and tabs.
	Space
	// Newline represents a single '\n'.
	Newline
	// LineComment represents a '//' comment without its newline.
	LineComment
	// BlockComment represents a '/* */' comment, nesting included.
	BlockComment
	// DocComment represents a '///' documentation comment.
	DocComment

	// Ident represents an identifier token.
	Ident

	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwMut represents the 'mut' keyword.
	KwMut // mut
	// KwOwn represents the 'own' keyword.
	KwOwn // own
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwType represents the 'type' keyword.
	KwType // type
	// KwContract represents the 'contract' keyword.
	KwContract // contract
	// KwTag represents the 'tag' keyword.
	KwTag // tag
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwExtern represents the 'extern' keyword.
	KwExtern // extern
	// KwPub represents the 'pub' keyword.
	KwPub // pub
	// KwAsync represents the 'async' keyword.
	KwAsync // async
	// KwAwait represents the 'await' keyword.
	KwAwait // await
	// KwBlocking represents the 'blocking' keyword.
	KwBlocking // blocking
	// KwCompare represents the 'compare' keyword.
	KwCompare // compare
	// KwFinally represents the 'finally' keyword.
	KwFinally // finally
	// KwChannel represents the 'channel' keyword.
	KwChannel // channel
	// KwSpawn represents the 'spawn' keyword.
	KwSpawn // spawn
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwSignal represents the 'signal' keyword.
	KwSignal // signal
	// KwParallel represents the 'parallel' keyword.
	KwParallel // parallel
	// KwMap represents the 'map' keyword.
	KwMap // map
	// KwReduce represents the 'reduce' keyword.
	KwReduce // reduce
	// KwWith represents the 'with' keyword.
	KwWith // with
	// KwMacro represents the 'macro' keyword.
	KwMacro // macro
	// KwPragma represents the 'pragma' keyword.
	KwPragma // pragma
	// KwTo represents the 'to' keyword.
	KwTo // to
	// KwHeir represents the 'heir' keyword.
	KwHeir // heir
	// KwIs represents the 'is' keyword.
	KwIs // is
	// KwField represents the 'field' keyword.
	KwField // field

	// NothingLit represents the nothing literal token.
	NothingLit
	// IntLit represents the integer literal token.
	IntLit
	// FloatLit represents the float literal token.
	FloatLit
	// StringLit represents the string literal token.
	StringLit
	// FStringLit represents the formatted string literal token.
	FStringLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// Percent represents the percent operator token.
	Percent // %
	// Assign represents the assign operator token.
	Assign // =
	// PlusAssign represents the plus assign operator token.
	PlusAssign // +=
	// MinusAssign represents the minus assign operator token.
	MinusAssign // -=
	// StarAssign represents the star assign operator token.
	StarAssign // *=
	// SlashAssign represents the slash assign operator token.
	SlashAssign // /=
	// PercentAssign represents the percent assign operator token.
	PercentAssign // %=
	// AmpAssign represents the amp assign operator token.
	AmpAssign // &=
	// PipeAssign represents the pipe assign operator token.
	PipeAssign // |=
	// CaretAssign represents the caret assign operator token.
	CaretAssign // ^=
	// ShlAssign represents the shl assign operator token.
	ShlAssign // <<=
	// ShrAssign represents the shr assign operator token.
	ShrAssign // >>=
	// EqEq represents the eq eq operator token.
	EqEq // ==
	// Bang represents the bang operator token.
	Bang // !
	// BangEq represents the bang eq operator token.
	BangEq // !=
	// Lt represents the lt operator token.
	Lt // <
	// LtEq represents the lt eq operator token.
	LtEq // <=
	// Gt represents the gt operator token.
	Gt // >
	// GtEq represents the gt eq operator token.
	GtEq // >=
	// Shl represents the shl operator token.
	Shl // <<
	// Shr represents the shr operator token.
	Shr // >>
	// Amp represents the amp operator token.
	Amp // &
	// Pipe represents the pipe operator token.
	Pipe // |
	// Caret represents the caret operator token.
	Caret // ^
	// AndAnd represents the and and operator token.
	AndAnd // &&
	// OrOr represents the or or operator token.
	OrOr // ||
	// Question represents the question operator token.
	Question // ?
	// QuestionQuestion represents the question question operator token.
	QuestionQuestion // ??
	// Colon represents the colon operator token.
	Colon // :
	// ColonColon represents the colon colon operator token.
	ColonColon // ::
	// ColonAssign represents the colon assign operator token.
	ColonAssign // :=
	// Semicolon represents the semicolon operator token.
	Semicolon // ;
	// Comma represents the comma operator token.
	Comma // ,
	// Dot represents the dot operator token.
	Dot // .
	// DotDot represents the dot dot operator token.
	DotDot // ..
	// DotDotEq represents the dot dot eq operator token.
	DotDotEq // ..=
	// DotDotDot represents the vararg ellipsis token.
	DotDotDot // ...
	// Arrow represents the arrow operator token.
	Arrow // ->
	// FatArrow represents the fat arrow operator token.
	FatArrow // =>
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// At represents the at token.
	At // @
	// Underscore represents the underscore token.
	Underscore // _
)

var kindNames = map[Kind]string{
	Invalid:          "Invalid",
	EOF:              "EOF",
	Space:            "Space",
	Newline:          "Newline",
	LineComment:      "LineComment",
	BlockComment:     "BlockComment",
	DocComment:       "DocComment",
	Ident:            "Ident",
	KwFn:             "KwFn",
	KwLet:            "KwLet",
	KwConst:          "KwConst",
	KwMut:            "KwMut",
	KwOwn:            "KwOwn",
	KwIf:             "KwIf",
	KwElse:           "KwElse",
	KwWhile:          "KwWhile",
	KwFor:            "KwFor",
	KwIn:             "KwIn",
	KwBreak:          "KwBreak",
	KwContinue:       "KwContinue",
	KwReturn:         "KwReturn",
	KwImport:         "KwImport",
	KwAs:             "KwAs",
	KwType:           "KwType",
	KwContract:       "KwContract",
	KwTag:            "KwTag",
	KwEnum:           "KwEnum",
	KwExtern:         "KwExtern",
	KwPub:            "KwPub",
	KwAsync:          "KwAsync",
	KwAwait:          "KwAwait",
	KwBlocking:       "KwBlocking",
	KwCompare:        "KwCompare",
	KwFinally:        "KwFinally",
	KwChannel:        "KwChannel",
	KwSpawn:          "KwSpawn",
	KwTrue:           "KwTrue",
	KwFalse:          "KwFalse",
	KwSignal:         "KwSignal",
	KwParallel:       "KwParallel",
	KwMap:            "KwMap",
	KwReduce:         "KwReduce",
	KwWith:           "KwWith",
	KwMacro:          "KwMacro",
	KwPragma:         "KwPragma",
	KwTo:             "KwTo",
	KwHeir:           "KwHeir",
	KwIs:             "KwIs",
	KwField:          "KwField",
	NothingLit:       "NothingLit",
	IntLit:           "IntLit",
	FloatLit:         "FloatLit",
	StringLit:        "StringLit",
	FStringLit:       "FStringLit",
	Plus:             "Plus",
	Minus:            "Minus",
	Star:             "Star",
	Slash:            "Slash",
	Percent:          "Percent",
	Assign:           "Assign",
	PlusAssign:       "PlusAssign",
	MinusAssign:      "MinusAssign",
	StarAssign:       "StarAssign",
	SlashAssign:      "SlashAssign",
	PercentAssign:    "PercentAssign",
	AmpAssign:        "AmpAssign",
	PipeAssign:       "PipeAssign",
	CaretAssign:      "CaretAssign",
	ShlAssign:        "ShlAssign",
	ShrAssign:        "ShrAssign",
	EqEq:             "EqEq",
	Bang:             "Bang",
	BangEq:           "BangEq",
	Lt:               "Lt",
	LtEq:             "LtEq",
	Gt:               "Gt",
	GtEq:             "GtEq",
	Shl:              "Shl",
	Shr:              "Shr",
	Amp:              "Amp",
	Pipe:             "Pipe",
	Caret:            "Caret",
	AndAnd:           "AndAnd",
	OrOr:             "OrOr",
	Question:         "Question",
	QuestionQuestion: "QuestionQuestion",
	Colon:            "Colon",
	ColonColon:       "ColonColon",
	ColonAssign:      "ColonAssign",
	Semicolon:        "Semicolon",
	Comma:            "Comma",
	Dot:              "Dot",
	DotDot:           "DotDot",
	DotDotEq:         "DotDotEq",
	DotDotDot:        "DotDotDot",
	Arrow:            "Arrow",
	FatArrow:         "FatArrow",
	LParen:           "LParen",
	RParen:           "RParen",
	LBrace:           "LBrace",
	RBrace:           "RBrace",
	LBracket:         "LBracket",
	RBracket:         "RBracket",
	At:               "At",
	Underscore:       "Underscore",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(?)"
}

// IsLayout reports whether the token kind is whitespace or a newline.
func (k Kind) IsLayout() bool {
	return k == Space || k == Newline
}

// IsComment reports whether the token kind is any comment form.
func (k Kind) IsComment() bool {
	return k == LineComment || k == BlockComment || k == DocComment
}

// IsKeyword reports whether the token kind is a language keyword.
func (k Kind) IsKeyword() bool {
	return k >= KwFn && k <= KwField
}

// IsLiteral reports whether the token kind is a literal.
func (k Kind) IsLiteral() bool {
	switch k {
	case NothingLit, IntLit, FloatLit, StringLit, FStringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsOperator reports whether the token kind is punctuation or an operator.
func (k Kind) IsOperator() bool {
	return k >= Plus && k <= Underscore
}

// IsOpenDelim reports whether the token kind opens a delimiter pair.
func (k Kind) IsOpenDelim() bool {
	return k == LParen || k == LBrace || k == LBracket
}

// IsCloseDelim reports whether the token kind closes a delimiter pair.
func (k Kind) IsCloseDelim() bool {
	return k == RParen || k == RBrace || k == RBracket
}

// CloseFor returns the closing kind matching an opening delimiter.
func (k Kind) CloseFor() Kind {
	switch k {
	case LParen:
		return RParen
	case LBrace:
		return RBrace
	case LBracket:
		return RBracket
	default:
		return Invalid
	}
}

// IsSpacedBinaryOp reports whether the kind is a binary operator that style
// wants surrounded by single spaces. Lt/Gt and the shift kinds stay out:
// without a grammar they are indistinguishable from generics brackets.
// Plus through Percent are included; callers exclude unary positions.
func (k Kind) IsSpacedBinaryOp() bool {
	switch k {
	case Plus, Minus, Star, Slash, Percent,
		Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign,
		PercentAssign, AmpAssign, PipeAssign, CaretAssign, ShlAssign, ShrAssign,
		EqEq, BangEq, LtEq, GtEq, AndAnd, OrOr,
		QuestionQuestion, ColonAssign, Arrow, FatArrow:
		return true
	default:
		return false
	}
}

// IsDeclModifier reports whether the kind is a declaration modifier keyword.
func (k Kind) IsDeclModifier() bool {
	switch k {
	case KwPub, KwAsync, KwExtern, KwBlocking:
		return true
	default:
		return false
	}
}

// EndsValue reports whether a token of this kind can terminate an
// expression. The spacing rules use it to tell binary operators from
// unary ones by inspecting the previous significant token.
func (k Kind) EndsValue() bool {
	switch k {
	case Ident, NothingLit, IntLit, FloatLit, StringLit, FStringLit,
		KwTrue, KwFalse, RParen, RBracket, RBrace, Question, Underscore:
		return true
	default:
		return false
	}
}
