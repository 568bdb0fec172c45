package rules

import (
	"sgstyle/internal/rule"
)

// Builtins returns one instance of every built-in rule. The slice is
// ordered by rule id for readability; the registry re-sorts on load
// anyway.
func Builtins() []rule.Rule {
	return []rule.Rule{
		BlankLines{},
		BracePlacement{},
		ColonSpacing{},
		CommaSpacing{},
		ConstantNaming{},
		FinalNewline{},
		FunctionNaming{},
		IndentStyle{},
		KeywordSpacing{},
		LineLength{},
		OperatorSpacing{},
		OptionSugar{},
		SemicolonSpacing{},
		TrailingWhitespace{},
		TypeNaming{},
		UnicodeNFC{},
		VisibilityFirst{},
	}
}
