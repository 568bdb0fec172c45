package rule

import "sgstyle/internal/diag"

// Meta is the static description of one rule. It never changes at runtime;
// configuration overrides produce an ActiveRule instead.
type Meta struct {
	// ID is the unique kebab-case rule name used in reports, configuration
	// and suppression comments.
	ID string
	// Title is a one-line description for rule listings.
	Title string
	// Category groups the rule for bulk configuration.
	Category diag.Category
	// DefaultSeverity applies unless configuration overrides it.
	DefaultSeverity diag.Severity
	// DefaultEnabled controls whether the rule runs without configuration.
	DefaultEnabled bool
	// CanFix marks rules that attach structured fixes to their violations.
	CanFix bool
	// ParamKeys lists the configuration parameters the rule understands.
	// Any other key under [rules.<id>.params] is a fatal config error.
	ParamKeys []string
}

func (m Meta) hasParam(key string) bool {
	for _, k := range m.ParamKeys {
		if k == key {
			return true
		}
	}
	return false
}
