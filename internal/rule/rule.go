// Package rule defines the rule contract and the registry that resolves
// built-in rules against user configuration.
//
// A rule is pure per file: it sees one source model revision, carries no
// state between files or passes, and must not depend on the output of any
// other rule. That independence is what lets the checker evaluate rules in
// any order, or files in parallel, without changing the violation set.
package rule

import (
	"sgstyle/internal/diag"
	"sgstyle/internal/source"
	"sgstyle/internal/srcmodel"
	"sgstyle/internal/token"
)

// Rule is the surface every rule implements. A concrete rule additionally
// implements FileRule, TokenRule or both; Load rejects rules that
// implement neither.
type Rule interface {
	Meta() Meta
}

// FileRule runs once per file revision.
type FileRule interface {
	Rule
	Check(ctx *Context) []diag.Violation
}

// TokenRule runs at every token whose kind appears in Kinds. The checker
// drives all token rules in a single traversal.
type TokenRule interface {
	Rule
	Kinds() []token.Kind
	CheckToken(ctx *Context, i int) []diag.Violation
}

// Context is what a rule sees while checking one file revision. The checker
// builds one per active rule per pass.
type Context struct {
	Model *srcmodel.Model
	File  *source.File

	Params Params

	// LineLength and IndentWidth mirror the global configuration knobs so
	// rules do not depend on the config package.
	LineLength  int
	IndentWidth int

	ruleID   string
	category diag.Category
	severity diag.Severity
}

// NewContext binds a context to an active rule. Exposed for rule tests.
func NewContext(m *srcmodel.Model, ar ActiveRule, lineLength, indentWidth int) *Context {
	return &Context{
		Model:       m,
		File:        m.File,
		Params:      ar.Params,
		LineLength:  lineLength,
		IndentWidth: indentWidth,
		ruleID:      ar.Meta.ID,
		category:    ar.Meta.Category,
		severity:    ar.Severity,
	}
}

// Violation builds a violation carrying the rule's id, category and
// effective severity.
func (c *Context) Violation(span source.Span, msg string) diag.Violation {
	return diag.New(c.ruleID, c.severity, c.category, span, msg)
}

// Params carries the per-rule configuration parameters. Accessors fall back
// to the given default when the key is absent or has an unexpected type.
type Params map[string]any

func (p Params) String(key, def string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return def
}

func (p Params) Int(key string, def int) int {
	switch v := p[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	}
	return def
}

func (p Params) Bool(key string, def bool) bool {
	if v, ok := p[key].(bool); ok {
		return v
	}
	return def
}
