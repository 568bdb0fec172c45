package diag

import "sgstyle/internal/source"

// New constructs a violation without a fix.
func New(rule string, sev Severity, cat Category, span source.Span, msg string) Violation {
	return Violation{
		Rule:     rule,
		Severity: sev,
		Category: cat,
		Span:     span,
		Message:  msg,
	}
}

// WithFix attaches a fix built from the given edits.
func (v Violation) WithFix(title string, edits ...Edit) Violation {
	v.Fix = &Fix{Title: title, Edits: edits}
	return v
}

// Replace is shorthand for a single-edit fix that swaps the text under span.
func Replace(span source.Span, oldText, newText string) Edit {
	return Edit{Span: span, NewText: newText, OldText: oldText}
}

// Insert is shorthand for a zero-width edit that inserts text at span.Start.
func Insert(at source.Span, text string) Edit {
	return Edit{Span: at.ZeroideToStart(), NewText: text}
}

// Delete is shorthand for an edit that removes the text under span.
func Delete(span source.Span, oldText string) Edit {
	return Edit{Span: span, OldText: oldText}
}
