// Package diag defines the violation model shared by the checker, the fix
// engine and the reporters.
//
// # Data model
//
// Violation is the span-level finding a rule produces. It carries:
//
//   - Rule – the kebab-case rule id.
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Category – coarse rule classification (naming, spacing, structure,
//     idiom, text) plus the reserved tool category for engine failures.
//   - Message – human oriented text; keep it short and actionable.
//   - Span – the canonical source.Span pointing to the issue.
//   - Fix – optional structured correction.
//
// Fix is data-only: a title plus ordered, non-overlapping Edits. Edit.OldText
// acts as an optional guard that the fix engine validates before applying, so
// a fix computed against one snapshot is never applied to another.
//
// Record is the resolved, serialisable form of a finding: path, line and
// column are computed once at creation time, so records stay valid after the
// file content they were found in has been rewritten by later fix passes.
// Engine failures (parse failures, rule faults, fix non-convergence) surface
// as records in the tool category rather than as separate channels.
//
// Bag aggregates records with a cap, canonical ordering and merge support.
//
// Package diag performs no formatting or IO. Rendering lives in
// internal/diagfmt; fix application lives in internal/fixer.
package diag
