package diag

import (
	"fmt"

	"sgstyle/internal/source"
)

// Reserved ids for tool-category records.
const (
	ToolParseFailure    = "parse-failure"
	ToolRuleFault       = "rule-fault"
	ToolFixNotConverged = "fix-not-converged"
	ToolIOError         = "io-error"
)

// Record is the resolved, serialisable form of a finding. Line and column
// are computed once when the record is created, against the file revision
// the finding was made in, so records survive later rewrites of the file.
// Offset is kept for canonical ordering only and stays out of the output.
type Record struct {
	Path     string   `json:"path"`
	Line     uint32   `json:"line"`
	Col      uint32   `json:"column"`
	Offset   uint32   `json:"-"`
	Severity Severity `json:"severity"`
	Category Category `json:"category"`
	RuleID   string   `json:"ruleId"`
	Message  string   `json:"message"`
	Fixed    bool     `json:"fixed"`
}

// FromViolation resolves a violation into a record against the file revision
// it was found in.
func FromViolation(f *source.File, v Violation, fixed bool) Record {
	pos := f.Position(v.Span.Start)
	return Record{
		Path:     f.Path,
		Line:     pos.Line,
		Col:      pos.Col,
		Offset:   v.Span.Start,
		Severity: v.Severity,
		Category: v.Category,
		RuleID:   v.Rule,
		Message:  v.Message,
		Fixed:    fixed,
	}
}

// ParseFailureRecord reports a file the parser rejected. No rules run for
// such a file.
func ParseFailureRecord(path string, pos source.LineCol, msg string) Record {
	if pos.Line == 0 {
		pos = source.LineCol{Line: 1, Col: 1}
	}
	return Record{
		Path:     path,
		Line:     pos.Line,
		Col:      pos.Col,
		Severity: SevError,
		Category: CatTool,
		RuleID:   ToolParseFailure,
		Message:  msg,
	}
}

// IOErrorRecord reports a file that could not be read or written back.
// Like a parse failure it is file-local and forces the tool-error exit.
func IOErrorRecord(path, msg string) Record {
	return Record{
		Path:     path,
		Line:     1,
		Col:      1,
		Severity: SevError,
		Category: CatTool,
		RuleID:   ToolIOError,
		Message:  msg,
	}
}

// RuleFaultRecord reports a rule whose predicate panicked. The remaining
// rules keep running.
func RuleFaultRecord(path, ruleID string, fault any) Record {
	return Record{
		Path:     path,
		Line:     1,
		Col:      1,
		Severity: SevError,
		Category: CatTool,
		RuleID:   ToolRuleFault,
		Message:  fmt.Sprintf("rule %s failed: %v", ruleID, fault),
	}
}

// FixNotConvergedRecord reports that the fix loop hit its iteration bound
// with edits still pending. The run still completes.
func FixNotConvergedRecord(path string, iterations int) Record {
	return Record{
		Path:     path,
		Line:     1,
		Col:      1,
		Severity: SevWarning,
		Category: CatTool,
		RuleID:   ToolFixNotConverged,
		Message:  fmt.Sprintf("fixes did not converge after %d iterations", iterations),
	}
}

// IsToolFailure reports whether the record describes an engine failure that
// must force the tool-error exit status.
func (r Record) IsToolFailure() bool {
	return r.Category == CatTool && r.Severity >= SevError
}
