package diagfmt

import (
	"sgstyle/internal/diag"
)

// Exit statuses for the check command.
const (
	ExitClean     = 0
	ExitUnfixed   = 1
	ExitToolError = 2
)

// ExitCode maps a finished run to the process exit status. A tool failure
// anywhere dominates; otherwise unfixed error-severity findings make the
// run fail; fixed findings and warnings do not.
func ExitCode(bag *diag.Bag) int {
	code := ExitClean
	for _, r := range bag.Items() {
		if r.IsToolFailure() {
			return ExitToolError
		}
		if !r.Fixed && r.Severity >= diag.SevError {
			code = ExitUnfixed
		}
	}
	return code
}
