package checker

import "sgstyle/internal/diag"

// Outcome classifies the final state of one checked file. Values are ordered
// by badness so the process outcome is the maximum over all files.
type Outcome uint8

const (
	// OutcomeClean means no violations were found.
	OutcomeClean Outcome = iota
	// OutcomeFixed means violations were found and every one was fixed.
	OutcomeFixed
	// OutcomeViolationsRemain means unfixed violations remain.
	OutcomeViolationsRemain
	// OutcomeToolError means the engine itself failed on the file: the
	// parser rejected it or a rule faulted.
	OutcomeToolError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeClean:
		return "clean"
	case OutcomeFixed:
		return "fixed"
	case OutcomeViolationsRemain:
		return "violations-remain"
	case OutcomeToolError:
		return "tool-error"
	}
	return "unknown"
}

// RunResult is the finished state of one file after checking and, when
// requested, fixing.
type RunResult struct {
	Path         string
	Records      []diag.Record
	AppliedEdits int
	Passes       int
	Outcome      Outcome
}

// Classify derives the outcome from the records of a finished file.
func Classify(records []diag.Record, appliedEdits int) Outcome {
	outcome := OutcomeClean
	if appliedEdits > 0 {
		outcome = OutcomeFixed
	}
	for _, r := range records {
		if r.IsToolFailure() {
			return OutcomeToolError
		}
		if r.Category != diag.CatTool && !r.Fixed && outcome < OutcomeViolationsRemain {
			outcome = OutcomeViolationsRemain
		}
	}
	return outcome
}
