package diagfmt

import (
	"time"

	"sgstyle/internal/diag"
)

// Summary aggregates a finished run for the report footer. Tool failures
// are counted apart from rule findings; the non-fatal tool warnings (fix
// convergence) count by their severity like everything else.
type Summary struct {
	FilesChecked int `json:"filesChecked"`
	Records      int `json:"records"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Infos        int `json:"infos"`
	ToolErrors   int `json:"toolErrors"`
	Fixed        int `json:"fixed"`
	Dropped      int `json:"dropped,omitempty"`

	Duration time.Duration `json:"-"`
}

// Summarize counts the bag's records. filesChecked and duration come from
// the driver; the bag cannot know them.
func Summarize(bag *diag.Bag, filesChecked int, duration time.Duration) Summary {
	sum := Summary{
		FilesChecked: filesChecked,
		Records:      bag.Len(),
		Dropped:      bag.Dropped(),
		Duration:     duration,
	}
	for _, r := range bag.Items() {
		if r.Fixed {
			sum.Fixed++
		}
		if r.IsToolFailure() {
			sum.ToolErrors++
			continue
		}
		switch r.Severity {
		case diag.SevError:
			sum.Errors++
		case diag.SevWarning:
			sum.Warnings++
		case diag.SevInfo:
			sum.Infos++
		}
	}
	return sum
}
