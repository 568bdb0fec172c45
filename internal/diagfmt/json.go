package diagfmt

import (
	"encoding/json"
	"io"

	"sgstyle/internal/diag"
)

type summaryJSON struct {
	Summary
	DurationMS int64 `json:"durationMs"`
}

type outputJSON struct {
	Records []diag.Record `json:"records"`
	Summary summaryJSON   `json:"summary"`
}

// JSON writes the machine-readable report: the records in canonical order
// plus the run summary. An empty run yields an empty array, not null.
func JSON(w io.Writer, bag *diag.Bag, sum Summary) error {
	out := outputJSON{
		Records: bag.Items(),
		Summary: summaryJSON{Summary: sum, DurationMS: sum.Duration.Milliseconds()},
	}
	if out.Records == nil {
		out.Records = []diag.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
