// Package diagfmt renders finished runs: text for terminals, JSON for
// tooling, SARIF 2.1.0 for code scanners, plus the token dump behind the
// tokens command. Renderers take a sorted Bag and never reorder it; the
// exit code mapping lives here too so every caller agrees on it.
package diagfmt

// TextOpts configures the text renderer. Color is a process-wide concern
// handled through fatih/color's NoColor, not per call.
type TextOpts struct {
	// Quiet drops the summary footer and keeps only the records.
	Quiet bool
	// MaxRecords caps the listed records; 0 lists everything. The cap is
	// display-only: the summary and the exit code still see every record.
	MaxRecords int
}

// SarifRunMeta describes the tool invocation recorded in a SARIF run.
type SarifRunMeta struct {
	ToolName       string
	ToolVersion    string
	InformationURI string
	InvocationArgs []string
}
