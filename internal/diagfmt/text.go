package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"sgstyle/internal/diag"
)

var (
	errorLabel = color.New(color.FgRed, color.Bold)
	warnLabel  = color.New(color.FgYellow)
	infoLabel  = color.New(color.FgCyan)
	toolLabel  = color.New(color.FgMagenta, color.Bold)
	fixedMark  = color.New(color.FgGreen)
	ruleMark   = color.New(color.Faint)
)

// Text writes one line per record, `path:line:col: severity: message
// [rule-id]`, followed by a summary footer. Tool-category failures carry
// the severity label "tool-error" so they cannot be mistaken for style
// findings.
func Text(w io.Writer, bag *diag.Bag, sum Summary, opts TextOpts) error {
	records := bag.Items()
	dropped := bag.Dropped()
	if opts.MaxRecords > 0 && len(records) > opts.MaxRecords {
		dropped += len(records) - opts.MaxRecords
		records = records[:opts.MaxRecords]
	}
	for _, r := range records {
		suffix := ""
		if r.Fixed {
			suffix = " " + fixedMark.Sprint("(fixed)")
		}
		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s: %s %s%s\n",
			r.Path, r.Line, r.Col,
			severityLabel(r), r.Message,
			ruleMark.Sprintf("[%s]", r.RuleID), suffix); err != nil {
			return err
		}
	}
	if dropped > 0 {
		if _, err := fmt.Fprintf(w, "output truncated, %d record%s dropped\n",
			dropped, plural(dropped)); err != nil {
			return err
		}
	}
	if opts.Quiet {
		return nil
	}
	_, err := fmt.Fprintln(w, footer(sum))
	return err
}

func severityLabel(r diag.Record) string {
	if r.IsToolFailure() {
		return toolLabel.Sprint("tool-error")
	}
	switch r.Severity {
	case diag.SevError:
		return errorLabel.Sprint("error")
	case diag.SevWarning:
		return warnLabel.Sprint("warning")
	default:
		return infoLabel.Sprint("info")
	}
}

func footer(sum Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "checked %d file%s: ", sum.FilesChecked, plural(sum.FilesChecked))
	if sum.Records == 0 {
		b.WriteString("clean")
		return b.String()
	}

	findings := sum.Errors + sum.Warnings + sum.Infos
	fmt.Fprintf(&b, "%d violation%s", findings, plural(findings))
	var parts []string
	if sum.Errors > 0 {
		parts = append(parts, fmt.Sprintf("%d error%s", sum.Errors, plural(sum.Errors)))
	}
	if sum.Warnings > 0 {
		parts = append(parts, fmt.Sprintf("%d warning%s", sum.Warnings, plural(sum.Warnings)))
	}
	if sum.Infos > 0 {
		parts = append(parts, fmt.Sprintf("%d info", sum.Infos))
	}
	if len(parts) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(parts, ", "))
	}
	if sum.Fixed > 0 {
		fmt.Fprintf(&b, ", %d fixed", sum.Fixed)
	}
	if sum.ToolErrors > 0 {
		fmt.Fprintf(&b, ", %d tool error%s", sum.ToolErrors, plural(sum.ToolErrors))
	}
	return b.String()
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
