package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"sgstyle/internal/config"
	"sgstyle/internal/rule"
	"sgstyle/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the rules and their effective settings",
	Long: `Rules lists every built-in rule with the severity and enabled state
that the discovered configuration resolves to. Disabled rules are shown
with their defaults.`,
	Args: cobra.NoArgs,
	RunE: runRules,
}

func init() {
	rulesCmd.Flags().String("format", "table", "output format (table|json)")
	rulesCmd.Flags().String("config", "", "configuration file (default: nearest sgstyle.toml)")
}

type ruleListing struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Severity string `json:"severity"`
	Enabled  bool   `json:"enabled"`
	CanFix   bool   `json:"canFix"`
}

func runRules(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg, err := config.Discover(configPath, ".")
	if err != nil {
		return err
	}
	reg, err := rule.Load(rules.Builtins(), cfg)
	if err != nil {
		return err
	}

	listings := collectRuleListings(reg)
	switch format {
	case "table":
		renderRulesTable(os.Stdout, listings)
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(listings)
	default:
		return fmt.Errorf("unknown format %q (expected table or json)", format)
	}
}

func collectRuleListings(reg *rule.Registry) []ruleListing {
	active := make(map[string]rule.ActiveRule, len(reg.Active()))
	for _, ar := range reg.Active() {
		active[ar.Meta.ID] = ar
	}
	listings := make([]ruleListing, 0, len(reg.All()))
	for _, meta := range reg.All() {
		l := ruleListing{
			ID:       meta.ID,
			Title:    meta.Title,
			Category: meta.Category.String(),
			Severity: meta.DefaultSeverity.String(),
			CanFix:   meta.CanFix,
		}
		if ar, ok := active[meta.ID]; ok {
			l.Enabled = true
			l.Severity = ar.Severity.String()
		}
		listings = append(listings, l)
	}
	return listings
}

func renderRulesTable(w io.Writer, listings []ruleListing) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Category", "Severity", "Fix", "Enabled", "Title"})
	for _, l := range listings {
		t.AppendRow(table.Row{l.ID, l.Category, l.Severity, yesNo(l.CanFix), yesNo(l.Enabled), l.Title})
	}
	t.Render()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
