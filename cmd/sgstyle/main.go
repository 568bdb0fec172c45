package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sgstyle/internal/diagfmt"
	"sgstyle/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "sgstyle",
	Short: "Style checker and fixer for Surge source files",
	Long: `sgstyle checks Surge sources against the house style rules and can
rewrite the mechanical violations in place with --fix.`,
	PersistentPreRunE: applyColorMode,
}

// exitStatus carries a specific process exit code through cobra without
// printing anything; the command has already reported its findings.
type exitStatus int

func (exitStatus) Error() string { return "" }

func main() {
	rootCmd.Version = version.Version

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress summary and context lines")
	rootCmd.PersistentFlags().Bool("timings", false, "print phase timings to stderr")
	rootCmd.PersistentFlags().Int("max-violations", 100, "cap on violations listed in text output (0 = no cap)")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		var status exitStatus
		if errors.As(err, &status) {
			os.Exit(int(status))
		}
		os.Exit(diagfmt.ExitToolError)
	}
}

// applyColorMode resolves the --color flag into the process-wide color
// switch before any command renders output.
func applyColorMode(cmd *cobra.Command, _ []string) error {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	switch mode {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stdout)
	default:
		return fmt.Errorf("invalid color mode %q (expected auto, on or off)", mode)
	}
	return nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
