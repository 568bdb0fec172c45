package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sgstyle/internal/diagfmt"
	"sgstyle/internal/scan"
	"sgstyle/internal/source"
	"sgstyle/internal/srcmodel"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [flags] <file.sg>",
	Short: "Dump the token stream for a source file",
	Long: `Tokens prints the lossless token stream the rules operate on,
including whitespace and comment tokens.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	tokensCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokens(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	fileSet := source.NewFileSet()
	id, err := fileSet.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	file := fileSet.Get(id)

	tokens, err := scan.New().Tokens(file)
	if err != nil {
		var perr *srcmodel.ParseError
		if errors.As(err, &perr) {
			pos := file.Position(perr.Span.Start)
			fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", file.Path, pos.Line, pos.Col, perr.Msg)
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return exitStatus(diagfmt.ExitToolError)
		}
		return fmt.Errorf("scan failed: %w", err)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(os.Stdout, tokens, fileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, tokens)
	default:
		return fmt.Errorf("unknown format %q (expected pretty or json)", format)
	}
}
