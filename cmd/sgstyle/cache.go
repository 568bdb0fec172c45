package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sgstyle/internal/driver"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the result cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop every cached check result",
	Long: `Clear removes the on-disk result store under the user cache
directory. The next check starts cold and re-checks every file.`,
	Args: cobra.NoArgs,
	RunE: runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
}

func runCacheClear(_ *cobra.Command, _ []string) error {
	cache, err := driver.OpenCache("sgstyle")
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	fmt.Fprintln(os.Stdout, "result cache cleared")
	return nil
}
