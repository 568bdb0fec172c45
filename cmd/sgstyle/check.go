package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"sgstyle/internal/config"
	"sgstyle/internal/diagfmt"
	"sgstyle/internal/driver"
	"sgstyle/internal/observ"
	"sgstyle/internal/rule"
	"sgstyle/internal/rules"
	"sgstyle/internal/scan"
	"sgstyle/internal/ui"
	"sgstyle/internal/watch"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [path ...]",
	Short: "Check Surge sources against the style rules",
	Long: `Check walks the given files and directories (default: the current
directory), runs every active rule over each .sg file and reports the
violations. With --fix the mechanically fixable ones are rewritten in
place and only the remainder is reported.`,
	Args: cobra.ArbitraryArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("fix", false, "apply safe fixes and rewrite files in place")
	checkCmd.Flags().String("format", "text", "output format (text|json|sarif)")
	checkCmd.Flags().String("config", "", "configuration file (default: nearest sgstyle.toml)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0 = all CPUs)")
	checkCmd.Flags().Bool("progress", false, "render live per-file progress")
	checkCmd.Flags().Bool("watch", false, "re-check whenever a watched file changes")
	checkCmd.Flags().Bool("no-cache", false, "disable the result cache")
}

// checkSettings is the resolved flag set for one check invocation.
type checkSettings struct {
	fix        bool
	format     string
	configPath string
	jobs       int
	progress   bool
	watchMode  bool
	noCache    bool

	quiet         bool
	timings       bool
	maxViolations int
}

func readCheckSettings(cmd *cobra.Command) (checkSettings, error) {
	var s checkSettings
	var err error
	if s.fix, err = cmd.Flags().GetBool("fix"); err != nil {
		return s, fmt.Errorf("failed to get fix flag: %w", err)
	}
	if s.format, err = cmd.Flags().GetString("format"); err != nil {
		return s, fmt.Errorf("failed to get format flag: %w", err)
	}
	if s.configPath, err = cmd.Flags().GetString("config"); err != nil {
		return s, fmt.Errorf("failed to get config flag: %w", err)
	}
	if s.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return s, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if s.progress, err = cmd.Flags().GetBool("progress"); err != nil {
		return s, fmt.Errorf("failed to get progress flag: %w", err)
	}
	if s.watchMode, err = cmd.Flags().GetBool("watch"); err != nil {
		return s, fmt.Errorf("failed to get watch flag: %w", err)
	}
	if s.noCache, err = cmd.Flags().GetBool("no-cache"); err != nil {
		return s, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	root := cmd.Root().PersistentFlags()
	if s.quiet, err = root.GetBool("quiet"); err != nil {
		return s, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = root.GetBool("timings"); err != nil {
		return s, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if s.maxViolations, err = root.GetInt("max-violations"); err != nil {
		return s, fmt.Errorf("failed to get max-violations flag: %w", err)
	}
	return s, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := readCheckSettings(cmd)
	if err != nil {
		return err
	}
	switch s.format {
	case "text", "json", "sarif":
	default:
		return fmt.Errorf("unknown format %q (expected text, json or sarif)", s.format)
	}
	if s.watchMode && s.format != "text" {
		return fmt.Errorf("--watch supports the text format only")
	}
	if s.watchMode && s.progress {
		return fmt.Errorf("--watch and --progress cannot be combined")
	}

	// Fix runs skip the cache: rewritten files invalidate their own
	// entries anyway and the rewrite must never be short-circuited.
	var cache *driver.Cache
	if !s.noCache && !s.fix {
		cache, err = driver.OpenCache("sgstyle")
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: result cache disabled: %v\n", err)
			cache = nil
		}
	}

	if s.watchMode {
		return runCheckWatch(cmd, args, cache, s)
	}

	cfg, err := config.Discover(s.configPath, ".")
	if err != nil {
		return err
	}
	reg, err := rule.Load(rules.Builtins(), cfg)
	if err != nil {
		return err
	}

	report, runErr := runCheckOnce(cmd.Context(), args, cfg, reg, cache, s)
	if report != nil {
		renderErr := renderReport(os.Stdout, report, reg, s)
		if runErr == nil && renderErr != nil {
			return renderErr
		}
		if runErr == nil {
			return exitOnViolations(cmd, report)
		}
	}
	return fmt.Errorf("check failed: %w", runErr)
}

// runCheckOnce runs the driver over paths exactly once. A non-nil report
// paired with a non-nil error means the run was cut short and the report
// covers only the files that finished.
func runCheckOnce(ctx context.Context, paths []string, cfg *config.Config, reg *rule.Registry, cache *driver.Cache, s checkSettings) (*driver.Report, error) {
	opts := driver.Options{
		Fix:    s.fix,
		Jobs:   s.jobs,
		Parser: scan.New(),
		Cache:  cache,
	}
	if s.timings {
		opts.Timer = observ.NewTimer()
	}

	var report *driver.Report
	var err error
	if s.progress && isTerminal(os.Stdout) {
		report, err = runCheckWithProgress(ctx, paths, cfg, reg, opts)
	} else {
		report, err = driver.Run(ctx, paths, cfg, reg, opts)
	}

	if s.timings && opts.Timer != nil {
		fmt.Fprint(os.Stderr, opts.Timer.Summary())
	}
	return report, err
}

func renderReport(w io.Writer, report *driver.Report, reg *rule.Registry, s checkSettings) error {
	sum := diagfmt.Summarize(report.Bag, report.FilesChecked, report.Duration)
	switch s.format {
	case "json":
		if err := diagfmt.JSON(w, report.Bag, sum); err != nil {
			return fmt.Errorf("failed to render json report: %w", err)
		}
	case "sarif":
		meta := diagfmt.SarifRunMeta{
			ToolName:       "sgstyle",
			ToolVersion:    "0.1.0",
			InformationURI: "https://github.com/vovakirdan/sgstyle",
			InvocationArgs: os.Args,
		}
		if err := diagfmt.Sarif(w, report.Bag, reg, meta); err != nil {
			return fmt.Errorf("failed to render sarif report: %w", err)
		}
	default:
		opts := diagfmt.TextOpts{Quiet: s.quiet, MaxRecords: s.maxViolations}
		if err := diagfmt.Text(w, report.Bag, sum, opts); err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
	}
	return nil
}

// exitOnViolations maps the finished report to the process exit code.
// The report is already on screen, so the error carries no message.
func exitOnViolations(cmd *cobra.Command, report *driver.Report) error {
	code := diagfmt.ExitCode(report.Bag)
	if code == diagfmt.ExitClean {
		return nil
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return exitStatus(code)
}

// checkOutcome carries the driver's result out of the background
// goroutine while the progress UI owns the terminal.
type checkOutcome struct {
	report *driver.Report
	err    error
}

func runCheckWithProgress(ctx context.Context, paths []string, cfg *config.Config, reg *rule.Registry, opts driver.Options) (*driver.Report, error) {
	files, err := driver.CollectFiles(paths)
	if err != nil {
		return nil, err
	}

	events := make(chan driver.FileEvent, 256)
	outcomeCh := make(chan checkOutcome, 1)
	opts.Observer = func(ev driver.FileEvent) { events <- ev }

	go func() {
		report, err := driver.Run(ctx, files, cfg, reg, opts)
		outcomeCh <- checkOutcome{report: report, err: err}
		close(events)
	}()

	title := "checking"
	if opts.Fix {
		title = "fixing"
	}
	program := tea.NewProgram(ui.NewProgressModel(title, files, events), tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()

	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.report, fmt.Errorf("progress ui failed: %w", uiErr)
	}
	return outcome.report, outcome.err
}

// runCheckWatch re-runs the check on every change until interrupted.
// Cycle outcomes never fail the process; watch is a feedback loop, not
// a gate.
func runCheckWatch(cmd *cobra.Command, paths []string, cache *driver.Cache, s checkSettings) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The initial load fails fast on a broken setup; afterwards every
	// cycle reloads so config edits take effect on the next save.
	cfg, err := config.Discover(s.configPath, ".")
	if err != nil {
		return err
	}
	var extra []string
	if cfg.Path != "" {
		extra = append(extra, cfg.Path)
	}

	cycle := func(ctx context.Context) error {
		cfg, err := config.Discover(s.configPath, ".")
		if err != nil {
			return err
		}
		reg, err := rule.Load(rules.Builtins(), cfg)
		if err != nil {
			return err
		}
		report, err := runCheckOnce(ctx, paths, cfg, reg, cache, s)
		if report != nil {
			if renderErr := renderReport(os.Stdout, report, reg, s); err == nil {
				err = renderErr
			}
		}
		return err
	}

	err = watch.Run(ctx, paths, cycle, watch.Options{Extra: extra, Log: os.Stderr})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
