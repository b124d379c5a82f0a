package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/unbound-force/declint/internal/config"
	"github.com/unbound-force/declint/internal/gosrc"
	"github.com/unbound-force/declint/internal/lint"
	"github.com/unbound-force/declint/internal/loader"
	"github.com/unbound-force/declint/internal/report"
	"github.com/unbound-force/declint/internal/scaffold"
	"github.com/unbound-force/declint/internal/stats"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags.
var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "declint",
		Short: "Declint — naming convention checks for declarations",
		Long: `Declint checks function, parameter, type, and field names
against the project's naming conventions and suggests conformant
spellings for every identifier that deviates.`,
		Version: version,
	}

	root.AddCommand(newCheckCmd())
	root.AddCommand(newStatsCmd())
	root.AddCommand(newSchemaCmd())
	root.AddCommand(newInitCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration. An explicitly
// given path must exist; the default path may be absent.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load(config.DefaultFileName)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return config.Load(path)
}

// checkParams holds the parsed flags for the check command.
type checkParams struct {
	pkgPath           string
	format            string
	function          string
	configPath        string
	includeUnexported bool
	interactive       bool
	maxDiagnostics    int
	stdout            io.Writer
	stderr            io.Writer
}

// runCheck is the extracted, testable body of the check command.
func runCheck(p checkParams) error {
	if p.format != "text" && p.format != "json" && p.format != "html" {
		return fmt.Errorf("invalid format %q: must be 'text', 'json', or 'html'", p.format)
	}
	if p.format == "html" {
		return fmt.Errorf("HTML report format is not yet implemented")
	}

	cfg, err := loadConfig(p.configPath)
	if err != nil {
		return err
	}

	logger.Info("checking package", "pkg", p.pkgPath)
	diags, err := gosrc.LoadAndCheck(p.pkgPath, gosrc.Options{
		Config:            cfg,
		IncludeUnexported: p.includeUnexported,
		DeclFilter:        p.function,
		Logger:            logger,
	})
	if err != nil {
		return err
	}

	logger.Info("check complete", "diagnostics", len(diags))

	if p.interactive {
		return runInteractiveCheck(diags)
	}

	switch p.format {
	case "json":
		err = report.WriteJSON(p.stdout, diags)
	default:
		err = report.WriteText(p.stdout, diags)
	}
	if err != nil {
		return err
	}

	printCISummary(p.stderr, len(diags), p.maxDiagnostics)

	return checkCIThreshold(len(diags), p.maxDiagnostics)
}

// printCISummary prints a one-line CI summary to stderr when the
// --max-diagnostics flag is set.
func printCISummary(w io.Writer, diagnostics, maxDiagnostics int) {
	if maxDiagnostics < 0 {
		return
	}
	status := "PASS"
	if diagnostics > maxDiagnostics {
		status = "FAIL"
	}
	fmt.Fprintf(w, "diagnostics: %d/%d (%s)\n", diagnostics, maxDiagnostics, status)
}

// checkCIThreshold returns an error if the diagnostic count exceeds
// the configured maximum.
func checkCIThreshold(diagnostics, maxDiagnostics int) error {
	if maxDiagnostics >= 0 && diagnostics > maxDiagnostics {
		return fmt.Errorf("%d naming diagnostic(s) exceed maximum %d",
			diagnostics, maxDiagnostics)
	}
	return nil
}

func newCheckCmd() *cobra.Command {
	var (
		function          string
		format            string
		configPath        string
		includeUnexported bool
		interactive       bool
		maxDiagnostics    int
	)

	cmd := &cobra.Command{
		Use:   "check [package]",
		Short: "Check declaration names against naming conventions",
		Long: `Check a Go package (or a specific declaration) and report every
function, parameter, type, and field name that deviates from the
configured conventions, together with a suggested spelling.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(checkParams{
				pkgPath:           args[0],
				format:            format,
				function:          function,
				configPath:        configPath,
				includeUnexported: includeUnexported,
				interactive:       interactive,
				maxDiagnostics:    maxDiagnostics,
				stdout:            os.Stdout,
				stderr:            os.Stderr,
			})
		},
	}

	cmd.Flags().StringVarP(&function, "function", "f", "",
		"check a specific declaration (default: all exported)")
	cmd.Flags().StringVar(&format, "format", "text",
		"output format: text, json, or html")
	cmd.Flags().StringVar(&configPath, "config", "",
		"path to config file (default: .declint.yml)")
	cmd.Flags().BoolVar(&includeUnexported, "include-unexported", false,
		"include unexported declarations")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"launch interactive TUI for browsing diagnostics")
	cmd.Flags().IntVar(&maxDiagnostics, "max-diagnostics", -1,
		"fail if diagnostic count exceeds this (-1 = no limit)")

	return cmd
}

// statsParams holds the parsed flags for the stats command.
type statsParams struct {
	pkgPath           string
	format            string
	configPath        string
	includeUnexported bool
	stdout            io.Writer
	stderr            io.Writer
}

// runStats is the extracted, testable body of the stats command.
func runStats(p statsParams) error {
	if p.format != "text" && p.format != "json" {
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", p.format)
	}

	cfg, err := loadConfig(p.configPath)
	if err != nil {
		return err
	}

	logger.Info("computing rename statistics", "pkg", p.pkgPath)
	result, err := loader.Load(p.pkgPath)
	if err != nil {
		return err
	}

	var diags []lint.Diagnostic
	var files []string
	for _, pkg := range result.Pkgs {
		diags = append(diags, gosrc.Check(pkg, gosrc.Options{
			Config:            cfg,
			IncludeUnexported: p.includeUnexported,
			Logger:            logger,
		})...)
		files = append(files, pkg.GoFiles...)
	}

	rpt := stats.Analyze(sourceDirs(files), diags)

	logger.Info("analysis complete", "diagnostics", rpt.Summary.TotalDiagnostics)

	switch p.format {
	case "json":
		return stats.WriteJSON(p.stdout, rpt)
	default:
		return stats.WriteText(p.stdout, rpt)
	}
}

// sourceDirs returns the sorted set of directories holding the
// package's source files, for complexity measurement.
func sourceDirs(files []string) []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, f := range files {
		dir := filepath.Dir(f)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	sort.Strings(dirs)
	return dirs
}

func newStatsCmd() *cobra.Command {
	var (
		format            string
		configPath        string
		includeUnexported bool
	)

	cmd := &cobra.Command{
		Use:   "stats [package]",
		Short: "Summarize rename effort for naming diagnostics",
		Long: `Check a Go package and aggregate the diagnostics into rename
statistics: counts per identifier kind, and flagged functions
ranked by cyclomatic complexity.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(statsParams{
				pkgPath:           args[0],
				format:            format,
				configPath:        configPath,
				includeUnexported: includeUnexported,
				stdout:            os.Stdout,
				stderr:            os.Stderr,
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "text",
		"output format: text or json")
	cmd.Flags().StringVar(&configPath, "config", "",
		"path to config file (default: .declint.yml)")
	cmd.Flags().BoolVar(&includeUnexported, "include-unexported", false,
		"include unexported declarations")

	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for Declint check output",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the
structure of declint check --format=json output. Useful for
validating output or generating client types.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Schema)
			return err
		},
	}
}

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold Declint project files",
		Long: `Write the default .declint.yml config and a GitHub Actions
workflow into the current directory. Existing files are skipped
unless --force is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := scaffold.Run(scaffold.Options{
				Force:   force,
				Version: version,
				Stdout:  cmd.OutOrStdout(),
			})
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false,
		"overwrite existing files")

	return cmd
}
