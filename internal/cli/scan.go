package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/larpwiki/wikiscan/internal/configloader"
	"github.com/larpwiki/wikiscan/internal/logging"
	"github.com/larpwiki/wikiscan/pkg/config"
	"github.com/larpwiki/wikiscan/pkg/lint"
	_ "github.com/larpwiki/wikiscan/pkg/lint/rules" // Register built-in rules
	"github.com/larpwiki/wikiscan/pkg/reporter"
	"github.com/larpwiki/wikiscan/pkg/runner"
)

type scanFlags struct {
	format     string
	baseURL    string
	exclude    []string
	enable     []string
	disable    []string
	jobs       int
	noExcerpts bool
	noURLs     bool
	compact    bool
}

func newScanCommand() *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Scan exported wiki pages for anomalies",
		Long:  scanLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, flags)
		},
	}

	addScanFlags(cmd, flags)

	return cmd
}

const scanLongDescription = `Scan exported wiki pages for migration anomalies.

By default, scans all .txt files in the current directory and
subdirectories. Specify paths to scan specific files or directories.

The scan always exits with status 0 when it completes, regardless of how
many anomalies it finds; a non-zero status means the scan itself failed.

Examples:
  wikiscan scan                      # Scan current directory
  wikiscan scan backup/              # Scan an export directory
  wikiscan scan "Orga - Liste.txt"   # Scan a single page
  wikiscan scan --format json        # Output as JSON
  wikiscan scan --format summary     # Aggregate tables only
  wikiscan scan --disable WK042      # Skip the upload link rule`

func runScan(cmd *cobra.Command, args []string, flags *scanFlags) error {
	logger := logging.Default()

	// Map string flags to typed config values. Only values explicitly
	// provided via CLI flags may override the config files.
	cliCfg := &config.Config{}
	if cmd.Flags().Changed("format") {
		cliCfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("base-url") {
		cliCfg.BaseURL = flags.baseURL
	}
	cliCfg.Exclude = flags.exclude
	cliCfg.EnableRules = flags.enable
	cliCfg.DisableRules = flags.disable
	cliCfg.Jobs = flags.jobs

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadOpts := configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	}

	loadResult, err := configloader.Load(ctx, loadOpts)
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldBaseURL, finalCfg.BaseURL,
		logging.FieldFormat, finalCfg.Format,
		logging.FieldJobs, finalCfg.Jobs,
	)

	// Create the scan engine over the default registry.
	engine := lint.NewEngine(lint.DefaultRegistry)
	scanRunner := runner.New(engine)

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   finalCfg.Extensions,
		ExcludeGlobs: finalCfg.Exclude,
		Jobs:         finalCfg.Jobs,
		Config:       finalCfg,
	}

	logger.Debug("starting scan",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := scanRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("scan failed"), err)
	}

	logger.Debug("scan complete",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesScanned, result.Stats.FilesScanned,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
		logging.FieldFindingsTotal, result.Stats.FindingsTotal,
	)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:       cmd.OutOrStdout(),
		ErrorWriter:  cmd.ErrOrStderr(),
		Format:       format,
		Color:        colorMode,
		ShowExcerpts: !flags.noExcerpts,
		ShowSummary:  true,
		ShowURLs:     !flags.noURLs,
		Compact:      flags.compact,
		BaseURL:      finalCfg.BaseURL,
		WorkingDir:   workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	// Findings are a report, not a failure. The scan exits zero.
	return nil
}

func addScanFlags(cmd *cobra.Command, flags *scanFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, summary")
	cmd.Flags().StringVar(&flags.baseURL, "base-url", config.DefaultBaseURL,
		"wiki base URL for page links in reports")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to exclude")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs to disable")
	cmd.Flags().BoolVar(&flags.noExcerpts, "no-excerpts", false, "hide source line excerpts in output")
	cmd.Flags().BoolVar(&flags.noURLs, "no-urls", false, "hide wiki page URLs in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
}
