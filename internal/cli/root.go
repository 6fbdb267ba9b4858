// Package cli provides the Cobra command structure for wikiscan.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/larpwiki/wikiscan/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root wikiscan command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "wikiscan",
		Short: "Scan exported wiki pages for migration anomalies",
		Long: `wikiscan checks exported MoinMoin wiki pages for anomalies left behind
by the UseMod migration: broken UTF-8 sequences, stray control characters,
orphaned combining marks, misplaced redirects, and obsolete UseMod markup
such as HTML-style tags, bracket links, and legacy list syntax.

Pages are scanned offline from a directory of .txt exports; each finding
points at the exact line and column so it can be fixed on the live wiki.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
