// Package main is the entry point for the wikiscan CLI.
package main

import (
	"os"

	"github.com/larpwiki/wikiscan/internal/cli"
	"github.com/larpwiki/wikiscan/internal/logging"

	// Import rules package to register built-in rules via init().
	_ "github.com/larpwiki/wikiscan/pkg/lint/rules"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		logger := logging.Default()
		logger.Error("command failed", logging.FieldError, err)
		return 1
	}

	return 0
}
