package cli

// Exit codes for wikiscan.
//
// Findings never affect the exit code: the scan is a report for humans
// cleaning up the wiki, not a CI gate, and a wiki full of anomalies is
// still a successful scan.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)
