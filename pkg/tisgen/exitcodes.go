// Package tisgen provides public constants for scripts and CI jobs that run
// the tisgen CLI.
package tisgen

// Exit codes returned by the tisgen CLI.
// These constants allow external tools to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure (a file could not be written, etc.).
	ExitFailure = 1

	// ExitConfigError indicates invalid settings, a generated file failing its
	// schema, a malformed compilation database or a usage error.
	ExitConfigError = 2

	// ExitEnvError indicates that a directory or file the project layout
	// requires is missing.
	ExitEnvError = 3
)
