// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (unknown command, bad flag).
	UserError = 1

	// ConfigError indicates an unreadable config file or environment.
	ConfigError = 2

	// InternalError indicates a failure of the terminal streams or task store.
	InternalError = 3

	// Interrupted is used when a signal ends a blocked console read.
	Interrupted = 130
)
