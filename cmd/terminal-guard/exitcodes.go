package main

import "fmt"

// Exit codes for different outcomes.
// These let shell hooks tell a clean command from a suspicious one.
const (
	// ExitSuccess indicates no warnings were produced
	ExitSuccess = 0

	// ExitWarnings indicates at least one warning was produced
	ExitWarnings = 1

	// ExitUsage indicates invalid arguments or usage error
	ExitUsage = 2

	// ExitConfig indicates the user config file could not be read or written
	ExitConfig = 3
)

// exitError carries an exit code out of a cobra RunE. A nil err means the
// code is the whole message (warnings were already printed).
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func withExitCode(code int, err error) error {
	return &exitError{code: code, err: err}
}
