package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/tsukumogami/terminal-guard/internal/config"
	"github.com/tsukumogami/terminal-guard/internal/errmsg"
)

// isTerminalFunc is swapped out in tests.
var isTerminalFunc = term.IsTerminal

// printJSON marshals the given value to JSON and writes it to w
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// printError prints an error to w with suggestions if available.
// Config file errors name the file so the suggestion can point at it.
func printError(w io.Writer, err error) {
	var ctx *errmsg.ErrorContext
	var ee *exitError
	if errors.As(err, &ee) && ee.code == ExitConfig {
		if cfg, cerr := config.DefaultConfig(); cerr == nil {
			ctx = &errmsg.ErrorContext{ConfigFile: cfg.ConfigFile}
		}
	}
	errmsg.FprintWithContext(w, err, ctx)
}

// exitCode maps an error returned from Execute to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	// cobra reports unknown flags and wrong arg counts as plain errors
	return ExitUsage
}

// isFileTerminal reports whether v is an *os.File attached to a terminal.
func isFileTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && isTerminalFunc(int(f.Fd()))
}

// isTruthy returns true if the string represents a truthy value
func isTruthy(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
