// Package errmsg provides error message formatting with actionable suggestions.
package errmsg

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrorContext provides additional context for error formatting
type ErrorContext struct {
	ConfigFile string // The user config file involved, if any
}

// Format returns a formatted error message with possible causes and suggestions.
// The context parameter is optional - pass nil for generic formatting.
func Format(err error, ctx *ErrorContext) string {
	if err == nil {
		return ""
	}

	errMsg := err.Error()

	var parseErr toml.ParseError
	if errors.As(err, &parseErr) {
		return formatParseError(errMsg, parseErr, ctx)
	}

	if errors.Is(err, fs.ErrPermission) || isPermissionError(errMsg) {
		return formatPermissionError(errMsg, ctx)
	}

	if isUnknownKeyError(errMsg) {
		return formatUnknownKeyError(errMsg)
	}

	return errMsg
}

// FprintWithContext writes the formatted error to w, followed by a newline
// if needed. ctx may be nil.
func FprintWithContext(w io.Writer, err error, ctx *ErrorContext) {
	msg := Format(err, ctx)
	if msg == "" {
		return
	}
	fmt.Fprintf(w, "Error: %s", msg)
	if !strings.HasSuffix(msg, "\n") {
		fmt.Fprintln(w)
	}
}

func formatParseError(errMsg string, perr toml.ParseError, ctx *ErrorContext) string {
	var sb strings.Builder
	sb.WriteString(errMsg)
	sb.WriteString("\n")

	sb.WriteString("\nPossible causes:\n")
	fmt.Fprintf(&sb, "  - Invalid TOML near line %d\n", perr.Position.Line)
	sb.WriteString("  - The file was edited by hand and a quote or bracket is unbalanced\n")

	sb.WriteString("\nSuggestions:\n")
	if ctx != nil && ctx.ConfigFile != "" {
		fmt.Fprintf(&sb, "  - Fix or remove %s\n", ctx.ConfigFile)
	}
	sb.WriteString("  - Use 'terminal-guard config set <key> <value>' to rewrite the file\n")

	return sb.String()
}

func formatPermissionError(errMsg string, ctx *ErrorContext) string {
	var sb strings.Builder
	sb.WriteString(errMsg)
	sb.WriteString("\n")

	sb.WriteString("\nPossible causes:\n")
	sb.WriteString("  - Insufficient permissions on the $TERMINAL_GUARD_HOME directory\n")
	sb.WriteString("  - File or directory owned by a different user\n")

	sb.WriteString("\nSuggestions:\n")
	if ctx != nil && ctx.ConfigFile != "" {
		fmt.Fprintf(&sb, "  - Check permissions: ls -la %s\n", ctx.ConfigFile)
	} else {
		sb.WriteString("  - Check permissions on ~/.terminal-guard\n")
	}
	sb.WriteString("  - Set TERMINAL_GUARD_HOME to a directory you own\n")

	return sb.String()
}

func formatUnknownKeyError(errMsg string) string {
	var sb strings.Builder
	sb.WriteString(errMsg)
	sb.WriteString("\n")

	sb.WriteString("\nSuggestions:\n")
	sb.WriteString("  - Run 'terminal-guard config list' to see available keys\n")

	return sb.String()
}

// isPermissionError checks if the error message indicates a permission issue
func isPermissionError(msg string) bool {
	lower := strings.ToLower(msg)
	return strings.Contains(lower, "permission denied") ||
		strings.Contains(lower, "access denied") ||
		strings.Contains(lower, "operation not permitted")
}

func isUnknownKeyError(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "unknown config key")
}
