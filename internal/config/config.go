package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// EnvConfusables is the environment variable naming the confusables data file
	EnvConfusables = "TERMINAL_GUARD_CONFUSABLES"

	// EnvHome is the environment variable to override the default terminal-guard home directory
	EnvHome = "TERMINAL_GUARD_HOME"

	// EnvDecodeIDN is the environment variable to enable punycode hostname decoding
	EnvDecodeIDN = "TERMINAL_GUARD_DECODE_IDN"

	// EnvQuiet, EnvVerbose and EnvDebug set the log level when no flag does
	EnvQuiet   = "TERMINAL_GUARD_QUIET"
	EnvVerbose = "TERMINAL_GUARD_VERBOSE"
	EnvDebug   = "TERMINAL_GUARD_DEBUG"

	// DefaultHomeDirName is the home directory name under the user's home
	DefaultHomeDirName = ".terminal-guard"

	// DefaultConfusablesRelPath is the data file location relative to the
	// directory holding the executable (bin/ next to lib/)
	DefaultConfusablesRelPath = "../lib/confusables.txt"
)

// Source names where the confusables path came from.
type Source string

const (
	SourceFlag       Source = "flag"
	SourceEnv        Source = "env"
	SourceUserConfig Source = "config"
	SourceDefault    Source = "default"
	SourceBundled    Source = "bundled"
)

// ConfusablesLocation is a resolved confusables data location. Path is empty
// for SourceBundled.
type ConfusablesLocation struct {
	Path   string
	Source Source
}

// ExecutableFunc locates the running binary. It can be overridden for testing.
var ExecutableFunc = os.Executable

// ResolveConfusables picks the confusables data file. Precedence: the
// --confusables flag, TERMINAL_GUARD_CONFUSABLES, the "confusables" key of
// the user config file, then ../lib/confusables.txt next to the executable.
// When nothing is configured and the default file does not exist, the
// bundled table is selected.
//
// An explicitly configured path is returned even if it does not exist, so
// that loading degrades to an empty table instead of silently switching data.
func ResolveConfusables(flagValue, userConfigValue string) ConfusablesLocation {
	if flagValue != "" {
		return ConfusablesLocation{Path: flagValue, Source: SourceFlag}
	}
	if envValue := os.Getenv(EnvConfusables); envValue != "" {
		return ConfusablesLocation{Path: envValue, Source: SourceEnv}
	}
	if userConfigValue != "" {
		return ConfusablesLocation{Path: expandHome(userConfigValue), Source: SourceUserConfig}
	}

	if path := DefaultConfusablesPath(); path != "" {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return ConfusablesLocation{Path: path, Source: SourceDefault}
		}
	}
	return ConfusablesLocation{Source: SourceBundled}
}

// DefaultConfusablesPath returns ../lib/confusables.txt relative to the
// executable, or "" if the executable cannot be located.
func DefaultConfusablesPath() string {
	exe, err := ExecutableFunc()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), filepath.FromSlash(DefaultConfusablesRelPath))
}

// GetDecodeIDN returns whether punycode decoding is requested through
// TERMINAL_GUARD_DECODE_IDN. The second result is false when the variable
// is unset or invalid, meaning the caller's own default applies.
// Accepts "true", "1", "yes", "on", "false", "0", "no", "off" (case-insensitive).
func GetDecodeIDN() (enabled, set bool) {
	envValue := os.Getenv(EnvDecodeIDN)
	if envValue == "" {
		return false, false
	}

	switch strings.ToLower(envValue) {
	case "true", "1", "yes", "on":
		return true, true
	case "false", "0", "no", "off":
		return false, true
	default:
		fmt.Fprintf(os.Stderr, "Warning: invalid %s value %q, ignoring\n", EnvDecodeIDN, envValue)
		return false, false
	}
}

// Config holds terminal-guard file locations
type Config struct {
	HomeDir    string // $TERMINAL_GUARD_HOME
	ConfigFile string // $TERMINAL_GUARD_HOME/config.toml
}

// DefaultConfig returns the default configuration
func DefaultConfig() (*Config, error) {
	home := os.Getenv(EnvHome)
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		home = filepath.Join(userHome, DefaultHomeDirName)
	}

	return &Config{
		HomeDir:    home,
		ConfigFile: filepath.Join(home, "config.toml"),
	}, nil
}

// EnsureDirectories creates the home directory
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.HomeDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", c.HomeDir, err)
	}
	return nil
}

// expandHome turns a leading "~/" into the user's home directory.
func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}
