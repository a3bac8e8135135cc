// Package userconfig provides user configuration management for terminal-guard.
// Configuration is stored in $TERMINAL_GUARD_HOME/config.toml and can be
// modified via the `terminal-guard config` command.
package userconfig

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tsukumogami/terminal-guard/internal/config"
)

// Color modes for warning output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents user-configurable settings.
type Config struct {
	// Confusables is the path of the confusables data file. Empty means the
	// default location or the bundled table.
	Confusables string `toml:"confusables,omitempty"`

	// DecodeIDN enables punycode hostname decoding.
	DecodeIDN bool `toml:"decode_idn"`

	// Color selects coloured warning output: auto, always or never.
	Color string `toml:"color"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Color: ColorAuto,
	}
}

// Load reads the config file and returns the configuration.
// Returns default values if the file doesn't exist.
// Returns an error only for file reading or parsing issues, not missing files.
func Load() (*Config, error) {
	cfg, err := config.DefaultConfig()
	if err != nil {
		return DefaultConfig(), nil // Silently use defaults
	}

	return loadFromPath(cfg.ConfigFile)
}

// loadFromPath reads config from a specific file path (for testing).
func loadFromPath(path string) (*Config, error) {
	userCfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return userCfg, nil // File doesn't exist, use defaults
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if _, err := toml.Decode(string(data), userCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := validateColor(userCfg.Color); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return userCfg, nil
}

// Save writes the configuration to the config file.
func (c *Config) Save() error {
	cfg, err := config.DefaultConfig()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	return c.saveToPath(cfg.ConfigFile)
}

// saveToPath writes config to a specific file path (for testing). The
// directory must already exist.
func (c *Config) saveToPath(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Get returns the value of a config key as a string.
// Returns empty string and false if the key doesn't exist.
func (c *Config) Get(key string) (string, bool) {
	switch strings.ToLower(key) {
	case "confusables":
		return c.Confusables, true
	case "decode_idn":
		return strconv.FormatBool(c.DecodeIDN), true
	case "color":
		return c.Color, true
	default:
		return "", false
	}
}

// Set updates a config value from a string.
// Returns an error if the key doesn't exist or the value is invalid.
func (c *Config) Set(key, value string) error {
	switch strings.ToLower(key) {
	case "confusables":
		c.Confusables = value
		return nil
	case "decode_idn":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for decode_idn: must be true or false")
		}
		c.DecodeIDN = b
		return nil
	case "color":
		v := strings.ToLower(value)
		if err := validateColor(v); err != nil {
			return err
		}
		c.Color = v
		return nil
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
}

func validateColor(v string) error {
	switch v {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid value for color: must be auto, always or never")
	}
}

// AvailableKeys returns a list of all configurable keys with descriptions.
func AvailableKeys() map[string]string {
	return map[string]string{
		"confusables": "Path to the confusables data file (plain, .gz, .zst, .xz or .lz)",
		"decode_idn":  "Decode punycode (xn--) hostnames and check the Unicode form (true/false)",
		"color":       "Colour warning output: auto, always or never",
	}
}

// SortedKeys returns the configurable keys in alphabetical order.
func SortedKeys() []string {
	keys := make([]string, 0, len(AvailableKeys()))
	for k := range AvailableKeys() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
