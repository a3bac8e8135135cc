package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tsukumogami/terminal-guard/internal/userconfig"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage terminal-guard configuration",
		Long: `Manage terminal-guard configuration settings.

Configuration is stored in $TERMINAL_GUARD_HOME/config.toml
(default ~/.terminal-guard/config.toml).

Available settings:
  confusables  Path to the confusables data file
  decode_idn   Decode punycode (xn--) hostnames (true/false)
  color        Colour warning output: auto, always or never

Examples:
  terminal-guard config get color
  terminal-guard config set decode_idn true
  terminal-guard config list`,
	}

	configGetCmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := userconfig.Load()
			if err != nil {
				return withExitCode(ExitConfig, err)
			}

			value, ok := cfg.Get(args[0])
			if !ok {
				printAvailableKeys(cmd.ErrOrStderr())
				return withExitCode(ExitUsage, fmt.Errorf("unknown config key: %s", args[0]))
			}

			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}

	configSetCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			cfg, err := userconfig.Load()
			if err != nil {
				return withExitCode(ExitConfig, err)
			}

			if err := cfg.Set(key, value); err != nil {
				printAvailableKeys(cmd.ErrOrStderr())
				return withExitCode(ExitConfig, err)
			}

			if err := cfg.Save(); err != nil {
				return withExitCode(ExitConfig, err)
			}

			stored, _ := cfg.Get(key)
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, stored)
			return nil
		},
	}

	configListCmd := &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := userconfig.Load()
			if err != nil {
				return withExitCode(ExitConfig, err)
			}

			for _, k := range userconfig.SortedKeys() {
				value, _ := cfg.Get(k)
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", k, value)
			}
			return nil
		},
	}

	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	return configCmd
}

func printAvailableKeys(w io.Writer) {
	keys := userconfig.AvailableKeys()
	fmt.Fprintf(w, "Available keys:\n")
	for _, k := range userconfig.SortedKeys() {
		fmt.Fprintf(w, "  %s - %s\n", k, keys[k])
	}
	fmt.Fprintln(w)
}
