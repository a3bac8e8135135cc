package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsukumogami/terminal-guard/internal/buildinfo"
	"github.com/tsukumogami/terminal-guard/internal/config"
	"github.com/tsukumogami/terminal-guard/internal/confusable"
	"github.com/tsukumogami/terminal-guard/internal/log"
	"github.com/tsukumogami/terminal-guard/internal/scan"
	"github.com/tsukumogami/terminal-guard/internal/userconfig"
)

// Global flags
var (
	quietFlag   bool
	verboseFlag bool
	debugFlag   bool

	confusablesFlag string
	decodeIDNFlag   bool
	jsonFlag        bool
)

var errNoInput = errors.New("no command text given and stdin is a terminal")

// newRootCmd builds the command tree. Flag variables are reset to their
// defaults each time it is called.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "terminal-guard [command text...]",
		Short: "Check a shell command for spoofed hostnames",
		Long: `terminal-guard inspects a shell command line for hostnames that contain
non-ASCII characters or characters that imitate Latin letters, such as a
Cyrillic "і" in "gіthub.com". Run it before executing a command that
fetches from the network.

Command text is taken from the arguments, or from stdin when none are given.
Flags are only recognized before the command text, so the guarded
command's own flags pass through untouched. Put -- before command text
whose first word is also a terminal-guard subcommand (explain, table,
config, help).

Exit status is 0 when nothing was found and 1 when warnings were printed.

Examples:
  terminal-guard curl -fsSL https://example.com/install.sh
  terminal-guard git clone git@gіthub.com:org/repo.git
  terminal-guard -- table https://exаmple.com
  echo "wget https://exаmple.com/x" | terminal-guard --json`,
		Version:       buildinfo.Long(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetDefault(log.NewCLI(cmd.ErrOrStderr(), determineLogLevel()))
		},
		RunE: runScan,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Show only errors")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Show informational messages")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Show debug output")
	rootCmd.PersistentFlags().StringVar(&confusablesFlag, "confusables", "", "Path to the confusables data file (overrides "+config.EnvConfusables+")")

	rootCmd.Flags().BoolVar(&decodeIDNFlag, "decode-idn", false, "Decode punycode (xn--) hostnames and check the Unicode form")
	rootCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print warnings as a JSON array")

	rootCmd.AddCommand(newExplainCmd())
	rootCmd.AddCommand(newTableCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func main() {
	os.Exit(execute(newRootCmd()))
}

// execute runs rootCmd, prints any error and returns the exit code.
func execute(rootCmd *cobra.Command) int {
	err := rootCmd.Execute()
	if err != nil {
		var ee *exitError
		if !errors.As(err, &ee) || ee.err != nil {
			printError(rootCmd.ErrOrStderr(), err)
		}
	}
	return exitCode(err)
}

// determineLogLevel picks the log level from flags, then environment
// variables. Flags win over the environment; debug wins over verbose and
// verbose over quiet.
func determineLogLevel() slog.Level {
	switch {
	case debugFlag:
		return slog.LevelDebug
	case verboseFlag:
		return slog.LevelInfo
	case quietFlag:
		return slog.LevelError
	}

	switch {
	case isTruthy(os.Getenv(config.EnvDebug)):
		return slog.LevelDebug
	case isTruthy(os.Getenv(config.EnvVerbose)):
		return slog.LevelInfo
	case isTruthy(os.Getenv(config.EnvQuiet)):
		return slog.LevelError
	}

	return slog.LevelWarn
}

func runScan(cmd *cobra.Command, args []string) error {
	text, err := readCommandText(cmd, args)
	if err != nil {
		return err
	}

	userCfg := loadUserConfig()
	table := loadTable(userCfg)

	s := scan.New(table,
		scan.WithIDNDecoding(decodeIDNEnabled(cmd, userCfg)),
		scan.WithLogger(log.Default()),
	)
	warnings := s.Scan(text)

	out := cmd.OutOrStdout()
	if jsonFlag {
		err = printJSON(out, warningsJSON(warnings))
	} else {
		printWarnings(out, warnings, useColor(out, userCfg.Color))
	}
	if err != nil {
		return err
	}

	if len(warnings) > 0 {
		return withExitCode(ExitWarnings, nil)
	}
	return nil
}

// readCommandText joins args with single spaces. With no args it reads all
// of stdin, refusing to block on an interactive terminal.
func readCommandText(cmd *cobra.Command, args []string) (string, error) {
	if text := strings.TrimSpace(strings.Join(args, " ")); text != "" {
		return text, nil
	}

	in := cmd.InOrStdin()
	if isFileTerminal(in) {
		return "", withExitCode(ExitUsage, fmt.Errorf("%w; pass the command as arguments or pipe it in", errNoInput))
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// loadUserConfig returns the user config file, falling back to defaults
// when it cannot be read. A broken settings file must not disable the guard.
func loadUserConfig() *userconfig.Config {
	cfg, err := userconfig.Load()
	if err != nil {
		log.Default().Warn("ignoring user config", "error", err)
		return userconfig.DefaultConfig()
	}
	return cfg
}

// loadTable resolves and loads the confusable table. It never fails; an
// unreadable file gives an empty table.
func loadTable(userCfg *userconfig.Config) *confusable.Table {
	loc := config.ResolveConfusables(confusablesFlag, userCfg.Confusables)
	logger := log.Default()
	logger.Debug("resolved confusables location", "path", loc.Path, "source", string(loc.Source))

	if loc.Source == config.SourceBundled {
		return confusable.Bundled()
	}
	return confusable.Load(loc.Path, confusable.WithLogger(logger))
}

// decodeIDNEnabled applies flag, then environment, then config file.
func decodeIDNEnabled(cmd *cobra.Command, userCfg *userconfig.Config) bool {
	if f := cmd.Flags().Lookup("decode-idn"); f != nil && f.Changed {
		return decodeIDNFlag
	}
	if enabled, set := config.GetDecodeIDN(); set {
		return enabled
	}
	return userCfg.DecodeIDN
}
