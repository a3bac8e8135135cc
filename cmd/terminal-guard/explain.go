package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tsukumogami/terminal-guard/internal/confusable"
	"github.com/tsukumogami/terminal-guard/internal/host"
)

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain [text...]",
		Short: "Describe every non-ASCII character in some text",
		Long: `List each non-ASCII character in the text with its code point, Unicode
name and the Latin letter it imitates according to the confusable table.
When compatibility normalization (NFKC) changes the text, the normalized
form is shown as well.

Text is taken from the arguments, or from stdin when none are given.
Exit status is 1 when any non-ASCII character was found.

Examples:
  terminal-guard explain gіthub.com
  echo "ｅxample.com" | terminal-guard explain`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readCommandText(cmd, args)
			if err != nil {
				return err
			}
			table := loadTable(loadUserConfig())
			if explain(cmd.OutOrStdout(), strings.TrimRight(text, "\r\n"), table) {
				return withExitCode(ExitWarnings, nil)
			}
			return nil
		},
	}
}

// explain writes the character report for text and reports whether any
// non-ASCII character was found.
func explain(w io.Writer, text string, table *confusable.Table) bool {
	chars := host.NonASCII(text)
	if len(chars) == 0 {
		fmt.Fprintln(w, "No non-ASCII characters.")
		return false
	}

	for _, c := range chars {
		name := c.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(w, "%-8s %q at byte %d: %s\n", c.Codepoint, c.Text, c.Offset, name)
		for _, e := range table.Lookup(c.Text) {
			fmt.Fprintf(w, "         mimics %q (%s)\n", e.Latin, e.Name)
		}
	}

	if latin := table.Latinize(text); latin != text {
		fmt.Fprintf(w, "Reads as: %s\n", latin)
	}
	if folded := host.Fold(text); folded != text {
		fmt.Fprintf(w, "NFKC:     %s\n", folded)
	}
	return true
}
