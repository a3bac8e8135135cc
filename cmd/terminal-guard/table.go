package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/tsukumogami/terminal-guard/internal/confusable"
)

var (
	tableBorderColor = lipgloss.Color("#3D34E0")
	tableHeaderColor = lipgloss.Color("#00BBBE")
)

func newTableCmd() *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the confusable table in use",
		Long: `Print the confusable table that a scan would use, after applying
--confusables, TERMINAL_GUARD_CONFUSABLES, the config file and the default
location. Output is the tab-separated data file format unless stdout is a
terminal, where a formatted table is drawn.

Examples:
  terminal-guard table
  terminal-guard table --plain > confusables.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := loadTable(loadUserConfig())
			out := cmd.OutOrStdout()
			if plain || !isFileTerminal(out) {
				writeTablePlain(out, t)
				return nil
			}
			writeTableStyled(out, t)
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "Always print the tab-separated data format")
	return cmd
}

// writeTablePlain writes t in the format Parse reads, preceded by a comment
// naming its source.
func writeTablePlain(w io.Writer, t *confusable.Table) {
	fmt.Fprintf(w, "# source: %s\n", displaySource(t))
	for _, e := range t.Entries() {
		fmt.Fprintln(w, e.String())
	}
}

func writeTableStyled(w io.Writer, t *confusable.Table) {
	r := newRenderer(w)
	headerStyle := r.NewStyle().Bold(true).Padding(0, 1).Foreground(tableHeaderColor)
	cellStyle := r.NewStyle().Padding(0, 1)

	rows := make([][]string, 0, t.Len())
	for _, e := range t.Entries() {
		rows = append(rows, []string{e.Char, e.Codepoint, e.Latin, e.Name})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(tableBorderColor)).
		Headers("Char", "Code point", "Latin", "Name").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	fmt.Fprintln(w, tbl.Render())
	fmt.Fprintf(w, "%d entries from %s\n", t.Len(), displaySource(t))
}

func displaySource(t *confusable.Table) string {
	if src := t.Source(); src != "" {
		return src
	}
	return "(none)"
}
