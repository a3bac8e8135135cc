package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/tsukumogami/terminal-guard/internal/scan"
	"github.com/tsukumogami/terminal-guard/internal/userconfig"
)

// Warning colours by kind
var (
	nonASCIIColor  = lipgloss.Color("#E5C07B")
	homoglyphColor = lipgloss.Color("#E06C75")
	punycodeColor  = lipgloss.Color("#C678DD")
)

// warningJSON is the --json shape of a scan.Warning.
type warningJSON struct {
	Kind      string `json:"kind"`
	Source    string `json:"source"`
	Host      string `json:"host"`
	Char      string `json:"char,omitempty"`
	Codepoint string `json:"codepoint,omitempty"`
	Latin     string `json:"latin,omitempty"`
	Name      string `json:"name,omitempty"`
	Decoded   string `json:"decoded,omitempty"`
	Message   string `json:"message"`
}

func warningsJSON(warnings []scan.Warning) []warningJSON {
	out := make([]warningJSON, 0, len(warnings))
	for _, w := range warnings {
		j := warningJSON{
			Kind:    w.Kind.String(),
			Source:  w.Source,
			Host:    w.Host,
			Decoded: w.Decoded,
			Message: w.String(),
		}
		if w.Entry != nil {
			j.Char = w.Entry.Char
			j.Codepoint = w.Entry.Codepoint
			j.Latin = w.Entry.Latin
			j.Name = w.Entry.Name
		}
		out = append(out, j)
	}
	return out
}

// useColor decides whether warnings written to w are coloured. "auto"
// colours only a terminal, and only when NO_COLOR is unset.
func useColor(w io.Writer, mode string) bool {
	switch mode {
	case userconfig.ColorAlways:
		return true
	case userconfig.ColorNever:
		return false
	}
	return os.Getenv("NO_COLOR") == "" && isFileTerminal(w)
}

// newRenderer returns a lipgloss renderer for w. Forced colour on a writer
// that is not a terminal gets the basic ANSI profile.
func newRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if r.ColorProfile() == termenv.Ascii {
		r.SetColorProfile(termenv.ANSI)
	}
	return r
}

// printWarnings writes one line per warning.
func printWarnings(w io.Writer, warnings []scan.Warning, color bool) {
	if !color {
		for _, line := range scan.Lines(warnings) {
			fmt.Fprintln(w, line)
		}
		return
	}

	r := newRenderer(w)
	styles := map[scan.Kind]lipgloss.Style{
		scan.NonASCIIHost: r.NewStyle().Foreground(nonASCIIColor),
		scan.Homoglyph:    r.NewStyle().Foreground(homoglyphColor).Bold(true),
		scan.PunycodeHost: r.NewStyle().Foreground(punycodeColor),
	}
	for _, warn := range warnings {
		fmt.Fprintln(w, styles[warn.Kind].Render(warn.String()))
	}
}
