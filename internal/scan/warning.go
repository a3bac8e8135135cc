package scan

import (
	"fmt"

	"github.com/tsukumogami/terminal-guard/internal/confusable"
)

// Kind classifies a warning.
type Kind int

const (
	// NonASCIIHost means the hostname contains a character above U+007F.
	NonASCIIHost Kind = iota + 1
	// Homoglyph means the hostname contains a character from the confusable table.
	Homoglyph
	// PunycodeHost means an xn-- hostname decodes to something other than
	// its ASCII form.
	PunycodeHost
)

func (k Kind) String() string {
	switch k {
	case NonASCIIHost:
		return "non-ascii-host"
	case Homoglyph:
		return "homoglyph"
	case PunycodeHost:
		return "punycode-host"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Warning is one finding. It always names the URL or token that triggered
// it; homoglyph warnings also carry the matching table entry.
type Warning struct {
	Kind Kind

	// Source is the full URL or the normalized token.
	Source string

	// Host is the hostname the check ran against. For homoglyphs found after
	// punycode decoding it is the decoded form.
	Host string

	// Entry is set for Homoglyph warnings only.
	Entry *confusable.Entry

	// Decoded is set for PunycodeHost warnings only.
	Decoded string
}

// String renders the warning as a single human-readable line. Hosts are
// quoted verbatim, without escaping.
func (w Warning) String() string {
	switch w.Kind {
	case NonASCIIHost:
		return fmt.Sprintf("Non-ASCII hostname in %s: \"%s\"", w.Source, w.Host)
	case Homoglyph:
		return fmt.Sprintf("Homoglyph in host from %s: %s", w.Source, w.Entry.Describe())
	case PunycodeHost:
		return fmt.Sprintf("Punycode hostname in %s: \"%s\" decodes to \"%s\"", w.Source, w.Host, w.Decoded)
	default:
		return fmt.Sprintf("%s in %s", w.Kind, w.Source)
	}
}

// Lines renders each warning with String, preserving order.
func Lines(warnings []Warning) []string {
	lines := make([]string, 0, len(warnings))
	for _, w := range warnings {
		lines = append(lines, w.String())
	}
	return lines
}
