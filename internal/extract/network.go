package extract

import "regexp"

// NetworkCommandDetector recognises command lines that fetch from the
// network: curl, wget and git clone.
type NetworkCommandDetector struct {
	pattern *regexp.Regexp
}

// NewNetworkCommandDetector returns a detector with its pattern compiled.
func NewNetworkCommandDetector() *NetworkCommandDetector {
	return &NetworkCommandDetector{
		pattern: regexp.MustCompile(
			`(?:^|[` + space + `])(?:curl|wget|git[` + space + `]+clone)(?:[` + space + `]|$)`,
		),
	}
}

// IsNetworkCommand reports whether text contains curl, wget or "git clone"
// as a whole word, bounded by the start of text or whitespace on the left and
// whitespace or the end of text on the right.
func (d *NetworkCommandDetector) IsNetworkCommand(text string) bool {
	return d.pattern.MatchString(text)
}
