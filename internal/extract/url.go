package extract

import "regexp"

// URLExtractor finds literal http:// and https:// URLs in text.
type URLExtractor struct {
	pattern *regexp.Regexp
}

// NewURLExtractor returns an extractor with its pattern compiled.
func NewURLExtractor() *URLExtractor {
	return &URLExtractor{
		// The scheme is case-sensitive. A URL runs until whitespace, a quote
		// or an angle bracket.
		pattern: regexp.MustCompile(`https?://[^` + space + `"'<>]+`),
	}
}

// Extract returns every URL in text, left to right. Empty input yields nil.
func (e *URLExtractor) Extract(text string) []string {
	if text == "" {
		return nil
	}
	return e.pattern.FindAllString(text, -1)
}
