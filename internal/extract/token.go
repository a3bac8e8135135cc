package extract

import (
	"regexp"
	"strings"
)

// tokenPunctuation is trimmed from both ends of every token.
const tokenPunctuation = `"',;`

// DomainTokenExtractor keeps the whitespace-separated tokens of a command
// line that look like domain names.
type DomainTokenExtractor struct {
	shape *regexp.Regexp
}

// NewDomainTokenExtractor returns an extractor with its pattern compiled.
func NewDomainTokenExtractor() *DomainTokenExtractor {
	return &DomainTokenExtractor{
		// One or more letter/digit/hyphen labels, each followed by a dot, and
		// a final label of at least two letters. The match is unanchored, so
		// "gіthub.com" qualifies through its "thub.com" tail.
		shape: regexp.MustCompile(`(?:[A-Za-z0-9-]+\.)+[A-Za-z]{2,}`),
	}
}

// Extract splits text on whitespace and returns the tokens that look like a
// domain, in order. Each returned token has surrounding quotes, commas and
// semicolons trimmed and a leading http://, https:// or ssh:// removed.
//
// Version strings such as "v1.2.rc" also qualify. That is accepted: a token
// only produces a warning if its host fails the ASCII or confusable checks.
func (e *DomainTokenExtractor) Extract(text string) []string {
	var tokens []string
	for _, field := range Fields(text) {
		token := Normalize(field)
		if e.shape.MatchString(token) {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// Normalize trims the punctuation and scheme prefixes from a single token.
func Normalize(token string) string {
	token = strings.Trim(token, tokenPunctuation)
	if rest, ok := strings.CutPrefix(token, "http://"); ok {
		token = rest
	} else if rest, ok := strings.CutPrefix(token, "https://"); ok {
		token = rest
	}
	return strings.TrimPrefix(token, "ssh://")
}
