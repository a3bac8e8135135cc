// Package extract finds network destinations in a shell command line:
// literal http(s) URLs, bare domain-like tokens, and whether the line runs a
// network-fetching program at all.
//
// Matching is heuristic and byte oriented. Nothing here validates URL or
// domain grammar; the goal is to miss as few spoofed hosts as possible.
package extract

import (
	"strings"
	"unicode"
)

// space is the whitespace class shared by every pattern in this package.
// It covers ASCII whitespace, the Unicode separator categories, NEL and the
// information separators U+001C..U+001F.
const space = `\s\v\p{Z}\x{85}\x{1c}-\x{1f}`

// isSpace is the rune form of space.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Fields splits text on runs of whitespace, the same way token extraction does.
func Fields(text string) []string {
	return strings.FieldsFunc(text, isSpace)
}
