package host

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/runenames"
)

// Char describes one non-ASCII character found in a string.
type Char struct {
	// Offset is the byte offset of the character in the input.
	Offset int
	// Text is the character itself, or the offending byte for invalid UTF-8.
	Text string
	// Codepoint is the "U+XXXX" label.
	Codepoint string
	// Name is the Unicode character name, if known.
	Name string
}

// NonASCII lists every non-ASCII character of s in order of appearance.
func NonASCII(s string) []Char {
	var chars []Char
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r < utf8.RuneSelf {
			i += size
			continue
		}

		c := Char{Offset: i, Text: s[i : i+size]}
		if r == utf8.RuneError && size == 1 {
			c.Codepoint = fmt.Sprintf("0x%02X", s[i])
			c.Name = "INVALID UTF-8 BYTE"
		} else {
			c.Codepoint = Codepoint(r)
			c.Name = runenames.Name(r)
		}
		chars = append(chars, c)
		i += size
	}
	return chars
}

// Codepoint formats r as "U+0430".
func Codepoint(r rune) string {
	return fmt.Sprintf("U+%04X", r)
}

// Fold returns the NFKC compatibility form of s. Fullwidth and other
// compatibility letters fold to ASCII; cross-script homoglyphs such as
// Cyrillic "а" do not.
func Fold(s string) string {
	return norm.NFKC.String(s)
}
