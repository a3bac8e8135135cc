// Package host reduces URLs and domain-like tokens to a bare hostname.
//
// The functions here are plain string cuts, not a URL parser. They accept
// any input, including malformed and non-UTF-8 text, and never fail.
package host

import (
	"strings"
	"unicode/utf8"
)

// FromURL returns the hostname of url. The cuts happen in a fixed order:
//
//  1. a leading "<letters>://" scheme is removed
//  2. the rest is truncated at the first '/', then '?', then '#'
//  3. everything up to and including the first '@' is dropped (userinfo)
//  4. everything from the first ':' is dropped (port)
//
// The result may be empty.
func FromURL(url string) string {
	h := stripScheme(url)
	h = cutAt(h, "/")
	h = cutAt(h, "?")
	h = cutAt(h, "#")
	h = afterFirst(h, "@")
	return cutAt(h, ":")
}

// FromToken returns the hostname of a bare domain-like token such as
// "git@github.com:org/repo". Userinfo is dropped first, then the token is
// truncated at the first '/' and then at the first ':'. Any scheme must
// already have been removed by the caller.
func FromToken(token string) string {
	h := afterFirst(token, "@")
	h = cutAt(h, "/")
	return cutAt(h, ":")
}

// HasNonASCII reports whether s contains a character above U+007F.
// Bytes that are not valid UTF-8 count as non-ASCII.
func HasNonASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return true
		}
	}
	return false
}

// stripScheme removes a leading run of ASCII letters followed by "://".
func stripScheme(s string) string {
	i := 0
	for i < len(s) && isASCIILetter(s[i]) {
		i++
	}
	if i > 0 && strings.HasPrefix(s[i:], "://") {
		return s[i+len("://"):]
	}
	return s
}

func isASCIILetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func cutAt(s, sep string) string {
	before, _, _ := strings.Cut(s, sep)
	return before
}

func afterFirst(s, sep string) string {
	if _, after, found := strings.Cut(s, sep); found {
		return after
	}
	return s
}
