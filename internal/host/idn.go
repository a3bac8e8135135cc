package host

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/idna"
)

const acePrefix = "xn--"

// ErrNoPunycode is returned by DecodeIDN for hostnames without an "xn--" label.
var ErrNoPunycode = errors.New("hostname has no punycode label")

// HasPunycode reports whether any dot-separated label of h starts with
// "xn--", ignoring case.
func HasPunycode(h string) bool {
	for _, label := range strings.Split(strings.ToLower(h), ".") {
		if strings.HasPrefix(label, acePrefix) {
			return true
		}
	}
	return false
}

// DecodeIDN converts the punycode labels of h to Unicode. Only the raw
// punycode transformation is applied, without IDNA mapping or validation,
// so that what is returned is exactly what a resolver would display.
func DecodeIDN(h string) (string, error) {
	if !HasPunycode(h) {
		return "", ErrNoPunycode
	}
	decoded, err := idna.Punycode.ToUnicode(strings.ToLower(h))
	if err != nil {
		return "", fmt.Errorf("failed to decode %q: %w", h, err)
	}
	return decoded, nil
}
