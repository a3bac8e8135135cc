// Package scan inspects a command line for spoofed hostnames.
//
// A Scanner extracts URLs (and, for curl/wget/git clone command lines, bare
// domain tokens), reduces each to its hostname and reports hostnames that
// contain non-ASCII characters or characters from the confusable table.
//
// The result is a heuristic. An empty warning list does not prove a command
// is safe; it only means none of these checks fired.
package scan

import (
	"strings"

	"github.com/tsukumogami/terminal-guard/internal/confusable"
	"github.com/tsukumogami/terminal-guard/internal/extract"
	"github.com/tsukumogami/terminal-guard/internal/host"
	"github.com/tsukumogami/terminal-guard/internal/log"
)

// Scanner checks command lines against a confusable table. It holds no
// mutable state, so one Scanner may serve any number of goroutines.
type Scanner struct {
	table     *confusable.Table
	urls      *extract.URLExtractor
	tokens    *extract.DomainTokenExtractor
	network   *extract.NetworkCommandDetector
	decodeIDN bool
	logger    log.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithIDNDecoding makes the scanner decode xn-- hostnames and check the
// Unicode form as well.
func WithIDNDecoding(enabled bool) Option {
	return func(s *Scanner) {
		s.decodeIDN = enabled
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(l log.Logger) Option {
	return func(s *Scanner) {
		s.logger = l
	}
}

// New creates a Scanner. A nil table behaves like an empty one.
func New(table *confusable.Table, opts ...Option) *Scanner {
	if table == nil {
		table = confusable.Empty()
	}
	s := &Scanner{
		table:   table,
		urls:    extract.NewURLExtractor(),
		tokens:  extract.NewDomainTokenExtractor(),
		network: extract.NewNetworkCommandDetector(),
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan returns the warnings for command with default options.
func Scan(command string, table *confusable.Table) []Warning {
	return New(table).Scan(command)
}

// Scan returns every warning for command in detection order: all URL
// warnings first, then, if the command runs a network program, all domain
// token warnings. Within one host the non-ASCII warning comes first,
// followed by one homoglyph warning per matching entry in table order.
// Every check runs on every host; nothing short-circuits.
func (s *Scanner) Scan(command string) []Warning {
	var warnings []Warning

	for _, url := range s.urls.Extract(command) {
		h := host.FromURL(url)
		s.logger.Debug("checking url", "url", url, "host", h)
		warnings = append(warnings, s.check(url, h)...)
	}

	if s.network.IsNetworkCommand(command) {
		for _, token := range s.tokens.Extract(command) {
			h := host.FromToken(token)
			s.logger.Debug("checking domain token", "token", token, "host", h)
			warnings = append(warnings, s.check(token, h)...)
		}
	}

	return warnings
}

// check runs the host checks for one URL or token.
func (s *Scanner) check(source, h string) []Warning {
	var warnings []Warning

	if h != "" && host.HasNonASCII(h) {
		warnings = append(warnings, Warning{Kind: NonASCIIHost, Source: source, Host: h})
	}
	warnings = append(warnings, s.homoglyphs(source, h)...)

	if s.decodeIDN {
		warnings = append(warnings, s.checkPunycode(source, h)...)
	}

	return warnings
}

func (s *Scanner) homoglyphs(source, h string) []Warning {
	var warnings []Warning
	for _, e := range s.table.Match(h) {
		entry := e
		warnings = append(warnings, Warning{Kind: Homoglyph, Source: source, Host: h, Entry: &entry})
	}
	return warnings
}

func (s *Scanner) checkPunycode(source, h string) []Warning {
	if !host.HasPunycode(h) {
		return nil
	}

	decoded, err := host.DecodeIDN(h)
	if err != nil {
		s.logger.Debug("skipping undecodable punycode host", "host", h, "error", err)
		return nil
	}
	// DecodeIDN lowercases before decoding
	if decoded == strings.ToLower(h) {
		return nil
	}

	warnings := []Warning{{Kind: PunycodeHost, Source: source, Host: h, Decoded: decoded}}
	return append(warnings, s.homoglyphs(source, decoded)...)
}
