// Package confusable holds the table of characters that visually mimic Latin
// letters, as used by homoglyph (typosquatting) hostnames.
//
// The table is built once from a tab-delimited data file and never mutated
// afterwards. Loading is best-effort: an absent or unreadable file yields an
// empty table rather than an error, so scanning always proceeds.
package confusable

import (
	"fmt"
	"strings"
)

// Entry is a single confusable character and the Latin text it impersonates.
type Entry struct {
	// Char is the suspicious character, treated as an atomic string unit.
	Char string

	// Codepoint is a display label such as "U+0430". It is never parsed.
	Codepoint string

	// Latin is the ASCII character or short string being impersonated.
	Latin string

	// Name is a human-readable identity, e.g. "CYRILLIC SMALL LETTER A".
	Name string
}

// String renders the entry in the data file format.
func (e Entry) String() string {
	return strings.Join([]string{e.Char, e.Codepoint, e.Latin, e.Name}, "\t")
}

// Describe returns the short form used in warnings: 'а' (U+0430) mimics 'a' (CYRILLIC SMALL LETTER A).
func (e Entry) Describe() string {
	return fmt.Sprintf("'%s' (%s) mimics '%s' (%s)", e.Char, e.Codepoint, e.Latin, e.Name)
}

// Table is an ordered, read-only sequence of entries.
// Duplicate characters are kept; lookups report every matching entry.
type Table struct {
	entries []Entry
	source  string
}

// NewTable builds a table from entries, preserving their order.
// The slice is copied so later changes by the caller have no effect.
func NewTable(entries []Entry) *Table {
	t := &Table{entries: make([]Entry, len(entries))}
	copy(t.entries, entries)
	return t
}

// Empty returns a table with no entries.
func Empty() *Table {
	return &Table{}
}

// Len returns the number of entries. A nil table has none.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Source returns where the table was loaded from, or "" when built in memory.
func (t *Table) Source() string {
	if t == nil {
		return ""
	}
	return t.source
}

// Entries returns a copy of the entries in load order.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Match returns, in table order, every entry whose character occurs anywhere
// in s. There is no short-circuiting and no deduplication.
func (t *Table) Match(s string) []Entry {
	if t == nil || s == "" {
		return nil
	}
	var matches []Entry
	for _, e := range t.entries {
		if strings.Contains(s, e.Char) {
			matches = append(matches, e)
		}
	}
	return matches
}

// Latinize replaces every confusable character in s with its Latin
// equivalent, giving the text a reader would most likely see. When several
// entries share a character the first one in table order wins.
func (t *Table) Latinize(s string) string {
	if t.Len() == 0 {
		return s
	}
	pairs := make([]string, 0, 2*len(t.entries))
	for _, e := range t.entries {
		pairs = append(pairs, e.Char, e.Latin)
	}
	return strings.NewReplacer(pairs...).Replace(s)
}

// Lookup returns every entry whose character is exactly ch.
func (t *Table) Lookup(ch string) []Entry {
	if t == nil {
		return nil
	}
	var matches []Entry
	for _, e := range t.entries {
		if e.Char == ch {
			matches = append(matches, e)
		}
	}
	return matches
}
