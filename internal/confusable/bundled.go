package confusable

import (
	"bytes"
	_ "embed"
)

// BundledSource is the Source of the table returned by Bundled.
const BundledSource = "(bundled)"

//go:embed data/confusables.txt
var bundledData []byte

// Bundled returns the small table compiled into the binary. It covers the
// Cyrillic, Greek, Armenian and fullwidth letters most often seen in
// spoofed hostnames and is used when no data file is configured.
func Bundled() *Table {
	t, err := Parse(bytes.NewReader(bundledData))
	if err != nil {
		return Empty()
	}
	t.source = BundledSource
	return t
}
