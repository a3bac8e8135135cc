package confusable

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tsukumogami/terminal-guard/internal/log"
)

// maxLineSize bounds a single data line. Real entries are a few dozen bytes.
const maxLineSize = 1024 * 1024

// fieldCount is the number of tab-separated fields a data line must carry.
const fieldCount = 4

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	logger log.Logger
}

// WithLogger sets the logger used to report why a file was not loaded.
func WithLogger(l log.Logger) Option {
	return func(o *loadOptions) {
		o.logger = l
	}
}

// Load reads the table at path. It never fails: an empty path, a missing or
// unreadable file, a directory, a corrupt compressed file, or a read error
// all produce an empty table. Compressed files are recognised by extension
// (see Open).
func Load(path string, opts ...Option) *Table {
	o := loadOptions{logger: log.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger.With("path", path)

	if path == "" {
		logger.Debug("no confusables file configured")
		return Empty()
	}

	rc, err := Open(path)
	if err != nil {
		logger.Debug("confusables file unavailable", "error", err)
		return Empty()
	}
	defer rc.Close()

	t, err := Parse(rc)
	if err != nil {
		logger.Debug("confusables file unreadable", "error", err)
		return Empty()
	}
	t.source = path

	logger.Info("loaded confusables", "entries", t.Len())
	return t
}

// Parse reads the tab-delimited data format from r:
//
//	<character>\t<codepoint-label>\t<latin-equivalent>\t<display-name>
//
// Lines end at "\n", "\r\n" or a lone "\r". Blank lines and lines starting
// with '#' are skipped. Lines with fewer than four fields are dropped
// silently; fields after the fourth are ignored. Surrounding whitespace is
// trimmed from each line before splitting. A line longer than maxLineSize is
// dropped and parsing continues with the next one.
// Only a read failure is reported as an error.
func Parse(r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)

	var entries []Entry
	var line []byte
	tooLong := false

	endLine := func() {
		if !tooLong {
			if e, ok := parseLine(string(line)); ok {
				entries = append(entries, e)
			}
		}
		line = line[:0]
		tooLong = false
	}

	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			endLine()
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read confusables: %w", err)
		}

		switch b {
		case '\n':
			endLine()
		case '\r':
			endLine()
			if next, err := br.Peek(1); err == nil && next[0] == '\n' {
				_, _ = br.ReadByte()
			}
		default:
			if tooLong {
				continue
			}
			if len(line) >= maxLineSize {
				tooLong = true
				line = line[:0]
				continue
			}
			line = append(line, b)
		}
	}

	return &Table{entries: entries}, nil
}

func parseLine(line string) (Entry, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Entry{}, false
	}

	parts := strings.Split(line, "\t")
	if len(parts) < fieldCount {
		return Entry{}, false
	}

	return Entry{
		Char:      parts[0],
		Codepoint: parts[1],
		Latin:     parts[2],
		Name:      parts[3],
	}, true
}
