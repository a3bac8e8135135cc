package confusable

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	lzip "github.com/sorairolake/lzip-go"
	"github.com/ulikunitz/xz"
)

// Format names the encoding of a data file.
type Format string

const (
	FormatPlain Format = "plain"
	FormatGzip  Format = "gzip"
	FormatZstd  Format = "zstd"
	FormatXz    Format = "xz"
	FormatLzip  Format = "lzip"
)

// DetectFormat picks the encoding of a data file from its extension.
// Unknown extensions are read as plain text.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return FormatGzip
	case ".zst":
		return FormatZstd
	case ".xz":
		return FormatXz
	case ".lz":
		return FormatLzip
	default:
		return FormatPlain
	}
}

// Open opens a data file and returns a reader of its decoded text.
// Directories are rejected so they are never mistaken for empty data.
func Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open confusables file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat confusables file: %w", err)
	}
	if info.IsDir() {
		file.Close()
		return nil, fmt.Errorf("confusables path is a directory: %s", path)
	}

	rc, err := decoder(DetectFormat(path), file)
	if err != nil {
		file.Close()
		return nil, err
	}
	return rc, nil
}

// decoder wraps file according to format. Closing the result closes file.
func decoder(format Format, file *os.File) (io.ReadCloser, error) {
	switch format {
	case FormatGzip:
		gzr, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return &stackedReader{Reader: gzr, closers: []func() error{gzr.Close, file.Close}}, nil

	case FormatZstd:
		zr, err := zstd.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return &stackedReader{Reader: zr, closers: []func() error{noErr(zr.Close), file.Close}}, nil

	case FormatXz:
		xzr, err := xz.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return &stackedReader{Reader: xzr, closers: []func() error{file.Close}}, nil

	case FormatLzip:
		lr, err := lzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("failed to create lzip reader: %w", err)
		}
		return &stackedReader{Reader: lr, closers: []func() error{file.Close}}, nil

	default:
		return file, nil
	}
}

// stackedReader reads from a decompressor and closes every layer in order.
type stackedReader struct {
	io.Reader
	closers []func() error
}

func (s *stackedReader) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func noErr(f func()) func() error {
	return func() error {
		f()
		return nil
	}
}
