// Package importer reads dictionary source files into rows for the storage tables.
package importer

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
)

// Source is an opened import file with transparent decompression.
type Source struct {
	io.Reader
	file         *os.File
	decompressor io.Closer
}

// Open opens path for reading. Files ending in .gz or .xz are decompressed on the fly.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	src := &Source{Reader: f, file: f}
	switch {
	case strings.HasSuffix(path, ".xz"):
		xzr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to read xz stream: %w", err)
		}
		src.Reader = xzr
	case strings.HasSuffix(path, ".gz"):
		gzr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to read gzip stream: %w", err)
		}
		src.Reader = gzr
		src.decompressor = gzr
	}
	return src, nil
}

// Close closes the decompressor, if any, and the underlying file.
func (s *Source) Close() error {
	if s.decompressor != nil {
		if err := s.decompressor.Close(); err != nil {
			s.file.Close()
			return err
		}
	}
	return s.file.Close()
}
