package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/katalvlaran/valveplan/core"
)

// Format selects a listing parser.
type Format int

const (
	// FormatText is the line-oriented listing.
	FormatText Format = iota
	// FormatJSON is the JSON document.
	FormatJSON
)

// Parse reads a listing in the given format.
func Parse(r io.Reader, f Format) (*core.Graph, error) {
	if f == FormatJSON {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("Parse: %w", err)
		}

		return ParseJSON(data)
	}

	return ParseText(r)
}

// decompress wraps r according to the outermost extension of name and
// returns the reader plus the name with that extension removed.
func decompress(name string, r io.Reader) (io.Reader, func(), string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	base := strings.TrimSuffix(name, filepath.Ext(name))
	switch ext {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, "", err
		}

		return zr, func() { _ = zr.Close() }, base, nil
	case ".zst":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, "", err
		}

		return zr, zr.Close, base, nil
	case ".lz4":
		return lz4.NewReader(r), func() {}, base, nil
	default:
		return r, func() {}, name, nil
	}
}

// FormatOf infers the listing format from a (decompressed) file name.
func FormatOf(name string) Format {
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return FormatJSON
	}

	return FormatText
}

// Open reads and parses the listing at path.
func Open(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Open: %w", err)
	}
	defer f.Close()

	r, closeFn, name, err := decompress(filepath.Base(path), f)
	if err != nil {
		return nil, fmt.Errorf("Open(%s): %w", path, err)
	}
	defer closeFn()

	g, err := Parse(r, FormatOf(name))
	if err != nil {
		return nil, fmt.Errorf("Open(%s): %w", path, err)
	}

	return g, nil
}
