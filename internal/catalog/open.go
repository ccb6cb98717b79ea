package catalog

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/spboyer/filmtop/internal/models"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Open opens a catalog file for reading. Files ending in .gz or .zst are
// decompressed on the fly, and a leading byte-order mark is consumed so the
// header line parses cleanly.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &models.IOError{Op: "open", Path: path, Err: err}
	}

	rc := &readCloser{Reader: f, closers: []io.Closer{f}}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, &models.IOError{Op: "open", Path: path, Err: err}
		}
		rc.Reader = zr
		rc.closers = append([]io.Closer{zr}, rc.closers...)
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, &models.IOError{Op: "open", Path: path, Err: err}
		}
		dec := zr.IOReadCloser()
		rc.Reader = dec
		rc.closers = append([]io.Closer{dec}, rc.closers...)
	}

	// UTF-8 input passes through undecoded; parseRow rejects invalid bytes.
	rc.Reader = transform.NewReader(rc.Reader, unicode.BOMOverride(transform.Nop))
	return rc, nil
}

// readCloser closes every layer of a decoding stack, innermost reader last.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var errs []error
	for _, c := range r.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
