package reporting

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spboyer/filmtop/internal/models"
)

// Format controls how scores are rendered.
type Format struct {
	// Precision is the number of fractional digits. A negative value selects
	// the shortest representation that round-trips, always with at least one
	// fractional digit (9 -> "9.0").
	Precision int
}

// NaturalFormat is the default score format.
var NaturalFormat = Format{Precision: -1}

// FormatScore renders score according to f.
func FormatScore(score float64, f Format) string {
	if f.Precision >= 0 {
		return strconv.FormatFloat(score, 'f', f.Precision, 64)
	}
	s := strconv.FormatFloat(score, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// FormatEntry renders one output line without the trailing newline.
func FormatEntry(e models.RankedEntry, f Format) string {
	return e.Title + ", " + FormatScore(e.Score, f)
}

// WriteTop writes entries to path as "<title>, <score>" lines, replacing the
// contents of any existing file. Symlinks are followed. A regular file is
// written to a temporary file beside it first and renamed into place, so a
// failed write leaves the previous content untouched and the permissions are
// kept. Other targets such as devices or pipes are written directly.
func WriteTop(entries []models.RankedEntry, path string, f Format) error {
	target, perm := path, os.FileMode(0o644)
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		info, err := os.Stat(resolved)
		if err != nil {
			return &models.IOError{Op: "stat", Path: path, Err: err}
		}
		if !info.Mode().IsRegular() {
			return writeDirect(entries, path, f)
		}
		target, perm = resolved, info.Mode().Perm()
	}

	if err := writeAtomic(entries, target, perm, f); err != nil {
		var ioErr *models.IOError
		if errors.As(err, &ioErr) {
			ioErr.Path = path
		}
		return err
	}

	slog.Debug("ranking written", "path", path, "target", target, "entries", len(entries))
	return nil
}

func writeAtomic(entries []models.RankedEntry, path string, perm os.FileMode, f Format) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &models.IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := writeEntries(tmp, entries, path, f); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return &models.IOError{Op: "chmod", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &models.IOError{Op: "close", Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		var linkErr *os.LinkError
		if errors.As(err, &linkErr) {
			err = linkErr.Err
		}
		return &models.IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}

func writeDirect(entries []models.RankedEntry, path string, f Format) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return &models.IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = &models.IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	if err := writeEntries(out, entries, path, f); err != nil {
		return err
	}
	slog.Debug("ranking written", "path", path, "entries", len(entries))
	return nil
}

func writeEntries(w io.Writer, entries []models.RankedEntry, path string, f Format) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintln(bw, FormatEntry(e, f)); err != nil {
			return &models.IOError{Op: "write", Path: path, Err: err}
		}
	}
	if err := bw.Flush(); err != nil {
		return &models.IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
