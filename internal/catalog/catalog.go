// Package catalog loads the semicolon-delimited film catalog.
//
// The first line of a catalog is a header and is discarded. Every following
// line holds exactly twelve fields separated by ';'. There is no quoting or
// escaping, so a field containing ';' cannot be represented.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spboyer/filmtop/internal/models"
)

// Separator is the field delimiter of a catalog row.
const Separator = ";"

// maxLineSize bounds a single catalog line. Descriptions are free text and
// routinely exceed bufio's 64 KiB default on scraped catalogs.
const maxLineSize = 1 << 20

var errLineTooLong = fmt.Errorf("line exceeds %d bytes", maxLineSize)

// Options controls how a catalog is loaded.
type Options struct {
	// MinYear excludes films released before it. Zero keeps everything.
	MinYear int

	// Lenient skips malformed rows instead of failing the load.
	Lenient bool
}

// Result is the outcome of LoadWithOptions.
type Result struct {
	Films []models.Film

	// Total is the number of data rows read, header excluded.
	Total int

	// Filtered counts well-formed rows excluded by MinYear.
	Filtered int

	// Skipped holds the rows dropped in lenient mode.
	Skipped []*models.ParseError
}

// Load reads the catalog at path and returns the films released in or after
// minYear, in file order. The first malformed row fails the load.
func Load(path string, minYear int) ([]models.Film, error) {
	res, err := LoadWithOptions(path, Options{MinYear: minYear})
	if err != nil {
		return nil, err
	}
	return res.Films, nil
}

// LoadWithOptions reads the catalog at path.
func LoadWithOptions(path string, opts Options) (*Result, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close() //nolint:errcheck

	lr := newLineReader(rc)
	if _, err := lr.next(); err != nil {
		switch {
		case errors.Is(err, io.EOF):
			return nil, &models.ParseError{Path: path, Line: 1, Err: errors.New("empty catalog (no header row)")}
		case errors.Is(err, errLineTooLong):
			return nil, &models.ParseError{Path: path, Line: 1, Err: err}
		}
		return nil, &models.IOError{Op: "read", Path: path, Err: err}
	}

	res := &Result{}
	for lineNo := 2; ; lineNo++ {
		raw, err := lr.next()
		if errors.Is(err, io.EOF) {
			break
		}

		var (
			film models.Film
			keep bool
		)
		switch {
		case errors.Is(err, errLineTooLong):
			err = &models.ParseError{Err: err}
		case err != nil:
			return nil, &models.IOError{Op: "read", Path: path, Err: err}
		default:
			line := strings.TrimSpace(raw)
			if line == "" {
				continue
			}
			film, keep, err = parseRow(line, opts.MinYear)
		}
		res.Total++

		if err != nil {
			var pe *models.ParseError
			if !errors.As(err, &pe) {
				return nil, err
			}
			pe.Path, pe.Line = path, lineNo
			if !opts.Lenient {
				return nil, pe
			}
			slog.Warn("skipping malformed catalog row", "path", path, "line", lineNo, "error", pe.Err, "field", pe.Field)
			res.Skipped = append(res.Skipped, pe)
			continue
		}
		if !keep {
			res.Filtered++
			continue
		}
		film.Line = lineNo
		res.Films = append(res.Films, film)
	}

	slog.Debug("catalog loaded",
		"path", path,
		"rows", res.Total,
		"films", len(res.Films),
		"filtered", res.Filtered,
		"skipped", len(res.Skipped))
	return res, nil
}

// parseRow splits one data line. keep is false when the film is older than
// minYear; the rating of such rows is never parsed.
func parseRow(line string, minYear int) (models.Film, bool, error) {
	if !utf8.ValidString(line) {
		return models.Film{}, false, &models.ParseError{Err: errors.New("invalid UTF-8")}
	}

	fields := strings.Split(line, Separator)
	if len(fields) != models.ColumnCount {
		return models.Film{}, false, &models.ParseError{
			Err: fmt.Errorf("expected %d fields, got %d", models.ColumnCount, len(fields)),
		}
	}

	year, err := strconv.Atoi(strings.TrimSpace(fields[models.ColYear]))
	if err != nil {
		return models.Film{}, false, fieldError(models.ColYear, err)
	}
	if year < minYear {
		return models.Film{}, false, nil
	}

	rating, err := strconv.ParseFloat(strings.TrimSpace(fields[models.ColRating]), 64)
	if err != nil {
		return models.Film{}, false, fieldError(models.ColRating, err)
	}
	if math.IsNaN(rating) || math.IsInf(rating, 0) {
		return models.Film{}, false, fieldError(models.ColRating, fmt.Errorf("rating %q is not a finite number", fields[models.ColRating]))
	}

	return models.Film{
		ID:          fields[models.ColID],
		Title:       fields[models.ColTitle],
		Genres:      SplitList(fields[models.ColGenres]),
		Description: fields[models.ColDescription],
		Director:    fields[models.ColDirector],
		Actors:      SplitList(fields[models.ColActors]),
		Year:        year,
		Runtime:     fields[models.ColRuntime],
		Rating:      rating,
		Votes:       fields[models.ColVotes],
		Revenue:     fields[models.ColRevenue],
		Metascore:   fields[models.ColMetascore],
	}, true, nil
}

func fieldError(col int, err error) *models.ParseError {
	return &models.ParseError{Field: models.ColumnNames[col], Err: err}
}

// SplitList splits a comma-separated list field, trimming each item and
// dropping empty ones.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
