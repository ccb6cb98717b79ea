package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spboyer/filmtop/internal/models"
	"github.com/spboyer/filmtop/internal/reporting"
	"golang.org/x/term"
)

// minNameWidth keeps the name column readable on very narrow terminals.
const minNameWidth = 12

// printTable writes entries as an aligned "#, name, score" table. On a
// terminal the name column is clamped so rows do not wrap.
func printTable(w io.Writer, nameHeader string, entries []models.RankedEntry, f reporting.Format) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "(no entries)")
		return
	}

	rankWidth := len(strconv.Itoa(len(entries)))

	scores := make([]string, len(entries))
	nameWidth := runewidth.StringWidth(nameHeader)
	scoreWidth := len("Score")
	for i, e := range entries {
		scores[i] = reporting.FormatScore(e.Score, f)
		nameWidth = max(nameWidth, runewidth.StringWidth(e.Title))
		scoreWidth = max(scoreWidth, len(scores[i]))
	}

	if tw := terminalWidth(w); tw > 0 {
		avail := tw - rankWidth - scoreWidth - 4
		nameWidth = min(nameWidth, max(avail, minNameWidth))
	}

	fmt.Fprintf(w, "%s  %s  %s\n", padLeft("#", rankWidth), padRight(nameHeader, nameWidth), padLeft("Score", scoreWidth))
	fmt.Fprintln(w, strings.Repeat("─", rankWidth+nameWidth+scoreWidth+4))
	for i, e := range entries {
		name := runewidth.Truncate(e.Title, nameWidth, "…")
		fmt.Fprintf(w, "%s  %s  %s\n", padLeft(strconv.Itoa(i+1), rankWidth), padRight(name, nameWidth), padLeft(scores[i], scoreWidth))
	}
}

// terminalWidth returns the column count of w when it is a terminal, else 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}

func padLeft(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return strings.Repeat(" ", width-sw) + s
}
