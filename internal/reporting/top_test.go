package reporting

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spboyer/filmtop/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		f     Format
		want  string
	}{
		{"natural whole number", 9, NaturalFormat, "9.0"},
		{"natural decimal", 8.1, NaturalFormat, "8.1"},
		{"natural two places", 8.25, NaturalFormat, "8.25"},
		{"natural long fraction", 0.1 + 0.2, NaturalFormat, "0.30000000000000004"},
		{"natural zero", 0, NaturalFormat, "0.0"},
		{"fixed two", 8.0, Format{Precision: 2}, "8.00"},
		{"fixed rounds", 7.456, Format{Precision: 1}, "7.5"},
		{"fixed zero digits", 7.6, Format{Precision: 0}, "8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatScore(tt.score, tt.f))
		})
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.SplitAfter(string(data), "\n")
	return lines[:len(lines)-1]
}

func TestWriteTop_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "films_top.txt")
	entries := []models.RankedEntry{
		{Title: "Dangal", Score: 8.8},
		{Title: "Bahubali: The Beginning", Score: 8.3},
		{Title: "Star Wars: Episode VII - The Force Awakens", Score: 8},
	}

	require.NoError(t, WriteTop(entries, path, NaturalFormat))

	assert.Equal(t, []string{
		"Dangal, 8.8\n",
		"Bahubali: The Beginning, 8.3\n",
		"Star Wars: Episode VII - The Force Awakens, 8.0\n",
	}, readLines(t, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestWriteTop_OverwritesAndLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "films_top.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale, 1.0\nmore, 2.0\n"), 0o644))

	require.NoError(t, WriteTop([]models.RankedEntry{{Title: "Fresh", Score: 7.25}}, path, Format{Precision: 1}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Fresh, 7.2\n", string(data))

	dirEntries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, dirEntries, 1)
}

func TestWriteTop_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "films_top.txt")

	require.NoError(t, WriteTop(nil, path, NaturalFormat))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestWriteTop_FollowsSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on windows")
	}
	dir := t.TempDir()
	target := filepath.Join(dir, "real.txt")
	link := filepath.Join(dir, "films_top.txt")
	require.NoError(t, os.WriteFile(target, []byte("old\n"), 0o600))
	require.NoError(t, os.Symlink("real.txt", link))

	require.NoError(t, WriteTop([]models.RankedEntry{{Title: "A", Score: 8}}, link, NaturalFormat))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "A, 8.0\n", string(data))

	linkInfo, err := os.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, linkInfo.Mode()&os.ModeSymlink, "link was replaced by a regular file")

	targetInfo, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), targetInfo.Mode().Perm())

	dirEntries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, dirEntries, 2)
}

func TestWriteTop_KeepsPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "films_top.txt")
	require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o640))

	require.NoError(t, WriteTop([]models.RankedEntry{{Title: "A", Score: 8}}, path, NaturalFormat))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}

func TestWriteTop_Device(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no device node to write to")
	}
	before, err := os.Lstat(os.DevNull)
	require.NoError(t, err)
	require.NotZero(t, before.Mode()&os.ModeDevice)

	require.NoError(t, WriteTop([]models.RankedEntry{{Title: "A", Score: 8}}, os.DevNull, NaturalFormat))

	after, err := os.Lstat(os.DevNull)
	require.NoError(t, err)
	assert.Equal(t, before.Mode(), after.Mode())
}

func TestWriteTop_Unwritable(t *testing.T) {
	tests := []struct {
		name string
		path func(dir string) string
		op   string
	}{
		{"missing directory", func(dir string) string { return filepath.Join(dir, "nope", "out.txt") }, "create"},
		{"target is a directory", func(dir string) string {
			p := filepath.Join(dir, "taken")
			require.NoError(t, os.Mkdir(p, 0o755))
			require.NoError(t, os.WriteFile(filepath.Join(p, "keep"), nil, 0o644))
			return p
		}, "create"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := tt.path(dir)

			err := WriteTop([]models.RankedEntry{{Title: "A", Score: 1}}, path, NaturalFormat)
			require.Error(t, err)

			var ioErr *models.IOError
			require.True(t, errors.As(err, &ioErr))
			assert.Equal(t, tt.op, ioErr.Op)
			assert.Equal(t, path, ioErr.Path)
		})
	}
}
