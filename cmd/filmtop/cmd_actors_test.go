package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorsCommand(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "films.csv", testCatalog)

	stdout, _, err := runCLI(t, dir, "actors", "-n", "3")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "Actor")
	assert.Contains(t, lines[2], "Bradley Cooper")
	assert.Contains(t, lines[3], "Charlize Theron")
	assert.Contains(t, lines[4], "Chris Pratt")
	assert.True(t, strings.HasSuffix(lines[4], "8.1"))
}

func TestActorsCommand_MinYear(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "films.csv", testCatalog)

	stdout, _, err := runCLI(t, dir, "actors", "--min-year", "2016")
	require.NoError(t, err)

	assert.Contains(t, stdout, "James McAvoy")
	assert.Contains(t, stdout, "Jennifer Lawrence")
	assert.NotContains(t, stdout, "Tom Hardy")
	assert.NotContains(t, stdout, "Noomi Rapace")
}

func TestActorsCommand_Empty(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "films.csv", catalogHeader)

	stdout, _, err := runCLI(t, dir, "actors")
	require.NoError(t, err)
	assert.Equal(t, "(no entries)\n", stdout)
}

func TestConfigCommand(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, ".filmtop.yaml", "rank:\n  genre: Action\n  limit: 5\n")

	stdout, _, err := runCLI(t, dir, "config")
	require.NoError(t, err)

	assert.Contains(t, stdout, "genre: Action")
	assert.Contains(t, stdout, "limit: 5")
	assert.Contains(t, stdout, "path: films.csv")
	assert.Contains(t, stdout, "genre_match: exact")
}

func TestConfigCommand_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, ".filmtop.yaml", "rank:\n  limit: -5\n")

	_, _, err := runCLI(t, dir, "config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/rank/limit")
	assert.Equal(t, ExitError, exitCode(err))
}
