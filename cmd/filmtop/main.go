package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spboyer/filmtop/internal/models"
)

// Exit codes for different failure modes
const (
	ExitSuccess   = 0 // Ranking written
	ExitDataError = 1 // Catalog contains a malformed row
	ExitError     = 2 // I/O, configuration or usage error
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var parseErr *models.ParseError
	if errors.As(err, &parseErr) {
		return ExitDataError
	}
	return ExitError
}
