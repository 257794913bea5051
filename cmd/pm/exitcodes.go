package main

import (
	"errors"

	"github.com/choplin/pm/internal/store"
)

// Exit codes
const (
	ExitSuccess   = 0 // Success
	ExitError     = 1 // General error (invalid arguments, unknown entry, declined prompt)
	ExitIOError   = 2 // Store file could not be read or written
	ExitDataError = 3 // Store file is not a valid entries document
)

func exitCode(err error) int {
	var ioErr *store.IOError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &ioErr):
		return ExitIOError
	case errors.Is(err, store.ErrMalformed):
		return ExitDataError
	default:
		return ExitError
	}
}
