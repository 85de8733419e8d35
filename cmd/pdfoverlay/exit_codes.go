package main

import (
	"errors"

	pdfoverlay "github.com/alnah/go-pdfoverlay"
)

// Exit codes for the pdfoverlay CLI. Callers only distinguish success
// from failure; the envelope carries the detail.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// exitCodeFor returns the exit code for an error.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}

// messageFor returns the envelope message for an error.
// Usage and JSON config errors carry fixed messages; everything else
// surfaces the error text.
func messageFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUsage):
		return usageLine
	case errors.Is(err, pdfoverlay.ErrConfigParse):
		return "Invalid JSON config"
	default:
		return err.Error()
	}
}
