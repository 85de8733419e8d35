package main

// Notes:
// - exitCodeFor: every failure maps to ExitFailure; we check nil and wrapped errors.
// - messageFor: usage and JSON config errors have fixed messages regardless
//   of wrapping; other errors surface their full text.

import (
	"errors"
	"fmt"
	"testing"

	pdfoverlay "github.com/alnah/go-pdfoverlay"
	"github.com/alnah/go-pdfoverlay/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},
		{"usage", ErrUsage, ExitFailure},
		{"config parse", pdfoverlay.ErrConfigParse, ExitFailure},
		{"open", fmt.Errorf("%w: boom", pdfoverlay.ErrOpen), ExitFailure},
		{"render", fmt.Errorf("%w: %w", pdfoverlay.ErrRender, pdfoverlay.ErrSameFile), ExitFailure},
		{"house config", config.ErrConfigNotFound, ExitFailure},
		{"unknown", errors.New("something unexpected"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitFailure != 1 {
		t.Errorf("exit codes = %d/%d, want 0/1", ExitSuccess, ExitFailure)
	}
}

// ---------------------------------------------------------------------------
// TestMessageFor - Envelope error messages
// ---------------------------------------------------------------------------

func TestMessageFor(t *testing.T) {
	t.Parallel()

	openErr := fmt.Errorf("%w: no such file", pdfoverlay.ErrOpen)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"usage", ErrUsage, usageLine},
		{"wrapped usage", fmt.Errorf("%w: expected 3 arguments, got 1", ErrUsage), usageLine},
		{"config parse", pdfoverlay.ErrConfigParse, "Invalid JSON config"},
		{"wrapped config parse", fmt.Errorf("%w: unexpected end of JSON input", pdfoverlay.ErrConfigParse), "Invalid JSON config"},
		{"open", openErr, openErr.Error()},
		{"other", errors.New("disk full"), "disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := messageFor(tt.err); got != tt.want {
				t.Errorf("messageFor() = %q, want %q", got, tt.want)
			}
		})
	}
}
