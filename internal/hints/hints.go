// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to
// diagnostics written to stderr. They never appear in the JSON envelope.
package hints

import (
	"errors"
	"os"
	"strings"

	"github.com/alnah/go-pdfoverlay/internal/fileutil"
)

// ForOpen returns hints for an input document that could not be opened.
// It distinguishes a missing or unreadable path from a file that is not a PDF.
func ForOpen(inputPath string) string {
	err := fileutil.CheckReadable(inputPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return format("input file does not exist: " + inputPath)
	case errors.Is(err, fileutil.ErrIsDirectory):
		return format("input path is a directory, pass a PDF file")
	case errors.Is(err, os.ErrPermission):
		return format("input file is not readable, check permissions")
	case err != nil:
		return ""
	}
	return format("input must be an unencrypted PDF")
}

// ForConfigJSON returns a hint describing the expected JSON shape.
func ForConfigJSON() string {
	return format(`config must be a JSON object like {"layers":[{"text":"...","x":0,"y":0}]}`)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path, or creating a config in ~/.config/go-pdfoverlay/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-pdfoverlay") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutput returns hints for failures writing the output file.
func ForOutput(outputPath string) string {
	var hints []string

	if err := fileutil.ParentDirExists(outputPath); err != nil {
		hints = append(hints, "check parent directory exists and is writable")
	}
	if !fileutil.HasExtensionFold(outputPath, ".png") && !fileutil.HasExtensionFold(outputPath, ".pdf") {
		hints = append(hints, "end the output path with .pdf or .png")
	}

	return formatHints(hints)
}

// ForSameFile returns a hint when the output would overwrite the input.
func ForSameFile() string {
	return format("choose an output path different from the input")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
