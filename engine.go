package pdfoverlay

import (
	"io"

	"github.com/alnah/go-pdfoverlay/internal/fileutil"
)

// Engine opens source documents. It abstracts the PDF backend so the
// renderer can be tested without one.
type Engine interface {
	Open(path string) (Document, error)
}

// Document is an opened source document owned by a single Render call.
type Document interface {
	// PageCount returns the number of pages in the source.
	PageCount() int
	// FirstPage returns the page overlays are drawn on.
	FirstPage() (Page, error)
	// Save writes the whole document, page one carrying the overlays.
	Save(w io.Writer) error
	// Rasterize writes page one, with overlays, as a PNG image.
	Rasterize(w io.Writer, dpi float64) error
	Close() error
}

// Page receives drawing operations. Coordinates are points with the origin
// at the top-left corner of the page, y growing downwards.
type Page interface {
	Size() (width, height float64)
	DrawRect(r Rect, stroke, fill Color) error
	InsertTextbox(r Rect, text string, style TextStyle) error
}

// IsRasterOutput reports whether path selects PNG output.
// The ".png" suffix is matched case-insensitively.
func IsRasterOutput(path string) bool {
	return fileutil.HasExtensionFold(path, ".png")
}

// OutputMode returns the Mode selected by path.
func OutputMode(path string) Mode {
	if IsRasterOutput(path) {
		return ModeRaster
	}
	return ModeDocument
}
