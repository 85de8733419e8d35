package pdfoverlay

import "errors"

// Sentinel errors for library operations.
var (
	ErrConfigParse = errors.New("invalid JSON config")
	ErrOpen        = errors.New("failed to open document")
	ErrRender      = errors.New("overlay rendering failed")

	// Color resolution errors. Never surfaced by Render: the layer falls back to black.
	ErrInvalidColor = errors.New("invalid hex color")

	// Engine-level validation errors, wrapped in ErrRender by the service.
	ErrInvalidGeometry = errors.New("invalid rectangle")
	ErrInvalidFontSize = errors.New("invalid font size")
	ErrNoPages         = errors.New("document has no pages")
	ErrSameFile        = errors.New("output path must differ from input path")
	ErrClosed          = errors.New("document already closed")
)
