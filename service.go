package pdfoverlay

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alnah/go-pdfoverlay/internal/fileutil"
)

// outputPermissions is rw-r--r--: output files are meant to be shared.
const outputPermissions = 0o644

// Service applies overlay configurations to documents.
// A Service holds no per-call state and is safe for concurrent use if its
// Engine is.
type Service struct {
	cfg    serviceConfig
	engine Engine
}

// New creates a Service backed by the production PDF engine.
// Use options to customize behavior (e.g., WithDPI, WithDefaults).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{
			dpi:        DefaultDPI,
			lineHeight: DefaultLineHeight,
			defaults:   DefaultLayer(),
		},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create engine if not injected (e.g., by tests)
	if s.engine == nil {
		s.engine = NewPDFEngine()
	}

	return s
}

// ParseConfig decodes a JSON configuration on top of the Service's layer defaults.
func (s *Service) ParseConfig(data []byte) (*Config, error) {
	return ParseConfigWithDefaults(data, s.cfg.defaults)
}

// Render opens req.InputPath, draws every layer of req.Config on its first
// page and writes the result to req.OutputPath. A ".png" output path (any
// case) rasterizes page one; anything else saves the whole document.
//
// The output is built in memory and written once, so a failure before the
// write leaves OutputPath untouched. The context is checked between layers.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (s *Service) Render(ctx context.Context, req Request) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: internal error: %v", ErrRender, r)
		}
	}()

	start := time.Now()

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	doc, err := s.engine.Open(req.InputPath)
	if err != nil {
		if errors.Is(err, ErrOpen) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	defer doc.Close()

	page, err := doc.FirstPage()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	result = &Result{
		Path:  req.OutputPath,
		Mode:  OutputMode(req.OutputPath),
		Pages: doc.PageCount(),
	}

	var layers []Layer
	if req.Config != nil {
		layers = req.Config.Layers
	}

	for i, layer := range layers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRender, err)
		}
		if layer.Skip() {
			result.LayersSkipped++
			continue
		}
		if err := s.drawLayer(page, layer); err != nil {
			return nil, fmt.Errorf("%w: layer %d: %w", ErrRender, i, err)
		}
		result.LayersDrawn++
	}

	var buf bytes.Buffer
	switch result.Mode {
	case ModeRaster:
		err = doc.Rasterize(&buf, s.cfg.dpi)
	default:
		err = doc.Save(&buf)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	// #nosec G306 -- output files are intended to be readable
	if err := os.WriteFile(req.OutputPath, buf.Bytes(), outputPermissions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	result.Duration = time.Since(start)
	return result, nil
}

// drawLayer paints the cover rectangle, if any, then the layer's text.
func (s *Service) drawLayer(page Page, layer Layer) error {
	rect := layer.Rect()

	if layer.Cover {
		if err := page.DrawRect(rect, White, White); err != nil {
			return err
		}
	}

	return page.InsertTextbox(rect, layer.Text, s.textStyle(layer))
}

// textStyle resolves a layer's style fields. Malformed colors become black and
// unknown alignments become left; neither is an error.
func (s *Service) textStyle(layer Layer) TextStyle {
	return TextStyle{
		FontSize:   layer.FontSize,
		Weight:     ParseFontWeight(layer.FontWeight),
		Align:      ParseAlign(layer.Align),
		Color:      ResolveColor(layer.Color),
		LineHeight: s.cfg.lineHeight,
	}
}

// validateRequest checks paths before any document is opened.
func validateRequest(req Request) error {
	if req.InputPath == "" {
		return fmt.Errorf("%w: input %w", ErrOpen, fileutil.ErrPathEmpty)
	}
	if req.OutputPath == "" {
		return fmt.Errorf("%w: output %w", ErrRender, fileutil.ErrPathEmpty)
	}
	if fileutil.SameFile(req.InputPath, req.OutputPath) {
		return fmt.Errorf("%w: %w", ErrRender, ErrSameFile)
	}
	return nil
}
