package pdfoverlay

import (
	"fmt"
	"math"
	"time"
)

// Layer defaults applied when a key is absent from the JSON configuration.
const (
	DefaultWidth      = 200.0
	DefaultHeight     = 50.0
	DefaultColor      = "#000000"
	DefaultFontSize   = 12.0
	DefaultAlign      = "left"
	DefaultFontWeight = "normal"
)

// Raster and text layout defaults.
const (
	DefaultDPI        = 72.0 // MuPDF identity matrix, one pixel per point
	DefaultLineHeight = 1.2  // line advance as a multiple of the font size
	MinDPI            = 18.0
	MaxDPI            = 1200.0
)

// Align is the horizontal alignment of text inside a layer's rectangle.
// The numeric values match the original engine's enumeration.
type Align int

// Alignment constants.
const (
	AlignLeft   Align = 0
	AlignCenter Align = 1
	AlignRight  Align = 2
)

// ParseAlign maps "left", "center" and "right" to their Align value.
// Anything else, including the empty string, is AlignLeft.
func ParseAlign(s string) Align {
	switch s {
	case "center":
		return AlignCenter
	case "right":
		return AlignRight
	default:
		return AlignLeft
	}
}

// String returns the configuration spelling of a.
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// FontWeight selects between the regular and bold built-in sans-serif font.
type FontWeight int

// Font weight constants.
const (
	FontWeightNormal FontWeight = iota
	FontWeightBold
)

// ParseFontWeight maps "bold" to FontWeightBold. Anything else is FontWeightNormal.
func ParseFontWeight(s string) FontWeight {
	if s == "bold" {
		return FontWeightBold
	}
	return FontWeightNormal
}

// Color is an RGB color with each channel in [0, 1].
// The zero value is black.
type Color struct {
	R, G, B float64
}

// Predefined colors.
var (
	Black = Color{}
	White = Color{R: 1, G: 1, B: 1}
)

// RGB255 returns the channels scaled to 0-255 and rounded. Out-of-range and
// NaN channels are clamped.
func (c Color) RGB255() (r, g, b int) {
	return to255(c.R), to255(c.G), to255(c.B)
}

func to255(v float64) int {
	switch {
	case !(v > 0):
		return 0
	case v >= 1:
		return 255
	default:
		return int(math.Round(v * 255))
	}
}

// Rect is an axis-aligned rectangle in page coordinates (points, origin top-left).
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Width returns X1-X0.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns Y1-Y0.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// IsValid reports whether r is finite and has a positive area.
func (r Rect) IsValid() bool {
	for _, v := range []float64{r.X0, r.Y0, r.X1, r.Y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.Width() > 0 && r.Height() > 0
}

// Layer is one overlay instruction: text, position, size and style.
type Layer struct {
	Text       string  `json:"text"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	W          float64 `json:"w"`
	H          float64 `json:"h"`
	Cover      bool    `json:"cover"`
	Color      string  `json:"color"`
	FontSize   float64 `json:"fontSize"`
	Align      string  `json:"align"`
	FontWeight string  `json:"fontWeight"`
}

// DefaultLayer returns a layer holding the default value of every field.
func DefaultLayer() Layer {
	return Layer{
		W:          DefaultWidth,
		H:          DefaultHeight,
		Color:      DefaultColor,
		FontSize:   DefaultFontSize,
		Align:      DefaultAlign,
		FontWeight: DefaultFontWeight,
	}
}

// Skip reports whether the layer draws nothing.
func (l Layer) Skip() bool {
	return l.Text == ""
}

// Rect returns the target rectangle (x, y, x+w, y+h).
func (l Layer) Rect() Rect {
	return Rect{X0: l.X, Y0: l.Y, X1: l.X + l.W, Y1: l.Y + l.H}
}

// Config is the parsed overlay configuration.
// Layers are drawn in order, later layers on top of earlier ones.
type Config struct {
	Layers []Layer `json:"layers"`
}

// TextStyle carries the resolved drawing parameters of a text box.
type TextStyle struct {
	FontSize   float64
	Weight     FontWeight
	Align      Align
	Color      Color
	LineHeight float64 // multiple of FontSize; 0 means DefaultLineHeight
}

// Mode is the output mode selected from the output path.
type Mode int

// Output modes.
const (
	ModeDocument Mode = iota // serialize the whole document
	ModeRaster               // rasterize the first page to PNG
)

// String returns a short name for m.
func (m Mode) String() string {
	if m == ModeRaster {
		return "png"
	}
	return "pdf"
}

// Request is the input of one Render call.
type Request struct {
	InputPath  string
	OutputPath string
	Config     *Config
}

// Result describes a successful Render call.
type Result struct {
	Path          string
	Mode          Mode
	Pages         int
	LayersDrawn   int
	LayersSkipped int
	Duration      time.Duration
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	dpi        float64
	lineHeight float64
	defaults   Layer
}

// WithEngine sets the document engine.
// Panics if e is nil (programmer error).
func WithEngine(e Engine) Option {
	if e == nil {
		panic("pdfoverlay: WithEngine engine must not be nil")
	}
	return func(s *Service) {
		s.engine = e
	}
}

// WithDPI sets the resolution used for PNG output.
// Panics if dpi is outside [MinDPI, MaxDPI] (programmer error).
func WithDPI(dpi float64) Option {
	if !(dpi >= MinDPI && dpi <= MaxDPI) {
		panic(fmt.Sprintf("pdfoverlay: WithDPI must be between %g and %g", MinDPI, MaxDPI))
	}
	return func(s *Service) {
		s.cfg.dpi = dpi
	}
}

// WithLineHeight sets the line advance as a multiple of the font size.
// Panics if m <= 0 (programmer error).
func WithLineHeight(m float64) Option {
	if !(m > 0) || math.IsInf(m, 0) {
		panic("pdfoverlay: WithLineHeight multiple must be positive")
	}
	return func(s *Service) {
		s.cfg.lineHeight = m
	}
}

// WithDefaults sets the layer values used for keys absent from the JSON
// configuration parsed by Service.ParseConfig.
func WithDefaults(l Layer) Option {
	return func(s *Service) {
		s.cfg.defaults = l
	}
}
