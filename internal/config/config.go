package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	pdfoverlay "github.com/alnah/go-pdfoverlay"
	"github.com/alnah/go-pdfoverlay/internal/fileutil"
	"github.com/alnah/go-pdfoverlay/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Limits for values that have no natural bound in the layer schema.
const (
	MaxLineHeight = 10.0
	MaxFontSize   = 1000.0
)

// userConfigDirName is the directory searched under os.UserConfigDir.
const userConfigDirName = "go-pdfoverlay"

// Config holds house defaults for overlay rendering.
// Every field is optional; absent fields keep the built-in defaults.
type Config struct {
	Layer  LayerConfig  `yaml:"layer"`
	Raster RasterConfig `yaml:"raster"`
	Text   TextConfig   `yaml:"text"`
}

// LayerConfig holds defaults for keys absent from a JSON layer.
// Pointers distinguish "not set" from an explicit zero.
type LayerConfig struct {
	X          *float64 `yaml:"x"`
	Y          *float64 `yaml:"y"`
	W          *float64 `yaml:"w"`
	H          *float64 `yaml:"h"`
	Cover      *bool    `yaml:"cover"`
	Color      string   `yaml:"color"`      // "#RRGGBB"
	FontSize   *float64 `yaml:"fontSize"`   // points
	Align      string   `yaml:"align"`      // "left", "center", "right"
	FontWeight string   `yaml:"fontWeight"` // "normal", "bold"
}

// RasterConfig defines PNG output options.
type RasterConfig struct {
	DPI float64 `yaml:"dpi"` // 0 = 72
}

// TextConfig defines text layout options.
type TextConfig struct {
	LineHeight float64 `yaml:"lineHeight"` // multiple of the font size, 0 = 1.2
}

// Validate checks that every set value is usable. House defaults are
// authored once and reused, so unlike JSON layers they are checked strictly:
// a malformed color here is an error, not black.
func (c *Config) Validate() error {
	l := c.Layer

	for _, f := range []struct {
		name string
		v    *float64
	}{{"layer.x", l.X}, {"layer.y", l.Y}} {
		if f.v != nil && !isFinite(*f.v) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidValue, f.name)
		}
	}
	for _, f := range []struct {
		name string
		v    *float64
	}{{"layer.w", l.W}, {"layer.h", l.H}} {
		if f.v != nil && !(isFinite(*f.v) && *f.v > 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidValue, f.name, *f.v)
		}
	}
	if l.FontSize != nil && !(*l.FontSize > 0 && *l.FontSize <= MaxFontSize) {
		return fmt.Errorf("%w: layer.fontSize must be between 0 and %g, got %v", ErrInvalidValue, MaxFontSize, *l.FontSize)
	}
	if l.Color != "" {
		if _, err := pdfoverlay.ParseHexColor(l.Color); err != nil {
			return fmt.Errorf("%w: layer.color: %v", ErrInvalidValue, err)
		}
	}
	if l.Align != "" {
		switch l.Align {
		case "left", "center", "right":
			// valid
		default:
			return fmt.Errorf("%w: layer.align %q (must be left, center, or right)", ErrInvalidValue, l.Align)
		}
	}
	if l.FontWeight != "" {
		switch l.FontWeight {
		case "normal", "bold":
			// valid
		default:
			return fmt.Errorf("%w: layer.fontWeight %q (must be normal or bold)", ErrInvalidValue, l.FontWeight)
		}
	}

	if c.Raster.DPI != 0 && !(c.Raster.DPI >= pdfoverlay.MinDPI && c.Raster.DPI <= pdfoverlay.MaxDPI) {
		return fmt.Errorf("%w: raster.dpi must be between %g and %g, got %v",
			ErrInvalidValue, pdfoverlay.MinDPI, pdfoverlay.MaxDPI, c.Raster.DPI)
	}
	if c.Text.LineHeight != 0 && !(c.Text.LineHeight > 0 && c.Text.LineHeight <= MaxLineHeight) {
		return fmt.Errorf("%w: text.lineHeight must be between 0 and %g, got %v",
			ErrInvalidValue, MaxLineHeight, c.Text.LineHeight)
	}

	return nil
}

// LayerDefaults returns the built-in layer defaults overridden by every
// field set in c.Layer.
func (c *Config) LayerDefaults() pdfoverlay.Layer {
	d := pdfoverlay.DefaultLayer()
	l := c.Layer

	if l.X != nil {
		d.X = *l.X
	}
	if l.Y != nil {
		d.Y = *l.Y
	}
	if l.W != nil {
		d.W = *l.W
	}
	if l.H != nil {
		d.H = *l.H
	}
	if l.Cover != nil {
		d.Cover = *l.Cover
	}
	if l.Color != "" {
		d.Color = l.Color
	}
	if l.FontSize != nil {
		d.FontSize = *l.FontSize
	}
	if l.Align != "" {
		d.Align = l.Align
	}
	if l.FontWeight != "" {
		d.FontWeight = l.FontWeight
	}

	return d
}

// DPI returns the raster resolution, falling back to pdfoverlay.DefaultDPI.
func (c *Config) DPI() float64 {
	if c.Raster.DPI == 0 {
		return pdfoverlay.DefaultDPI
	}
	return c.Raster.DPI
}

// LineHeight returns the line advance multiple, falling back to
// pdfoverlay.DefaultLineHeight.
func (c *Config) LineHeight() float64 {
	if c.Text.LineHeight == 0 {
		return pdfoverlay.DefaultLineHeight
	}
	return c.Text.LineHeight
}

// DefaultConfig returns a configuration with nothing overridden.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// SearchPaths returns the locations tried for a config name, in order.
// Extensions: .yaml, .yml. Locations: current directory, ~/.config/go-pdfoverlay/.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, userConfigDirName, name+ext))
		}
	}
	return paths
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
