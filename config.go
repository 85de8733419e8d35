package pdfoverlay

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// rawConfig defers layer decoding so each layer can start from caller defaults.
type rawConfig struct {
	Layers []json.RawMessage `json:"layers"`
}

// layerJSON has Layer's fields without its UnmarshalJSON method.
type layerJSON Layer

// ParseConfig decodes a JSON configuration using the built-in layer defaults.
func ParseConfig(data []byte) (*Config, error) {
	return ParseConfigWithDefaults(data, DefaultLayer())
}

// ParseConfigWithDefaults decodes a JSON configuration. Every layer object is
// decoded on top of a copy of defaults: absent keys keep the default, present
// keys (including explicit zeros) override it.
// Syntax errors, type mismatches and non-object documents return ErrConfigParse.
func ParseConfigWithDefaults(data []byte, defaults Layer) (*Config, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrConfigParse)
	}

	var raw rawConfig
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg := &Config{Layers: make([]Layer, 0, len(raw.Layers))}
	for i, msg := range raw.Layers {
		layer := defaults
		if err := json.Unmarshal(msg, (*layerJSON)(&layer)); err != nil {
			return nil, fmt.Errorf("%w: layers[%d]: %v", ErrConfigParse, i, err)
		}
		cfg.Layers = append(cfg.Layers, layer)
	}

	return cfg, nil
}

// UnmarshalJSON fills absent keys with the built-in defaults.
// ParseConfigWithDefaults bypasses this to apply caller defaults instead.
func (l *Layer) UnmarshalJSON(data []byte) error {
	p := layerJSON(DefaultLayer())
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*l = Layer(p)
	return nil
}
