package main

import (
	"encoding/json"
	"io"
)

// envelope is the single JSON object written to stdout per invocation.
type envelope struct {
	Success bool   `json:"success"`
	Path    string `json:"path,omitempty"`
	Error   string `json:"error,omitempty"`
}

func successEnvelope(path string) envelope {
	return envelope{Success: true, Path: path}
}

func failureEnvelope(err error) envelope {
	return envelope{Success: false, Error: messageFor(err)}
}

// writeEnvelope encodes e as one newline-terminated line.
func writeEnvelope(w io.Writer, e envelope) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(e)
}
