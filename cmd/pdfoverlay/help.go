package main

import (
	"fmt"
	"io"
)

// usageLine is the message carried by the usage error envelope.
const usageLine = "Usage: pdfoverlay <input> <output> <json_config>"

func printUsage(w io.Writer) {
	fmt.Fprintln(w, usageLine)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Draw text boxes onto the first page of a PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input        source PDF")
	fmt.Fprintln(w, "  output       destination; .png renders page 1, anything else writes a PDF")
	fmt.Fprintln(w, `  json_config  JSON text such as {"layers":[{"text":"PAID","x":50,"y":50}]}`)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Layer keys:")
	fmt.Fprintln(w, "  text, x, y, w, h, cover, color, fontSize, align, fontWeight")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config string   house defaults YAML (name or path)")
	fmt.Fprintln(w, "      --dpi float       resolution for PNG output (default 72)")
	fmt.Fprintln(w, "  -v, --verbose         print diagnostics to stderr")
	fmt.Fprintln(w, "      --version         print version and exit")
	fmt.Fprintln(w, "  -h, --help            print help and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, `  stdout receives one JSON object: {"success":true,"path":"..."}`)
	fmt.Fprintln(w, `  or {"success":false,"error":"..."}. Exit status is 0 or 1.`)
}
