package pdfoverlay_test

import (
	"errors"
	"fmt"

	pdfoverlay "github.com/alnah/go-pdfoverlay"
)

// Example_parseConfig shows how absent keys take their default values.
func Example_parseConfig() {
	cfg, err := pdfoverlay.ParseConfig([]byte(`{"layers":[{"text":"Hello","x":10,"y":10}]}`))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	l := cfg.Layers[0]
	fmt.Println(l.Text, l.Rect(), l.FontSize, l.Align, l.Color)
	// Output: Hello {10 10 210 60} 12 left #000000
}

// ExampleParseConfig_invalid shows how parse failures are classified.
func ExampleParseConfig_invalid() {
	_, err := pdfoverlay.ParseConfig([]byte(`{"layers": [`))
	fmt.Println(errors.Is(err, pdfoverlay.ErrConfigParse))
	// Output: true
}

// ExampleResolveColor shows that malformed colors fall back to black.
func ExampleResolveColor() {
	fmt.Println(pdfoverlay.ResolveColor("#FF8000").RGB255())
	fmt.Println(pdfoverlay.ResolveColor("orange").RGB255())
	// Output:
	// 255 128 0
	// 0 0 0
}

// ExampleParseAlign shows the alignment lookup and its fallback.
func ExampleParseAlign() {
	for _, s := range []string{"left", "center", "right", "justify"} {
		fmt.Printf("%s=%d ", s, pdfoverlay.ParseAlign(s))
	}
	fmt.Println()
	// Output: left=0 center=1 right=2 justify=0
}

// ExampleOutputMode shows how the output path selects the mode.
func ExampleOutputMode() {
	fmt.Println(pdfoverlay.OutputMode("stamped.pdf"))
	fmt.Println(pdfoverlay.OutputMode("preview.PNG"))
	// Output:
	// pdf
	// png
}
