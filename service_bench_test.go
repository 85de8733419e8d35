//go:build bench

package pdfoverlay

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

// BenchmarkServiceRender benchmarks the layer pipeline with a fake engine,
// isolating config handling and layer dispatch from MuPDF and fpdf.
func BenchmarkServiceRender(b *testing.B) {
	ctx := context.Background()
	dir := b.TempDir()

	for _, n := range []int{1, 10, 100} {
		b.Run(fmt.Sprintf("layers_%d", n), func(b *testing.B) {
			layers := make([]Layer, n)
			for i := range layers {
				layers[i] = layer(fmt.Sprintf("line %d", i), func(l *Layer) { l.Cover = i%2 == 0 })
			}
			req := Request{
				InputPath:  filepath.Join(dir, "in.pdf"),
				OutputPath: filepath.Join(dir, "out.pdf"),
				Config:     &Config{Layers: layers},
			}

			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				svc := New(WithEngine(&fakeEngine{}))
				if _, err := svc.Render(ctx, req); err != nil {
					b.Fatalf("Render() error = %v", err)
				}
			}
		})
	}
}

// BenchmarkParseConfig benchmarks JSON config decoding with default filling.
func BenchmarkParseConfig(b *testing.B) {
	var sb strings.Builder
	sb.WriteString(`{"layers":[`)
	for i := range 50 {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, `{"text":"layer %d","x":%d,"y":%d,"color":"#1F3864","align":"center"}`, i, i*10, i*12)
	}
	sb.WriteString(`]}`)
	data := []byte(sb.String())

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		if _, err := ParseConfig(data); err != nil {
			b.Fatalf("ParseConfig() error = %v", err)
		}
	}
}

// BenchmarkWrapText benchmarks greedy wrapping with a byte-width measure.
func BenchmarkWrapText(b *testing.B) {
	inputs := []struct {
		name string
		text string
	}{
		{"short", "PAID"},
		{"paragraph", strings.Repeat("lorem ipsum dolor sit amet ", 40)},
		{"long word", strings.Repeat("x", 2000)},
		{"many lines", strings.Repeat("a b c\n", 200)},
	}

	for _, in := range inputs {
		b.Run(in.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = wrapText(in.text, 60, monoWidth)
			}
		})
	}
}
