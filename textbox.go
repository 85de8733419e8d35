package pdfoverlay

import (
	"math"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// lineFitTolerance absorbs float error when stacking lines into a box.
const lineFitTolerance = 1e-6

// measureFunc returns the rendered width of s in the current font.
type measureFunc func(s string) float64

// wrapText breaks text into lines no wider than width. Explicit newlines
// always start a new line, runs of spaces collapse, and a word wider than
// width is split between characters.
func wrapText(text string, width float64, measure measureFunc) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(para, width, measure)...)
	}
	return lines
}

func wrapParagraph(para string, width float64, measure measureFunc) []string {
	words := strings.FieldsFunc(para, func(r rune) bool { return r == ' ' || r == '\t' })
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := ""
	for _, word := range words {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if measure(candidate) <= width {
			line = candidate
			continue
		}
		if line != "" {
			lines = append(lines, line)
		}
		for len(word) > 1 && measure(word) > width {
			n := fitPrefix(word, width, measure)
			lines = append(lines, word[:n])
			word = word[n:]
		}
		line = word
	}
	return append(lines, line)
}

// fitPrefix returns the length of the longest prefix of s that fits in width.
// The result is at least 1 so callers always make progress.
func fitPrefix(s string, width float64, measure measureFunc) int {
	n := 1
	for n < len(s) && measure(s[:n+1]) <= width {
		n++
	}
	return n
}

// visibleLines returns how many lines of height lineH fit in a box of height h.
func visibleLines(total int, h, lineH float64) int {
	if lineH <= 0 {
		return 0
	}
	n := int(math.Floor(h/lineH + lineFitTolerance))
	if n > total {
		n = total
	}
	if n < 0 {
		return 0
	}
	return n
}

// toWinAnsi converts s to the single-byte Windows-1252 encoding used by the
// standard PDF fonts. Runes outside that code page become '?', tabs become
// spaces, carriage returns and other control characters are dropped.
func toWinAnsi(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n':
			b.WriteByte('\n')
		case r == '\t':
			b.WriteByte(' ')
		case r < 0x20 || r == 0x7f:
			// dropped
		default:
			c, ok := charmap.Windows1252.EncodeRune(r)
			if !ok {
				c = '?'
			}
			b.WriteByte(c)
		}
	}
	return b.String()
}
