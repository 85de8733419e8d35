package pdfoverlay

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io"
	"math"
	"os"

	"codeberg.org/go-pdf/fpdf"
	fitz "github.com/gen2brain/go-fitz"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Compile-time interface implementation checks.
var (
	_ Engine   = (*PDFEngine)(nil)
	_ Document = (*pdfDocument)(nil)
	_ Page     = (*pdfPage)(nil)
)

const (
	// stampDescription places the overlay page unscaled over the visible
	// region of page one, anchored at its lower-left corner.
	stampDescription = "position:bl, offset:0 0, scalefactor:1 abs, rotation:0, opacity:1"

	// coverLineWidth is the stroke width of rectangles, in points.
	coverLineWidth = 1.0

	fontFamily = "Helvetica"
)

var errAlreadyWritten = errors.New("document already written")

// PDFEngine is the production Engine.
//
// MuPDF (go-fitz) validates the source and rasterizes output. Overlays are
// drawn with fpdf on a blank page sized to page one's crop box, and pdfcpu
// stamps that page onto page one of the untouched source, so other pages,
// annotations, outlines and metadata are kept.
//
// NewPDFEngine disables pdfcpu's configuration directory for the process.
type PDFEngine struct{}

// NewPDFEngine returns the production Engine.
func NewPDFEngine() *PDFEngine {
	api.DisableConfigDir()
	return &PDFEngine{}
}

// Open reads and validates the document at path and prepares the overlay
// page. Every failure wraps ErrOpen.
func (e *PDFEngine) Open(path string) (Document, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is the user's input document
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}

	pages, err := countPages(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	if pages == 0 {
		return nil, fmt.Errorf("%w: %w", ErrOpen, ErrNoPages)
	}

	conf := model.NewDefaultConfiguration()
	w, h, err := firstPageSize(data, conf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}

	pdf := newWriter()
	pdf.AddPageFormat("P", fpdf.SizeType{Wd: w, Ht: h})
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpen, err)
	}

	return &pdfDocument{
		src:   data,
		pages: pages,
		conf:  conf,
		pdf:   pdf,
		first: &pdfPage{pdf: pdf, width: w, height: h},
	}, nil
}

// countPages opens data with MuPDF and returns its page count.
func countPages(data []byte) (int, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return 0, err
	}
	defer doc.Close()
	return doc.NumPage(), nil
}

// firstPageSize returns the size of page one's visible region: the crop box,
// or the media box when there is none. MuPDF measures page coordinates from
// the same box.
func firstPageSize(data []byte, conf *model.Configuration) (w, h float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading page boxes: %v", r)
		}
	}()

	ctx, err := api.ReadContext(bytes.NewReader(data), conf)
	if err != nil {
		return 0, 0, err
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return 0, 0, err
	}

	_, _, attrs, err := ctx.PageDict(1, false)
	if err != nil {
		return 0, 0, err
	}
	if attrs == nil {
		return 0, 0, fmt.Errorf("page 1 not found")
	}

	box := attrs.MediaBox
	if attrs.CropBox != nil {
		box = attrs.CropBox
	}
	if box == nil || !(box.Width() > 0) || !(box.Height() > 0) {
		return 0, 0, fmt.Errorf("page 1 has no usable page box")
	}
	return box.Width(), box.Height(), nil
}

// newWriter returns an fpdf document set up for full-bleed drawing in points.
func newWriter() *fpdf.Fpdf {
	pdf := fpdf.New("P", "pt", "", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCellMargin(0)
	pdf.SetCreator("pdfoverlay", true)
	return pdf
}

// pdfDocument keeps the source bytes unchanged and draws overlays on a
// separate one-page fpdf document.
type pdfDocument struct {
	src     []byte
	pages   int
	conf    *model.Configuration
	pdf     *fpdf.Fpdf
	first   *pdfPage
	written bool
	closed  bool
}

func (d *pdfDocument) PageCount() int {
	return d.pages
}

func (d *pdfDocument) FirstPage() (Page, error) {
	if d.closed {
		return nil, ErrClosed
	}
	return d.first, nil
}

// Save writes the source document with the overlay stamped on page one.
func (d *pdfDocument) Save(w io.Writer) error {
	if d.closed {
		return ErrClosed
	}

	out, err := d.stamp()
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

// Rasterize renders page one of the stamped document through MuPDF and
// encodes it as PNG. A dpi <= 0 selects DefaultDPI.
func (d *pdfDocument) Rasterize(w io.Writer, dpi float64) error {
	if d.closed {
		return ErrClosed
	}
	if dpi <= 0 || math.IsNaN(dpi) || math.IsInf(dpi, 0) {
		dpi = DefaultDPI
	}

	out, err := d.stamp()
	if err != nil {
		return err
	}

	doc, err := fitz.NewFromMemory(out)
	if err != nil {
		return fmt.Errorf("reopening overlaid document: %w", err)
	}
	defer doc.Close()

	img, err := doc.ImageDPI(0, dpi)
	if err != nil {
		return fmt.Errorf("rasterizing page 1: %w", err)
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}

func (d *pdfDocument) Close() error {
	d.closed = true
	return nil
}

// stamp serializes the overlay page and applies it on top of page one of the
// source. fpdf closes its document on output, so this happens once.
func (d *pdfDocument) stamp() (out []byte, err error) {
	if d.written {
		return nil, errAlreadyWritten
	}
	d.written = true

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("stamping overlay: %v", r)
		}
	}()

	var overlay bytes.Buffer
	if err := d.pdf.Output(&overlay); err != nil {
		return nil, fmt.Errorf("writing overlay: %w", err)
	}

	// pdfcpu reads PDF stamps from a file.
	tmp, err := os.CreateTemp("", "pdfoverlay-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("writing overlay: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(overlay.Bytes()); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("writing overlay: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("writing overlay: %w", err)
	}

	wm, err := api.PDFWatermark(tmp.Name(), stampDescription, true, false, types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("preparing overlay stamp: %w", err)
	}

	var buf bytes.Buffer
	if err := api.AddWatermarks(bytes.NewReader(d.src), &buf, []string{"1"}, wm, d.conf); err != nil {
		return nil, fmt.Errorf("stamping overlay: %w", err)
	}
	return buf.Bytes(), nil
}

// pdfPage draws on the current (first) page of the output document.
type pdfPage struct {
	pdf           *fpdf.Fpdf
	width, height float64
}

func (p *pdfPage) Size() (width, height float64) {
	return p.width, p.height
}

// DrawRect fills r and strokes its border with a 1pt line.
func (p *pdfPage) DrawRect(r Rect, stroke, fill Color) error {
	if !r.IsValid() {
		return fmt.Errorf("%w: %+v", ErrInvalidGeometry, r)
	}

	p.pdf.SetLineWidth(coverLineWidth)
	p.pdf.SetDrawColor(stroke.RGB255())
	p.pdf.SetFillColor(fill.RGB255())
	p.pdf.Rect(r.X0, r.Y0, r.Width(), r.Height(), "FD")
	return p.pdf.Error()
}

// InsertTextbox wraps text to the width of r and draws as many whole lines
// as fit in its height, clipped to r. Lines that do not fit are dropped.
func (p *pdfPage) InsertTextbox(r Rect, text string, style TextStyle) error {
	if !r.IsValid() {
		return fmt.Errorf("%w: %+v", ErrInvalidGeometry, r)
	}
	if !(style.FontSize > 0) || math.IsInf(style.FontSize, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidFontSize, style.FontSize)
	}

	lineHeight := style.LineHeight
	if lineHeight <= 0 {
		lineHeight = DefaultLineHeight
	}
	lineH := style.FontSize * lineHeight

	p.pdf.SetFont(fontFamily, fontStyle(style.Weight), style.FontSize)
	p.pdf.SetTextColor(style.Color.RGB255())

	lines := wrapText(toWinAnsi(text), r.Width(), p.pdf.GetStringWidth)
	n := visibleLines(len(lines), r.Height(), lineH)
	if n == 0 {
		return p.pdf.Error()
	}

	p.pdf.ClipRect(r.X0, r.Y0, r.Width(), r.Height(), false)
	for i, line := range lines[:n] {
		p.pdf.SetXY(r.X0, r.Y0+float64(i)*lineH)
		p.pdf.CellFormat(r.Width(), lineH, line, "", 0, cellAlign(style.Align), false, 0, "")
	}
	p.pdf.ClipEnd()

	return p.pdf.Error()
}

func fontStyle(w FontWeight) string {
	if w == FontWeightBold {
		return "B"
	}
	return ""
}

func cellAlign(a Align) string {
	switch a {
	case AlignCenter:
		return "C"
	case AlignRight:
		return "R"
	default:
		return "L"
	}
}
