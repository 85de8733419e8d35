// Package pdfoverlay draws text overlays onto the first page of a PDF and
// saves the result as a PDF or rasterizes that page to PNG.
//
// # Quick Start
//
// Parse a JSON layer list and render it:
//
//	svc := pdfoverlay.New()
//
//	cfg, err := svc.ParseConfig([]byte(`{"layers":[
//	    {"text":"PAID","x":400,"y":40,"w":120,"h":40,"color":"#C00000","fontSize":24,"align":"center"}
//	]}`))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := svc.Render(ctx, pdfoverlay.Request{
//	    InputPath:  "invoice.pdf",
//	    OutputPath: "invoice-paid.pdf",
//	    Config:     cfg,
//	})
//
// # Layers
//
// Each layer names a rectangle (x, y, w, h) in points with the origin at the
// top-left corner of the page, the text to draw in it, and its style:
//
//	text        string   empty layers are skipped
//	x, y        number   default 0, 0
//	w, h        number   default 200, 50
//	cover       bool     paint an opaque white rectangle under the text
//	color       string   "#RRGGBB", malformed values draw black
//	fontSize    number   default 12
//	align       string   left | center | right, anything else is left
//	fontWeight  string   normal | bold
//
// Layers are drawn in order, so a later layer's cover can hide an earlier
// layer's text. Text is set in Helvetica, wrapped to the rectangle width,
// and lines that do not fit its height are dropped.
//
// # Output
//
// The output path selects the mode: a ".png" suffix in any case rasterizes
// page one (72 DPI unless WithDPI says otherwise); any other path receives
// the whole document with page one modified.
//
// # Errors
//
// Failures wrap one of ErrConfigParse, ErrOpen or ErrRender and can be
// classified with errors.Is. Malformed colors are never an error.
//
// # Engine
//
// The production Engine uses MuPDF (go-fitz) to open and rasterize documents.
// Overlays are drawn with fpdf on a page sized to page one's crop box and
// stamped onto the untouched source with pdfcpu, so other pages, links and
// metadata survive. Tests can inject another Engine with WithEngine.
package pdfoverlay
