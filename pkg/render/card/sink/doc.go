// Package sink provides output format renderers for card previews.
//
// A "sink" transforms card data plus its computed [layout.Metrics] into a
// final output format:
//
//   - SVG: the canonical rendering, used for preview and as the print source
//   - PDF: print-ready output (requires rsvg-convert)
//   - PNG: raster output (requires rsvg-convert)
//   - JSON: card data plus the full metric set for external tools
//
// Basic usage:
//
//	m := layout.Compute(d)
//	svg := sink.RenderSVG(d, m, sink.WithStyle(styles.Classic{}))
//	pdf, err := sink.RenderPDF(d, m)
//
// PDF and PNG are produced by converting the SVG via rsvg-convert, so all
// formats render identically. Install librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// [layout.Metrics]: github.com/matzehuels/cardstudio/pkg/card/layout.Metrics
package sink
