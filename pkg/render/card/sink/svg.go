package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/cardstudio/pkg/card"
	"github.com/matzehuels/cardstudio/pkg/card/layout"
	"github.com/matzehuels/cardstudio/pkg/render/card/styles"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style styles.Style
}

// WithStyle sets the visual style (default [styles.Classic]).
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// RenderSVG renders the card as a standalone SVG document. The output is
// identical for interactive preview and print export; editor chrome never
// reaches this layer.
func RenderSVG(d card.Data, m layout.Metrics, opts ...SVGOption) []byte {
	r := svgRenderer{style: styles.Classic{}}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		m.CardWidth, m.CardHeight, m.CardWidth, m.CardHeight)

	r.style.RenderDefs(&buf, m)
	r.style.RenderBackground(&buf, m)
	r.style.RenderHeader(&buf, d, m)
	r.style.RenderServices(&buf, d, m)
	r.style.RenderPanel(&buf, d, m)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
