package styles

import (
	"bytes"

	"github.com/matzehuels/cardstudio/pkg/card"
	"github.com/matzehuels/cardstudio/pkg/card/layout"
)

// Style defines the visual appearance for card rendering.
// Implementations draw the card's regions into an open <svg> element; the
// sink owns the document frame. Every method must accept arbitrary data and
// degrade gracefully (empty fields render as empty regions).
type Style interface {
	// RenderDefs writes SVG <defs> content (clip paths, filters).
	RenderDefs(buf *bytes.Buffer, m layout.Metrics)
	// RenderBackground writes the card base and the diagonal bottom panel.
	RenderBackground(buf *bytes.Buffer, m layout.Metrics)
	// RenderHeader writes the company names, logo mark, and tagline.
	RenderHeader(buf *bytes.Buffer, d card.Data, m layout.Metrics)
	// RenderServices writes the numbered services list.
	RenderServices(buf *bytes.Buffer, d card.Data, m layout.Metrics)
	// RenderPanel writes the bottom panel content: partners, contact, QR.
	RenderPanel(buf *bytes.Buffer, d card.Data, m layout.Metrics)
}
