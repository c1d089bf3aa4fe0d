package sink

import (
	"encoding/json"
	"fmt"

	"github.com/matzehuels/cardstudio/pkg/card"
	"github.com/matzehuels/cardstudio/pkg/card/layout"
)

// document is the JSON export shape: the card data plus the full computed
// metric set, so external tools can reproduce the exact rendering without
// reimplementing the layout engine.
type document struct {
	Card    card.Data      `json:"card"`
	Metrics layout.Metrics `json:"metrics"`
}

// RenderJSON exports the card and its computed layout as indented JSON.
func RenderJSON(d card.Data, m layout.Metrics) ([]byte, error) {
	out, err := json.MarshalIndent(document{Card: d, Metrics: m}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	return append(out, '\n'), nil
}
