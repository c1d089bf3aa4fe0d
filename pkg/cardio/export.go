package cardio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/cardstudio/pkg/card"
)

// WriteJSON encodes a card document to w in the canonical form.
// The output can be re-imported with [ReadJSON] for round-trip editing.
func WriteJSON(d card.Data, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(card.Normalize(d)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a card document to a file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(d card.Data, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(d, f)
}
