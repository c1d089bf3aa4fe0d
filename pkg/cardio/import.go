// Package cardio reads and writes card documents.
//
// Cards are stored as JSON. Importing normalizes legacy-shaped values (see
// [card.Normalize]) so the rest of the application only ever sees the
// canonical model. The package also loads QR image files into the
// self-contained data URI form embedded in exports and rendered output.
package cardio

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/matzehuels/cardstudio/pkg/card"
)

// ReadJSON decodes a card document from r.
//
// ReadJSON accepts documents written by older versions: partner entries may
// carry a "text" field instead of "name", and the width may be absent.
// The returned value is normalized and independent of r. ReadJSON does not
// close r.
func ReadJSON(r io.Reader) (card.Data, error) {
	var d card.Data
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return card.Data{}, fmt.Errorf("decode: %w", err)
	}
	return card.Normalize(d), nil
}

// ImportJSON reads the card document at path.
// The error wraps the underlying cause with the file path for context.
func ImportJSON(path string) (card.Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return card.Data{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// LoadQRImage reads an image file and returns it as a base64 data URI
// suitable for [card.Contact].QRImage. The media type is sniffed from the
// file content.
func LoadQRImage(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return "", fmt.Errorf("%s: not an image (detected %s)", path, mime)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
