package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/cardstudio/pkg/card"
	"github.com/matzehuels/cardstudio/pkg/cardio"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"no output uses input stem", "", "card.json", "card"},
		{"no output keeps directories", "", "designs/card.json", "designs/card"},
		{"output with format ext stripped", "out.svg", "card.json", "out"},
		{"output with pdf ext stripped", "deck.pdf", "card.json", "deck"},
		{"output with other ext kept", "card.v2", "card.json", "card.v2"},
		{"bare output kept", "final", "card.json", "final"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestRunRenderClampsWidthOverride(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "card.json")
	output := filepath.Join(dir, "out.json")
	if err := cardio.ExportJSON(card.Default(), input); err != nil {
		t.Fatal(err)
	}

	opts := &renderOpts{
		output:   output,
		formats:  []string{"json"},
		width:    1000,
		pngScale: 2.0,
	}
	if err := runRender(context.Background(), input, opts); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Card struct {
			CardWidth int `json:"cardWidth"`
		} `json:"card"`
		Metrics struct {
			CardWidth float64 `json:"cardWidth"`
		} `json:"metrics"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Card.CardWidth != card.MaxWidth {
		t.Errorf("card.cardWidth = %d, want clamped to %d", doc.Card.CardWidth, card.MaxWidth)
	}
	if doc.Metrics.CardWidth != float64(card.MaxWidth) {
		t.Errorf("metrics.cardWidth = %v, want %d", doc.Metrics.CardWidth, card.MaxWidth)
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"all valid", []string{"svg", "pdf", "png", "json"}, false},
		{"single valid", []string{"svg"}, false},
		{"unknown format", []string{"svg", "webp"}, true},
		{"empty string entry", []string{""}, true},
		{"no formats", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
		})
	}
}
