package styles

import (
	"bytes"
	"encoding/xml"
	"strings"
)

// Neutral grays shared by the classic style, matching the reference design.
const (
	colorInk      = "#111827" // near-black headings
	colorMuted    = "#6b7280" // secondary text
	colorBody     = "#374151" // body copy
	colorFaint    = "#d1d5db" // light gray on white
	colorPanel    = "#080808" // bottom panel fill
	colorPanelDim = "#9ca3af" // panel headings
	colorPanelTxt = "#d1d5db" // panel body text
)

// EscapeXML escapes s for embedding in SVG text content or attributes.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// SplitLines breaks s on newlines, dropping a single trailing empty line so
// a terminating "\n" does not render as an extra blank row.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
