package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/cardstudio/pkg/card"
	"github.com/matzehuels/cardstudio/pkg/card/layout"
)

// =============================================================================
// Editor View
// =============================================================================

var (
	styleCursor    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	styleRowLabel  = lipgloss.NewStyle().Foreground(colorGray).Width(16)
	styleRowAction = lipgloss.NewStyle().Foreground(colorDim).Italic(true)
	styleHelpKey   = lipgloss.NewStyle().Foreground(colorWhite)

	stylePreviewPane = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 2)
)

func (m editorModel) View() string {
	title := StyleTitle.Render("cardstudio") + StyleDim.Render("  "+m.path+m.dirtyMark())

	form := m.viewForm()
	preview := m.viewPreview()
	body := lipgloss.JoinHorizontal(lipgloss.Top, form, "  ", preview)

	var status string
	switch {
	case m.generating:
		status = m.spin.View() + " Generating content..."
	case m.status != "":
		status = m.status
	default:
		status = StyleDim.Render(helpLine)
	}

	return title + "\n\n" + body + "\n" + status + "\n"
}

const helpLine = "enter edit · d delete · c color · [/] width · g generate · x export · s save · q quit"

func (m editorModel) dirtyMark() string {
	if m.dirty {
		return " *"
	}
	return ""
}

// viewForm renders the visible window of focusable rows.
func (m editorModel) viewForm() string {
	var b strings.Builder

	end := m.offset + m.height
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.offset; i < end; i++ {
		r := m.rows[i]

		marker := "  "
		if i == m.cursor {
			marker = styleCursor.Render("❯ ")
		}

		if m.editing && i == m.cursor {
			b.WriteString(marker + styleRowLabel.Render(m.rowLabel(r)) + m.input.View() + "\n")
			continue
		}

		switch r.kind {
		case rowAddService, rowAddPartner:
			b.WriteString(marker + styleRowAction.Render(r.label) + "\n")
		default:
			b.WriteString(marker + styleRowLabel.Render(m.rowLabel(r)) + StyleValue.Render(m.rowValue(r)) + "\n")
		}
	}
	return b.String()
}

// rowLabel names a row; list items are numbered the way the card shows them.
func (m editorModel) rowLabel(r row) string {
	switch r.kind {
	case rowService:
		for i, s := range m.data.Services {
			if s.ID == r.id {
				return "Service " + layout.IndexLabel(i)
			}
		}
	case rowPartner:
		for i, p := range m.data.Partners {
			if p.ID == r.id {
				return "Partner " + layout.IndexLabel(i)
			}
		}
	}
	return r.label
}

// rowValue shows the display value for a row, which differs from the
// editable value for the QR image and AI description rows.
func (m editorModel) rowValue(r row) string {
	if r.kind == rowScalar {
		switch r.field {
		case fieldQRImage:
			if m.data.Contact.QRImage != "" {
				return "(embedded image)"
			}
			return StyleDim.Render("none")
		case fieldPrompt:
			if m.promptText == "" {
				return StyleDim.Render("describe your company, then press g")
			}
			return m.promptText
		}
	}
	v := m.currentValue(r)
	if v == "" {
		return StyleDim.Render("empty")
	}
	return v
}

// =============================================================================
// Preview Pane
// =============================================================================

// viewPreview renders a terminal approximation of the card so edits show
// their effect immediately. The layout metrics come from the same engine
// the SVG sinks use.
func (m editorModel) viewPreview() string {
	d := m.data
	metrics := layout.Compute(d)

	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(metrics.ThemeColor)).Bold(true)

	var b strings.Builder
	for _, line := range strings.Split(d.CompanyNameCN, "\n") {
		b.WriteString(accent.Render(line) + "\n")
	}
	b.WriteString(StyleValue.Render(strings.ToUpper(d.CompanyNameEN)) + "\n")
	if d.Tagline != "" {
		b.WriteString(StyleDim.Render(d.Tagline) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(previewServices(d, metrics, accent))

	if len(d.Partners) > 0 {
		b.WriteString("\n" + StyleDim.Render("战略合作伙伴") + "\n")
		for _, p := range d.Partners {
			b.WriteString("  • " + p.Name + "\n")
		}
	}

	if d.Contact.Phone != "" || d.Contact.Email != "" {
		b.WriteString("\n")
		if d.Contact.Phone != "" {
			b.WriteString(StyleDim.Render("电话 ") + d.Contact.Phone + "\n")
		}
		if d.Contact.Email != "" {
			b.WriteString(StyleDim.Render("邮箱 ") + d.Contact.Email + "\n")
		}
	}
	b.WriteString("\n" + StyleDim.Render(previewQRLine(d, metrics)) + "\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("%.0f×%.0f px · scale %.2f", metrics.CardWidth, metrics.CardHeight, metrics.Scale)))

	return stylePreviewPane.Render(b.String())
}

// previewServices lists services in one or two columns, matching the
// column mode the rendered card will use.
func previewServices(d card.Data, metrics layout.Metrics, accent lipgloss.Style) string {
	if len(d.Services) == 0 {
		return ""
	}

	lines := make([]string, len(d.Services))
	for i, s := range d.Services {
		lines[i] = accent.Render(layout.IndexLabel(i)) + " " + s.Text
	}
	if !metrics.TwoColumnServices {
		return strings.Join(lines, "\n") + "\n"
	}

	var left, right []string
	for i, line := range lines {
		if i%2 == 0 {
			left = append(left, line)
		} else {
			right = append(right, line)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(left, "\n"), "   ", strings.Join(right, "\n")) + "\n"
}

func previewQRLine(d card.Data, metrics layout.Metrics) string {
	switch {
	case metrics.UseQRImage:
		return "QR: custom image"
	case d.Contact.QRData != "":
		return "QR: " + d.Contact.QRData
	default:
		return "QR: none"
	}
}
