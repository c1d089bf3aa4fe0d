package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/cardstudio/pkg/card"
	"github.com/matzehuels/cardstudio/pkg/card/layout"
	"github.com/matzehuels/cardstudio/pkg/cardio"
	"github.com/matzehuels/cardstudio/pkg/errors"
	"github.com/matzehuels/cardstudio/pkg/integrations/gemini"
	"github.com/matzehuels/cardstudio/pkg/render/card/sink"
)

// palette is the curated theme color selection, cycled with "c".
// Any other color can still be typed into the theme color field.
var palette = []struct {
	name  string
	value string
}{
	{"Flame", "#FF4400"},
	{"Peach Fuzz", "#FFBE98"},
	{"Viva Magenta", "#BB2649"},
	{"Very Peri", "#6667AB"},
	{"Classic Blue", "#0F4C81"},
	{"Living Coral", "#FF6F61"},
	{"Greenery", "#88B04B"},
	{"Ink", "#1A1A1A"},
}

// rowKind identifies what a focusable editor row edits.
type rowKind int

const (
	rowScalar rowKind = iota
	rowService
	rowPartner
	rowAddService
	rowAddPartner
)

// scalar field identifiers for rowScalar rows.
const (
	fieldNameCN  = "nameCN"
	fieldNameEN  = "nameEN"
	fieldTagline = "tagline"
	fieldColor   = "color"
	fieldPhone   = "phone"
	fieldEmail   = "email"
	fieldQRData  = "qrData"
	fieldQRImage = "qrImage"
	fieldPrompt  = "prompt"
)

// row is one focusable line in the editor form.
type row struct {
	kind  rowKind
	field string // scalar field id (rowScalar)
	id    string // list item id (rowService/rowPartner)
	label string
}

// genResultMsg delivers the outcome of an in-flight generation request.
type genResultMsg struct {
	content card.GeneratedContent
	err     error
}

// editorModel is the bubbletea model for the interactive card editor.
// The card value is replaced wholesale on every edit; the model never
// mutates it in place.
type editorModel struct {
	data card.Data
	path string

	rows   []row
	cursor int
	offset int
	height int

	input   textinput.Model
	editing bool

	genClient  *gemini.Client
	generating bool // single-flight guard: no second request while one is pending
	spin       spinner.Model
	promptText string

	status string
	dirty  bool
	width  int
}

func newEditorModel(d card.Data, path string, genClient *gemini.Client) editorModel {
	input := textinput.New()
	input.CharLimit = 200
	input.Width = 40

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = styleIconSpinner

	m := editorModel{
		data:      d,
		path:      path,
		input:     input,
		genClient: genClient,
		spin:      spin,
		height:    24,
	}
	m.rebuildRows()
	return m
}

// rebuildRows recomputes the focusable row list from the current card.
// Called after every list add/remove so cursor targets stay valid.
func (m *editorModel) rebuildRows() {
	rows := []row{
		{kind: rowScalar, field: fieldNameCN, label: "Chinese name"},
		{kind: rowScalar, field: fieldNameEN, label: "English name"},
		{kind: rowScalar, field: fieldTagline, label: "Tagline"},
		{kind: rowScalar, field: fieldColor, label: "Theme color"},
	}
	for _, s := range m.data.Services {
		rows = append(rows, row{kind: rowService, id: s.ID})
	}
	rows = append(rows, row{kind: rowAddService, label: "+ add service"})
	for _, p := range m.data.Partners {
		rows = append(rows, row{kind: rowPartner, id: p.ID})
	}
	rows = append(rows,
		row{kind: rowAddPartner, label: "+ add partner"},
		row{kind: rowScalar, field: fieldPhone, label: "Phone"},
		row{kind: rowScalar, field: fieldEmail, label: "Email"},
		row{kind: rowScalar, field: fieldQRData, label: "QR data"},
		row{kind: rowScalar, field: fieldQRImage, label: "QR image file"},
		row{kind: rowScalar, field: fieldPrompt, label: "AI description"},
	)
	m.rows = rows
	if m.cursor >= len(rows) {
		m.cursor = len(rows) - 1
	}
}

func (m editorModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height - 6
		if m.height < 8 {
			m.height = 8
		}
		return m, nil

	case genResultMsg:
		// Guard clears unconditionally, success or failure.
		m.generating = false
		if msg.err != nil {
			m.status = StyleWarning.Render("Generation failed: " + errors.UserMessage(msg.err))
			return m, nil
		}
		m.data = card.Apply(m.data, msg.content)
		m.dirty = true
		m.rebuildRows()
		m.status = StyleSuccess.Render("Content generated")
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

// updateEditing handles keys while a field input is open.
func (m editorModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	case "enter":
		m.commitInput()
		m.editing = false
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateBrowsing handles keys while navigating the form.
func (m editorModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			if m.cursor < m.offset {
				m.offset = m.cursor
			}
		}

	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
			if m.cursor >= m.offset+m.height {
				m.offset = m.cursor - m.height + 1
			}
		}

	case "enter":
		return m.activateRow()

	case "d":
		return m.deleteRow(), nil

	case "c":
		m.data = card.SetThemeColor(m.data, nextPaletteColor(m.data.ThemeColor))
		m.dirty = true
		m.status = "Theme color: " + m.data.ThemeColor

	case "[":
		m.data = card.SetCardWidth(m.data, widthOf(m.data)-10)
		m.dirty = true
		m.status = fmt.Sprintf("Card width: %dpx", m.data.CardWidth)

	case "]":
		m.data = card.SetCardWidth(m.data, widthOf(m.data)+10)
		m.dirty = true
		m.status = fmt.Sprintf("Card width: %dpx", m.data.CardWidth)

	case "g":
		return m.startGeneration()

	case "x":
		m.status = m.export()

	case "s", "ctrl+s":
		if err := cardio.ExportJSON(m.data, m.path); err != nil {
			m.status = StyleWarning.Render(err.Error())
		} else {
			m.dirty = false
			m.status = StyleSuccess.Render("Saved " + m.path)
		}
	}
	return m, nil
}

// activateRow opens the input for the focused row, or performs its action.
func (m editorModel) activateRow() (tea.Model, tea.Cmd) {
	r := m.rows[m.cursor]
	switch r.kind {
	case rowAddService:
		m.data = card.AddService(m.data)
		m.dirty = true
		m.rebuildRows()
		return m, nil
	case rowAddPartner:
		m.data = card.AddPartner(m.data)
		m.dirty = true
		m.rebuildRows()
		return m, nil
	}

	m.input.SetValue(m.currentValue(r))
	m.input.CursorEnd()
	m.editing = true
	return m, m.input.Focus()
}

// deleteRow removes the focused list item or clears the QR image.
func (m editorModel) deleteRow() editorModel {
	r := m.rows[m.cursor]
	switch r.kind {
	case rowService:
		m.data = card.RemoveService(m.data, r.id)
		m.dirty = true
		m.rebuildRows()
	case rowPartner:
		m.data = card.RemovePartner(m.data, r.id)
		m.dirty = true
		m.rebuildRows()
	case rowScalar:
		if r.field == fieldQRImage && m.data.Contact.QRImage != "" {
			m.data = card.ClearQRImage(m.data)
			m.dirty = true
			m.status = "QR image cleared; using QR data"
		}
	}
	return m
}

// startGeneration kicks off the single-flight generation request.
func (m editorModel) startGeneration() (tea.Model, tea.Cmd) {
	if m.generating {
		return m, nil
	}
	if m.genClient == nil {
		m.status = StyleWarning.Render("No Gemini API key configured (set GEMINI_API_KEY)")
		return m, nil
	}
	description := strings.TrimSpace(m.prompt())
	if description == "" {
		m.status = StyleWarning.Render("Enter an AI description first")
		return m, nil
	}

	m.generating = true
	m.status = ""
	client := m.genClient
	return m, tea.Batch(m.spin.Tick, func() tea.Msg {
		content, err := client.Generate(context.Background(), description)
		return genResultMsg{content: content, err: err}
	})
}

// export writes the SVG and PDF next to the card file.
func (m editorModel) export() string {
	d := m.data
	metrics := layout.Compute(d)
	base := basePath("", m.path)

	svgPath := base + ".svg"
	if err := writeFile(svgPath, sink.RenderSVG(d, metrics)); err != nil {
		return StyleWarning.Render(err.Error())
	}

	pdf, err := sink.RenderPDF(d, metrics)
	if err != nil {
		return StyleWarning.Render("SVG written; PDF failed: " + err.Error())
	}
	if err := writeFile(base+".pdf", pdf); err != nil {
		return StyleWarning.Render(err.Error())
	}
	return StyleSuccess.Render("Exported " + svgPath + " and " + base + ".pdf")
}

// currentValue returns the editable text behind a row.
func (m editorModel) currentValue(r row) string {
	switch r.kind {
	case rowService:
		for _, s := range m.data.Services {
			if s.ID == r.id {
				return s.Text
			}
		}
	case rowPartner:
		for _, p := range m.data.Partners {
			if p.ID == r.id {
				return p.Name
			}
		}
	case rowScalar:
		switch r.field {
		case fieldNameCN:
			// Stacked lines edit as "|" separated; rendered back as breaks.
			return strings.ReplaceAll(m.data.CompanyNameCN, "\n", "|")
		case fieldNameEN:
			return m.data.CompanyNameEN
		case fieldTagline:
			return m.data.Tagline
		case fieldColor:
			return m.data.ThemeColor
		case fieldPhone:
			return m.data.Contact.Phone
		case fieldEmail:
			return m.data.Contact.Email
		case fieldQRData:
			return m.data.Contact.QRData
		case fieldQRImage, fieldPrompt:
			return ""
		}
	}
	return ""
}

// commitInput applies the open input's value to the card.
func (m *editorModel) commitInput() {
	r := m.rows[m.cursor]
	value := m.input.Value()

	switch r.kind {
	case rowService:
		m.data = card.SetServiceText(m.data, r.id, value)
	case rowPartner:
		m.data = card.SetPartnerName(m.data, r.id, value)
	case rowScalar:
		switch r.field {
		case fieldNameCN:
			m.data = card.SetCompanyNameCN(m.data, strings.ReplaceAll(value, "|", "\n"))
		case fieldNameEN:
			m.data = card.SetCompanyNameEN(m.data, value)
		case fieldTagline:
			m.data = card.SetTagline(m.data, value)
		case fieldColor:
			if value != "" {
				m.data = card.SetThemeColor(m.data, value)
			}
		case fieldPhone:
			m.data = card.SetPhone(m.data, value)
		case fieldEmail:
			m.data = card.SetEmail(m.data, value)
		case fieldQRData:
			m.data = card.SetQRData(m.data, value)
		case fieldQRImage:
			if value == "" {
				return
			}
			uri, err := cardio.LoadQRImage(value)
			if err != nil {
				m.status = StyleWarning.Render(err.Error())
				return
			}
			m.data = card.SetQRImage(m.data, uri)
			m.status = "QR image loaded (takes precedence over QR data)"
		case fieldPrompt:
			m.promptText = value
			return
		}
	}
	m.dirty = true
}

// prompt returns the pending AI description text.
func (m editorModel) prompt() string { return m.promptText }

// widthOf returns the effective card width with the default applied.
func widthOf(d card.Data) int {
	if d.CardWidth == 0 {
		return card.DefaultWidth
	}
	return d.CardWidth
}

// nextPaletteColor cycles to the palette entry after the current color,
// starting over when the current color is not from the palette.
func nextPaletteColor(current string) string {
	for i, p := range palette {
		if strings.EqualFold(p.value, current) {
			return palette[(i+1)%len(palette)].value
		}
	}
	return palette[0].value
}

// writeFile writes data to path with standard permissions.
func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
