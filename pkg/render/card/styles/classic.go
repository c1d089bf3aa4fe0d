package styles

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/cardstudio/pkg/card"
	"github.com/matzehuels/cardstudio/pkg/card/layout"
	"github.com/matzehuels/cardstudio/pkg/render/card/qr"
)

const (
	serifFamily = "'Songti SC', 'Noto Serif CJK SC', SimSun, serif"
	sansFamily  = "'PingFang SC', 'Noto Sans CJK SC', 'Helvetica Neue', sans-serif"

	// Line height multipliers for flowed text.
	nameLineHeight    = 1.1
	serviceLineHeight = 1.4
	partnerLineHeight = 1.3
	contactLineHeight = 1.5
)

// Classic renders the reference design: serif headings, numbered services,
// and a diagonal near-black bottom panel carrying partners, contact lines,
// and the QR frame.
type Classic struct{}

func (Classic) RenderDefs(buf *bytes.Buffer, m layout.Metrics) {
	panelTop := m.CardHeight - m.PanelHeight
	fmt.Fprintf(buf, "  <defs>\n")
	fmt.Fprintf(buf, `    <clipPath id="panel-clip"><polygon points="0,%.2f %.2f,%.2f %.2f,%.2f 0,%.2f"/></clipPath>`+"\n",
		panelTop+m.PanelClipRise, m.CardWidth, panelTop, m.CardWidth, m.CardHeight, m.CardHeight)
	fmt.Fprintf(buf, "  </defs>\n")
}

func (Classic) RenderBackground(buf *bytes.Buffer, m layout.Metrics) {
	fmt.Fprintf(buf, `  <rect x="0" y="0" width="%.2f" height="%.2f" fill="#ffffff"/>`+"\n",
		m.CardWidth, m.CardHeight)
	panelTop := m.CardHeight - m.PanelHeight
	fmt.Fprintf(buf, `  <rect x="0" y="%.2f" width="%.2f" height="%.2f" fill="%s" clip-path="url(#panel-clip)"/>`+"\n",
		panelTop, m.CardWidth, m.PanelHeight, colorPanel)
}

func (c Classic) RenderHeader(buf *bytes.Buffer, d card.Data, m layout.Metrics) {
	x := m.PagePad
	y := m.PagePad

	for _, line := range SplitLines(d.CompanyNameCN) {
		y += m.NameCNFont * nameLineHeight
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family=%q font-size="%.2f" font-weight="bold" fill="%s">%s</text>`+"\n",
			x, y, serifFamily, m.NameCNFont, colorInk, EscapeXML(line))
	}

	if d.CompanyNameEN != "" {
		y += m.NameENGap + m.NameENFont
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family=%q font-size="%.2f" font-weight="500" letter-spacing="0.15em" fill="%s">%s</text>`+"\n",
			x, y, sansFamily, m.NameENFont, colorMuted, EscapeXML(d.CompanyNameEN))
		fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
			x, y+m.UnderlineDrop, m.UnderlineWidth, m.UnderlineHeight, m.ThemeColor)
	}

	c.renderLogo(buf, m)

	if d.Tagline != "" {
		logoCX := m.CardWidth - m.PagePad - m.LogoSize/2
		taglineY := m.PagePad + m.LogoSize + m.TaglineFont*2
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family=%q font-size="%.2f" font-weight="300" letter-spacing="0.1em" text-anchor="middle" fill="%s">%s</text>`+"\n",
			logoCX, taglineY, sansFamily, m.TaglineFont, colorFaint, EscapeXML(d.Tagline))
	}
}

// renderLogo draws the theme-colored logo mark: an outlined ring around a
// solid square, stand-in for the brand glyph.
func (Classic) renderLogo(buf *bytes.Buffer, m layout.Metrics) {
	cx := m.CardWidth - m.PagePad - m.LogoSize/2
	cy := m.PagePad + m.LogoSize/2
	r := m.LogoSize / 2
	stroke := m.LogoSize * 0.05
	inner := m.LogoSize * 0.28

	fmt.Fprintf(buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="%.2f"/>`+"\n",
		cx, cy, r-stroke/2, m.ThemeColor, stroke)
	fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" transform="rotate(45 %.2f %.2f)"/>`+"\n",
		cx-inner/2, cy-inner/2, inner, inner, m.ThemeColor, cx, cy)
}

func (c Classic) RenderServices(buf *bytes.Buffer, d card.Data, m layout.Metrics) {
	x := m.PagePad
	y := c.headerBottom(d, m) + m.HeaderGap

	y += m.ServicesHeadFont
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family=%q font-size="%.2f" fill="%s">核心服务</text>`+"\n",
		x, y, serifFamily, m.ServicesHeadFont, colorInk)
	y += m.ServicesHeadGap

	rowHeight := m.ServiceTextFont*serviceLineHeight + m.ServiceItemGap
	colWidth := (m.CardWidth - 2*m.PagePad - m.ServiceColGap) / 2

	for i, s := range d.Services {
		ix, iy := x, y
		if m.TwoColumnServices {
			// Grid fills left to right, top to bottom.
			ix += float64(i%2) * (colWidth + m.ServiceColGap)
			iy += float64(i/2) * rowHeight
		} else {
			iy += float64(i) * rowHeight
		}
		baseline := iy + m.ServiceTextFont

		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family=%q font-size="%.2f" font-weight="bold" fill="%s">%s</text>`+"\n",
			ix, baseline, sansFamily, m.ServiceIndexFont, m.ThemeColor, layout.IndexLabel(i))
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family=%q font-size="%.2f" font-weight="300" letter-spacing="0.05em" fill="%s">%s</text>`+"\n",
			ix+m.ServiceIndexWidth+m.ServiceItemGap, baseline, sansFamily, m.ServiceTextFont, colorBody, EscapeXML(s.Text))
	}
}

// headerBottom returns the y coordinate where the header region ends: the
// lower edge of the name column or the logo/tagline column, whichever is
// deeper.
func (Classic) headerBottom(d card.Data, m layout.Metrics) float64 {
	names := m.PagePad
	if n := len(SplitLines(d.CompanyNameCN)); n > 0 {
		names += float64(n) * m.NameCNFont * nameLineHeight
	}
	if d.CompanyNameEN != "" {
		names += m.NameENGap + m.NameENFont + m.UnderlineDrop + m.UnderlineHeight
	}

	logo := m.PagePad + m.LogoSize
	if d.Tagline != "" {
		logo += m.TaglineFont * 2
	}

	if logo > names {
		return logo
	}
	return names
}

func (c Classic) RenderPanel(buf *bytes.Buffer, d card.Data, m layout.Metrics) {
	panelTop := m.CardHeight - m.PanelHeight
	x := m.PanelSidePad
	y := panelTop + m.PanelTopPad + m.PartnersTopGap

	y += m.PartnersHeadFont
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family=%q font-size="%.2f" fill="%s" opacity="0.8">合作伙伴</text>`+"\n",
		x, y, serifFamily, m.PartnersHeadFont, colorPanelDim)
	y += m.PartnersHeadGap

	rowHeight := m.PartnerNameFont*partnerLineHeight + m.PartnerRowGap
	colWidth := (m.CardWidth - 2*m.PanelSidePad - m.PartnerColGap) / 2

	for i, p := range d.Partners {
		px := x + float64(i%2)*(colWidth+m.PartnerColGap)
		baseline := y + float64(i/2)*rowHeight + m.PartnerNameFont

		fmt.Fprintf(buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"/>`+"\n",
			px+m.PartnerBullet/2, baseline-m.PartnerNameFont*0.35, m.PartnerBullet/2, m.ThemeColor)
		fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family=%q font-size="%.2f" font-weight="300" fill="%s">%s</text>`+"\n",
			px+m.PartnerBullet*2, baseline, sansFamily, m.PartnerNameFont, colorPanelTxt, EscapeXML(p.Name))
	}

	c.renderContact(buf, d, m)
	c.renderQR(buf, d, m)
}

func (Classic) renderContact(buf *bytes.Buffer, d card.Data, m layout.Metrics) {
	x := m.PanelSidePad
	lineHeight := m.ContactLineFont * contactLineHeight
	bottom := m.CardHeight - m.PanelBottomPad

	phoneY := bottom - lineHeight
	emailY := bottom
	headY := phoneY - lineHeight + m.ContactLineFont - m.ContactHeadGap - m.ContactHeadFont*0.25

	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family=%q font-size="%.2f" font-weight="500" letter-spacing="0.1em" fill="%s">CONTACT</text>`+"\n",
		x, headY, sansFamily, m.ContactHeadFont, m.ThemeColor)
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family=%q font-size="%.2f" font-weight="300" fill="%s">电话 <tspan dx="%.2f" fill="#ffffff">%s</tspan></text>`+"\n",
		x, phoneY, sansFamily, m.ContactLineFont, colorPanelTxt, m.ContactLineFont*0.5, EscapeXML(d.Contact.Phone))
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family=%q font-size="%.2f" font-weight="300" fill="%s">邮箱 <tspan dx="%.2f" fill="#ffffff">%s</tspan></text>`+"\n",
		x, emailY, sansFamily, m.ContactLineFont, colorPanelTxt, m.ContactLineFont*0.5, EscapeXML(d.Contact.Email))
}

// renderQR draws the white QR frame in the panel's lower right corner. An
// uploaded image always wins over the generated code; with neither, the
// frame stays blank.
func (Classic) renderQR(buf *bytes.Buffer, d card.Data, m layout.Metrics) {
	frame := m.QRSize + 2*m.QRFramePad
	fx := m.CardWidth - m.PanelSidePad - frame
	fy := m.CardHeight - m.PanelBottomPad - frame

	fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="#ffffff"/>`+"\n",
		fx, fy, frame, frame)

	qx, qy := fx+m.QRFramePad, fy+m.QRFramePad

	if m.UseQRImage {
		fmt.Fprintf(buf, `  <image x="%.2f" y="%.2f" width="%.2f" height="%.2f" href="%s" preserveAspectRatio="xMidYMid slice"/>`+"\n",
			qx, qy, m.QRSize, m.QRSize, EscapeXML(d.Contact.QRImage))
		return
	}

	modules, ok := qr.Modules(d.Contact.QRData)
	if !ok {
		return
	}
	cell := m.QRSize / float64(len(modules))
	for row, cols := range modules {
		for col, dark := range cols {
			if !dark {
				continue
			}
			fmt.Fprintf(buf, `  <rect x="%.3f" y="%.3f" width="%.3f" height="%.3f" fill="#000000"/>`+"\n",
				qx+float64(col)*cell, qy+float64(row)*cell, cell, cell)
		}
	}
}
