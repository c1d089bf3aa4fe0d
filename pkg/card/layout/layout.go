// Package layout computes every visual measurement of a card from its data.
//
// The engine is a single pure function, [Compute]. All size-valued metrics
// are linear in one scale factor (card width divided by the 500px reference
// design width), so the whole composition scales uniformly and the aspect
// ratio stays fixed. Compute is total over its input domain: it never
// returns an error and degrades gracefully on empty or missing values.
package layout

import (
	"fmt"

	"github.com/matzehuels/cardstudio/pkg/card"
)

// Reference geometry of the 500px design. Every metric in [Metrics] is one
// of these values multiplied by the scale factor.
const (
	// ReferenceWidth is the design width the scale factor is relative to.
	ReferenceWidth = 500.0

	// AspectRatio is height over width. Fixed, not configurable.
	AspectRatio = 1.776

	// TwoColumnThreshold is the service count above which the list splits
	// into two columns. Exactly this many items stays single-column.
	TwoColumnThreshold = 6

	refBaseFont = 16.0

	refPagePad   = 48.0
	refHeaderGap = 64.0

	refNameCNFont      = 64.0
	refNameENFont      = 24.0
	refNameENGap       = 8.0
	refUnderlineWidth  = 64.0
	refUnderlineHeight = 4.0
	refUnderlineDrop   = 8.0

	refLogoSize    = 128.0
	refTaglineFont = 14.0

	refServicesHeadFont = 20.0
	refServicesHeadGap  = 24.0
	refServicesBlockGap = 32.0
	refServiceItemGap   = 12.0
	refServiceColGap    = 32.0
	refServiceIndexW    = 24.0
	refServiceIndexFont = 16.0
	refServiceTextFont  = 14.0

	refPanelTopPad    = 64.0
	refPanelSidePad   = 48.0
	refPanelBottomPad = 48.0
	refPartnersTopGap = 24.0

	refPartnersHeadFont = 18.0
	refPartnersHeadGap  = 16.0
	refPartnerColGap    = 16.0
	refPartnerRowGap    = 8.0
	refPartnerBullet    = 4.0
	refPartnerNameFont  = 12.0

	refFooterGap       = 32.0
	refContactHeadFont = 30.0
	refContactHeadGap  = 16.0
	refContactLineFont = 14.0

	refQRSize     = 80.0
	refQRFramePad = 8.0

	// panelHeightShare is the dark bottom panel's share of the card height.
	panelHeightShare = 0.45
	// panelClipRise is the fraction of the panel height the diagonal cut
	// climbs at its left edge.
	panelClipRise = 0.20
)

// Metrics holds every derived measurement a rendering surface needs. All
// lengths are in pixels. The JSON tags match the card model's camelCase
// keys so the exported layout document reads uniformly.
type Metrics struct {
	CardWidth  float64 `json:"cardWidth"`
	CardHeight float64 `json:"cardHeight"`
	Scale      float64 `json:"scale"`
	ThemeColor string  `json:"themeColor"`

	BaseFont float64 `json:"baseFont"`

	PagePad   float64 `json:"pagePad"`
	HeaderGap float64 `json:"headerGap"`

	NameCNFont      float64 `json:"nameCNFont"`
	NameENFont      float64 `json:"nameENFont"`
	NameENGap       float64 `json:"nameENGap"`
	UnderlineWidth  float64 `json:"underlineWidth"`
	UnderlineHeight float64 `json:"underlineHeight"`
	UnderlineDrop   float64 `json:"underlineDrop"`

	LogoSize    float64 `json:"logoSize"`
	TaglineFont float64 `json:"taglineFont"`

	ServicesHeadFont  float64 `json:"servicesHeadFont"`
	ServicesHeadGap   float64 `json:"servicesHeadGap"`
	ServicesBlockGap  float64 `json:"servicesBlockGap"`
	ServiceItemGap    float64 `json:"serviceItemGap"`
	ServiceColGap     float64 `json:"serviceColGap"`
	ServiceIndexWidth float64 `json:"serviceIndexWidth"`
	ServiceIndexFont  float64 `json:"serviceIndexFont"`
	ServiceTextFont   float64 `json:"serviceTextFont"`

	// TwoColumnServices is true when the services list lays out in two
	// columns (more than TwoColumnThreshold items).
	TwoColumnServices bool `json:"twoColumnServices"`

	PanelHeight    float64 `json:"panelHeight"`
	PanelClipRise  float64 `json:"panelClipRise"`
	PanelTopPad    float64 `json:"panelTopPad"`
	PanelSidePad   float64 `json:"panelSidePad"`
	PanelBottomPad float64 `json:"panelBottomPad"`
	PartnersTopGap float64 `json:"partnersTopGap"`

	PartnersHeadFont float64 `json:"partnersHeadFont"`
	PartnersHeadGap  float64 `json:"partnersHeadGap"`
	PartnerColGap    float64 `json:"partnerColGap"`
	PartnerRowGap    float64 `json:"partnerRowGap"`
	PartnerBullet    float64 `json:"partnerBullet"`
	PartnerNameFont  float64 `json:"partnerNameFont"`

	FooterGap       float64 `json:"footerGap"`
	ContactHeadFont float64 `json:"contactHeadFont"`
	ContactHeadGap  float64 `json:"contactHeadGap"`
	ContactLineFont float64 `json:"contactLineFont"`

	QRSize     float64 `json:"qrSize"`
	QRFramePad float64 `json:"qrFramePad"`

	// UseQRImage selects the uploaded image over the generated code. The
	// image always wins when present.
	UseQRImage bool `json:"useQRImage"`
}

// Compute derives the full metric set for d. It is deterministic and has
// no error path; a missing width falls back to the 500px reference and a
// missing theme color to the default accent. Widths below 1 are clamped to
// 1 so metrics stay finite even for callers that bypass the editor's range
// control.
func Compute(d card.Data) Metrics {
	width := float64(d.CardWidth)
	if width == 0 {
		width = ReferenceWidth
	}
	if width < 1 {
		width = 1
	}

	color := d.ThemeColor
	if color == "" {
		color = card.DefaultThemeColor
	}

	scale := width / ReferenceWidth
	height := width * AspectRatio
	panelHeight := height * panelHeightShare

	return Metrics{
		CardWidth:  width,
		CardHeight: height,
		Scale:      scale,
		ThemeColor: color,

		BaseFont: refBaseFont * scale,

		PagePad:   refPagePad * scale,
		HeaderGap: refHeaderGap * scale,

		NameCNFont:      refNameCNFont * scale,
		NameENFont:      refNameENFont * scale,
		NameENGap:       refNameENGap * scale,
		UnderlineWidth:  refUnderlineWidth * scale,
		UnderlineHeight: refUnderlineHeight * scale,
		UnderlineDrop:   refUnderlineDrop * scale,

		LogoSize:    refLogoSize * scale,
		TaglineFont: refTaglineFont * scale,

		ServicesHeadFont:  refServicesHeadFont * scale,
		ServicesHeadGap:   refServicesHeadGap * scale,
		ServicesBlockGap:  refServicesBlockGap * scale,
		ServiceItemGap:    refServiceItemGap * scale,
		ServiceColGap:     refServiceColGap * scale,
		ServiceIndexWidth: refServiceIndexW * scale,
		ServiceIndexFont:  refServiceIndexFont * scale,
		ServiceTextFont:   refServiceTextFont * scale,

		TwoColumnServices: len(d.Services) > TwoColumnThreshold,

		PanelHeight:    panelHeight,
		PanelClipRise:  panelHeight * panelClipRise,
		PanelTopPad:    refPanelTopPad * scale,
		PanelSidePad:   refPanelSidePad * scale,
		PanelBottomPad: refPanelBottomPad * scale,
		PartnersTopGap: refPartnersTopGap * scale,

		PartnersHeadFont: refPartnersHeadFont * scale,
		PartnersHeadGap:  refPartnersHeadGap * scale,
		PartnerColGap:    refPartnerColGap * scale,
		PartnerRowGap:    refPartnerRowGap * scale,
		PartnerBullet:    refPartnerBullet * scale,
		PartnerNameFont:  refPartnerNameFont * scale,

		FooterGap:       refFooterGap * scale,
		ContactHeadFont: refContactHeadFont * scale,
		ContactHeadGap:  refContactHeadGap * scale,
		ContactLineFont: refContactLineFont * scale,

		QRSize:     refQRSize * scale,
		QRFramePad: refQRFramePad * scale,

		UseQRImage: d.Contact.QRImage != "",
	}
}

// IndexLabel formats the display label for the service at position i
// (zero-based). Labels are one-based and zero-padded to two digits
// regardless of the list length: 01, 02, ... 10, 11.
func IndexLabel(i int) string {
	return fmt.Sprintf("%02d", i+1)
}
