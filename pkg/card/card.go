// Package card defines the business card data model and the pure
// transformations that produce new card values from edits and generated
// content.
//
// A card is a single value of type [Data]. It is never mutated in place:
// every editing operation takes the current value and returns a new one,
// leaving untouched fields (and every list item identifier) intact. This
// keeps the editor, the renderer, and the generation path free of shared
// mutable state.
//
// # List items
//
// Services and partners are ordered lists. Each item carries a stable
// identifier assigned at creation time; identifiers are never reused or
// rewritten, and display indices are always derived from position, not
// stored. See [NewServiceItem] and [NewPartnerItem].
package card

import "github.com/google/uuid"

// Default values for a freshly created card.
const (
	// DefaultThemeColor is the accent color used when none is set.
	DefaultThemeColor = "#FF4400"

	// DefaultWidth is the reference design width in pixels.
	DefaultWidth = 500

	// MinWidth and MaxWidth bound the editable card width.
	MinWidth = 300
	MaxWidth = 800
)

// ServiceItem is one entry in the numbered services list.
type ServiceItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// PartnerItem is one entry in the partner grid.
type PartnerItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// LegacyText mirrors the "text" field older exports used instead of
	// "name". It is coerced into Name by Normalize and never read elsewhere.
	LegacyText string `json:"text,omitempty"`
}

// Contact holds the contact block of the card.
//
// QRData is the text encoded into a generated QR code. QRImage, when set,
// is a self-contained data URI that replaces the generated code in every
// rendering; it always takes visual precedence over QRData.
type Contact struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	QRData  string `json:"qrData"`
	QRImage string `json:"qrImage,omitempty"`
}

// Data is the full editable state of one business card design.
type Data struct {
	ThemeColor    string        `json:"themeColor"`
	CompanyNameCN string        `json:"companyNameCN"`
	CompanyNameEN string        `json:"companyNameEN"`
	Tagline       string        `json:"tagline"`
	Services      []ServiceItem `json:"services"`
	Partners      []PartnerItem `json:"partners"`
	Contact       Contact       `json:"contact"`
	CardWidth     int           `json:"cardWidth,omitempty"`
}

// NewServiceItem creates a service entry with a fresh identifier.
func NewServiceItem(text string) ServiceItem {
	return ServiceItem{ID: uuid.NewString(), Text: text}
}

// NewPartnerItem creates a partner entry with a fresh identifier.
func NewPartnerItem(name string) PartnerItem {
	return PartnerItem{ID: uuid.NewString(), Name: name}
}

// Default returns the starting card shown before any editing.
func Default() Data {
	return Data{
		ThemeColor:    DefaultThemeColor,
		CompanyNameCN: "万析\n科技",
		CompanyNameEN: "WANXI TECH",
		Tagline:       "简单 · 高效 · 可靠",
		Services: []ServiceItem{
			NewServiceItem("企业数字化咨询"),
			NewServiceItem("数据分析与可视化"),
			NewServiceItem("云架构设计与迁移"),
			NewServiceItem("智能化流程改造"),
		},
		Partners: []PartnerItem{
			NewPartnerItem("华东数据中心"),
			NewPartnerItem("星云资本"),
		},
		Contact: Contact{
			Phone:  "400-800-1234",
			Email:  "hello@wanxi.tech",
			QRData: "https://wanxi.tech",
		},
		CardWidth: DefaultWidth,
	}
}

// Clone returns a deep copy of d. The copy shares no slices with the
// original, so transforming the copy can never alias the source value.
func (d Data) Clone() Data {
	out := d
	if d.Services != nil {
		out.Services = make([]ServiceItem, len(d.Services))
		copy(out.Services, d.Services)
	}
	if d.Partners != nil {
		out.Partners = make([]PartnerItem, len(d.Partners))
		copy(out.Partners, d.Partners)
	}
	return out
}

// Normalize coerces legacy-shaped values into the canonical model. Partner
// items from older exports carry a "text" field instead of "name"; the
// migration happens once here so rendering and editing never branch on
// shape.
func Normalize(d Data) Data {
	out := d.Clone()
	for i, p := range out.Partners {
		if p.Name == "" && p.LegacyText != "" {
			p.Name = p.LegacyText
		}
		p.LegacyText = ""
		out.Partners[i] = p
	}
	return out
}

// ClampWidth restricts w to the editable range [MinWidth, MaxWidth].
// A zero (unset) width is left alone so the renderer's default applies.
func ClampWidth(w int) int {
	if w == 0 {
		return 0
	}
	if w < MinWidth {
		return MinWidth
	}
	if w > MaxWidth {
		return MaxWidth
	}
	return w
}
