package layout

import (
	"math"
	"testing"

	"github.com/matzehuels/cardstudio/pkg/card"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeDefaults(t *testing.T) {
	m := Compute(card.Data{})

	if m.CardWidth != ReferenceWidth {
		t.Errorf("CardWidth = %v, want %v", m.CardWidth, ReferenceWidth)
	}
	if !almostEqual(m.Scale, 1.0) {
		t.Errorf("Scale = %v, want 1", m.Scale)
	}
	if m.ThemeColor != card.DefaultThemeColor {
		t.Errorf("ThemeColor = %q, want %q", m.ThemeColor, card.DefaultThemeColor)
	}
	if !almostEqual(m.CardHeight, ReferenceWidth*AspectRatio) {
		t.Errorf("CardHeight = %v, want %v", m.CardHeight, ReferenceWidth*AspectRatio)
	}
	if !almostEqual(m.BaseFont, 16) {
		t.Errorf("BaseFont = %v, want 16 at scale 1", m.BaseFont)
	}
	if !almostEqual(m.NameCNFont, 64) {
		t.Errorf("NameCNFont = %v, want 64 at scale 1", m.NameCNFont)
	}
	if !almostEqual(m.QRSize, 80) {
		t.Errorf("QRSize = %v, want 80 at scale 1", m.QRSize)
	}
}

func TestComputeAspectRatioHolds(t *testing.T) {
	for _, w := range []int{300, 400, 500, 650, 800} {
		m := Compute(card.Data{CardWidth: w})
		if !almostEqual(m.CardHeight, float64(w)*AspectRatio) {
			t.Errorf("width %d: CardHeight = %v, want %v", w, m.CardHeight, float64(w)*AspectRatio)
		}
	}
}

func TestComputeMetricsScaleLinearly(t *testing.T) {
	base := Compute(card.Data{CardWidth: 500})
	double := Compute(card.Data{CardWidth: 1000})

	if !almostEqual(double.Scale, 2.0) {
		t.Fatalf("Scale = %v, want 2", double.Scale)
	}

	pairs := []struct {
		name     string
		at1, at2 float64
	}{
		{"BaseFont", base.BaseFont, double.BaseFont},
		{"PagePad", base.PagePad, double.PagePad},
		{"NameCNFont", base.NameCNFont, double.NameCNFont},
		{"NameENFont", base.NameENFont, double.NameENFont},
		{"LogoSize", base.LogoSize, double.LogoSize},
		{"ServiceTextFont", base.ServiceTextFont, double.ServiceTextFont},
		{"PanelHeight", base.PanelHeight, double.PanelHeight},
		{"QRSize", base.QRSize, double.QRSize},
	}
	for _, p := range pairs {
		if !almostEqual(p.at2, p.at1*2) {
			t.Errorf("%s: %v at scale 2, want %v", p.name, p.at2, p.at1*2)
		}
	}
}

func TestComputeWidthFloor(t *testing.T) {
	m := Compute(card.Data{CardWidth: -20})
	if m.CardWidth != 1 {
		t.Errorf("CardWidth = %v, want floor of 1", m.CardWidth)
	}
	if m.Scale <= 0 {
		t.Errorf("Scale = %v, want positive", m.Scale)
	}
}

func TestComputeColumnMode(t *testing.T) {
	tests := []struct {
		count int
		want  bool
	}{
		{0, false},
		{1, false},
		{6, false}, // exactly at the threshold stays single-column
		{7, true},
		{12, true},
	}
	for _, tt := range tests {
		services := make([]card.ServiceItem, tt.count)
		for i := range services {
			services[i] = card.NewServiceItem("s")
		}
		m := Compute(card.Data{Services: services})
		if m.TwoColumnServices != tt.want {
			t.Errorf("%d services: TwoColumnServices = %v, want %v", tt.count, m.TwoColumnServices, tt.want)
		}
	}
}

func TestComputeQRImagePrecedence(t *testing.T) {
	withImage := Compute(card.Data{Contact: card.Contact{
		QRData:  "https://example.com",
		QRImage: "data:image/png;base64,AAAA",
	}})
	if !withImage.UseQRImage {
		t.Error("UseQRImage = false with an image set")
	}

	withoutImage := Compute(card.Data{Contact: card.Contact{QRData: "https://example.com"}})
	if withoutImage.UseQRImage {
		t.Error("UseQRImage = true without an image")
	}
}

func TestComputePanelGeometry(t *testing.T) {
	m := Compute(card.Data{CardWidth: 500})
	wantPanel := m.CardHeight * 0.45
	if !almostEqual(m.PanelHeight, wantPanel) {
		t.Errorf("PanelHeight = %v, want %v", m.PanelHeight, wantPanel)
	}
	if !almostEqual(m.PanelClipRise, wantPanel*0.20) {
		t.Errorf("PanelClipRise = %v, want %v", m.PanelClipRise, wantPanel*0.20)
	}
}

func TestIndexLabel(t *testing.T) {
	tests := []struct {
		i    int
		want string
	}{
		{0, "01"},
		{1, "02"},
		{9, "10"},
		{10, "11"},
		{99, "100"},
	}
	for _, tt := range tests {
		if got := IndexLabel(tt.i); got != tt.want {
			t.Errorf("IndexLabel(%d) = %q, want %q", tt.i, got, tt.want)
		}
	}
}
