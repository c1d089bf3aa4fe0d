package card

import (
	"reflect"
	"testing"
)

func TestDefault(t *testing.T) {
	d := Default()

	if d.ThemeColor != DefaultThemeColor {
		t.Errorf("ThemeColor = %q, want %q", d.ThemeColor, DefaultThemeColor)
	}
	if d.CardWidth != DefaultWidth {
		t.Errorf("CardWidth = %d, want %d", d.CardWidth, DefaultWidth)
	}
	if len(d.Services) == 0 || len(d.Partners) == 0 {
		t.Fatalf("starter card must have services and partners, got %d/%d",
			len(d.Services), len(d.Partners))
	}

	seen := map[string]bool{}
	for _, s := range d.Services {
		if s.ID == "" {
			t.Error("service with empty ID")
		}
		if seen[s.ID] {
			t.Errorf("duplicate service ID %q", s.ID)
		}
		seen[s.ID] = true
	}
	for _, p := range d.Partners {
		if p.ID == "" {
			t.Error("partner with empty ID")
		}
		if seen[p.ID] {
			t.Errorf("duplicate partner ID %q", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestDefaultUniqueIDsAcrossCalls(t *testing.T) {
	a, b := Default(), Default()
	if a.Services[0].ID == b.Services[0].ID {
		t.Error("two starter cards share a service ID")
	}
}

func TestCloneIndependence(t *testing.T) {
	d := Default()
	c := d.Clone()

	c.Services[0].Text = "changed"
	c.Partners[0].Name = "changed"
	c.Contact.Email = "other@example.com"

	if d.Services[0].Text == "changed" {
		t.Error("mutating clone's services leaked into the original")
	}
	if d.Partners[0].Name == "changed" {
		t.Error("mutating clone's partners leaked into the original")
	}
	if d.Contact.Email == "other@example.com" {
		t.Error("mutating clone's contact leaked into the original")
	}
}

func TestCloneNilSlices(t *testing.T) {
	d := Data{CompanyNameEN: "ACME"}
	c := d.Clone()
	if c.Services != nil || c.Partners != nil {
		t.Error("Clone invented slices for nil lists")
	}
	if !reflect.DeepEqual(c, d) {
		t.Errorf("Clone() = %+v, want %+v", c, d)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   PartnerItem
		want string
	}{
		{"legacy text only", PartnerItem{ID: "a", LegacyText: "Old Corp"}, "Old Corp"},
		{"name wins over text", PartnerItem{ID: "b", Name: "New Corp", LegacyText: "Old Corp"}, "New Corp"},
		{"name only", PartnerItem{ID: "c", Name: "Plain Corp"}, "Plain Corp"},
		{"both empty", PartnerItem{ID: "d"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Normalize(Data{Partners: []PartnerItem{tt.in}})
			got := out.Partners[0]
			if got.Name != tt.want {
				t.Errorf("Name = %q, want %q", got.Name, tt.want)
			}
			if got.LegacyText != "" {
				t.Errorf("LegacyText = %q, want cleared", got.LegacyText)
			}
			if got.ID != tt.in.ID {
				t.Errorf("ID = %q, want %q", got.ID, tt.in.ID)
			}
		})
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	d := Data{Partners: []PartnerItem{{ID: "a", LegacyText: "Old"}}}
	Normalize(d)
	if d.Partners[0].LegacyText != "Old" {
		t.Error("Normalize mutated its input")
	}
}

func TestClampWidth(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 0}, // unset stays unset
		{299, 300},
		{300, 300},
		{500, 500},
		{800, 800},
		{801, 800},
		{-50, 300},
	}
	for _, tt := range tests {
		if got := ClampWidth(tt.in); got != tt.want {
			t.Errorf("ClampWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
