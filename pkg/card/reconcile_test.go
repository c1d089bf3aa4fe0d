package card

import (
	"reflect"
	"testing"
)

func TestApplyEmptyPayloadIsIdentity(t *testing.T) {
	current := Default()
	got := Apply(current, GeneratedContent{})
	if !reflect.DeepEqual(got, current) {
		t.Errorf("Apply(empty) changed the card:\ngot  %+v\nwant %+v", got, current)
	}
}

func TestApplyScalarOverwrite(t *testing.T) {
	current := Default()
	gen := GeneratedContent{
		CompanyNameCN: "云帆\n科技",
		CompanyNameEN: "YUNFAN TECH",
		Email:         "contact@yunfan.example",
		// Tagline empty: previous value must survive.
	}

	got := Apply(current, gen)

	if got.CompanyNameCN != gen.CompanyNameCN {
		t.Errorf("CompanyNameCN = %q, want %q", got.CompanyNameCN, gen.CompanyNameCN)
	}
	if got.CompanyNameEN != gen.CompanyNameEN {
		t.Errorf("CompanyNameEN = %q, want %q", got.CompanyNameEN, gen.CompanyNameEN)
	}
	if got.Contact.Email != gen.Email {
		t.Errorf("Email = %q, want %q", got.Contact.Email, gen.Email)
	}
	if got.Tagline != current.Tagline {
		t.Errorf("empty tagline overwrote previous: %q", got.Tagline)
	}
}

func TestApplyPreservesProtectedFields(t *testing.T) {
	current := Default()
	current = SetThemeColor(current, "#123456")
	current = SetCardWidth(current, 640)
	current = SetQRData(current, "https://keep.example")
	current = SetQRImage(current, "data:image/png;base64,AAAA")

	got := Apply(current, GeneratedContent{
		CompanyNameEN: "NEW CO",
		Services:      []string{"a", "b"},
		Partners:      []string{"p"},
		Email:         "new@example.com",
	})

	if got.ThemeColor != "#123456" {
		t.Errorf("ThemeColor = %q, generation must not touch it", got.ThemeColor)
	}
	if got.CardWidth != 640 {
		t.Errorf("CardWidth = %d, generation must not touch it", got.CardWidth)
	}
	if got.Contact.Phone != current.Contact.Phone {
		t.Errorf("Phone = %q, generation must not touch it", got.Contact.Phone)
	}
	if got.Contact.QRData != "https://keep.example" {
		t.Errorf("QRData = %q, generation must not touch it", got.Contact.QRData)
	}
	if got.Contact.QRImage != "data:image/png;base64,AAAA" {
		t.Errorf("QRImage = %q, generation must not touch it", got.Contact.QRImage)
	}
}

func TestApplyReplacesListsWholesale(t *testing.T) {
	current := Default()
	oldIDs := map[string]bool{}
	for _, s := range current.Services {
		oldIDs[s.ID] = true
	}

	texts := []string{"one", "two", "three", "four", "five"}
	got := Apply(current, GeneratedContent{Services: texts})

	if len(got.Services) != len(texts) {
		t.Fatalf("len(Services) = %d, want %d", len(got.Services), len(texts))
	}
	for i, s := range got.Services {
		if s.Text != texts[i] {
			t.Errorf("Services[%d].Text = %q, want %q", i, s.Text, texts[i])
		}
		if s.ID == "" {
			t.Errorf("Services[%d] has empty ID", i)
		}
		if oldIDs[s.ID] {
			t.Errorf("Services[%d] reuses identifier %q from the replaced list", i, s.ID)
		}
	}
}

func TestApplyEmptyListKeepsExisting(t *testing.T) {
	current := Default()
	got := Apply(current, GeneratedContent{Partners: nil})
	if !reflect.DeepEqual(got.Partners, current.Partners) {
		t.Error("empty partners payload replaced the existing list")
	}
}

func TestApplyFullMerge(t *testing.T) {
	current := Data{
		ThemeColor:    "#000",
		CompanyNameCN: "甲公司",
		CompanyNameEN: "JIA CO",
		Tagline:       "old",
		Services:      []ServiceItem{{ID: "a", Text: "x"}},
		Partners:      []PartnerItem{},
		Contact:       Contact{Phone: "1", Email: "old@x.com"},
		CardWidth:     500,
	}
	patch := GeneratedContent{
		CompanyNameCN: "",
		CompanyNameEN: "JIA CO LTD",
		Tagline:       "new",
		Services:      []string{"s1", "s2"},
		Partners:      []string{"p1"},
		Email:         "new@x.com",
	}

	got := Apply(current, patch)

	if got.CompanyNameCN != "甲公司" {
		t.Errorf("CompanyNameCN = %q, want unchanged", got.CompanyNameCN)
	}
	if got.CompanyNameEN != "JIA CO LTD" {
		t.Errorf("CompanyNameEN = %q, want %q", got.CompanyNameEN, "JIA CO LTD")
	}
	if got.Tagline != "new" {
		t.Errorf("Tagline = %q, want %q", got.Tagline, "new")
	}
	if len(got.Services) != 2 || got.Services[0].Text != "s1" || got.Services[1].Text != "s2" {
		t.Errorf("Services = %+v, want s1, s2", got.Services)
	}
	if got.Services[0].ID == "a" || got.Services[1].ID == "a" {
		t.Error("replaced list reuses a prior identifier")
	}
	if len(got.Partners) != 1 || got.Partners[0].Name != "p1" {
		t.Errorf("Partners = %+v, want one item p1", got.Partners)
	}
	if got.Partners[0].ID == "" {
		t.Error("new partner has no identifier")
	}
	if got.Contact.Email != "new@x.com" {
		t.Errorf("Email = %q, want %q", got.Contact.Email, "new@x.com")
	}
	if got.Contact.Phone != "1" {
		t.Errorf("Phone = %q, want unchanged", got.Contact.Phone)
	}
	if got.ThemeColor != "#000" || got.CardWidth != 500 {
		t.Error("theme color or width changed during merge")
	}
}

func TestSettersDoNotMutateInput(t *testing.T) {
	d := Default()
	before := d.Clone()

	SetThemeColor(d, "#000000")
	SetCompanyNameCN(d, "x")
	SetTagline(d, "x")
	SetCardWidth(d, 700)
	SetServiceText(d, d.Services[0].ID, "x")
	RemoveService(d, d.Services[0].ID)
	AddPartner(d)

	if !reflect.DeepEqual(d, before) {
		t.Errorf("setters mutated their input:\ngot  %+v\nwant %+v", d, before)
	}
}

func TestSetCardWidthClamps(t *testing.T) {
	d := Default()
	if got := SetCardWidth(d, 1200).CardWidth; got != MaxWidth {
		t.Errorf("CardWidth = %d, want clamped to %d", got, MaxWidth)
	}
	if got := SetCardWidth(d, 100).CardWidth; got != MinWidth {
		t.Errorf("CardWidth = %d, want clamped to %d", got, MinWidth)
	}
}

func TestServiceOps(t *testing.T) {
	d := Data{}

	d = AddService(d)
	d = AddService(d)
	if len(d.Services) != 2 {
		t.Fatalf("len(Services) = %d, want 2", len(d.Services))
	}
	if d.Services[0].ID == d.Services[1].ID {
		t.Fatal("added services share an ID")
	}

	id := d.Services[0].ID
	d = SetServiceText(d, id, "consulting")
	if d.Services[0].Text != "consulting" {
		t.Errorf("Text = %q, want %q", d.Services[0].Text, "consulting")
	}
	if d.Services[1].Text != "" {
		t.Errorf("edit bled into sibling: %q", d.Services[1].Text)
	}

	d = SetServiceText(d, "no-such-id", "ignored")
	if d.Services[0].Text != "consulting" {
		t.Error("unknown id edit changed an item")
	}

	keep := d.Services[1].ID
	d = RemoveService(d, id)
	if len(d.Services) != 1 || d.Services[0].ID != keep {
		t.Errorf("RemoveService left %+v, want only %q", d.Services, keep)
	}
}

func TestPartnerOps(t *testing.T) {
	d := Data{}

	d = AddPartner(d)
	d = AddPartner(d)
	d = AddPartner(d)
	d = SetPartnerName(d, d.Partners[1].ID, "Middle Corp")

	if d.Partners[1].Name != "Middle Corp" {
		t.Errorf("Name = %q, want %q", d.Partners[1].Name, "Middle Corp")
	}

	first, last := d.Partners[0].ID, d.Partners[2].ID
	d = RemovePartner(d, d.Partners[1].ID)
	if len(d.Partners) != 2 {
		t.Fatalf("len(Partners) = %d, want 2", len(d.Partners))
	}
	if d.Partners[0].ID != first || d.Partners[1].ID != last {
		t.Error("RemovePartner reordered the remaining items")
	}
}

func TestQRImagePrecedenceOps(t *testing.T) {
	d := SetQRData(Data{}, "https://example.com")
	d = SetQRImage(d, "data:image/png;base64,AAAA")
	if d.Contact.QRImage == "" || d.Contact.QRData == "" {
		t.Fatal("setting the image must not clear the data")
	}

	d = ClearQRImage(d)
	if d.Contact.QRImage != "" {
		t.Error("ClearQRImage left an image")
	}
	if d.Contact.QRData != "https://example.com" {
		t.Error("ClearQRImage cleared the QR data")
	}
}
