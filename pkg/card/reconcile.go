package card

// GeneratedContent is the flat content payload produced by the generation
// service. Lists carry no identifiers; the reconciler assigns fresh ones.
type GeneratedContent struct {
	CompanyNameCN string   `json:"companyNameCN"`
	CompanyNameEN string   `json:"companyNameEN"`
	Tagline       string   `json:"tagline"`
	Services      []string `json:"services"`
	Partners      []string `json:"partners"`
	Email         string   `json:"email"`
}

// Apply merges generated content into the current card and returns the
// result.
//
// Scalar fields overwrite only when the incoming value is non-empty;
// otherwise the current value is kept (fallback to previous, never to a
// default). The services and partners lists, when non-empty, replace the
// existing lists wholesale with freshly identified items; there is no
// merge-by-content and no identifier survives the replacement.
//
// The generation path has no authority over visual or contact-channel
// fields beyond email: theme color, width, phone, and the QR fields pass
// through untouched. Applying an all-empty payload returns a value
// deep-equal to current.
func Apply(current Data, gen GeneratedContent) Data {
	out := current.Clone()

	if gen.CompanyNameCN != "" {
		out.CompanyNameCN = gen.CompanyNameCN
	}
	if gen.CompanyNameEN != "" {
		out.CompanyNameEN = gen.CompanyNameEN
	}
	if gen.Tagline != "" {
		out.Tagline = gen.Tagline
	}
	if gen.Email != "" {
		out.Contact.Email = gen.Email
	}

	if len(gen.Services) > 0 {
		services := make([]ServiceItem, len(gen.Services))
		for i, text := range gen.Services {
			services[i] = NewServiceItem(text)
		}
		out.Services = services
	}
	if len(gen.Partners) > 0 {
		partners := make([]PartnerItem, len(gen.Partners))
		for i, name := range gen.Partners {
			partners[i] = NewPartnerItem(name)
		}
		out.Partners = partners
	}

	return out
}

// SetThemeColor returns d with the accent color replaced.
func SetThemeColor(d Data, color string) Data {
	out := d.Clone()
	out.ThemeColor = color
	return out
}

// SetCompanyNameCN returns d with the Chinese company name replaced.
// Line breaks are preserved and render as stacked lines.
func SetCompanyNameCN(d Data, name string) Data {
	out := d.Clone()
	out.CompanyNameCN = name
	return out
}

// SetCompanyNameEN returns d with the English company name replaced.
func SetCompanyNameEN(d Data, name string) Data {
	out := d.Clone()
	out.CompanyNameEN = name
	return out
}

// SetTagline returns d with the tagline replaced.
func SetTagline(d Data, tagline string) Data {
	out := d.Clone()
	out.Tagline = tagline
	return out
}

// SetCardWidth returns d with the width replaced, clamped to the editable
// range.
func SetCardWidth(d Data, width int) Data {
	out := d.Clone()
	out.CardWidth = ClampWidth(width)
	return out
}

// SetPhone returns d with the contact phone replaced.
func SetPhone(d Data, phone string) Data {
	out := d.Clone()
	out.Contact.Phone = phone
	return out
}

// SetEmail returns d with the contact email replaced.
func SetEmail(d Data, email string) Data {
	out := d.Clone()
	out.Contact.Email = email
	return out
}

// SetQRData returns d with the QR payload text replaced.
func SetQRData(d Data, data string) Data {
	out := d.Clone()
	out.Contact.QRData = data
	return out
}

// SetQRImage returns d with the uploaded QR image set. A non-empty image
// takes rendering precedence over the generated code.
func SetQRImage(d Data, dataURI string) Data {
	out := d.Clone()
	out.Contact.QRImage = dataURI
	return out
}

// ClearQRImage returns d without an uploaded QR image, falling back to the
// generated code.
func ClearQRImage(d Data) Data {
	out := d.Clone()
	out.Contact.QRImage = ""
	return out
}

// AddService returns d with an empty service appended under a fresh
// identifier.
func AddService(d Data) Data {
	out := d.Clone()
	out.Services = append(out.Services, NewServiceItem(""))
	return out
}

// SetServiceText returns d with the text of the service matching id
// replaced. Unknown ids leave the card unchanged.
func SetServiceText(d Data, id, text string) Data {
	out := d.Clone()
	for i, s := range out.Services {
		if s.ID == id {
			s.Text = text
			out.Services[i] = s
			break
		}
	}
	return out
}

// RemoveService returns d without the service matching id. The order of
// the remaining items is preserved; stored identifiers are not renumbered.
func RemoveService(d Data, id string) Data {
	out := d.Clone()
	services := out.Services[:0]
	for _, s := range out.Services {
		if s.ID != id {
			services = append(services, s)
		}
	}
	out.Services = services
	return out
}

// AddPartner returns d with an empty partner appended under a fresh
// identifier.
func AddPartner(d Data) Data {
	out := d.Clone()
	out.Partners = append(out.Partners, NewPartnerItem(""))
	return out
}

// SetPartnerName returns d with the name of the partner matching id
// replaced. Unknown ids leave the card unchanged.
func SetPartnerName(d Data, id, name string) Data {
	out := d.Clone()
	for i, p := range out.Partners {
		if p.ID == id {
			p.Name = name
			out.Partners[i] = p
			break
		}
	}
	return out
}

// RemovePartner returns d without the partner matching id, preserving the
// order of the remaining items.
func RemovePartner(d Data, id string) Data {
	out := d.Clone()
	partners := out.Partners[:0]
	for _, p := range out.Partners {
		if p.ID != id {
			partners = append(partners, p)
		}
	}
	out.Partners = partners
	return out
}
