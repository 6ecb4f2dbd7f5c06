package model

// Brand defaults applied when a profile omits a value.
const (
	DefaultBrandName      = "Your Brand"
	DefaultPrimaryColor   = "#2563eb"
	DefaultSecondaryColor = "#64748b"
	DefaultAccentColor    = "#f59e0b"
	DefaultTextColor      = "#1f2937"
	DefaultFontFamily     = "Inter"
)

// Colors holds the brand palette as CSS colour tokens.
type Colors struct {
	Primary   string `json:"primary,omitempty" yaml:"primary,omitempty"`
	Secondary string `json:"secondary,omitempty" yaml:"secondary,omitempty"`
	Accent    string `json:"accent,omitempty" yaml:"accent,omitempty"`
	Text      string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Fonts holds font family names.
type Fonts struct {
	Headline string `json:"headline,omitempty" yaml:"headline,omitempty"`
	Body     string `json:"body,omitempty" yaml:"body,omitempty"`
}

// Contact is the brand's contact block. Blank members are omitted from
// rendered footers.
type Contact struct {
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
	Phone   string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email   string `json:"email,omitempty" yaml:"email,omitempty"`
	Website string `json:"website,omitempty" yaml:"website,omitempty"`
}

// ContactField names a contact line.
type ContactField string

const (
	ContactAddress ContactField = "address"
	ContactPhone   ContactField = "phone"
	ContactEmail   ContactField = "email"
	ContactWebsite ContactField = "website"
)

// ContactLine is a single non-empty contact value.
type ContactLine struct {
	Field ContactField
	Value string
}

// Lines returns the non-empty contact values in display order.
func (c Contact) Lines() []ContactLine {
	candidates := []ContactLine{
		{Field: ContactAddress, Value: c.Address},
		{Field: ContactPhone, Value: c.Phone},
		{Field: ContactEmail, Value: c.Email},
		{Field: ContactWebsite, Value: c.Website},
	}
	out := make([]ContactLine, 0, len(candidates))
	for _, line := range candidates {
		if line.Value == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Summary returns the single-line contact summary used by minimal footers:
// the address followed by the phone number, or the email address when no
// phone number is set.
func (c Contact) Summary() []ContactLine {
	var out []ContactLine
	if c.Address != "" {
		out = append(out, ContactLine{Field: ContactAddress, Value: c.Address})
	}
	switch {
	case c.Phone != "":
		out = append(out, ContactLine{Field: ContactPhone, Value: c.Phone})
	case c.Email != "":
		out = append(out, ContactLine{Field: ContactEmail, Value: c.Email})
	}
	return out
}

// BrandIdentity is a snapshot of a brand's visual identity. LogoURL is empty
// when the brand has no logo.
type BrandIdentity struct {
	Name    string  `json:"name,omitempty" yaml:"name,omitempty"`
	LogoURL string  `json:"logoUrl,omitempty" yaml:"logoUrl,omitempty"`
	Colors  Colors  `json:"colors" yaml:"colors"`
	Fonts   Fonts   `json:"fonts" yaml:"fonts"`
	Contact Contact `json:"contact" yaml:"contact"`
}

// HasLogo reports whether a logo reference is set.
func (b BrandIdentity) HasLogo() bool {
	return b.LogoURL != ""
}
