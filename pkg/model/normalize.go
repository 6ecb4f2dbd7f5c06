package model

import (
	"net/url"
	"strings"

	"github.com/goliatone/go-brandkit/pkg/markup"
	"github.com/goliatone/go-brandkit/pkg/style"
)

// Normalize returns a copy of b with defaults filled in and unsafe values
// replaced. The receiver is never modified.
func (b BrandIdentity) Normalize() (BrandIdentity, []Correction) {
	var corrections []Correction
	out := b

	out.Name = markup.PlainText(b.Name)
	if out.Name == "" {
		out.Name = DefaultBrandName
	}

	logo, fix := normalizeLogoURL(b.LogoURL)
	out.LogoURL = logo
	corrections = appendCorrection(corrections, fix)

	out.Colors.Primary, fix = normalizeColor("colors.primary", b.Colors.Primary, DefaultPrimaryColor)
	corrections = appendCorrection(corrections, fix)
	out.Colors.Secondary, fix = normalizeColor("colors.secondary", b.Colors.Secondary, DefaultSecondaryColor)
	corrections = appendCorrection(corrections, fix)
	out.Colors.Accent, fix = normalizeColor("colors.accent", b.Colors.Accent, DefaultAccentColor)
	corrections = appendCorrection(corrections, fix)
	out.Colors.Text, fix = normalizeColor("colors.text", b.Colors.Text, DefaultTextColor)
	corrections = appendCorrection(corrections, fix)

	out.Fonts.Headline, fix = normalizeFont("fonts.headline", b.Fonts.Headline)
	corrections = appendCorrection(corrections, fix)
	out.Fonts.Body, fix = normalizeFont("fonts.body", b.Fonts.Body)
	corrections = appendCorrection(corrections, fix)

	out.Contact = Contact{
		Address: markup.PlainText(b.Contact.Address),
		Phone:   markup.PlainText(b.Contact.Phone),
		Email:   markup.PlainText(b.Contact.Email),
		Website: markup.PlainText(b.Contact.Website),
	}

	return out, corrections
}

// Normalize returns a copy of c with every enum resolved to a known value.
func (c CustomizationConfig) Normalize() (CustomizationConfig, []Correction) {
	var corrections []Correction
	out := c
	var fix *Correction

	out.HeaderHeight, fix = normalizeEnum("headerHeight", c.HeaderHeight, HeaderHeights(), DefaultHeaderHeight)
	corrections = appendCorrection(corrections, fix)
	out.FooterStyle, fix = normalizeEnum("footerStyle", c.FooterStyle, FooterStyles(), DefaultFooterStyle)
	corrections = appendCorrection(corrections, fix)
	out.LogoPosition, fix = normalizeEnum("logoPosition", c.LogoPosition, LogoPositions(), DefaultLogoPosition)
	corrections = appendCorrection(corrections, fix)
	out.FontSize, fix = normalizeEnum("fontSize", c.FontSize, FontSizes(), DefaultFontSize)
	corrections = appendCorrection(corrections, fix)
	out.Margins, fix = normalizeEnum("margins", c.Margins, MarginOptions(), DefaultMargins)
	corrections = appendCorrection(corrections, fix)
	out.LetterSpacing, fix = normalizeEnum("letterSpacing", c.LetterSpacing, LetterSpacings(), DefaultLetterSpacing)
	corrections = appendCorrection(corrections, fix)

	out.DocumentDate = markup.PlainText(c.DocumentDate)

	return out, corrections
}

func normalizeEnum[T ~string](field string, value T, allowed []T, fallback T) (T, *Correction) {
	raw := strings.ToLower(strings.TrimSpace(string(value)))
	if raw == "" {
		return fallback, nil
	}
	for _, candidate := range allowed {
		if string(candidate) == raw {
			return candidate, nil
		}
	}
	return fallback, &Correction{
		Field:    field,
		Value:    string(value),
		Fallback: string(fallback),
		Reason:   ReasonUnknownValue,
	}
}

func normalizeColor(field, value, fallback string) (string, *Correction) {
	if strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	if !style.ValidColor(value) {
		return fallback, &Correction{Field: field, Value: value, Fallback: fallback, Reason: ReasonInvalidToken}
	}
	return style.NormalizeColor(value), nil
}

func normalizeFont(field, value string) (string, *Correction) {
	if strings.TrimSpace(value) == "" {
		return DefaultFontFamily, nil
	}
	if !style.ValidFontFamily(value) {
		return DefaultFontFamily, &Correction{Field: field, Value: value, Fallback: DefaultFontFamily, Reason: ReasonInvalidToken}
	}
	return style.NormalizeFontFamily(value), nil
}

func normalizeLogoURL(raw string) (string, *Correction) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", nil
	}
	if strings.HasPrefix(strings.ToLower(value), "data:image/") && !strings.ContainsAny(value, "\"'<> ") {
		return value, nil
	}
	parsed, err := url.Parse(value)
	if err == nil && parsed.Host != "" {
		switch strings.ToLower(parsed.Scheme) {
		case "http", "https":
			return parsed.String(), nil
		}
	}
	return "", &Correction{Field: "logoUrl", Value: raw, Fallback: "", Reason: ReasonUnsupportedScheme}
}

func appendCorrection(list []Correction, fix *Correction) []Correction {
	if fix == nil {
		return list
	}
	return append(list, *fix)
}
