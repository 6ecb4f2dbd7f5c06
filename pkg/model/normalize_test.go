package model_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-brandkit/pkg/model"
)

func TestBrandIdentity_NormalizeFillsDefaults(t *testing.T) {
	got, corrections := model.BrandIdentity{Name: "Acme"}.Normalize()

	want := model.BrandIdentity{
		Name: "Acme",
		Colors: model.Colors{
			Primary:   model.DefaultPrimaryColor,
			Secondary: model.DefaultSecondaryColor,
			Accent:    model.DefaultAccentColor,
			Text:      model.DefaultTextColor,
		},
		Fonts: model.Fonts{Headline: model.DefaultFontFamily, Body: model.DefaultFontFamily},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("normalized brand mismatch (-want +got):\n%s", diff)
	}
	if len(corrections) != 0 {
		t.Fatalf("missing fields must not produce corrections, got %+v", corrections)
	}
}

func TestBrandIdentity_NormalizeBlankName(t *testing.T) {
	got, _ := model.BrandIdentity{Name: "   "}.Normalize()
	if got.Name != model.DefaultBrandName {
		t.Fatalf("expected placeholder name, got %q", got.Name)
	}
}

func TestBrandIdentity_NormalizeReportsInvalidTokens(t *testing.T) {
	input := model.BrandIdentity{
		Name:    "<b>Acme</b>",
		LogoURL: "javascript:alert(1)",
		Colors: model.Colors{
			Primary: "#2563EB",
			Accent:  "red;background:url(evil)",
		},
		Fonts: model.Fonts{Headline: "Comic;Sans"},
	}
	got, corrections := input.Normalize()

	if got.Name != "Acme" {
		t.Fatalf("expected markup stripped from name, got %q", got.Name)
	}
	if got.LogoURL != "" {
		t.Fatalf("expected unsafe logo dropped, got %q", got.LogoURL)
	}
	if got.Colors.Primary != "#2563eb" {
		t.Fatalf("expected lowercased primary, got %q", got.Colors.Primary)
	}
	if got.Colors.Accent != model.DefaultAccentColor {
		t.Fatalf("expected accent fallback, got %q", got.Colors.Accent)
	}

	want := []model.Correction{
		{Field: "logoUrl", Value: "javascript:alert(1)", Fallback: "", Reason: model.ReasonUnsupportedScheme},
		{Field: "colors.accent", Value: "red;background:url(evil)", Fallback: model.DefaultAccentColor, Reason: model.ReasonInvalidToken},
		{Field: "fonts.headline", Value: "Comic;Sans", Fallback: model.DefaultFontFamily, Reason: model.ReasonInvalidToken},
	}
	if diff := cmp.Diff(want, corrections); diff != "" {
		t.Fatalf("corrections mismatch (-want +got):\n%s", diff)
	}

	if input.Name != "<b>Acme</b>" || input.Colors.Primary != "#2563EB" {
		t.Fatalf("input must not be mutated: %+v", input)
	}
}

func TestBrandIdentity_NormalizeKeepsSafeLogos(t *testing.T) {
	for _, logo := range []string{"https://x/logo.png", "http://cdn.example.com/a.svg", "data:image/png;base64,AAAA"} {
		got, corrections := model.BrandIdentity{LogoURL: logo}.Normalize()
		if got.LogoURL != logo || len(corrections) != 0 {
			t.Fatalf("logo %q: got %q with %+v", logo, got.LogoURL, corrections)
		}
	}
}

func TestCustomizationConfig_NormalizeDefaults(t *testing.T) {
	got, corrections := model.CustomizationConfig{}.Normalize()
	if diff := cmp.Diff(model.DefaultCustomization(), got); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
	if len(corrections) != 0 {
		t.Fatalf("unexpected corrections: %+v", corrections)
	}
}

func TestCustomizationConfig_NormalizeUnknownValues(t *testing.T) {
	input := model.CustomizationConfig{
		HeaderHeight:     "gigantic",
		FooterStyle:      "MINIMAL",
		LogoPosition:     "top",
		FontSize:         "large",
		Margins:          "huge",
		LetterSpacing:    "wide",
		IncludeWatermark: true,
		DocumentDate:     "March 3, 2025",
	}
	got, corrections := input.Normalize()

	want := model.CustomizationConfig{
		HeaderHeight:     model.HeaderMedium,
		FooterStyle:      model.FooterMinimal,
		LogoPosition:     model.LogoLeft,
		FontSize:         model.FontLarge,
		Margins:          model.MarginsStandard,
		LetterSpacing:    model.SpacingWide,
		IncludeWatermark: true,
		DocumentDate:     "March 3, 2025",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("normalized config mismatch (-want +got):\n%s", diff)
	}

	wantFields := []string{"headerHeight", "logoPosition", "margins"}
	var fields []string
	for _, c := range corrections {
		fields = append(fields, c.Field)
		if c.Reason != model.ReasonUnknownValue {
			t.Fatalf("unexpected reason %q", c.Reason)
		}
	}
	if diff := cmp.Diff(wantFields, fields); diff != "" {
		t.Fatalf("corrected fields mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRenderMode(t *testing.T) {
	cases := []struct {
		raw       string
		want      model.RenderMode
		corrected bool
	}{
		{"production", model.ModeProduction, false},
		{" Preview ", model.ModePreview, false},
		{"email", model.ModeEmail, false},
		{"", model.ModePreview, false},
		{"print", model.ModePreview, true},
	}
	for _, tc := range cases {
		mode, fix := model.ParseRenderMode(tc.raw)
		if mode != tc.want {
			t.Fatalf("ParseRenderMode(%q): want %q, got %q", tc.raw, tc.want, mode)
		}
		if (fix != nil) != tc.corrected {
			t.Fatalf("ParseRenderMode(%q): correction presence mismatch: %+v", tc.raw, fix)
		}
	}
}

func TestContact_LinesAndSummary(t *testing.T) {
	contact := model.Contact{Address: "1 Main St", Email: "hi@example.com", Website: "example.com"}

	want := []model.ContactLine{
		{Field: model.ContactAddress, Value: "1 Main St"},
		{Field: model.ContactEmail, Value: "hi@example.com"},
		{Field: model.ContactWebsite, Value: "example.com"},
	}
	if diff := cmp.Diff(want, contact.Lines()); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}

	wantSummary := []model.ContactLine{
		{Field: model.ContactAddress, Value: "1 Main St"},
		{Field: model.ContactEmail, Value: "hi@example.com"},
	}
	if diff := cmp.Diff(wantSummary, contact.Summary()); diff != "" {
		t.Fatalf("summary mismatch (-want +got):\n%s", diff)
	}

	contact.Phone = "555"
	if got := contact.Summary()[1].Field; got != model.ContactPhone {
		t.Fatalf("summary should prefer phone, got %q", got)
	}
}
