package letterhead

import (
	"strings"
	"testing"

	"github.com/goliatone/go-brandkit/pkg/layout"
	"github.com/goliatone/go-brandkit/pkg/markup"
	"github.com/goliatone/go-brandkit/pkg/model"
)

func brand() model.BrandIdentity {
	return model.BrandIdentity{
		Name:    "Globex",
		LogoURL: "https://cdn.example.com/globex.svg",
		Colors:  model.Colors{Primary: "#0F766E"},
		Contact: model.Contact{
			Address: "42 Harbour Rd",
			Phone:   "555-0199",
			Email:   "info@globex.test",
			Website: "globex.test",
		},
	}
}

func TestDescriptorsAreComplete(t *testing.T) {
	seen := map[string]bool{}
	for _, descriptor := range Descriptors() {
		if descriptor.Render == nil || descriptor.DisplayName == "" || descriptor.Description == "" {
			t.Fatalf("incomplete descriptor %q", descriptor.ID)
		}
		if seen[descriptor.ID] {
			t.Fatalf("duplicate id %q", descriptor.ID)
		}
		seen[descriptor.ID] = true
	}
	if len(seen) != 6 {
		t.Fatalf("expected 6 letterheads, got %d", len(seen))
	}
}

func TestLetterheadsShareStructure(t *testing.T) {
	custom := model.DefaultCustomization()
	custom.DocumentDate = "1 April 2025"

	for _, descriptor := range Descriptors() {
		for _, mode := range model.RenderModes() {
			root := descriptor.Render(brand(), custom, mode)

			if got, _ := root.Attr("data-template"); got != descriptor.ID {
				t.Fatalf("%s/%s: data-template = %q", descriptor.ID, mode, got)
			}
			if n := len(root.FindRole(layout.RoleHeader)); n != 1 {
				t.Fatalf("%s/%s: expected one header, got %d", descriptor.ID, mode, n)
			}
			if n := len(root.FindRole(layout.RoleContent)); n != 1 {
				t.Fatalf("%s/%s: expected one content region, got %d", descriptor.ID, mode, n)
			}
			if n := len(root.FindRole(layout.RoleFooter)); n != 1 {
				t.Fatalf("%s/%s: expected one footer, got %d", descriptor.ID, mode, n)
			}
			if n := len(root.FindRole(layout.RoleDate)); n != 1 {
				t.Fatalf("%s/%s: expected one date line, got %d", descriptor.ID, mode, n)
			}
			out := root.String()
			if !strings.Contains(out, "#0f766e") {
				t.Fatalf("%s/%s: expected normalised primary colour in output", descriptor.ID, mode)
			}
			if issues := markup.CheckScriptFree(root); len(issues) > 0 {
				t.Fatalf("%s/%s: unexpected issues %v", descriptor.ID, mode, issues)
			}
		}
	}
}

func TestLetterheadsUsePrimaryColourWithoutFooterOrLogo(t *testing.T) {
	b := brand()
	b.LogoURL = ""
	custom := model.DefaultCustomization()
	custom.FooterStyle = model.FooterNone

	for _, descriptor := range Descriptors() {
		for _, mode := range model.RenderModes() {
			root := descriptor.Render(b, custom, mode)
			styled := root.FindAll(func(n *markup.Node) bool {
				return strings.Contains(n.Style.String(), "#0f766e")
			})
			if len(styled) == 0 {
				t.Fatalf("%s/%s: no element styled with the primary colour", descriptor.ID, mode)
			}
		}
	}
}

func TestLetterheadsAreEmailSafeInEmailMode(t *testing.T) {
	custom := model.DefaultCustomization()
	custom.IncludeWatermark = true
	for _, descriptor := range Descriptors() {
		root := descriptor.Render(brand(), custom, model.ModeEmail)
		if issues := markup.CheckEmailSafe(root); len(issues) > 0 {
			t.Fatalf("%s: unexpected email issues %v", descriptor.ID, issues)
		}
	}
}

func TestModernHeaderProductionTokens(t *testing.T) {
	custom := model.DefaultCustomization()
	custom.HeaderHeight = model.HeaderLarge
	custom.Margins = model.MarginsWide
	root := ModernHeader(brand(), custom, model.ModeProduction)

	header := root.FindRole(layout.RoleHeader)[0]
	if got, _ := header.Style.Get("height"); got != "144pt" {
		t.Fatalf("expected 144pt header, got %q", got)
	}
	content := root.FindRole(layout.RoleContent)[0]
	if got, _ := content.Style.Get("padding"); got != "72pt" {
		t.Fatalf("expected 72pt margin, got %q", got)
	}
}
