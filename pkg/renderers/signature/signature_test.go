package signature

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-brandkit/pkg/layout"
	"github.com/goliatone/go-brandkit/pkg/markup"
	"github.com/goliatone/go-brandkit/pkg/model"
)

func brand() model.BrandIdentity {
	return model.BrandIdentity{
		Name:    "Northwind",
		LogoURL: "https://cdn.example.com/nw.png",
		Contact: model.Contact{Phone: "+44 20 7946 0000", Email: "team@northwind.test"},
	}
}

func cellRoles(table *markup.Node) []string {
	var out []string
	for _, cell := range table.FindAll(func(n *markup.Node) bool { return n.Tag == "td" }) {
		role, _ := cell.Attr("data-role")
		out = append(out, role)
	}
	return out
}

func TestCompactOrdersCellsByLogoPosition(t *testing.T) {
	cases := []struct {
		position model.LogoPosition
		want     []string
	}{
		{position: model.LogoLeft, want: []string{layout.RoleHeader, layout.RoleContent}},
		{position: model.LogoRight, want: []string{layout.RoleContent, layout.RoleHeader}},
		{position: model.LogoCenter, want: []string{layout.RoleHeader, layout.RoleContent}},
	}
	for _, tc := range cases {
		t.Run(string(tc.position), func(t *testing.T) {
			custom := model.DefaultCustomization()
			custom.LogoPosition = tc.position
			root := Compact(brand(), custom, model.ModeEmail)
			if diff := cmp.Diff(tc.want, cellRoles(root)); diff != "" {
				t.Fatalf("cell order mismatch (-want +got):\n%s", diff)
			}
			rows := root.FindAll(func(n *markup.Node) bool { return n.Tag == "tr" })
			wantRows := 1
			if tc.position == model.LogoCenter {
				wantRows = 2
			}
			if len(rows) != wantRows {
				t.Fatalf("expected %d rows, got %d", wantRows, len(rows))
			}
		})
	}
}

func TestSignaturesAreEmailSafe(t *testing.T) {
	custom := model.DefaultCustomization()
	custom.IncludeWatermark = true
	for _, descriptor := range Descriptors() {
		root := descriptor.Render(brand(), custom, model.ModeEmail)
		if issues := markup.CheckEmailSafe(root); len(issues) > 0 {
			t.Fatalf("%s: unexpected email issues %v", descriptor.ID, issues)
		}
		out := root.String()
		for _, want := range []string{"Northwind", "team@northwind.test", "+44 20 7946 0000"} {
			if !strings.Contains(out, want) {
				t.Fatalf("%s: expected %q in %s", descriptor.ID, want, out)
			}
		}
	}
}

func TestSignatureHeaderUsesHalfTokens(t *testing.T) {
	for _, descriptor := range Descriptors() {
		root := descriptor.Render(brand(), model.DefaultCustomization(), model.ModeProduction)
		headers := root.FindRole(layout.RoleHeader)
		if len(headers) != 1 {
			t.Fatalf("%s: expected one header, got %d", descriptor.ID, len(headers))
		}
		if got, _ := headers[0].Style.Get("height"); got != "54pt" {
			t.Fatalf("%s: expected 54pt header, got %q", descriptor.ID, got)
		}
		contents := root.FindRole(layout.RoleContent)
		if len(contents) != 1 {
			t.Fatalf("%s: expected one content region, got %d", descriptor.ID, len(contents))
		}
		if got, _ := contents[0].Style.Get("padding"); got != "27pt" {
			t.Fatalf("%s: expected 27pt padding, got %q", descriptor.ID, got)
		}
	}
}
