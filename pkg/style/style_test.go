package style_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-brandkit/pkg/style"
)

func TestStyle_SetKeepsInsertionOrder(t *testing.T) {
	s := style.New("color", "#111111", "padding", "4pt")
	s = s.Set("margin", "0").Set("color", "#222222")

	if got, want := s.String(), "color:#222222;padding:4pt;margin:0"; got != want {
		t.Fatalf("serialised style mismatch: want %q, got %q", want, got)
	}
}

func TestStyle_SetReturnsCopy(t *testing.T) {
	base := style.New("color", "#111111")
	derived := base.Set("color", "#ffffff").Set("height", "10px")

	if got := base.String(); got != "color:#111111" {
		t.Fatalf("base style mutated: %q", got)
	}
	if derived.Len() != 2 {
		t.Fatalf("expected 2 declarations, got %d", derived.Len())
	}
}

func TestStyle_EmptyValueRemovesProperty(t *testing.T) {
	s := style.New("color", "red", "height", "1px").Set("color", " ")
	if _, ok := s.Get("color"); ok {
		t.Fatalf("expected color removed, got %q", s.String())
	}
}

func TestStyle_Merge(t *testing.T) {
	base := style.New("color", "red", "padding", "0")
	over := style.New("padding", "2pt", "margin", "1pt")

	want := []style.Declaration{
		{Property: "color", Value: "red"},
		{Property: "padding", Value: "2pt"},
		{Property: "margin", Value: "1pt"},
	}
	if diff := cmp.Diff(want, base.Merge(over).Declarations()); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestLength_StringAndParse(t *testing.T) {
	cases := []struct {
		length style.Length
		want   string
	}{
		{style.Pt(108), "108pt"},
		{style.Px(108 * 480.0 / 612.0), "84.71px"},
		{style.Em(-0.02), "-0.02em"},
		{style.Pt(0), "0"},
		{style.Percent(30), "30%"},
	}
	for _, tc := range cases {
		if got := tc.length.String(); got != tc.want {
			t.Fatalf("length %+v: want %q, got %q", tc.length, tc.want, got)
		}
		parsed, ok := style.ParseLength(tc.want + " 0 auto")
		if !ok {
			t.Fatalf("parse %q failed", tc.want)
		}
		if parsed.Value != tc.length.Value {
			t.Fatalf("parse %q: want %v, got %v", tc.want, tc.length.Value, parsed.Value)
		}
	}
}

func TestValidColor(t *testing.T) {
	valid := []string{"#2563eb", "#2563EB", " #fff ", "navy", "rgb(10, 20, 30)", "#11223344"}
	for _, value := range valid {
		if !style.ValidColor(value) {
			t.Fatalf("expected %q to be a valid colour", value)
		}
	}
	invalid := []string{"", "inherit", "#12", "red;background:url(x)", "expression(alert(1))", "blue}"}
	for _, value := range invalid {
		if style.ValidColor(value) {
			t.Fatalf("expected %q to be rejected", value)
		}
	}
}

func TestValidFontFamily(t *testing.T) {
	for _, value := range []string{"Inter", "Open Sans", "'Source Serif'"} {
		if !style.ValidFontFamily(value) {
			t.Fatalf("expected %q to be a valid family", value)
		}
	}
	for _, value := range []string{"", "Inter, Arial", "x;color:red", "inherit"} {
		if style.ValidFontFamily(value) {
			t.Fatalf("expected %q to be rejected", value)
		}
	}
}

func TestFontStack(t *testing.T) {
	if got, want := style.FontStack(" \"Inter\" "), "'Inter', "+style.GenericFallback; got != want {
		t.Fatalf("font stack: want %q, got %q", want, got)
	}
	if got := style.FontStack(""); got != style.GenericFallback {
		t.Fatalf("empty family should fall back, got %q", got)
	}
}
