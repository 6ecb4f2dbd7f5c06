package render

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-brandkit/pkg/markup"
	"github.com/goliatone/go-brandkit/pkg/model"
	"github.com/goliatone/go-brandkit/pkg/style"
)

func stubRender(tag string) RenderFunc {
	return func(model.BrandIdentity, model.CustomizationConfig, model.RenderMode) *markup.Node {
		return markup.El(tag, style.Style{})
	}
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry("alpha")
	reg.MustRegister(
		Descriptor{ID: "alpha", DisplayName: "Alpha", Category: CategoryLetterhead, Render: stubRender("div")},
		Descriptor{ID: "sig", DisplayName: "Sig", Category: CategoryEmailSignature, Render: stubRender("table")},
		Descriptor{ID: "beta", DisplayName: "Beta", Category: CategoryLetterhead, Render: stubRender("section")},
	)
	return reg
}

func TestRegistryLookupFallsBackToDefault(t *testing.T) {
	reg := newTestRegistry(t)

	got, ok := reg.Resolve("beta")
	if !ok || got.ID != "beta" {
		t.Fatalf("expected beta hit, got %q ok=%v", got.ID, ok)
	}

	for _, id := range []string{"", "missing", "BETA"} {
		got, ok := reg.Resolve(id)
		if ok {
			t.Fatalf("expected miss for %q", id)
		}
		if got.ID != "alpha" {
			t.Fatalf("expected default for %q, got %q", id, got.ID)
		}
	}
	if reg.Lookup("  beta ").ID != "beta" {
		t.Fatalf("expected trimmed lookup to hit")
	}
}

func TestRegistryRegisterValidation(t *testing.T) {
	reg := newTestRegistry(t)

	cases := []Descriptor{
		{ID: "", Category: CategoryLetterhead, Render: stubRender("div")},
		{ID: "norender", Category: CategoryLetterhead},
		{ID: "nocategory", Render: stubRender("div")},
		{ID: "alpha", Category: CategoryLetterhead, Render: stubRender("div")},
	}
	for _, descriptor := range cases {
		if err := reg.Register(descriptor); err == nil {
			t.Fatalf("expected error registering %+v", descriptor.ID)
		}
	}
}

func TestRegistrySeal(t *testing.T) {
	empty := NewRegistry("missing")
	if err := empty.Seal(); err == nil {
		t.Fatalf("expected seal to fail without default")
	}

	reg := newTestRegistry(t)
	if err := reg.Seal(); err != nil {
		t.Fatalf("seal: %v", err)
	}
	if !reg.Sealed() {
		t.Fatalf("expected sealed registry")
	}
	err := reg.Register(Descriptor{ID: "late", Category: CategoryLetterhead, Render: stubRender("div")})
	if !errors.Is(err, ErrSealed) {
		t.Fatalf("expected ErrSealed, got %v", err)
	}
}

func TestRegistryListGroupsByCategory(t *testing.T) {
	reg := newTestRegistry(t)
	reg.MustRegister(Descriptor{ID: "odd", Category: Category("brochure"), Render: stubRender("div")})

	type summary struct {
		Category Category
		Label    string
		IDs      []string
	}
	var got []summary
	for _, group := range reg.List() {
		s := summary{Category: group.Category, Label: group.Label}
		for _, descriptor := range group.Templates {
			s.IDs = append(s.IDs, descriptor.ID)
		}
		got = append(got, s)
	}

	want := []summary{
		{Category: CategoryLetterhead, Label: "Letterhead", IDs: []string{"alpha", "beta"}},
		{Category: CategoryEmailSignature, Label: "Email signature", IDs: []string{"sig"}},
		{Category: "brochure", Label: "brochure", IDs: []string{"odd"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"alpha", "sig", "beta", "odd"}, reg.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryResolveWithoutDefault(t *testing.T) {
	reg := NewRegistry("missing")
	if got, ok := reg.Resolve("anything"); ok || got.Render != nil {
		t.Fatalf("expected zero descriptor from empty registry, got %+v ok=%v", got, ok)
	}

	reg.MustRegister(
		Descriptor{ID: "beta", DisplayName: "Beta", Category: CategoryLetterhead, Render: stubRender("section")},
		Descriptor{ID: "alpha", DisplayName: "Alpha", Category: CategoryLetterhead, Render: stubRender("div")},
	)
	got, ok := reg.Resolve("nope")
	if ok || got.ID != "beta" || got.Render == nil {
		t.Fatalf("expected first registered descriptor, got %q ok=%v", got.ID, ok)
	}
	if reg.Lookup("").Render == nil {
		t.Fatalf("lookup returned a descriptor without a render func")
	}
}
