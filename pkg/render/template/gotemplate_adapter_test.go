package template_test

import (
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-brandkit/pkg/render/template/gotemplate"
)

func newEngine(t *testing.T, opts ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()

	files := fstest.MapFS{
		"shell.tpl":  {Data: []byte("<title>{{ title|trim }}</title>{{ body|safe }}")},
		"global.tpl": {Data: []byte("{{ product }}/{{ mode }}")},
		"filter.tpl": {Data: []byte("{{ name|brandkit_shout }}")},
	}
	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(files)}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngineRenderTemplate(t *testing.T) {
	engine := newEngine(t)

	var written strings.Builder
	got, err := engine.RenderTemplate("shell", map[string]any{
		"title": "  Acme  ",
		"body":  `<div style="color:#fff">Acme &amp; Co</div>`,
	}, &written)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := `<title>Acme</title><div style="color:#fff">Acme &amp; Co</div>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("render mismatch (-want +got):\n%s", diff)
	}
	if written.String() != want {
		t.Fatalf("writer mismatch: %q", written.String())
	}
}

func TestEngineEscapesByDefault(t *testing.T) {
	engine := newEngine(t)
	got, err := engine.RenderString("{{ body }}", map[string]any{"body": "<b>x</b>"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "&lt;b&gt;x&lt;/b&gt;" {
		t.Fatalf("expected escaped output, got %q", got)
	}
}

func TestEngineGlobalContext(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{"product": "brandkit"}))
	if err := engine.GlobalContext(map[string]any{"mode": "production"}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	got, err := engine.Render("global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "brandkit/production" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngineStructData(t *testing.T) {
	engine := newEngine(t)
	data := struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}{Title: "Doc", Body: "<p>hi</p>"}

	got, err := engine.RenderTemplate("shell.tpl", data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "<title>Doc</title><p>hi</p>" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngineRegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("brandkit_shout", func(input any, _ any) (any, error) {
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("brandkit_shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter registration to fail")
	}

	got, err := engine.RenderTemplate("filter", map[string]any{"name": "ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "ADA!" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestNewRequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without template source")
	}
}
