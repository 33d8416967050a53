package gotemplate

import (
	"strings"
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"templates/list.tmpl": &fstest.MapFile{
			Data: []byte("{% for item in items %}- {{ item|safe }}\n{% endfor %}"),
		},
	}
}

func TestNew_RequiresSource(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("expected error without base dir or fs")
	}
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithExtension(".tmpl"))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderTemplate("templates/list", map[string]any{
		"items": []string{"one", "two"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "- one\n- two\n" {
		t.Fatalf("output = %q", out)
	}
}

func TestEngine_RenderTemplateAppendsExtension(t *testing.T) {
	engine, err := New(WithFS(testFS()), WithExtension("tmpl"))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if _, err := engine.RenderTemplate("templates/list", map[string]any{"items": []string{}}); err != nil {
		t.Fatalf("render: %v", err)
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	out, err := engine.RenderString("Hello {{ name|safe }}", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if out != "Hello Ada" {
		t.Fatalf("output = %q", out)
	}
}

func TestEngine_RenderDetectsInlineContent(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	out, err := engine.Render("{{ name|safe }}!", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Ada!" {
		t.Fatalf("output = %q", out)
	}
}

func TestEngine_WritesToSuppliedWriters(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	var sb strings.Builder
	out, err := engine.RenderString("x={{ x }}", map[string]any{"x": 1}, &sb)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if sb.String() != out {
		t.Fatalf("writer got %q, return was %q", sb.String(), out)
	}
}

func TestEngine_StructDataRendersByJSONNames(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	data := struct {
		Title string `json:"title"`
	}{Title: "Brief"}

	out, err := engine.RenderString("{{ title|safe }}", data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Brief" {
		t.Fatalf("output = %q", out)
	}
}

func TestEngine_MissingTemplate(t *testing.T) {
	engine, err := New(WithFS(testFS()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if _, err := engine.RenderTemplate("templates/absent", nil); err == nil {
		t.Fatal("expected error for missing template")
	}
}
