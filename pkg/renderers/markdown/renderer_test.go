package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-briefgen/pkg/brief"
	"github.com/goliatone/go-briefgen/pkg/schema"
)

func populatedBrief(t *testing.T) *brief.Brief {
	t.Helper()

	b := brief.New(schema.ProjectBrief())
	answers := map[string]string{
		"service_name_version": "nginx 1.27",
		"environment_location": "aws vm",
		"programs_involved":    "nginx",
		"desired_outcome":      "serving traffic",
		"change_control":       "CHG-42",
	}
	for _, field := range b.Schema().Fields() {
		if err := b.Set(field.Name, answers[field.Name]); err != nil {
			t.Fatalf("set %s: %v", field.Name, err)
		}
	}
	b.Finalize(time.Date(2025, 3, 9, 14, 5, 6, 0, time.UTC))
	return b
}

func TestRender_Document(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	got, err := r.Render(context.Background(), populatedBrief(t))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := strings.Join([]string{
		"# Project Brief (Lock Scope Before Execution)",
		"",
		"- **Service Name Version**: nginx 1.27",
		"- **Environment Location**: aws vm",
		"- **Programs Involved**: nginx",
		"- **Desired Outcome**: serving traffic",
		"- **Constraints**: ",
		"- **Timeline Urgency**: timebox: 20 minutes",
		"- **Security Compliance**: ",
		"- **Change Control**: CHG-42",
		"- **Assumptions Allowed**: no",
		"- **Authoritative Source Preference**: vendor docs",
		"- **Rollback Required**: yes",
		"- **Statefulness**: persistent",
		"- **Created Utc**: 2025-03-09T14:05:06+00:00",
		"",
		"> Paste the above into chat to confirm scope. The assistant will then provide ONLY environment-specific steps.",
		"",
	}, "\n")
	if string(got) != want {
		t.Fatalf("document mismatch\nwant:\n%q\ngot:\n%q", want, string(got))
	}
}

func TestRender_Deterministic(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	b := populatedBrief(t)

	first, err := r.Render(context.Background(), b)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := r.Render(context.Background(), b)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("renders of the same brief should be byte-identical")
	}
}

func TestRender_ValuePassThrough(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	s := schema.MustNew([]schema.Field{
		{Name: "notes", Type: schema.FieldTypeText},
	})
	b := brief.New(s)
	if err := b.Set("notes", `ports 80 & 443, "quoted" <tags>`); err != nil {
		t.Fatal(err)
	}
	b.Finalize(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	got, err := r.Render(context.Background(), b)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(got), `- **Notes**: ports 80 & 443, "quoted" <tags>`) {
		t.Fatalf("values should render unescaped:\n%s", got)
	}
}

func TestRender_NilBrief(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if _, err := r.Render(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil brief")
	}
}

func TestRenderer_Identity(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if r.Name() != "markdown" {
		t.Fatalf("name = %q", r.Name())
	}
	if r.ContentType() != "text/markdown" {
		t.Fatalf("content type = %q", r.ContentType())
	}
}
