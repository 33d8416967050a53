package answers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-briefgen/pkg/schema"
)

func TestParse(t *testing.T) {
	got, err := Parse([]byte("service_name_version: nginx 1.27\nassumptions_allowed: Y\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got["service_name_version"] != "nginx 1.27" || got["assumptions_allowed"] != "Y" {
		t.Fatalf("parsed = %v", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestApply_NormalizesAndDefaults(t *testing.T) {
	b, err := Apply(schema.ProjectBrief(), map[string]string{
		"service_name_version":            "postgres 16.3",
		"environment_location":            "bare metal, dc-2, debian 12",
		"programs_involved":               "postgresql-16",
		"desired_outcome":                 "replicated primary",
		"assumptions_allowed":             "Y",
		"authoritative_source_preference": "Upstream Docs",
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	checks := map[string]string{
		"assumptions_allowed":             "yes",
		"authoritative_source_preference": "upstream docs",
		"timeline_urgency":                "timebox: 20 minutes",
		"rollback_required":               "yes",
		"statefulness":                    "persistent",
		"constraints":                     "",
	}
	for name, want := range checks {
		if got, _ := b.Value(name); got != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}
}

func TestApply_MissingRequiredListsFields(t *testing.T) {
	_, err := Apply(schema.ProjectBrief(), map[string]string{
		"service_name_version": "nginx",
	})
	if err == nil {
		t.Fatal("expected missing-field error")
	}
	for _, name := range []string{"environment_location", "programs_involved", "desired_outcome"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error should name %s: %v", name, err)
		}
	}
}

func TestApply_RejectsUnknownKeys(t *testing.T) {
	_, err := Apply(schema.ProjectBrief(), map[string]string{
		"service_name_versoin": "typo",
	})
	if err == nil || !strings.Contains(err.Error(), "unknown field") {
		t.Fatalf("got %v, want unknown field error", err)
	}
}

func TestApply_InvalidChoice(t *testing.T) {
	_, err := Apply(schema.ProjectBrief(), map[string]string{
		"service_name_version": "nginx",
		"environment_location": "vm",
		"programs_involved":    "nginx",
		"desired_outcome":      "serving",
		"statefulness":         "stateless",
	})
	if err == nil || !strings.Contains(err.Error(), "ephemeral/persistent") {
		t.Fatalf("got %v, want choice error listing options", err)
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.yaml")
	content := "service_name_version: nginx 1.27\nenvironment_location: vm\nprograms_involved: nginx\ndesired_outcome: serving\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	values, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	b, err := Apply(schema.ProjectBrief(), values)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got, _ := b.Value("service_name_version"); got != "nginx 1.27" {
		t.Fatalf("service_name_version = %q", got)
	}
}
