package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/backmassage/mediarename/internal/planner"
	"github.com/backmassage/mediarename/internal/template"
)

func TestPrintPlan(t *testing.T) {
	plan := &planner.Plan{Items: []planner.Item{
		{
			OriginalName: "ep.mkv",
			Result:       template.Result{Name: "Show (2020) - S01E05.mkv", Status: template.StatusReady},
		},
		{
			OriginalName: "x.mkv",
			Result:       template.Result{Name: "Unknown (Unknown).mkv", Status: template.StatusWarning, Message: "Missing metadata - title or year not found"},
			Notes:        []string{planner.NoteDuplicate},
		},
	}}

	var buf bytes.Buffer
	PrintPlan(&buf, plan)
	out := buf.String()

	for _, want := range []string{
		"File", "Proposed", "Status",
		"ep.mkv", "Show (2020) - S01E05.mkv", "ready",
		"warning", "Missing metadata - title or year not found; " + planner.NoteDuplicate,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintPlan_Empty(t *testing.T) {
	var buf bytes.Buffer
	PrintPlan(&buf, &planner.Plan{})
	if !strings.Contains(buf.String(), "no files") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"much longer name", 5, "much…"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := truncate(tt.in, tt.width); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestPrintTemplates(t *testing.T) {
	lib := template.NewLibrary(template.Template{Name: "Broken", Pattern: "[title] [resolution]"})

	var buf bytes.Buffer
	PrintTemplates(&buf, lib, "Movie Default")
	out := buf.String()

	for _, want := range []string{
		"TV Show Default", "[title] ([year]) - S[##]E[##]",
		"* Movie Default",
		"Broken", "Unknown template variable: [resolution]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintValidation(t *testing.T) {
	var buf bytes.Buffer
	PrintValidation(&buf, "[title", template.Validate("[title"))
	if !strings.Contains(buf.String(), "Unmatched brackets in template") {
		t.Errorf("output = %q", buf.String())
	}

	buf.Reset()
	PrintValidation(&buf, "[title] ([year])", template.Validate("[title] ([year])"))
	if !strings.Contains(buf.String(), "Valid") {
		t.Errorf("output = %q", buf.String())
	}
}
