package utils

import (
	"strings"
	"testing"
)

func TestSmartParse(t *testing.T) {
	type step struct {
		Thought string `json:"thought"`
		Action  string `json:"action"`
	}

	tests := []struct {
		name  string
		input string
	}{
		{"Valid JSON", `{"thought": "check the map", "action": "search"}`},
		{"Single quotes", `{'thought': 'check the map', 'action': 'search'}`},
		{"Markdown fenced", "```json\n{\"thought\": \"check the map\", \"action\": \"search\"}\n```"},
		{"Trailing comma", `{"thought": "check the map", "action": "search",}`},
		{"Hjson style", "{\n  thought: check the map\n  action: search\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s step
			if _, err := SmartParse(tt.input, &s); err != nil {
				t.Fatalf("SmartParse failed: %v", err)
			}
			if s.Thought != "check the map" || s.Action != "search" {
				t.Errorf("parsed = %+v", s)
			}
		})
	}
}

func TestSmartParseGarbage(t *testing.T) {
	var out map[string]interface{}
	if _, err := SmartParse("", &out); err == nil {
		t.Error("expected failure on empty input")
	}
}

func TestCleanMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Plain", "hello", "hello"},
		{"Fenced markdown", "```markdown\n# Title\n```", "# Title"},
		{"Generic fence", "```\nsome text\n```", "some text"},
		{"Whitespace", "  trimmed  ", "trimmed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanMarkdown(tt.input); got != tt.want {
				t.Errorf("CleanMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderMarkdown(t *testing.T) {
	html, err := RenderMarkdown("# Heading\n\nSome **bold** text.")
	if err != nil {
		t.Fatalf("RenderMarkdown failed: %v", err)
	}
	if !strings.Contains(html, "<h1") || !strings.Contains(html, "<strong>bold</strong>") {
		t.Errorf("unexpected HTML: %s", html)
	}
}
