package library

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemplate(t *testing.T, dir, category, name, body string) {
	t.Helper()
	catDir := filepath.Join(dir, "prompts", category)
	if err := os.MkdirAll(catDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(catDir, name+".json"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFromDirectory(t *testing.T) {
	Get().Clear()
	dir := t.TempDir()

	writeTemplate(t, dir, "translation", "simple", `{
		"name": "Simple Translation",
		"template": "Translate the following text to {{.Language}}: {{.Text}}",
		"variables": [
			{"name": "Language", "type": "string", "required": true},
			{"name": "Text", "type": "string", "required": true}
		]
	}`)
	writeTemplate(t, dir, "code", "explain", `{
		"name": "Explain Code",
		"template": "Explain what this code does in simple terms: {{.Code}}",
		"variables": [{"name": "Code", "type": "string", "required": true}]
	}`)

	if err := LoadFromDirectory(dir); err != nil {
		t.Fatalf("LoadFromDirectory failed: %v", err)
	}

	if got := Get().Count(); got != 2 {
		t.Fatalf("Count = %d, want 2", got)
	}

	// ID and category derive from the directory layout.
	tmpl, err := Get().GetTemplate("translation.simple")
	if err != nil {
		t.Fatalf("GetTemplate failed: %v", err)
	}
	if tmpl.Category != "translation" {
		t.Errorf("category = %q, want translation", tmpl.Category)
	}

	cats := Get().Categories()
	if len(cats) != 2 || cats[0] != "code" || cats[1] != "translation" {
		t.Errorf("Categories = %v", cats)
	}
}

func TestLoadMissingDirectory(t *testing.T) {
	Get().Clear()
	if err := LoadFromDirectory(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing prompts directory")
	}
}

func TestRender(t *testing.T) {
	Get().Clear()
	Get().Register(&Template{
		ID:   "translation.simple",
		Text: "Translate the following text to {{.Language}}: {{.Text}}",
		Variables: []Variable{
			{Name: "Language", Required: true},
			{Name: "Text", Required: true},
		},
	})

	out, err := Get().Render("translation.simple", map[string]interface{}{
		"Language": "French",
		"Text":     "hello",
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if out != "Translate the following text to French: hello" {
		t.Errorf("Render = %q", out)
	}
}

func TestRenderMissingRequiredVariable(t *testing.T) {
	Get().Clear()
	Get().Register(&Template{
		ID:        "t",
		Text:      "Hello {{.Name}}",
		Variables: []Variable{{Name: "Name", Required: true}},
	})

	_, err := Get().Render("t", nil)
	if err == nil || !strings.Contains(err.Error(), "missing required variable") {
		t.Errorf("Render = %v, want missing-variable error", err)
	}
}

func TestRenderAppliesDefault(t *testing.T) {
	Get().Clear()
	Get().Register(&Template{
		ID:        "t",
		Text:      "Write a {{.Tone}} email about {{.Topic}}",
		Variables: []Variable{{Name: "Tone", Default: "professional"}, {Name: "Topic", Required: true}},
	})

	out, err := Get().Render("t", map[string]interface{}{"Topic": "the launch"})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if out != "Write a professional email about the launch" {
		t.Errorf("Render = %q", out)
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	Get().Clear()
	if _, err := Get().Render("ghost.template", nil); err == nil {
		t.Error("expected error for unknown template")
	}
}
