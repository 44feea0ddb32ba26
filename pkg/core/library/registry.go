package library

import (
	"bytes"
	"fmt"
	"sort"
	"sync"
	"text/template"
)

// Registry holds all loaded templates
type Registry struct {
	templates map[string]*Template
	mu        sync.RWMutex
}

var globalRegistry *Registry
var once sync.Once

// Get returns the global registry singleton
func Get() *Registry {
	once.Do(func() {
		globalRegistry = &Registry{
			templates: make(map[string]*Template),
		}
	})
	return globalRegistry
}

// Register adds a template to the registry
func (r *Registry) Register(t *Template) error {
	if t.ID == "" {
		return fmt.Errorf("template ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.templates[t.ID] = t
	return nil
}

// GetTemplate retrieves a template by ID
func (r *Registry) GetTemplate(id string) (*Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if t, ok := r.templates[id]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("template not found: %s", id)
}

// ListTemplates returns all registered template IDs, sorted
func (r *Registry) ListTemplates() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.templates))
	for id := range r.templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ListByCategory returns all templates in a specific category
func (r *Registry) ListByCategory(category string) []*Template {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Template
	for _, t := range r.templates {
		if t.Category == category {
			result = append(result, t)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Categories returns the distinct categories present in the registry, sorted
func (r *Registry) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	for _, t := range r.templates {
		seen[t.Category] = true
	}
	cats := make([]string, 0, len(seen))
	for c := range seen {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// Count returns the number of registered templates
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}

// Clear removes all templates (useful for testing)
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates = make(map[string]*Template)
}

// Render fills a template's placeholders with the given variables.
// Required variables without a value fail; optional ones fall back to their
// declared defaults.
func (r *Registry) Render(id string, vars map[string]interface{}) (string, error) {
	t, err := r.GetTemplate(id)
	if err != nil {
		return "", err
	}

	merged := make(map[string]interface{}, len(vars))
	for k, v := range vars {
		merged[k] = v
	}
	for _, v := range t.Variables {
		val, present := merged[v.Name]
		empty := !present || val == nil || val == ""
		if empty && v.Default != "" {
			merged[v.Name] = v.Default
			continue
		}
		if empty && v.Required {
			return "", fmt.Errorf("missing required variable: %s", v.Name)
		}
	}

	tmpl, err := template.New(t.ID).Option("missingkey=error").Parse(t.Text)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", t.ID, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, merged); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", t.ID, err)
	}

	return buf.String(), nil
}
