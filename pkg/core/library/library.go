// Package library provides the reusable prompt-template library. Templates
// are defined in JSON files and loaded at runtime, making it easy to add or
// edit templates without code changes.
package library

// Template represents a reusable prompt with metadata
type Template struct {
	ID          string     `json:"id"`          // Unique identifier (e.g. "translation.simple")
	Name        string     `json:"name"`        // Human-readable name
	Category    string     `json:"category"`    // Category (translation, summarization, code, ...)
	Description string     `json:"description"` // Description of template purpose
	Text        string     `json:"template"`    // Go template for the prompt body
	Variables   []Variable `json:"variables"`   // Variables used in the template
	Version     string     `json:"version"`     // Version for tracking changes
}

// Variable defines a placeholder used in a template
type Variable struct {
	Name        string `json:"name"`        // Variable name (e.g. "Language")
	Type        string `json:"type"`        // Type: string, int, float
	Description string `json:"description"` // What this variable represents
	Required    bool   `json:"required"`    // Whether this variable must be provided
	Default     string `json:"default"`     // Default value if not provided
}
