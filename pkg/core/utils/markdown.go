package utils

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
)

// CleanMarkdown strips conversational filler and outer markdown code blocks.
// It ensures the output is pure Markdown ready for rendering.
func CleanMarkdown(input string) string {
	cleaned := strings.TrimSpace(input)

	if strings.HasPrefix(cleaned, "```markdown") && strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```markdown")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	} else if strings.HasPrefix(cleaned, "```") && strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	return cleaned
}

// RenderMarkdown converts a model completion to HTML for the web page.
// The input is cleaned first so fenced wrapper blocks do not swallow the
// whole document.
func RenderMarkdown(input string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(CleanMarkdown(input)), &buf); err != nil {
		return "", fmt.Errorf("markdown render failed: %w", err)
	}
	return buf.String(), nil
}
