package library

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadFromDirectory loads all templates from a directory structure:
//
//	baseDir/
//	  prompts/
//	    translation/
//	      simple.json
//	    code/
//	      explain.json
//
// Template IDs default to "<category>.<filename>" when the file does not
// declare one.
func LoadFromDirectory(baseDir string) error {
	registry := Get()

	promptDir := filepath.Join(baseDir, "prompts")
	if err := loadTemplates(registry, promptDir); err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	fmt.Printf("[library] Loaded %d templates from %s\n", registry.Count(), baseDir)
	return nil
}

// loadTemplates recursively loads all .json files from the prompts directory
func loadTemplates(r *Registry, dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("prompts directory not found: %s", dir)
	}

	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		var t Template
		if err := json.Unmarshal(data, &t); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}

		if t.ID == "" {
			t.ID = generateIDFromPath(path, dir)
		}
		if t.Category == "" {
			t.Category = detectCategory(path, dir)
		}

		if err := r.Register(&t); err != nil {
			return fmt.Errorf("failed to register %s: %w", t.ID, err)
		}

		return nil
	})
}

// generateIDFromPath creates a template ID from the file path
// e.g. "prompts/translation/simple.json" -> "translation.simple"
func generateIDFromPath(path string, baseDir string) string {
	relPath, _ := filepath.Rel(baseDir, path)
	relPath = strings.TrimSuffix(relPath, ".json")
	relPath = strings.ReplaceAll(relPath, string(filepath.Separator), ".")
	return relPath
}

// detectCategory extracts the category from the folder structure
func detectCategory(path string, baseDir string) string {
	relPath, _ := filepath.Rel(baseDir, path)
	parts := strings.Split(relPath, string(filepath.Separator))
	if len(parts) > 1 {
		return parts[0]
	}
	return "default"
}
