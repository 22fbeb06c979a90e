// Package prompts provides a loader for externalized LLM prompt templates.
// Prompts are stored as JSON files and embedded at compile time.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

// Each embedded file is a flat key→template JSON object, parsed once
// and kept for the life of the process.
var (
	mu     sync.Mutex
	parsed = map[string]map[string]string{}
)

// Get retrieves a prompt by filename and key.
// The filename should not include the path (e.g., "enrichment.json").
// Returns an error if the file or key is not found.
func Get(filename, key string) (string, error) {
	templates, err := load(filename)
	if err != nil {
		return "", err
	}
	template, ok := templates[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return template, nil
}

// MustGet retrieves a prompt by filename and key, panicking if not found.
// Use this for prompts that are required at initialization time.
func MustGet(filename, key string) string {
	template, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return template
}

// Format replaces template placeholders in the form {{.Key}} with values
// from data. Placeholders without a matching key are left as-is.
func Format(template string, data map[string]string) string {
	for key, value := range data {
		template = strings.ReplaceAll(template, "{{."+key+"}}", value)
	}
	return template
}

func load(filename string) (map[string]string, error) {
	mu.Lock()
	defer mu.Unlock()

	if templates, ok := parsed[filename]; ok {
		return templates, nil
	}

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}
	var templates map[string]string
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	parsed[filename] = templates
	return templates, nil
}

// ClearCache drops the parsed templates. Useful for testing.
func ClearCache() {
	mu.Lock()
	parsed = map[string]map[string]string{}
	mu.Unlock()
}
