// Package ingestion provides text cleaning and document intake for the
// extraction pipeline. Binary decoding (PDF and friends) is done by an
// upstream collaborator; this package defines the boundary it hands
// results across and the cleaning every text goes through.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	controlChars    = regexp.MustCompile("[\x00-\x08\x0b\x0c\x0e-\x1f]")
	repeatedSpaces  = regexp.MustCompile(`[ \t]+`)
	excessiveBlanks = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes raw extracted text while preserving its line
// structure: control characters are stripped, runs of spaces and tabs
// collapse to one space, and blank-line runs collapse to one blank line.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF -> LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// 2. Strip control characters
	content = controlChars.ReplaceAllString(content, "")

	// 3. Collapse horizontal whitespace per line
	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = repeatedSpaces.ReplaceAllString(line, " ")
		cleaned = append(cleaned, strings.TrimRight(line, " "))
	}
	content = strings.Join(cleaned, "\n")

	// 4. Collapse blank-line runs (max 1 consecutive blank)
	content = excessiveBlanks.ReplaceAllString(content, "\n\n")

	return strings.TrimSpace(content)
}

// Truncate shortens text to maxLen runes with an ellipsis. Cutting on
// rune boundaries keeps accented text valid UTF-8.
func Truncate(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen-3]) + "..."
}

// IngestFromFile reads a résumé file, cleans it and wraps it in a
// Document. HTML files are converted to text first.
func IngestFromFile(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	text := string(content)
	if isHTMLPath(path) {
		text, err = ExtractHTMLText(text)
		if err != nil {
			return nil, fmt.Errorf("failed to extract HTML text: %w", err)
		}
	}

	return NewDocument(path, CleanText(text), nil, nil), nil
}

func isHTMLPath(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm")
}
