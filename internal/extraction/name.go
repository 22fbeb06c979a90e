package extraction

import (
	"regexp"
	"strings"
	"unicode"
)

// maxNameScanLines bounds the scan to the top of the document, where a
// candidate name almost always sits.
const maxNameScanLines = 20

// Filters: a line containing any of these cannot be a name.
var (
	emailPattern   = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern   = regexp.MustCompile(`[+\d][\d\s\-.()]{7,}`)
	urlPattern     = regexp.MustCompile(`(?i)(https?://|www\.|linkedin\.com|github\.com)`)
	yearPattern    = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	addressPattern = regexp.MustCompile(`(?i)\b(rue|avenue|boulevard|allée|impasse|bp|` +
		`street|road|ave|blvd|apt|zip|cedex)\b`)

	sectionWordPattern = regexp.MustCompile(`(?i)^(curriculum\s*vitae|cv|resume|profil|profile|présentation|` +
		`compétence|competence|experience|expérience|formation|education|` +
		`contact|coordonnées|langue|skills|projet|project|loisir|` +
		`certif|référence|summary|objective|about)\b`)

	jobTitlePattern = regexp.MustCompile(`(?i)\b(engineer|developer|ingénieur|développeur|developpeur|` +
		`manager|analyst|consultant|architect|designer|director|` +
		`stagiaire|intern|chef|lead|senior|junior|fullstack|frontend|backend|` +
		`data\s*scientist|devops|technicien|responsable)\b`)

	// A name: 2-4 capitalized words, letters plus hyphens/apostrophes.
	titleCaseName = regexp.MustCompile(`^[A-ZÀÂÄÉÈÊËÎÏÔÙÛÜÇ][a-zA-ZÀ-ÿ'\-]+(?:\s+[A-ZÀ-Ÿ][a-zA-ZÀ-ÿ'\-]+){1,3}$`)
	// All-caps variant (e.g. "JEAN DUPONT"), re-cased on output.
	upperCaseName = regexp.MustCompile(`^[A-ZÀÂÄÉÈÊËÎÏÙÛÜ\-]{2,}(?:\s+[A-ZÀÂÄÉÈÊËÎÏÙÛÜ\-]{2,}){1,3}$`)
)

// ExtractName scans the first 20 non-empty lines for a personal-name
// line and returns it with a position-tiered confidence. Returns
// ("", 0) when no line qualifies.
func ExtractName(text string) (string, float64) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) > maxNameScanLines {
		lines = lines[:maxNameScanLines]
	}

	for i, line := range lines {
		if !isValidNameLine(line) {
			continue
		}

		name := line
		if name == strings.ToUpper(name) {
			name = titleCase(name)
		}

		// The higher on the page, the more reliable.
		confidence := 0.65
		switch {
		case i <= 3:
			confidence = 0.95
		case i <= 7:
			confidence = 0.80
		}
		return name, confidence
	}

	return "", 0.0
}

// isValidNameLine reports whether a line can plausibly be a candidate
// name: right length, none of the contact/heading/job-title markers,
// and a 2-4 word capitalized or all-caps shape.
func isValidNameLine(line string) bool {
	if len(line) < 4 || len(line) > 60 {
		return false
	}

	for _, filter := range []*regexp.Regexp{
		emailPattern, phonePattern, urlPattern, yearPattern,
		addressPattern, sectionWordPattern, jobTitlePattern,
	} {
		if filter.MatchString(line) {
			return false
		}
	}

	return titleCaseName.MatchString(line) || upperCaseName.MatchString(line)
}

// titleCase lowercases a string and re-capitalizes the first letter of
// each word, including after hyphens and apostrophes ("JEAN-PAUL" ->
// "Jean-Paul").
func titleCase(s string) string {
	runes := []rune(strings.ToLower(s))
	startOfWord := true
	for i, r := range runes {
		if startOfWord && unicode.IsLetter(r) {
			runes[i] = unicode.ToUpper(r)
		}
		startOfWord = !unicode.IsLetter(r)
	}
	return string(runes)
}
