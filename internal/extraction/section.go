// Package extraction implements the résumé-to-profile heuristics:
// section location, name/education/experience/language parsing,
// taxonomy-driven skill and tool tagging, and the interval-union
// duration calculator. All functions are pure over the input text plus
// the read-only taxonomy tables; pattern misses degrade confidence or
// omit fields, they never fail the extraction.
package extraction

import (
	"regexp"
	"strings"
)

// Heading patterns are bilingual (FR/EN) and diacritic-tolerant: both
// accented and ASCII spellings are listed. A section starts after the
// first line matching its heading pattern and ends at the next line
// matching an unrelated heading category.
var (
	educationHeading = regexp.MustCompile(
		`(?i)(?:^|\n)[^\n]*\b(formations?|études|etudes|parcours\s*acad[eé]mique|` +
			`dipl[oô]mes?|education|academic\s*background|scolarit[eé])\b`)
	educationNext = regexp.MustCompile(
		`(?i)(?:^|\n)[^\n]*\b(exp[eé]riences?|professional\s*experience|work\s*experience|emploi|` +
			`comp[eé]tences?|skills|langues?|languages?|certif|projets?|projects?|` +
			`loisirs?|hobbies?|interests?|r[eé]f[eé]rences?|contact|profil|summary)\b`)

	experienceHeading = regexp.MustCompile(
		`(?im)^[\s#*\-]*(expériences?|experiences?|parcours\s*professionnel|` +
			`professional\s*experience|work\s*experience|emploi)\s*(professionnelles?|professional)?\s*[:\-]?\s*$`)
	experienceNext = regexp.MustCompile(
		`(?im)^[\s#*\-]*(formation|education|études|etudes|compétence|competence|skills|` +
			`langue|language|certif|projet|project|` +
			`loisir|hobby|intérêt|interest|référence|reference)\b`)

	languageHeading = regexp.MustCompile(
		`(?im)^[\s#*\-]*(langues|languages|compétences\s*linguistiques|language\s*skills|` +
			`linguistic\s*skills)\s*$`)
	languageNext = regexp.MustCompile(
		`(?im)^[\s#*\-]*(compétence|competence|skills|expérience|experience|` +
			`formation|education|projet|project|loisir|hobby|` +
			`intérêt|interest|référence|reference|certif|contact)\b`)
)

// Locate returns the text span of the section opened by the first line
// matching heading. The span starts after that line and runs to the
// first subsequent match of next, or to end of text. It returns "" when
// no heading matches; callers then fall back to scanning the whole
// document.
func Locate(text string, heading, next *regexp.Regexp) string {
	loc := heading.FindStringIndex(text)
	if loc == nil {
		return ""
	}

	// Start after the matched heading line.
	start := len(text)
	if nl := strings.Index(text[loc[1]:], "\n"); nl >= 0 {
		start = loc[1] + nl + 1
	}

	section := text[start:]
	if nloc := next.FindStringIndex(section); nloc != nil {
		section = section[:nloc[0]]
	}

	return strings.TrimSpace(section)
}

// locateOrWhole applies the section-first strategy shared by every
// parser: dedicated section when found, whole document otherwise.
func locateOrWhole(text string, heading, next *regexp.Regexp) string {
	if section := Locate(text, heading, next); section != "" {
		return section
	}
	return text
}
