package extraction

import (
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/cv-profiler/internal/taxonomy"
	"github.com/jonathan/cv-profiler/internal/types"
)

var (
	degreeKeywords = regexp.MustCompile(`(?i)\b(` +
		`doctorat|phd|doctorate|` +
		`master|msc|mba|ingénieur|ingenieur|` +
		`licence|bachelor|bsc|` +
		`dut|bts|deust|deug|` +
		`baccalauréat|baccalaureat|bac` +
		`)\b`)

	yearPattern4 = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

	// A line shaped like an experience date range (e.g. "01/2019 - 06/2021")
	// does not start an education entry on its own.
	dateRangeLine = regexp.MustCompile(`(?i)^\s*(?:\d{1,2}[/\-])?(?:\d{1,2}[/\-])?(?:19|20)\d{2}` +
		`\s*[\-–—à/]\s*` +
		`(?:\d{1,2}[/\-])?(?:\d{1,2}[/\-])?(?:(?:19|20)\d{2}|présent|present|actuel)`)

	// Certifications and MOOCs are not degrees.
	certKeywords = regexp.MustCompile(`(?i)\b(certification|certificate|training|workshop|bootcamp|course|mooc|udemy|coursera|linkedin)\b`)

	schoolKeywords = regexp.MustCompile(`(?i)\b(` +
		`université|universite|university|école|ecole|school|` +
		`institut|institute|faculty|faculté|faculte|` +
		`ensam|ensa|enset|est|iut|iup|cpge|classes? prépa|` +
		`lycée|lycee|college|hautes?\s*études|grandes?\s*écoles?` +
		`)\b`)

	inProgressPattern = regexp.MustCompile(`(?i)(en cours|in progress|ongoing|current)`)
)

// educationEntry is the intermediate, pre-scoring shape of one degree.
type educationEntry struct {
	degree   string
	school   string
	years    []int
	evidence string
}

// ExtractEducations parses the education section (or the whole text when
// no section heading is found) into structured degree entries.
func ExtractEducations(text string) []types.Education {
	section := locateOrWhole(text, educationHeading, educationNext)

	var educations []types.Education
	for _, entry := range segmentEducationEntries(section) {
		year := graduationYear(entry.years)

		levelNum, levelLabel := degreeLevel(entry.degree)

		status := types.StatusObtained
		if inProgressPattern.MatchString(entry.degree) {
			status = types.StatusInProgress
		}

		// Year and degree-keyword presence each raise confidence.
		confidence := 0.5
		if year != nil {
			confidence += 0.25
		}
		if degreeKeywords.MatchString(entry.degree) {
			confidence += 0.25
		}

		edu := types.Education{
			Year:       year,
			Degree:     strings.TrimSpace(entry.degree),
			School:     entry.school,
			Status:     status,
			Evidence:   entry.evidence,
			Confidence: confidence,
		}
		if levelNum > 0 {
			edu.DegreeLevel = levelLabel
		}
		educations = append(educations, edu)
	}

	return educations
}

// segmentEducationEntries walks the section line by line, starting a new
// entry on degree-keyword or standalone-year lines and attaching school
// and continuation lines to the current one.
func segmentEducationEntries(section string) []educationEntry {
	var entries []educationEntry
	var current *educationEntry

	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if certKeywords.MatchString(line) {
			continue
		}
		if dateRangeLine.MatchString(line) && !degreeKeywords.MatchString(line) {
			continue
		}

		years := yearPattern4.FindAllString(line, -1)
		hasDegree := degreeKeywords.MatchString(line)

		switch {
		case hasDegree || (len(years) > 0 && !dateRangeLine.MatchString(line)):
			if current != nil && current.degree != "" {
				entries = append(entries, *current)
			}
			current = &educationEntry{
				degree:   line,
				years:    parseYears(years),
				evidence: line,
			}
		case current != nil:
			switch {
			case schoolKeywords.MatchString(line) && current.school == "":
				current.school = line
				current.evidence += " | " + line
			case current.school == "" && !yearPattern4.MatchString(line):
				// Second non-date line is most likely the school.
				current.school = line
				current.evidence += " | " + line
			default:
				current.degree += " " + line
				current.evidence += " | " + line
			}
		}
	}
	if current != nil && current.degree != "" {
		entries = append(entries, *current)
	}

	return entries
}

func parseYears(matches []string) []int {
	years := make([]int, 0, len(matches))
	for _, m := range matches {
		y := 0
		for _, d := range m {
			y = y*10 + int(d-'0')
		}
		years = append(years, y)
	}
	return years
}

// graduationYear picks the latest year on the entry line as the degree
// year and drops implausible values.
func graduationYear(years []int) *int {
	best := 0
	for _, y := range years {
		if y > best {
			best = y
		}
	}
	if best < 1900 || best > time.Now().Year()+1 {
		return nil
	}
	return &best
}

// degreeLevel maps the degree text to the highest matching taxonomy level.
func degreeLevel(degree string) (int, string) {
	lower := strings.ToLower(degree)
	best := 0
	for keyword, level := range taxonomy.DegreeLevels {
		if strings.Contains(lower, keyword) && level > best {
			best = level
		}
	}
	return best, taxonomy.DegreeLevelLabels[best]
}

// DetermineLastDegree returns the highest degree, ties broken by latest
// year. Nil when no education was extracted.
func DetermineLastDegree(educations []types.Education) *types.LastDegree {
	if len(educations) == 0 {
		return nil
	}

	best := educations[0]
	bestLevel, _ := degreeLevel(best.Degree)
	for _, edu := range educations[1:] {
		level, _ := degreeLevel(edu.Degree)
		if level > bestLevel || (level == bestLevel && yearOrZero(edu.Year) > yearOrZero(best.Year)) {
			best = edu
			bestLevel = level
		}
	}

	levelNum, levelLabel := degreeLevel(best.Degree)
	last := &types.LastDegree{
		Degree:     best.Degree,
		School:     best.School,
		Year:       best.Year,
		Confidence: best.Confidence,
	}
	if levelNum > 0 {
		last.Level = levelLabel
	}
	return last
}

func yearOrZero(y *int) int {
	if y == nil {
		return 0
	}
	return *y
}
