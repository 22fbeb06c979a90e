package extraction

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/cv-profiler/internal/types"
)

// monthName matches a French or English month name, full or abbreviated.
const monthName = `(?:jan(?:vier|uary)?|fév(?:rier)?|feb(?:ruary)?|mar(?:s|ch)?|` +
	`avr(?:il)?|apr(?:il)?|mai|may|juin|jun(?:e)?|` +
	`juil(?:let)?|jul(?:y)?|août|aug(?:ust)?|sep(?:tembre|t(?:ember)?)?|` +
	`oct(?:obre|ober)?|nov(?:embre|ember)?|déc(?:embre)?|dec(?:ember)?)`

// One date: "Jan 2022", "Janvier 2022", "01/2022" or a bare "2022".
const singleDate = `(?:` + monthName + `\s*\.?\s*)?(?:(?:0?[1-9]|1[0-2])\s*[/\-]\s*)?(?:19|20)\d{2}`

const presentWords = `présent|present|aujourd'?hui|actuel(?:lement)?|now|current|ce\s*jour`

var (
	datePattern = regexp.MustCompile(`(?i)(` +
		monthName + `\s*\.?\s*(?:19|20)\d{2}` +
		`|(?:0?[1-9]|1[0-2])\s*[/\-]\s*(?:19|20)\d{2}` +
		`|(?:19|20)\d{2})`)

	dateRangePattern = regexp.MustCompile(`(?i)(?P<start>` + singleDate + `)` +
		`\s*[\-–—à/]\s*` +
		`(?P<end>` + singleDate + `|` + presentWords + `)`)

	presentPattern = regexp.MustCompile(`(?i)(` + presentWords + `)`)

	methodologyPattern = regexp.MustCompile(`(?i)\b(agile|scrum|kanban|waterfall|ci/cd|devops|lean|safe|xp|tdd|bdd|v-model)\b`)

	// Horizontal whitespace only: a count and its unit word must share
	// a line, or a trailing year picks up the next line's noun.
	teamSizePattern = regexp.MustCompile(`(?i)(?:team|équipe|equipe)[ \t]*(?:of|de)?[ \t]*(\d+)` +
		`|(\d+)[ \t]*(?:engineers|developers|développeurs|personnes|members|collaborateurs)`)

	achievementVerbs = regexp.MustCompile(`(?i)^\s*[\-•*]?\s*(improved|reduced|achieved|delivered|increased|` +
		`optimized|developed|implemented|designed|led|managed|built|created|` +
		`amélioré|réduit|livré|augmenté|développé|conçu|dirigé|` +
		`deployed|migrated|automated|launched)`)

	techPattern = regexp.MustCompile(`(?i)\b(` +
		`python|java|javascript|typescript|react|angular|vue\.?js|node\.?js|` +
		`express|fastapi|django|flask|spring|laravel|` +
		`docker|kubernetes|aws|azure|gcp|` +
		`postgresql|mysql|mongodb|redis|elasticsearch|` +
		`git|jenkins|gitlab|github|terraform|ansible|` +
		`linux|nginx|apache|kafka|rabbitmq|` +
		`tensorflow|pytorch|pandas|numpy|spark|` +
		`html|css|sass|tailwind|bootstrap|` +
		`graphql|rest|grpc|microservices|` +
		`junit|pytest|selenium|cypress|jest|` +
		`figma|jira|confluence|` +
		`power\s*bi|tableau|excel|` +
		`c\+\+|c#|\.net|php|ruby|go|rust|kotlin|swift|scala` +
		`)\b`)

	bulletPrefix   = regexp.MustCompile(`^\s*[\-•*]\s*`)
	numericishLine = regexp.MustCompile(`^[\d/\-\s]+$`)
	atCompany      = regexp.MustCompile(`(?i)\b(?:at|chez|@)\s+(.+)`)
)

var (
	rangeStartIdx = dateRangePattern.SubexpIndex("start")
	rangeEndIdx   = dateRangePattern.SubexpIndex("end")
)

// ExtractExperiences parses the experience section (falling back to the
// whole text) into one structured entry per date-anchored block.
func ExtractExperiences(text string) []types.Experience {
	section := locateOrWhole(text, experienceHeading, experienceNext)

	var experiences []types.Experience
	for _, block := range splitExperienceBlocks(section) {
		experiences = append(experiences, parseExperienceBlock(block))
	}
	return experiences
}

// splitExperienceBlocks cuts the section at each date-range anchor,
// widening each cut to the start of its line. Falls back to single-date
// anchors, then to the whole section.
func splitExperienceBlocks(section string) []string {
	matches := dateRangePattern.FindAllStringIndex(section, -1)
	if len(matches) == 0 {
		matches = datePattern.FindAllStringIndex(section, -1)
	}
	if len(matches) == 0 {
		if strings.TrimSpace(section) == "" {
			return nil
		}
		return []string{section}
	}

	var blocks []string
	for i, m := range matches {
		start := m[0]
		if lineStart := strings.LastIndex(section[:start], "\n"); lineStart >= 0 {
			start = lineStart + 1
		}

		end := len(section)
		if i+1 < len(matches) {
			nextStart := matches[i+1][0]
			if nextLineStart := strings.LastIndex(section[:nextStart], "\n"); nextLineStart > start {
				end = nextLineStart
			} else {
				end = nextStart
			}
		}

		if block := strings.TrimSpace(section[start:end]); block != "" {
			blocks = append(blocks, block)
		}
	}
	return blocks
}

func parseExperienceBlock(block string) types.Experience {
	lines := strings.Split(block, "\n")

	var startDate, endDate string
	if m := dateRangePattern.FindStringSubmatch(block); m != nil {
		startDate = strings.TrimSpace(m[rangeStartIdx])
		endDate = strings.TrimSpace(m[rangeEndIdx])
		if presentPattern.MatchString(endDate) {
			endDate = types.PresentSentinel
		}
	} else if m := datePattern.FindString(block); m != "" {
		startDate = m
	}

	position, company := positionAndCompany(lines)

	// Bullets split into achievement lines (action-verb led) and
	// mission-description lines.
	var bulletLines, achievements []string
	for _, line := range lines {
		if !bulletPrefix.MatchString(line) {
			continue
		}
		content := strings.TrimSpace(bulletPrefix.ReplaceAllString(line, ""))
		if achievementVerbs.MatchString(content) {
			achievements = append(achievements, content)
		} else {
			bulletLines = append(bulletLines, content)
		}
	}
	var missionSummary string
	if len(bulletLines) > 5 {
		bulletLines = bulletLines[:5]
	}
	missionSummary = strings.Join(bulletLines, " ")

	confidence := 0.5
	if startDate != "" {
		confidence += 0.2
	}
	if position != "" {
		confidence += 0.2
	}
	if company != "" {
		confidence += 0.1
	}

	return types.Experience{
		StartDate:      startDate,
		EndDate:        endDate,
		Position:       position,
		Company:        company,
		MissionSummary: missionSummary,
		Achievements:   achievements,
		Technologies:   uniqueMatches(techPattern, block),
		Methodologies:  uniqueMatches(methodologyPattern, block),
		TeamSize:       explicitTeamSize(block),
		Evidence:       truncateRunes(block, 500),
		Confidence:     confidence,
	}
}

// positionAndCompany reads the date line for a "date | position | company"
// layout, then falls back to the first plausible non-date line for the
// position and an at/chez/@ marker for the company.
func positionAndCompany(lines []string) (string, string) {
	var position, company string

	var dateLine string
	for _, line := range lines[:min(5, len(lines))] {
		if dateRangePattern.MatchString(line) {
			dateLine = line
			break
		}
	}

	if dateLine != "" {
		rest := strings.Trim(strings.TrimSpace(dateRangePattern.ReplaceAllString(dateLine, "")), "|– \t")
		var parts []string
		for _, p := range strings.Split(rest, "|") {
			if p = strings.TrimSpace(p); p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) >= 2 {
			position, company = parts[0], parts[1]
		} else if len(parts) == 1 {
			position = parts[0]
		}
	}

	if position == "" {
		for _, line := range lines[:min(4, len(lines))] {
			clean := strings.Trim(strings.TrimSpace(line), "-–•*")
			if clean == "" || numericishLine.MatchString(clean) {
				continue
			}
			if loc := dateRangePattern.FindStringIndex(clean); loc != nil && loc[0] == 0 && loc[1] == len(clean) {
				continue
			}
			position = clean
			break
		}
	}

	if company == "" {
		for _, line := range lines[:min(6, len(lines))] {
			if m := atCompany.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
				company = strings.TrimSpace(m[1])
				break
			}
		}
	}

	return position, company
}

func explicitTeamSize(block string) *int {
	m := teamSizePattern.FindStringSubmatch(block)
	if m == nil {
		return nil
	}
	sizeStr := m[1]
	if sizeStr == "" {
		sizeStr = m[2]
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		return nil
	}
	return &size
}

// uniqueMatches returns the distinct matches of pattern in text, sorted
// for stable output.
func uniqueMatches(pattern *regexp.Regexp, text string) []string {
	seen := make(map[string]struct{})
	for _, m := range pattern.FindAllString(text, -1) {
		seen[m] = struct{}{}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for m := range seen {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
