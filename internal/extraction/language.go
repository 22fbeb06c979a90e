package extraction

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/cv-profiler/internal/taxonomy"
	"github.com/jonathan/cv-profiler/internal/types"
)

// maxLanguages bounds the output to the top languages by level.
const maxLanguages = 3

var cefrPattern = regexp.MustCompile(`(?i)\b([ABC][12])\b`)

// levelKeywordsByLength lists proficiency keywords longest first, so
// "upper intermediate" wins over "intermediate" on the same line.
var levelKeywordsByLength = func() []string {
	keys := make([]string, 0, len(taxonomy.LanguageLevels))
	for k := range taxonomy.LanguageLevels {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// languageWordPatterns precompiles a word-boundary matcher per known
// language spelling, to reject substring hits like "French fries"
// matching mid-word.
var languageWordPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(taxonomy.KnownLanguages))
	for key := range taxonomy.KnownLanguages {
		patterns[key] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(key) + `\b`)
	}
	return patterns
}()

// ExtractLanguages finds spoken languages and normalizes each level to
// the 0-5 scale, keeping the top 3 by level. When several lines mention
// the same language, the highest level wins.
func ExtractLanguages(text string) []types.Language {
	searchText := locateOrWhole(text, languageHeading, languageNext)

	found := make(map[string]types.Language)

	for _, line := range strings.Split(searchText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		for key, name := range taxonomy.KnownLanguages {
			if !strings.Contains(lower, key) {
				continue
			}
			if !languageWordPatterns[key].MatchString(line) {
				continue
			}

			level, label, confidence := detectLevel(line)

			if existing, ok := found[name]; ok {
				if level > existing.Level {
					found[name] = types.Language{
						Name:       name,
						Level:      level,
						LevelLabel: label,
						Evidence:   line,
						Confidence: confidence,
					}
				}
				continue
			}

			lang := types.Language{
				Name:       name,
				Level:      level,
				LevelLabel: label,
				Evidence:   line,
				Confidence: confidence,
			}
			if level == 0 {
				// Language named without any level indication.
				lang.Level = 2.5
				lang.LevelLabel = "Non spécifié"
				lang.Confidence = 0.3
			}
			found[name] = lang
		}
	}

	languages := make([]types.Language, 0, len(found))
	for _, lang := range found {
		languages = append(languages, lang)
	}
	sort.Slice(languages, func(i, j int) bool {
		if languages[i].Level != languages[j].Level {
			return languages[i].Level > languages[j].Level
		}
		return languages[i].Name < languages[j].Name
	})
	if len(languages) > maxLanguages {
		languages = languages[:maxLanguages]
	}
	return languages
}

// detectLevel reads a proficiency level from the line: CEFR code first
// (most reliable), then textual keywords, else unknown.
func detectLevel(line string) (float64, string, float64) {
	if m := cefrPattern.FindStringSubmatch(line); m != nil {
		code := strings.ToUpper(m[1])
		level, ok := taxonomy.LanguageLevels[strings.ToLower(code)]
		if !ok {
			level = 3
		}
		return level, code, 0.95
	}

	lower := strings.ToLower(line)
	for _, keyword := range levelKeywordsByLength {
		if strings.Contains(lower, keyword) {
			return taxonomy.LanguageLevels[keyword], titleCase(keyword), 0.85
		}
	}

	return 0, "Inconnu", 0.3
}
