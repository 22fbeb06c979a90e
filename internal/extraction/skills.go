package extraction

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/cv-profiler/internal/taxonomy"
	"github.com/jonathan/cv-profiler/internal/types"
)

// maxSkills bounds each ranked list (hard skills, soft skills, tools).
const maxSkills = 5

// Résumé sections carry different evidential weight: a skill named
// inside a certification or an experience block counts for more than
// one listed in a bare skills enumeration.
var sectionWeights = map[string]int{
	"skills":         3,
	"experience":     4,
	"projects":       3,
	"certifications": 5,
	"other":          1,
}

var sectionLabels = map[string]*regexp.Regexp{
	"skills": regexp.MustCompile(`(?im)^[\s#*\-]*(compétences|competences|skills|` +
		`technical\s*skills|compétences\s*techniques)\s*$`),
	"experience":     regexp.MustCompile(`(?im)^[\s#*\-]*(expérience|experience|parcours|work)\b`),
	"projects":       regexp.MustCompile(`(?im)^[\s#*\-]*(projet|project)\b`),
	"certifications": regexp.MustCompile(`(?im)^[\s#*\-]*(certif|certification|formation continue)\b`),
}

var impactVerbs = regexp.MustCompile(`(?i)\b(improved|reduced|achieved|delivered|increased|` +
	`optimized|deployed|led|designed|built|created|migrated|` +
	`amélioré|réduit|livré|augmenté|développé|conçu|dirigé|` +
	`automated|launched|mentored|coached)\b`)

// Per-term word-boundary matchers, compiled once at startup.
var (
	hardSkillPatterns = compileTermPatterns(taxonomy.HardSkillTerms)
	softSkillPatterns = compileTermPatterns(taxonomy.SoftSkillTerms)
	toolPatterns      = compileTermPatterns(taxonomy.ToolTerms)
)

func compileTermPatterns(terms []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(terms))
	for i, term := range terms {
		patterns[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
	}
	return patterns
}

// sectionIndex locates every section heading once so each skill
// occurrence can be attributed to its enclosing section cheaply.
type sectionIndex struct {
	positions []int
	names     []string
}

func indexSections(text string) *sectionIndex {
	type hit struct {
		pos  int
		name string
	}
	var hits []hit
	for name, pattern := range sectionLabels {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			hits = append(hits, hit{pos: loc[0], name: name})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	idx := &sectionIndex{}
	for _, h := range hits {
		idx.positions = append(idx.positions, h.pos)
		idx.names = append(idx.names, h.name)
	}
	return idx
}

// sectionAt returns the nearest heading at or before pos, "other" when
// the position precedes every heading.
func (idx *sectionIndex) sectionAt(pos int) string {
	i := sort.SearchInts(idx.positions, pos+1) - 1
	if i < 0 {
		return "other"
	}
	return idx.names[i]
}

// skillAccumulator gathers the evidence for one canonical skill or tool
// across every occurrence in the document.
type skillAccumulator struct {
	name      string
	category  string
	score     float64
	mentions  int
	hasImpact bool
	evidence  []string
}

func (acc *skillAccumulator) register(sections *sectionIndex, text string, pos int, contextLine string) {
	acc.score += float64(sectionWeights[sections.sectionAt(pos)])

	// Repeat mentions keep raising the score, capped at three.
	if acc.mentions < 3 {
		acc.score++
	}
	acc.mentions++

	if impactVerbs.MatchString(contextLine) {
		acc.hasImpact = true
		acc.score += 2
	}

	if len(acc.evidence) < 3 {
		snippet := truncateRunes(strings.TrimSpace(contextLine), 200)
		if snippet != "" && !containsString(acc.evidence, snippet) {
			acc.evidence = append(acc.evidence, snippet)
		}
	}
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// contextLine returns the full line surrounding a match position.
func contextLine(text string, start, end int) string {
	lineStart := strings.LastIndex(text[:start], "\n") + 1
	lineEnd := strings.Index(text[end:], "\n")
	if lineEnd < 0 {
		return text[lineStart:]
	}
	return text[lineStart : end+lineEnd]
}

// ExtractSkills scans the whole document against the hard- and
// soft-skill vocabularies and returns the top 5 of each category,
// ranked by accumulated evidence score.
func ExtractSkills(text string) ([]types.Skill, []types.Skill) {
	sections := indexSections(text)
	accumulators := make(map[string]*skillAccumulator)

	scan := func(terms []string, patterns []*regexp.Regexp, category string) {
		for i, term := range terms {
			for _, loc := range patterns[i].FindAllStringIndex(text, -1) {
				canonical := taxonomy.Canonical(term)
				key := strings.ToLower(canonical)
				acc, ok := accumulators[key]
				if !ok {
					acc = &skillAccumulator{name: canonical, category: category}
					accumulators[key] = acc
				}
				acc.register(sections, text, loc[0], contextLine(text, loc[0], loc[1]))
			}
		}
	}
	scan(taxonomy.HardSkillTerms, hardSkillPatterns, types.CategoryHard)
	scan(taxonomy.SoftSkillTerms, softSkillPatterns, types.CategorySoft)

	var hardSkills, softSkills []types.Skill
	for _, acc := range accumulators {
		skill := types.Skill{
			Name:       acc.name,
			Level:      evidenceLevel(acc.score, acc.hasImpact, acc.mentions),
			Category:   acc.category,
			Score:      acc.score,
			Evidence:   acc.evidence,
			Confidence: evidenceConfidence(acc.mentions, acc.hasImpact),
		}
		if acc.category == types.CategoryHard {
			hardSkills = append(hardSkills, skill)
		} else {
			softSkills = append(softSkills, skill)
		}
	}

	sortSkills(hardSkills)
	sortSkills(softSkills)
	return topSkills(hardSkills), topSkills(softSkills)
}

// ExtractTopTools scans the tool vocabulary and returns the top 5
// tools. Terms that also belong to the hard-skill vocabulary are
// attributed to skills only, and incidental single mentions outside
// weighted sections are filtered out.
func ExtractTopTools(text string) []types.Tool {
	sections := indexSections(text)
	accumulators := make(map[string]*skillAccumulator)

	for i, term := range taxonomy.ToolTerms {
		if taxonomy.IsHardSkill(term) {
			continue
		}
		for _, loc := range toolPatterns[i].FindAllStringIndex(text, -1) {
			canonical := taxonomy.Canonical(term)
			key := strings.ToLower(canonical)
			acc, ok := accumulators[key]
			if !ok {
				acc = &skillAccumulator{name: canonical}
				accumulators[key] = acc
			}
			acc.register(sections, text, loc[0], contextLine(text, loc[0], loc[1]))
		}
	}

	var tools []types.Tool
	for _, acc := range accumulators {
		// Score >= 4 means at least one mention inside a weighted
		// section; below that, a single mention is noise.
		if acc.mentions < 2 && acc.score < 4 {
			continue
		}
		tools = append(tools, types.Tool{
			Name:       acc.name,
			Level:      evidenceLevel(acc.score, acc.hasImpact, acc.mentions),
			Score:      acc.score,
			Evidence:   acc.evidence,
			Confidence: evidenceConfidence(acc.mentions, acc.hasImpact),
		})
	}

	sort.Slice(tools, func(i, j int) bool {
		if tools[i].Score != tools[j].Score {
			return tools[i].Score > tools[j].Score
		}
		return tools[i].Name < tools[j].Name
	})
	if len(tools) > maxSkills {
		tools = tools[:maxSkills]
	}
	return tools
}

// evidenceLevel maps accumulated evidence to a 1-5 mastery level.
//
//	1/5: mentioned once, no concrete usage
//	2/5: mentioned and used in one context
//	3/5: used across several contexts
//	4/5: clear responsibility or measured results
//	5/5: demonstrated expertise
func evidenceLevel(score float64, hasImpact bool, mentions int) int {
	switch {
	case score >= 15 || (hasImpact && mentions >= 3):
		return 5
	case score >= 10 || hasImpact:
		return 4
	case score >= 6 || mentions >= 2:
		return 3
	case score >= 3:
		return 2
	default:
		return 1
	}
}

func evidenceConfidence(mentions int, hasImpact bool) float64 {
	confidence := 0.3 + float64(mentions)*0.15
	if hasImpact {
		confidence += 0.2
	}
	if confidence > 1 {
		confidence = 1
	}
	return confidence
}

func sortSkills(skills []types.Skill) {
	sort.Slice(skills, func(i, j int) bool {
		if skills[i].Score != skills[j].Score {
			return skills[i].Score > skills[j].Score
		}
		return skills[i].Name < skills[j].Name
	})
}

func topSkills(skills []types.Skill) []types.Skill {
	if len(skills) > maxSkills {
		return skills[:maxSkills]
	}
	return skills
}
