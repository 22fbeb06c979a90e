package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-profiler/internal/types"
)

func intPtr(v int) *int { return &v }

func TestPrintProfileSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfileSummary(&types.CompetencyProfile{
		CandidateName:     "Jean Dupont",
		SourceFile:        "cv.txt",
		OverallConfidence: 0.92,
		LastDegree:        &types.LastDegree{Degree: "Master en Informatique", Year: intPtr(2023)},
		YearsOfExperience: &types.YearsOfExperience{
			TotalYears:                     4.5,
			TotalYearsExcludingInternships: 4.0,
		},
	})
	output := buf.String()

	assert.Contains(t, output, "COMPETENCY PROFILE")
	assert.Contains(t, output, "Jean Dupont")
	assert.Contains(t, output, "cv.txt")
	assert.Contains(t, output, "0.92")
	assert.Contains(t, output, "Master en Informatique")
	assert.Contains(t, output, "(2023)")
	assert.Contains(t, output, "4.5 years")
}

func TestPrintProfileSummary_NameFallback(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfileSummary(&types.CompetencyProfile{SourceFile: "cv.txt"})

	assert.Contains(t, buf.String(), "(not detected)")
}

func TestPrintProfileSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfileSummary(nil)

	assert.Empty(t, buf.String())
}

func TestPrintSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkills(&types.CompetencyProfile{
		HardSkills: []types.Skill{
			{Name: "machine learning", Level: 5, Score: 16.0},
			{Name: "data analysis", Level: 2, Score: 4.0},
		},
		SoftSkills: []types.Skill{{Name: "communication", Level: 3}},
		TopTools:   []types.Tool{{Name: "Docker", Level: 4}},
	})
	output := buf.String()

	assert.Contains(t, output, "SKILLS & TOOLS")
	assert.Contains(t, output, "machine learning (5/5, score 16.0)")
	assert.Contains(t, output, "communication (3/5)")
	assert.Contains(t, output, "Docker (4/5)")
}

func TestPrintSkills_CapsListLength(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	skills := make([]types.Skill, 8)
	for i := range skills {
		skills[i] = types.Skill{Name: strings.Repeat("x", i+1), Level: 1}
	}
	p.PrintSkills(&types.CompetencyProfile{HardSkills: skills})

	assert.Contains(t, buf.String(), "xxxxx (1/5")
	assert.NotContains(t, buf.String(), "xxxxxx (1/5")
}

func TestPrintSkills_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkills(&types.CompetencyProfile{})

	assert.Contains(t, buf.String(), "(no skills detected)")
}

func TestPrintLanguages(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintLanguages(&types.CompetencyProfile{
		Languages: []types.Language{
			{Name: "Français", Level: 5.0, LevelLabel: "Langue Maternelle"},
			{Name: "Anglais", Level: 3.5, LevelLabel: "B2"},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "LANGUAGES")
	assert.Contains(t, output, "Français")
	assert.Contains(t, output, "5.0/5")
	assert.Contains(t, output, "(B2)")
}

func TestPrintLanguages_NoneIsSilent(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintLanguages(&types.CompetencyProfile{})

	assert.Empty(t, buf.String())
}

func TestPrintGaps(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGaps(&types.CompetencyProfile{
		MissingInformation: []string{
			"candidate name not found",
			"no language section detected",
		},
	})
	output := buf.String()

	assert.Contains(t, output, "MISSING INFORMATION")
	assert.Contains(t, output, "Found 2 gaps")
	assert.Contains(t, output, "candidate name not found")
}

func TestPrintGaps_NoneShowsCheckmark(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGaps(&types.CompetencyProfile{})

	assert.Contains(t, buf.String(), "NO GAPS DETECTED")
}

func TestPrintGaps_OverflowCounted(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	gaps := make([]string, 7)
	for i := range gaps {
		gaps[i] = strings.Repeat("g", i+1)
	}
	p.PrintGaps(&types.CompetencyProfile{MissingInformation: gaps})

	assert.Contains(t, buf.String(), "... and 2 more")
}
