package extraction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-profiler/internal/types"
)

func TestExtractEducations_SectionWithTwoDegrees(t *testing.T) {
	text := `Formation

Master en Informatique - 2023
Université de Paris

Licence Informatique - 2021
Université de Lyon
`

	educations := ExtractEducations(text)
	require.Len(t, educations, 2)

	master := educations[0]
	require.NotNil(t, master.Year)
	assert.Equal(t, 2023, *master.Year)
	assert.Equal(t, "Master en Informatique - 2023", master.Degree)
	assert.Equal(t, "Université de Paris", master.School)
	assert.Equal(t, "Bac+5 / Master-Ingénieur", master.DegreeLevel)
	assert.Equal(t, types.StatusObtained, master.Status)
	assert.Equal(t, 1.0, master.Confidence)
	assert.Contains(t, master.Evidence, "Université de Paris")

	licence := educations[1]
	require.NotNil(t, licence.Year)
	assert.Equal(t, 2021, *licence.Year)
	assert.Equal(t, "Bac+3 / Licence", licence.DegreeLevel)
	assert.Equal(t, "Université de Lyon", licence.School)
}

func TestExtractEducations_InProgress(t *testing.T) {
	text := "Formation\nMaster en Data Science (en cours)\n"

	educations := ExtractEducations(text)
	require.Len(t, educations, 1)

	edu := educations[0]
	assert.Equal(t, types.StatusInProgress, edu.Status)
	assert.Nil(t, edu.Year)
	// Degree keyword present, no year.
	assert.Equal(t, 0.75, edu.Confidence)
}

func TestExtractEducations_SkipsCertifications(t *testing.T) {
	text := `Formation
Master en Informatique - 2023
Certification AWS Solutions Architect - 2022
Formation continue Udemy - 2021
`

	educations := ExtractEducations(text)
	require.Len(t, educations, 1)
	assert.NotContains(t, educations[0].Degree, "AWS")
}

func TestExtractEducations_SkipsDateRangeLines(t *testing.T) {
	text := `Formation
2019 - 2021
Licence Informatique
Université de Lyon
`

	educations := ExtractEducations(text)
	require.Len(t, educations, 1)
	assert.Equal(t, "Licence Informatique", educations[0].Degree)
	assert.Equal(t, "Université de Lyon", educations[0].School)
	assert.Nil(t, educations[0].Year)
}

func TestExtractEducations_WholeTextFallback(t *testing.T) {
	text := "Jean Dupont\nDiplômé d'un Master en Informatique - 2022\n"

	educations := ExtractEducations(text)
	require.Len(t, educations, 1)
	require.NotNil(t, educations[0].Year)
	assert.Equal(t, 2022, *educations[0].Year)
}

func TestExtractEducations_Empty(t *testing.T) {
	assert.Empty(t, ExtractEducations("Jean Dupont\nDéveloppeur passionné\n"))
}

func TestGraduationYear(t *testing.T) {
	year := graduationYear([]int{2019, 2021})
	require.NotNil(t, year)
	assert.Equal(t, 2021, *year)

	assert.Nil(t, graduationYear(nil))
	assert.Nil(t, graduationYear([]int{1850}))
	assert.Nil(t, graduationYear([]int{time.Now().Year() + 5}))
}

func TestDegreeLevel(t *testing.T) {
	tests := []struct {
		degree string
		level  int
		label  string
	}{
		{"Doctorat en Physique", 8, "Bac+8 / Doctorat"},
		{"Master en Informatique", 7, "Bac+5 / Master-Ingénieur"},
		{"Diplôme d'Ingénieur d'État", 7, "Bac+5 / Master-Ingénieur"},
		{"Bachelor of Science", 6, "Bac+3 / Licence"},
		{"BTS Informatique", 5, "Bac+2 / DUT-BTS"},
		{"Baccalauréat Scientifique", 4, "Baccalauréat"},
		{"Formation autodidacte", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.degree, func(t *testing.T) {
			level, label := degreeLevel(tt.degree)
			assert.Equal(t, tt.level, level)
			assert.Equal(t, tt.label, label)
		})
	}
}

func TestDetermineLastDegree_HighestLevelThenLatestYear(t *testing.T) {
	y2019, y2021, y2023 := 2019, 2021, 2023
	educations := []types.Education{
		{Degree: "Licence Informatique", Year: &y2019, Confidence: 1},
		{Degree: "Master Informatique", Year: &y2021, Confidence: 1},
		{Degree: "Master Data Science", Year: &y2023, School: "Université de Paris", Confidence: 1},
	}

	last := DetermineLastDegree(educations)
	require.NotNil(t, last)
	assert.Equal(t, "Master Data Science", last.Degree)
	assert.Equal(t, "Bac+5 / Master-Ingénieur", last.Level)
	assert.Equal(t, "Université de Paris", last.School)
	require.NotNil(t, last.Year)
	assert.Equal(t, 2023, *last.Year)
}

func TestDetermineLastDegree_NoEducations(t *testing.T) {
	assert.Nil(t, DetermineLastDegree(nil))
}

func TestDetermineLastDegree_YearlessEntries(t *testing.T) {
	educations := []types.Education{
		{Degree: "Licence Informatique", Confidence: 0.75},
		{Degree: "Master en Informatique", Confidence: 0.75},
	}

	last := DetermineLastDegree(educations)
	require.NotNil(t, last)
	assert.Equal(t, "Master en Informatique", last.Degree)
	assert.Nil(t, last.Year)
}
