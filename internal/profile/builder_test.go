package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-profiler/internal/ingestion"
	"github.com/jonathan/cv-profiler/internal/types"
)

const sampleResume = `JEAN DUPONT
jean.dupont@example.com
+33 6 12 34 56 78

Expérience Professionnelle

01/2020 - 06/2022 | Développeur Backend | Acme Corp
- Développé une API REST avec Python et Django
- Improved processing throughput by 30%
Équipe de 4 personnes, méthode Scrum

Formation

Master en Informatique - 2023
Université de Paris

Langues

Français : langue maternelle
Anglais : B2

Compétences

Machine Learning, Data Analysis, Leadership
Python, Docker, Git
`

func sampleDocument() *ingestion.Document {
	return ingestion.NewDocument("cv_jean.txt", ingestion.CleanText(sampleResume), nil, nil)
}

func TestBuild_FullPipeline(t *testing.T) {
	builder := New(nil)

	result, err := builder.Build(context.Background(), sampleDocument(), Options{})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "cv_jean.txt", result.SourceFile)
	assert.NotEmpty(t, result.ExtractionDate)

	assert.Equal(t, "Jean Dupont", result.CandidateName)
	assert.Equal(t, 0.95, result.CandidateNameConfidence)

	require.Len(t, result.Educations, 1)
	require.NotNil(t, result.Educations[0].Year)
	assert.Equal(t, 2023, *result.Educations[0].Year)
	require.NotNil(t, result.LastDegree)
	assert.Equal(t, "Bac+5 / Master-Ingénieur", result.LastDegree.Level)

	require.Len(t, result.Experiences, 1)
	assert.Equal(t, "Acme Corp", result.Experiences[0].Company)

	require.NotNil(t, result.YearsOfExperience)
	assert.Equal(t, 29, result.YearsOfExperience.TotalMonths)
	assert.Equal(t, 2.4, result.YearsOfExperience.TotalYears)

	require.Len(t, result.Languages, 2)
	assert.Equal(t, "Français", result.Languages[0].Name)
	assert.Equal(t, "Anglais", result.Languages[1].Name)

	assert.NotEmpty(t, result.HardSkills)
	assert.NotEmpty(t, result.SoftSkills)
	assert.NotEmpty(t, result.TopTools)

	assert.Empty(t, result.MissingInformation)
	assert.InDelta(t, 0.96, result.OverallConfidence, 0.01)
}

func TestBuild_IsDeterministic(t *testing.T) {
	builder := New(nil)

	first, err := builder.Build(context.Background(), sampleDocument(), Options{})
	require.NoError(t, err)
	second, err := builder.Build(context.Background(), sampleDocument(), Options{})
	require.NoError(t, err)

	first.ExtractionDate = ""
	second.ExtractionDate = ""
	assert.Equal(t, first, second)
}

func TestBuild_EmptyDocument(t *testing.T) {
	builder := New(nil)
	doc := ingestion.NewDocument("blank.txt", "   \n\t ", nil, nil)

	_, err := builder.Build(context.Background(), doc, Options{})
	require.Error(t, err)

	var emptyErr *EmptyDocumentError
	require.True(t, errors.As(err, &emptyErr))
	assert.Equal(t, "blank.txt", emptyErr.SourceFile)
}

func TestBuild_UnknownSection(t *testing.T) {
	builder := New(nil)

	_, err := builder.Build(context.Background(), sampleDocument(), Options{Section: "hobbies"})
	require.Error(t, err)

	var sectionErr *UnknownSectionError
	require.True(t, errors.As(err, &sectionErr))
	assert.Equal(t, "hobbies", sectionErr.Section)
}

func TestBuild_LowTextGap(t *testing.T) {
	builder := New(nil)
	doc := ingestion.NewDocument("scan.txt", "Jean Dupont", nil, nil)

	result, err := builder.Build(context.Background(), doc, Options{})
	require.NoError(t, err)

	assert.Contains(t, result.MissingInformation, "document contains very little extractable text")
}

func TestBuild_SectionEducationOnly(t *testing.T) {
	builder := New(nil)

	result, err := builder.Build(context.Background(), sampleDocument(), Options{Section: SectionEducation})
	require.NoError(t, err)

	assert.Empty(t, result.CandidateName)
	assert.Len(t, result.Educations, 1)
	assert.NotNil(t, result.LastDegree)
	assert.Empty(t, result.Experiences)
	assert.Nil(t, result.YearsOfExperience)
	assert.Empty(t, result.Languages)
	assert.Empty(t, result.HardSkills)
	assert.Empty(t, result.TopTools)
}

func TestBuild_SectionSkillsOnly_DefaultConfidence(t *testing.T) {
	builder := New(nil)

	result, err := builder.Build(context.Background(), sampleDocument(), Options{Section: SectionSkills})
	require.NoError(t, err)

	assert.NotEmpty(t, result.HardSkills)
	assert.Empty(t, result.Educations)
	// No evidence-bearing entities were extracted.
	assert.Equal(t, 0.5, result.OverallConfidence)
}

func TestBuild_GapsRecordedWhenNothingFound(t *testing.T) {
	builder := New(nil)
	doc := ingestion.NewDocument("sparse.txt",
		"Texte libre sans la moindre structure exploitable, juste assez long.", nil, nil)

	result, err := builder.Build(context.Background(), doc, Options{})
	require.NoError(t, err)

	for _, gap := range []string{
		"candidate name not detected",
		"no education detected",
		"last degree not determined",
		"no language detected",
		"no hard skills detected",
		"no soft skills detected",
		"no mastered tools detected",
	} {
		assert.Contains(t, result.MissingInformation, gap)
	}
}

type fakeEnricher struct {
	educations      []types.Education
	experiences     []types.Experience
	educationCalls  int
	experienceCalls int
}

func (f *fakeEnricher) EnhanceEducations(_ context.Context, _ string, _ []types.Education) []types.Education {
	f.educationCalls++
	return f.educations
}

func (f *fakeEnricher) EnhanceExperiences(_ context.Context, _ string, _ []types.Experience) []types.Experience {
	f.experienceCalls++
	return f.experiences
}

func TestBuild_EnrichmentReplacesLists(t *testing.T) {
	year := 2024
	fake := &fakeEnricher{
		educations: []types.Education{
			{Degree: "Master en Informatique", Year: &year, Status: types.StatusObtained, Confidence: 0.9},
		},
		experiences: []types.Experience{
			{StartDate: "01/2020", EndDate: "06/2022", Position: "Développeur", Confidence: 0.9},
		},
	}
	builder := New(fake)

	result, err := builder.Build(context.Background(), sampleDocument(), Options{Enrich: true})
	require.NoError(t, err)

	assert.Equal(t, 1, fake.educationCalls)
	assert.Equal(t, 1, fake.experienceCalls)
	require.Len(t, result.Educations, 1)
	assert.Equal(t, 2024, *result.Educations[0].Year)
	require.Len(t, result.Experiences, 1)
	assert.Equal(t, 0.9, result.Experiences[0].Confidence)
}

func TestBuild_EmptyEnrichmentListKeepsHeuristics(t *testing.T) {
	// A model may answer with a valid but empty array; that must not
	// wipe the heuristic lists (and with them years_of_experience).
	fake := &fakeEnricher{
		educations:  []types.Education{},
		experiences: []types.Experience{},
	}
	builder := New(fake)

	result, err := builder.Build(context.Background(), sampleDocument(), Options{Enrich: true})
	require.NoError(t, err)

	require.Len(t, result.Educations, 1)
	assert.Equal(t, 2023, *result.Educations[0].Year)
	require.NotEmpty(t, result.Experiences)
	assert.Equal(t, "Acme Corp", result.Experiences[0].Company)
	require.NotNil(t, result.YearsOfExperience)
	assert.Greater(t, result.YearsOfExperience.TotalMonths, 0)
	assert.NotContains(t, result.MissingInformation, "no education detected")
	assert.NotContains(t, result.MissingInformation, "no experience detected")
}

func TestBuild_EnrichmentFailureKeepsHeuristics(t *testing.T) {
	fake := &fakeEnricher{} // returns nil lists
	builder := New(fake)

	result, err := builder.Build(context.Background(), sampleDocument(), Options{Enrich: true})
	require.NoError(t, err)

	require.Len(t, result.Educations, 1)
	assert.Equal(t, 2023, *result.Educations[0].Year)
	assert.Equal(t, "Acme Corp", result.Experiences[0].Company)
}

func TestBuild_EnrichmentSkippedWithoutFlag(t *testing.T) {
	fake := &fakeEnricher{}
	builder := New(fake)

	_, err := builder.Build(context.Background(), sampleDocument(), Options{})
	require.NoError(t, err)

	assert.Equal(t, 0, fake.educationCalls)
	assert.Equal(t, 0, fake.experienceCalls)
}
