package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLanguages_CEFRAndKeywords(t *testing.T) {
	text := `Langues

Français : langue maternelle
Anglais : B2
Allemand : notions
`

	languages := ExtractLanguages(text)
	require.Len(t, languages, 3)

	assert.Equal(t, "Français", languages[0].Name)
	assert.Equal(t, 5.0, languages[0].Level)
	assert.Equal(t, "Langue Maternelle", languages[0].LevelLabel)
	assert.Equal(t, 0.85, languages[0].Confidence)

	assert.Equal(t, "Anglais", languages[1].Name)
	assert.Equal(t, 3.5, languages[1].Level)
	assert.Equal(t, "B2", languages[1].LevelLabel)
	assert.Equal(t, 0.95, languages[1].Confidence)

	assert.Equal(t, "Allemand", languages[2].Name)
	assert.Equal(t, 2.0, languages[2].Level)
}

func TestExtractLanguages_TopThreeByLevel(t *testing.T) {
	text := `Langues
Français : C2
Anglais : C1
Allemand : B1
Espagnol : A1
`

	languages := ExtractLanguages(text)
	require.Len(t, languages, 3)

	names := []string{languages[0].Name, languages[1].Name, languages[2].Name}
	assert.Equal(t, []string{"Français", "Anglais", "Allemand"}, names)
	assert.NotContains(t, names, "Espagnol")
}

func TestExtractLanguages_UnspecifiedLevel(t *testing.T) {
	languages := ExtractLanguages("Espagnol\n")
	require.Len(t, languages, 1)

	assert.Equal(t, "Espagnol", languages[0].Name)
	assert.Equal(t, 2.5, languages[0].Level)
	assert.Equal(t, "Non spécifié", languages[0].LevelLabel)
	assert.Equal(t, 0.3, languages[0].Confidence)
}

func TestExtractLanguages_HighestLevelWinsOnDuplicate(t *testing.T) {
	text := "Anglais : notions\nAnglais : C1\n"

	languages := ExtractLanguages(text)
	require.Len(t, languages, 1)

	assert.Equal(t, "Anglais", languages[0].Name)
	assert.Equal(t, 4.0, languages[0].Level)
	assert.Equal(t, "C1", languages[0].LevelLabel)
}

func TestExtractLanguages_EnglishSpellings(t *testing.T) {
	text := "Languages\nEnglish: fluent\nSpanish: beginner\n"

	languages := ExtractLanguages(text)
	require.Len(t, languages, 2)

	assert.Equal(t, "Anglais", languages[0].Name)
	assert.Equal(t, 4.0, languages[0].Level)
	assert.Equal(t, "Espagnol", languages[1].Name)
	assert.Equal(t, 1.0, languages[1].Level)
}

func TestExtractLanguages_TieBrokenByName(t *testing.T) {
	text := "Arabe : B2\nAnglais : B2\n"

	languages := ExtractLanguages(text)
	require.Len(t, languages, 2)
	assert.Equal(t, "Anglais", languages[0].Name)
	assert.Equal(t, "Arabe", languages[1].Name)
}

func TestExtractLanguages_None(t *testing.T) {
	assert.Empty(t, ExtractLanguages("Jean Dupont\nDéveloppeur backend\n"))
}

func TestDetectLevel(t *testing.T) {
	level, label, confidence := detectLevel("Anglais : B2")
	assert.Equal(t, 3.5, level)
	assert.Equal(t, "B2", label)
	assert.Equal(t, 0.95, confidence)

	level, label, confidence = detectLevel("Anglais courant")
	assert.Equal(t, 4.0, level)
	assert.Equal(t, "Courant", label)
	assert.Equal(t, 0.85, confidence)

	level, label, confidence = detectLevel("Anglais")
	assert.Equal(t, 0.0, level)
	assert.Equal(t, "Inconnu", label)
	assert.Equal(t, 0.3, confidence)
}
