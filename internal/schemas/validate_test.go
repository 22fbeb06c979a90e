package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Educations(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		doc := `[{"year": 2023, "degree": "Master en Informatique", "school": "Université de Paris",
			"degree_level": "Bac+5 / Master-Ingénieur", "status": "obtained",
			"evidence": "Master en Informatique - 2023", "confidence": 0.9}]`
		assert.NoError(t, Validate(EducationsSchema, doc))
	})

	t.Run("null year", func(t *testing.T) {
		doc := `[{"year": null, "degree": "Licence", "status": "in_progress", "confidence": 0.5}]`
		assert.NoError(t, Validate(EducationsSchema, doc))
	})

	t.Run("empty array", func(t *testing.T) {
		assert.NoError(t, Validate(EducationsSchema, `[]`))
	})

	t.Run("bad status", func(t *testing.T) {
		doc := `[{"degree": "Master", "status": "maybe", "confidence": 0.5}]`
		err := Validate(EducationsSchema, doc)
		require.Error(t, err)

		var validationErr *ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.NotEmpty(t, validationErr.Errors)
	})

	t.Run("missing degree", func(t *testing.T) {
		doc := `[{"status": "obtained", "confidence": 0.5}]`
		assert.Error(t, Validate(EducationsSchema, doc))
	})

	t.Run("confidence out of range", func(t *testing.T) {
		doc := `[{"degree": "Master", "status": "obtained", "confidence": 1.5}]`
		assert.Error(t, Validate(EducationsSchema, doc))
	})

	t.Run("unexpected field", func(t *testing.T) {
		doc := `[{"degree": "Master", "status": "obtained", "confidence": 0.5, "gpa": 4.0}]`
		assert.Error(t, Validate(EducationsSchema, doc))
	})

	t.Run("not an array", func(t *testing.T) {
		assert.Error(t, Validate(EducationsSchema, `{"degree": "Master"}`))
	})
}

func TestValidate_Experiences(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		doc := `[{"start_date": "01/2020", "end_date": "present", "position": "Développeur",
			"company": "Acme", "mission_summary": "Maintenance API",
			"achievements": ["Improved latency"], "technologies": ["Python"],
			"methodologies": ["Scrum"], "team_size": 5, "evidence": "01/2020 - present",
			"confidence": 1.0}]`
		assert.NoError(t, Validate(ExperiencesSchema, doc))
	})

	t.Run("minimal entry", func(t *testing.T) {
		assert.NoError(t, Validate(ExperiencesSchema, `[{"confidence": 0.5}]`))
	})

	t.Run("zero team size", func(t *testing.T) {
		doc := `[{"confidence": 0.5, "team_size": 0}]`
		assert.Error(t, Validate(ExperiencesSchema, doc))
	})

	t.Run("missing confidence", func(t *testing.T) {
		assert.Error(t, Validate(ExperiencesSchema, `[{"position": "Développeur"}]`))
	})
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("hobbies.schema.json", `[]`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "hobbies.schema.json", loadErr.Name)
}

func TestValidate_MalformedDocument(t *testing.T) {
	assert.Error(t, Validate(EducationsSchema, `{not json`))
}

func TestValidationError_MessageListsFields(t *testing.T) {
	err := Validate(EducationsSchema, `[{"degree": "", "status": "maybe", "confidence": 2}]`)
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.GreaterOrEqual(t, len(validationErr.Errors), 2)
	assert.Contains(t, validationErr.Error(), "validation failed")
}
