package taxonomy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		term string
		want string
	}{
		{"k8s", "Kubernetes"},
		{"K8S", "Kubernetes"},
		{" nodejs ", "Node.js"},
		{"postgres", "PostgreSQL"},
		{"analyse de données", "Data Analysis"},
		{"traitement du langage naturel", "NLP"},
		{"problem-solving", "Problem solving"},
		{"docker", "docker"},
		{"  docker  ", "docker"},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, Canonical(tt.term))
		})
	}
}

func TestIsHardSkill(t *testing.T) {
	assert.True(t, IsHardSkill("machine learning"))
	assert.True(t, IsHardSkill("Machine Learning"))
	assert.True(t, IsHardSkill("devops"))
	assert.False(t, IsHardSkill("docker"))
	assert.False(t, IsHardSkill("communication"))
}

func TestVocabularies_MatchTermSlices(t *testing.T) {
	assert.Len(t, HardSkills, len(uniqueTerms(HardSkillTerms)))
	assert.Len(t, SoftSkills, len(uniqueTerms(SoftSkillTerms)))
	assert.Len(t, Tools, len(uniqueTerms(ToolTerms)))
}

func TestVocabularies_TermsAreLowercase(t *testing.T) {
	for _, terms := range [][]string{HardSkillTerms, SoftSkillTerms, ToolTerms} {
		for _, term := range terms {
			assert.Equal(t, strings.ToLower(term), term, "term %q must be lowercase", term)
			assert.Equal(t, strings.TrimSpace(term), term, "term %q must be trimmed", term)
		}
	}
}

func TestAliases_KeysAreLowercase(t *testing.T) {
	for key := range Aliases {
		assert.Equal(t, strings.ToLower(key), key, "alias key %q must be lowercase", key)
	}
}

func uniqueTerms(terms []string) map[string]struct{} {
	set := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		set[t] = struct{}{}
	}
	return set
}
