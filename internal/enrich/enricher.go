package enrich

import (
	"context"
	"encoding/json"
	"log"

	"github.com/jonathan/cv-profiler/internal/ingestion"
	"github.com/jonathan/cv-profiler/internal/prompts"
	"github.com/jonathan/cv-profiler/internal/schemas"
	"github.com/jonathan/cv-profiler/internal/types"
)

// maxPromptTextChars bounds the résumé text sent to the model.
const maxPromptTextChars = 12000

// Enricher sends the heuristic education and experience lists to the
// LLM for correction. It implements profile.Enricher: every method
// returns nil on failure so callers keep the heuristic lists.
type Enricher struct {
	client Client
}

// New creates an Enricher backed by the given client.
func New(client Client) *Enricher {
	return &Enricher{client: client}
}

// EnhanceEducations asks the model to correct the education entries.
// The response replaces the heuristic list wholesale; a nil return
// means the heuristic list stands.
func (e *Enricher) EnhanceEducations(ctx context.Context, text string, educations []types.Education) []types.Education {
	raw := e.generate(ctx, "enhance_educations", text, educations, schemas.EducationsSchema)
	if raw == "" {
		return nil
	}

	var enhanced []types.Education
	if err := json.Unmarshal([]byte(raw), &enhanced); err != nil {
		log.Printf("enrichment: education response did not decode: %v", err)
		return nil
	}
	return enhanced
}

// EnhanceExperiences asks the model to correct the experience entries.
// Same replace-wholesale contract as EnhanceEducations.
func (e *Enricher) EnhanceExperiences(ctx context.Context, text string, experiences []types.Experience) []types.Experience {
	raw := e.generate(ctx, "enhance_experiences", text, experiences, schemas.ExperiencesSchema)
	if raw == "" {
		return nil
	}

	var enhanced []types.Experience
	if err := json.Unmarshal([]byte(raw), &enhanced); err != nil {
		log.Printf("enrichment: experience response did not decode: %v", err)
		return nil
	}
	return enhanced
}

// generate runs one prompt round-trip and schema-validates the
// response. Returns "" on any failure.
func (e *Enricher) generate(ctx context.Context, promptKey, text string, entries any, schemaName string) string {
	if e.client == nil {
		return ""
	}

	template, err := prompts.Get("enrichment.json", promptKey)
	if err != nil {
		log.Printf("enrichment: %v", err)
		return ""
	}

	entriesJSON, err := json.Marshal(entries)
	if err != nil {
		log.Printf("enrichment: failed to marshal entries: %v", err)
		return ""
	}

	prompt := prompts.Format(template, map[string]string{
		"Text":    ingestion.Truncate(text, maxPromptTextChars),
		"Entries": string(entriesJSON),
	})

	raw, err := e.client.GenerateJSON(ctx, prompt)
	if err != nil {
		log.Printf("enrichment: generation failed: %v", err)
		return ""
	}

	if err := schemas.Validate(schemaName, raw); err != nil {
		log.Printf("enrichment: response rejected by schema: %v", err)
		return ""
	}
	return raw
}
