// Package profile assembles the extraction components into a single
// immutable CompetencyProfile per document.
package profile

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jonathan/cv-profiler/internal/extraction"
	"github.com/jonathan/cv-profiler/internal/ingestion"
	"github.com/jonathan/cv-profiler/internal/types"
)

// Extraction sections selectable for partial runs.
const (
	SectionEducation  = "education"
	SectionExperience = "experience"
	SectionSkills     = "skills"
	SectionLanguages  = "languages"
)

// Options controls one extraction run. A zero Options value runs the
// full pipeline without enrichment.
type Options struct {
	// Section restricts the run to one extraction domain. Empty means
	// the full pipeline.
	Section string
	// Enrich enables the LLM pass over educations and experiences.
	Enrich bool
}

// Enricher refines heuristic extraction results. Implementations
// return nil on any failure; only a non-empty result replaces the
// heuristic list.
type Enricher interface {
	EnhanceEducations(ctx context.Context, text string, educations []types.Education) []types.Education
	EnhanceExperiences(ctx context.Context, text string, experiences []types.Experience) []types.Experience
}

// EmptyDocumentError indicates a document with no usable text.
type EmptyDocumentError struct {
	SourceFile string
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("no extractable text in document %q", e.SourceFile)
}

// UnknownSectionError indicates an unsupported Options.Section value.
type UnknownSectionError struct {
	Section string
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("unknown extraction section %q", e.Section)
}

// Builder runs the extraction pipeline. The zero value runs without
// enrichment; use New to attach an Enricher.
type Builder struct {
	enricher Enricher
}

// New creates a Builder. enricher may be nil.
func New(enricher Enricher) *Builder {
	return &Builder{enricher: enricher}
}

// Build runs the pipeline over an ingested document:
//
//  1. Candidate name
//  2. Educations and last degree
//  3. Experiences
//  4. Years of experience (interval union)
//  5. Languages (top 3)
//  6. Hard & soft skills (top 5 each)
//  7. Top tools
//
// Every heuristic that finds nothing records a gap in
// missing_information instead of failing; the only error conditions
// are an empty document and an unknown section.
func (b *Builder) Build(ctx context.Context, doc *ingestion.Document, opts Options) (*types.CompetencyProfile, error) {
	text := doc.Text
	if strings.TrimSpace(text) == "" {
		return nil, &EmptyDocumentError{SourceFile: doc.SourceFile}
	}

	profile := &types.CompetencyProfile{
		SourceFile:         doc.SourceFile,
		ExtractionDate:     time.Now().UTC().Format(time.RFC3339),
		MissingInformation: []string{},
	}
	if doc.LowText {
		profile.MissingInformation = append(profile.MissingInformation,
			"document contains very little extractable text")
	}

	runAll := opts.Section == ""
	switch opts.Section {
	case "", SectionEducation, SectionExperience, SectionSkills, SectionLanguages:
	default:
		return nil, &UnknownSectionError{Section: opts.Section}
	}

	if runAll {
		name, confidence := extraction.ExtractName(text)
		profile.CandidateName = name
		profile.CandidateNameConfidence = confidence
		if name == "" {
			profile.MissingInformation = append(profile.MissingInformation, "candidate name not detected")
		}
	}

	if runAll || opts.Section == SectionEducation {
		profile.Educations = extraction.ExtractEducations(text)
		if opts.Enrich && b.enricher != nil {
			if enhanced := b.enricher.EnhanceEducations(ctx, text, profile.Educations); len(enhanced) > 0 {
				profile.Educations = enhanced
			}
		}
		if len(profile.Educations) == 0 {
			profile.MissingInformation = append(profile.MissingInformation, "no education detected")
		}

		profile.LastDegree = extraction.DetermineLastDegree(profile.Educations)
		if profile.LastDegree == nil {
			profile.MissingInformation = append(profile.MissingInformation, "last degree not determined")
		}
	}

	if runAll || opts.Section == SectionExperience {
		profile.Experiences = extraction.ExtractExperiences(text)
		if opts.Enrich && b.enricher != nil {
			if enhanced := b.enricher.EnhanceExperiences(ctx, text, profile.Experiences); len(enhanced) > 0 {
				profile.Experiences = enhanced
			}
		}
		if len(profile.Experiences) == 0 {
			profile.MissingInformation = append(profile.MissingInformation, "no experience detected")
		}

		profile.YearsOfExperience = extraction.CalculateYearsOfExperience(profile.Experiences)
		profile.MissingInformation = append(profile.MissingInformation, profile.YearsOfExperience.MissingDates...)
	}

	if runAll || opts.Section == SectionLanguages {
		profile.Languages = extraction.ExtractLanguages(text)
		if len(profile.Languages) == 0 {
			profile.MissingInformation = append(profile.MissingInformation, "no language detected")
		}
	}

	if runAll || opts.Section == SectionSkills {
		profile.HardSkills, profile.SoftSkills = extraction.ExtractSkills(text)
		if len(profile.HardSkills) == 0 {
			profile.MissingInformation = append(profile.MissingInformation, "no hard skills detected")
		}
		if len(profile.SoftSkills) == 0 {
			profile.MissingInformation = append(profile.MissingInformation, "no soft skills detected")
		}

		profile.TopTools = extraction.ExtractTopTools(text)
		if len(profile.TopTools) == 0 {
			profile.MissingInformation = append(profile.MissingInformation, "no mastered tools detected")
		}
	}

	profile.OverallConfidence = overallConfidence(profile)
	return profile, nil
}

// overallConfidence averages the confidences of the evidence-bearing
// entities (educations, experiences, languages, duration). Skill and
// tool confidences describe ranking strength, not extraction quality,
// and are left out. Defaults to 0.5 when nothing was extracted.
func overallConfidence(profile *types.CompetencyProfile) float64 {
	var confidences []float64
	for _, e := range profile.Educations {
		confidences = append(confidences, e.Confidence)
	}
	for _, e := range profile.Experiences {
		confidences = append(confidences, e.Confidence)
	}
	for _, l := range profile.Languages {
		confidences = append(confidences, l.Confidence)
	}
	if profile.YearsOfExperience != nil {
		confidences = append(confidences, profile.YearsOfExperience.Confidence)
	}

	if len(confidences) == 0 {
		return 0.5
	}
	sum := 0.0
	for _, c := range confidences {
		sum += c
	}
	return math.Round(sum/float64(len(confidences))*100) / 100
}
