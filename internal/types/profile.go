// Package types provides type definitions for the structured competency
// profile produced by the extraction pipeline.
package types

// Education represents one academic degree entry extracted from a résumé.
// Degree is always non-empty; Year, when present, is the graduation (end) year.
type Education struct {
	Year        *int    `json:"year,omitempty"`
	Degree      string  `json:"degree" validate:"required"`
	School      string  `json:"school,omitempty"`
	DegreeLevel string  `json:"degree_level,omitempty"` // e.g. "Bac+5 / Master-Ingénieur"
	Status      string  `json:"status"`                 // "obtained" | "in_progress"
	Evidence    string  `json:"evidence,omitempty"`
	Confidence  float64 `json:"confidence" validate:"gte=0,lte=1"`
}

// Education status values.
const (
	StatusObtained   = "obtained"
	StatusInProgress = "in_progress"
)

// LastDegree is the derived highest degree (ties broken by latest year).
// It is recomputed from the education list, never created independently.
type LastDegree struct {
	Degree     string  `json:"degree"`
	Level      string  `json:"level,omitempty"`
	School     string  `json:"school,omitempty"`
	Year       *int    `json:"year,omitempty"`
	Confidence float64 `json:"confidence" validate:"gte=0,lte=1"`
}

// Experience represents one professional role. Dates are verbatim spans
// from the source text; EndDate may be the sentinel "present".
type Experience struct {
	StartDate      string   `json:"start_date,omitempty"`
	EndDate        string   `json:"end_date,omitempty"`
	Position       string   `json:"position,omitempty"`
	Company        string   `json:"company,omitempty"`
	MissionSummary string   `json:"mission_summary,omitempty"`
	Achievements   []string `json:"achievements,omitempty"`
	Technologies   []string `json:"technologies,omitempty"`
	Methodologies  []string `json:"methodologies,omitempty"`
	TeamSize       *int     `json:"team_size,omitempty"` // only when explicitly stated
	Evidence       string   `json:"evidence,omitempty"`
	Confidence     float64  `json:"confidence" validate:"gte=0,lte=1"`
}

// PresentSentinel is the normalized end-date value for ongoing roles.
const PresentSentinel = "present"

// Language represents one spoken language with a 0-5 proficiency level
// (halves allowed). At most one entry per canonical language name.
type Language struct {
	Name       string  `json:"name"`
	Level      float64 `json:"level" validate:"gte=0,lte=5"`
	LevelLabel string  `json:"level_label,omitempty"` // e.g. "B2" or "Fluent"
	Evidence   string  `json:"evidence,omitempty"`
	Confidence float64 `json:"confidence" validate:"gte=0,lte=1"`
}

// Skill represents a hard or soft skill with an evidence-derived level.
type Skill struct {
	Name       string   `json:"name"`
	Level      int      `json:"level" validate:"gte=1,lte=5"`
	Category   string   `json:"category"` // "hard" | "soft"
	Score      float64  `json:"score"`    // accumulated evidence weight, ranking key
	Evidence   []string `json:"evidence,omitempty"`
	Confidence float64  `json:"confidence" validate:"gte=0,lte=1"`
}

// Skill categories.
const (
	CategoryHard = "hard"
	CategorySoft = "soft"
)

// Tool represents a mastered tool or technology, distinct from skills.
// A term present in the hard-skill taxonomy is never reported as a tool.
type Tool struct {
	Name       string   `json:"name"`
	Level      int      `json:"level" validate:"gte=1,lte=5"`
	Score      float64  `json:"score"`
	Evidence   []string `json:"evidence,omitempty"`
	Confidence float64  `json:"confidence" validate:"gte=0,lte=1"`
}

// Interval is one merged calendar span contributing to the experience total.
type Interval struct {
	Start  string `json:"start"` // ISO date
	End    string `json:"end"`   // ISO date
	Months int    `json:"months"`
}

// YearsOfExperience is the duration-calculator output: non-overlapping
// totals with and without internships, plus the gaps encountered.
type YearsOfExperience struct {
	TotalMonths                     int        `json:"total_months"`
	TotalYears                      float64    `json:"total_years"`
	TotalYearsExcludingInternships  float64    `json:"total_years_excluding_internships"`
	Intervals                       []Interval `json:"intervals,omitempty"`
	MissingDates                    []string   `json:"missing_dates,omitempty"`
	Confidence                      float64    `json:"confidence" validate:"gte=0,lte=1"`
}

// CompetencyProfile aggregates everything extracted from one résumé.
// It is created once per document and never mutated after construction.
type CompetencyProfile struct {
	SourceFile              string             `json:"source_file"`
	ExtractionDate          string             `json:"extraction_date"` // RFC3339
	CandidateName           string             `json:"candidate_name,omitempty"`
	CandidateNameConfidence float64            `json:"candidate_name_confidence" validate:"gte=0,lte=1"`
	Educations              []Education        `json:"educations"`
	LastDegree              *LastDegree        `json:"last_degree,omitempty"`
	Experiences             []Experience       `json:"experiences"`
	YearsOfExperience       *YearsOfExperience `json:"years_of_experience,omitempty"`
	Languages               []Language         `json:"languages"` // top 3 by level
	HardSkills              []Skill            `json:"hard_skills"`
	SoftSkills              []Skill            `json:"soft_skills"`
	TopTools                []Tool             `json:"top_tools"`
	MissingInformation      []string           `json:"missing_information"`
	OverallConfidence       float64            `json:"overall_confidence" validate:"gte=0,lte=1"`
}
