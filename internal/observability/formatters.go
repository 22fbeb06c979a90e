// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-profiler/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfileSummary outputs a human-readable overview of an extracted profile.
func (p *Printer) PrintProfileSummary(profile *types.CompetencyProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	name := profile.CandidateName
	if name == "" {
		name = "(not detected)"
	}
	sb.WriteString(fmt.Sprintf("Candidate:  %s\n", name))
	sb.WriteString(fmt.Sprintf("Source:     %s\n", profile.SourceFile))
	sb.WriteString(fmt.Sprintf("Confidence: %.2f\n", profile.OverallConfidence))

	if profile.LastDegree != nil {
		sb.WriteString(fmt.Sprintf("Degree:     %s", profile.LastDegree.Degree))
		if profile.LastDegree.Year != nil {
			sb.WriteString(fmt.Sprintf(" (%d)", *profile.LastDegree.Year))
		}
		sb.WriteString("\n")
	}
	if profile.YearsOfExperience != nil {
		sb.WriteString(fmt.Sprintf("Experience: %.1f years (%.1f excl. internships)\n",
			profile.YearsOfExperience.TotalYears,
			profile.YearsOfExperience.TotalYearsExcludingInternships))
	}

	p.printBox("COMPETENCY PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkills outputs the ranked hard skills, soft skills and tools.
func (p *Printer) PrintSkills(profile *types.CompetencyProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	if len(profile.HardSkills) > 0 {
		sb.WriteString("Hard skills:\n")
		count := min(len(profile.HardSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := profile.HardSkills[i]
			sb.WriteString(fmt.Sprintf("  • %s (%d/5, score %.1f)\n", s.Name, s.Level, s.Score))
		}
		sb.WriteString("\n")
	}

	if len(profile.SoftSkills) > 0 {
		sb.WriteString("Soft skills:\n")
		count := min(len(profile.SoftSkills), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := profile.SoftSkills[i]
			sb.WriteString(fmt.Sprintf("  • %s (%d/5)\n", s.Name, s.Level))
		}
		sb.WriteString("\n")
	}

	if len(profile.TopTools) > 0 {
		sb.WriteString("Tools:\n")
		count := min(len(profile.TopTools), maxItemsToShow)
		for i := 0; i < count; i++ {
			t := profile.TopTools[i]
			sb.WriteString(fmt.Sprintf("  • %s (%d/5)\n", t.Name, t.Level))
		}
	}

	content := strings.TrimSuffix(sb.String(), "\n")
	if content == "" {
		content = "(no skills detected)"
	}
	p.printBox("SKILLS & TOOLS", content)
}

// PrintLanguages outputs the normalized languages.
func (p *Printer) PrintLanguages(profile *types.CompetencyProfile) {
	if profile == nil || len(profile.Languages) == 0 {
		return
	}

	var sb strings.Builder
	for i, lang := range profile.Languages {
		sb.WriteString(fmt.Sprintf("• %-12s %.1f/5", lang.Name, lang.Level))
		if lang.LevelLabel != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", lang.LevelLabel))
		}
		if i < len(profile.Languages)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("LANGUAGES", sb.String())
}

// PrintGaps outputs the missing-information catalogue.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintGaps(profile *types.CompetencyProfile) {
	if profile == nil {
		return
	}
	if len(profile.MissingInformation) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO GAPS DETECTED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d gaps:\n\n", len(profile.MissingInformation)))

	count := min(len(profile.MissingInformation), maxItemsToShow)
	for i := 0; i < count; i++ {
		gap := profile.MissingInformation[i]
		if len(gap) > 50 {
			gap = gap[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", gap))
	}
	if len(profile.MissingInformation) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(profile.MissingInformation)-maxItemsToShow))
	}

	p.printBox("MISSING INFORMATION", strings.TrimSuffix(sb.String(), "\n"))
}
