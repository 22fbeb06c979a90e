package extraction

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/cv-profiler/internal/taxonomy"
	"github.com/jonathan/cv-profiler/internal/types"
)

var (
	internshipPattern = regexp.MustCompile(`(?i)\b(stage|stagiaire|intern|internship)\b`)
	bareYearPattern   = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// monthNamePatterns precompiles a word-boundary matcher per known month
// spelling so date strings can be resolved without tokenizing.
var monthNamePatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(taxonomy.MonthNumbers))
	for key := range taxonomy.MonthNumbers {
		patterns[key] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(key) + `\b`)
	}
	return patterns
}()

// parseFlexibleDate resolves a verbatim date span to a calendar date.
// "present" and its variants resolve to today; a bare year resolves to
// January 1st as a start and December 31st as an end. Returns the zero
// time when no year is present.
func parseFlexibleDate(dateStr string, isEnd bool, today time.Time) time.Time {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return time.Time{}
	}

	if presentPattern.MatchString(dateStr) {
		return today
	}

	yearStr := bareYearPattern.FindString(dateStr)
	if yearStr == "" {
		return time.Time{}
	}
	year, _ := strconv.Atoi(yearStr)

	for key, pattern := range monthNamePatterns {
		if pattern.MatchString(dateStr) {
			return time.Date(year, time.Month(taxonomy.MonthNumbers[key]), 1, 0, 0, 0, 0, time.UTC)
		}
	}
	if m := numericMonth(dateStr); m > 0 {
		return time.Date(year, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
	}

	// Bare year: conservative bounds.
	if isEnd {
		return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

var numericMonthPattern = regexp.MustCompile(`\b(0?[1-9]|1[0-2])\s*[/\-]\s*(?:19|20)\d{2}`)

func numericMonth(dateStr string) int {
	m := numericMonthPattern.FindStringSubmatch(dateStr)
	if m == nil {
		return 0
	}
	month, _ := strconv.Atoi(m[1])
	return month
}

type dateInterval struct {
	start time.Time
	end   time.Time
}

// mergeIntervals folds overlapping or touching spans into their union,
// sorted by start date.
func mergeIntervals(intervals []dateInterval) []dateInterval {
	if len(intervals) == 0 {
		return nil
	}
	sorted := make([]dateInterval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].start.Before(sorted[j].start) })

	merged := []dateInterval{sorted[0]}
	for _, iv := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !iv.start.After(last.end) {
			if iv.end.After(last.end) {
				last.end = iv.end
			}
		} else {
			merged = append(merged, iv)
		}
	}
	return merged
}

func monthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 0 {
		return 0
	}
	return months
}

// CalculateYearsOfExperience computes the total professional duration
// as an interval union, so overlapping roles never double-count. A
// second total excludes internships. Every unparseable or inverted date
// is recorded as a gap and lowers the confidence.
func CalculateYearsOfExperience(experiences []types.Experience) *types.YearsOfExperience {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	var intervals, intervalsNoInternship []dateInterval
	var missingDates []string

	for _, exp := range experiences {
		start := parseFlexibleDate(exp.StartDate, false, today)
		end := parseFlexibleDate(exp.EndDate, true, today)

		if start.IsZero() {
			missingDates = append(missingDates,
				fmt.Sprintf("missing start date: %s @ %s", orUnknown(exp.Position), orUnknown(exp.Company)))
			continue
		}
		if end.IsZero() {
			end = today
			missingDates = append(missingDates,
				fmt.Sprintf("missing end date (assumed ongoing): %s @ %s", orUnknown(exp.Position), orUnknown(exp.Company)))
		}
		if end.Before(start) {
			missingDates = append(missingDates,
				fmt.Sprintf("end date before start date (skipped): %s", orUnknown(exp.Position)))
			continue
		}

		iv := dateInterval{start: start, end: end}
		intervals = append(intervals, iv)

		roleText := exp.Position + " " + exp.MissionSummary
		if !internshipPattern.MatchString(roleText) {
			intervalsNoInternship = append(intervalsNoInternship, iv)
		}
	}

	merged := mergeIntervals(intervals)
	mergedNoInternship := mergeIntervals(intervalsNoInternship)

	totalMonths := 0
	serialized := make([]types.Interval, 0, len(merged))
	for _, iv := range merged {
		months := monthsBetween(iv.start, iv.end)
		totalMonths += months
		serialized = append(serialized, types.Interval{
			Start:  iv.start.Format("2006-01-02"),
			End:    iv.end.Format("2006-01-02"),
			Months: months,
		})
	}

	totalMonthsNoInternship := 0
	for _, iv := range mergedNoInternship {
		totalMonthsNoInternship += monthsBetween(iv.start, iv.end)
	}

	confidence := 1.0
	if penalty := float64(len(missingDates)) * 0.1; penalty > 0 {
		if penalty > 0.5 {
			penalty = 0.5
		}
		confidence -= penalty
	}

	return &types.YearsOfExperience{
		TotalMonths:                    totalMonths,
		TotalYears:                     roundTenth(float64(totalMonths) / 12),
		TotalYearsExcludingInternships: roundTenth(float64(totalMonthsNoInternship) / 12),
		Intervals:                      serialized,
		MissingDates:                   missingDates,
		Confidence:                     confidence,
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
