// Package dates normalizes the date shapes found in forum posts to ISO-8601
// calendar dates. Posts mix day-first numeric dates, named-month forms, and
// ISO strings, often with two-digit years; everything parses to "2006-01-02"
// or not at all. A substring that fails every pattern yields the zero value,
// never an error.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ISO is the canonical output layout.
const ISO = "2006-01-02"

const monthNames = `Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec`

// datePatterns are tried in order; the first pattern matching a substring
// decides how its groups are interpreted.
var datePatterns = []struct {
	re    *regexp.Regexp
	build func(groups []string) (year, month, day int, ok bool)
}{
	{
		// 15 Aug 2025 / 15 August, 2025
		regexp.MustCompile(`(?i)\b(\d{1,2})\s+(` + monthNames + `)[a-z]*\.?,?\s+(\d{4})\b`),
		func(g []string) (int, int, int, bool) {
			day, _ := strconv.Atoi(g[1])
			month, ok := monthNumber(g[2])
			year, _ := strconv.Atoi(g[3])
			return year, month, day, ok
		},
	},
	{
		// Aug 15, 2025
		regexp.MustCompile(`(?i)\b(` + monthNames + `)[a-z]*\.?\s+(\d{1,2}),?\s+(\d{4})\b`),
		func(g []string) (int, int, int, bool) {
			month, ok := monthNumber(g[1])
			day, _ := strconv.Atoi(g[2])
			year, _ := strconv.Atoi(g[3])
			return year, month, day, ok
		},
	},
	{
		// 2025/Aug/15, 2025-Aug-15
		regexp.MustCompile(`(?i)\b(\d{4})[-/](` + monthNames + `)[a-z]*[-/](\d{1,2})\b`),
		func(g []string) (int, int, int, bool) {
			year, _ := strconv.Atoi(g[1])
			month, ok := monthNumber(g[2])
			day, _ := strconv.Atoi(g[3])
			return year, month, day, ok
		},
	},
	{
		// 2025-08-15 (ISO)
		regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`),
		func(g []string) (int, int, int, bool) {
			year, _ := strconv.Atoi(g[1])
			month, _ := strconv.Atoi(g[2])
			day, _ := strconv.Atoi(g[3])
			return year, month, day, true
		},
	},
	{
		// 15/08/2025, 15-8-25 (day first, two-digit years in the 2000s)
		regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})\b`),
		func(g []string) (int, int, int, bool) {
			day, _ := strconv.Atoi(g[1])
			month, _ := strconv.Atoi(g[2])
			year, _ := strconv.Atoi(g[3])
			if year < 100 {
				year += 2000
			}
			return year, month, day, true
		},
	},
}

var monthMap = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

func monthNumber(name string) (int, bool) {
	key := strings.ToLower(name)
	if len(key) > 3 {
		key = key[:3]
	}
	month, ok := monthMap[key]
	return month, ok
}

// ParseToISO finds the first date-like substring in s and normalizes it.
// Calendar-invalid candidates (31 Feb) are rejected and the next pattern is
// tried. Returns "" when nothing parses.
func ParseToISO(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, p := range datePatterns {
		groups := p.re.FindStringSubmatch(s)
		if groups == nil {
			continue
		}
		year, month, day, ok := p.build(groups)
		if !ok || !validDate(year, month, day) {
			continue
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format(ISO)
	}
	return ""
}

func validDate(year, month, day int) bool {
	if year < 1900 || year > 2200 || month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return d.Year() == year && int(d.Month()) == month && d.Day() == day
}

// FindNearKeyword searches text for a date within proximity of a keyword
// pattern: at most 60 characters after the keyword or 30 characters before
// it. Returns the first such date in ISO form, or "".
func FindNearKeyword(text string, keyword *regexp.Regexp) string {
	keywordSpans := keyword.FindAllStringIndex(text, -1)
	if len(keywordSpans) == 0 {
		return ""
	}
	for _, p := range datePatterns {
		for _, dateSpan := range p.re.FindAllStringIndex(text, -1) {
			for _, kw := range keywordSpans {
				after := dateSpan[0] - kw[1]
				before := kw[0] - dateSpan[1]
				if (after >= 0 && after <= 60) || (before >= 0 && before <= 30) {
					if iso := ParseToISO(text[dateSpan[0]:dateSpan[1]]); iso != "" {
						return iso
					}
				}
			}
		}
	}
	return ""
}
