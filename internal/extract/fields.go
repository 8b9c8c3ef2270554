package extract

import (
	"regexp"
	"strconv"
	"strings"

	"gradsift/internal/dates"
)

var (
	openKeyword  = regexp.MustCompile(`(?i)\bopen(s|ing)?\b`)
	closeKeyword = regexp.MustCompile(`(?i)\b(clos(es|ing|e)?|deadline)\b`)

	intakeNearKeyword = regexp.MustCompile(`(?i)(clerkship|grad(uate)?|intake|program).{0,30}?(20\d{2})`)
	anyYear           = regexp.MustCompile(`\b(20\d{2})\b`)

	lengthMonths = regexp.MustCompile(`(?i)\b(\d{1,2})\s*[- ]?\s*(month|months)\b`)
	lengthYears  = regexp.MustCompile(`(?i)\b(\d{1,2})\s*[- ]?\s*(year|years|yr|yrs)\b`)
	rotations    = regexp.MustCompile(`(?i)\b(\d{1,2})\s+rotations?\b`)

	moneyMention = regexp.MustCompile(`(?i)\$\s*[\d,]+(?:\.\d+)?\s*k?\s*(?:\+\s*super)?`)
	moneyAmount  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(k)?`)
)

// ApplicationDates finds open and close dates near their keywords within the
// window. Either may be empty; a date is always a valid ISO string or "".
func ApplicationDates(window string) (openDate, closeDate string) {
	return dates.FindNearKeyword(window, openKeyword), dates.FindNearKeyword(window, closeKeyword)
}

// IntakeYear resolves the intake year for a window: a 20xx year near a
// program keyword wins, then any 20xx year, then the year of the post's own
// timestamp. Returns nil when nothing resolves.
func IntakeYear(window, threadTitle, postTimestamp string) *int {
	combined := window + " " + threadTitle
	if m := intakeNearKeyword.FindStringSubmatch(combined); m != nil {
		if year, err := strconv.Atoi(m[3]); err == nil {
			return &year
		}
	}
	if m := anyYear.FindStringSubmatch(combined); m != nil {
		if year, err := strconv.Atoi(m[1]); err == nil {
			return &year
		}
	}
	if year := dates.Year(postTimestamp); year != 0 {
		return &year
	}
	return nil
}

// ProgramLengthMonths parses "18 month" or "2 year" style lengths, with
// years converted to months. Returns nil on no match.
func ProgramLengthMonths(window string) *int {
	if m := lengthMonths.FindStringSubmatch(window); m != nil {
		if months, err := strconv.Atoi(m[1]); err == nil {
			return &months
		}
	}
	if m := lengthYears.FindStringSubmatch(window); m != nil {
		if years, err := strconv.Atoi(m[1]); err == nil {
			months := years * 12
			return &months
		}
	}
	return nil
}

// RotationsCount parses "6 rotations". Returns nil on no match.
func RotationsCount(window string) *int {
	m := rotations.FindStringSubmatch(window)
	if m == nil {
		return nil
	}
	count, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &count
}

// SalaryAnnualAUD parses dollar mentions: "$65k" is 65000, "$70,000" is
// 70000, a "+super" suffix is ignored. Bare amounts of 1000 or less are
// rejected as likely non-annual figures. Returns nil on no match.
func SalaryAnnualAUD(window string) *float64 {
	mention := moneyMention.FindString(window)
	if mention == "" {
		return nil
	}
	cleaned := strings.ReplaceAll(strings.ToLower(mention), ",", "")
	m := moneyAmount.FindStringSubmatch(cleaned)
	if m == nil {
		return nil
	}
	amount, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	if m[2] == "k" {
		amount *= 1000
	}
	if amount <= 1000 {
		return nil
	}
	return &amount
}
