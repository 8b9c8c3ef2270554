package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	tzTag = regexp.MustCompile(`(?i)\b(AEST|AEDT)\b`)
	// Forum post stamps look like "2023-Aug-14, 9:41 pm AEST".
	forumStamp = regexp.MustCompile(`(?i)\b(\d{4})-(` + monthNames + `)[a-z]*-(\d{1,2})(?:,\s*(\d{1,2}):(\d{2})\s*([ap]m)?)?`)
)

// NormalizeTimestamp converts a raw forum timestamp to an RFC 3339 style
// string. AEST/AEDT stamps are shifted to UTC (-10/-11 hours). Date-only
// inputs normalize to a bare ISO date, and inputs that fail to parse are
// returned unchanged so provenance is never lost.
func NormalizeTimestamp(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return raw
	}

	offsetHours := 0
	switch strings.ToUpper(tzTag.FindString(trimmed)) {
	case "AEST":
		offsetHours = -10
	case "AEDT":
		offsetHours = -11
	}
	clean := strings.TrimSpace(tzTag.ReplaceAllString(trimmed, ""))

	if ts, err := time.Parse(time.RFC3339, clean); err == nil {
		return ts.UTC().Format(time.RFC3339)
	}

	if g := forumStamp.FindStringSubmatch(clean); g != nil {
		year, _ := strconv.Atoi(g[1])
		month, ok := monthNumber(g[2])
		if ok {
			day, _ := strconv.Atoi(g[3])
			hour, _ := strconv.Atoi(g[4])
			minute, _ := strconv.Atoi(g[5])
			if strings.EqualFold(g[6], "pm") && hour < 12 {
				hour += 12
			}
			if strings.EqualFold(g[6], "am") && hour == 12 {
				hour = 0
			}
			if validDate(year, month, day) {
				ts := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
				ts = ts.Add(time.Duration(offsetHours) * time.Hour)
				return ts.Format(time.RFC3339)
			}
		}
	}

	// A bare date has no clock to shift, so it stays a date.
	if iso := ParseToISO(clean); iso != "" {
		return iso
	}

	return raw
}

// Year extracts the four-digit year from a normalized timestamp, or zero.
func Year(timestamp string) int {
	if len(timestamp) < 4 {
		return 0
	}
	year, err := strconv.Atoi(timestamp[:4])
	if err != nil || year < 1900 || year > 2200 {
		return 0
	}
	return year
}
