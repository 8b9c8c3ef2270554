package dates

import (
	"regexp"
	"testing"
)

func TestParseToISO(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"named month day first", "15 Aug 2025", "2025-08-15"},
		{"named month with comma", "15 Aug, 2025", "2025-08-15"},
		{"month day year", "Aug 15, 2025", "2025-08-15"},
		{"iso", "2025-08-15", "2025-08-15"},
		{"year month name day", "2025-Aug-15", "2025-08-15"},
		{"slash day first", "15/08/2025", "2025-08-15"},
		{"two digit year", "15/08/25", "2025-08-15"},
		{"dash numeric", "15-8-2025", "2025-08-15"},
		{"september long", "3 September 2024", "2024-09-03"},
		{"sept abbreviation", "3 Sept 2024", "2024-09-03"},
		{"embedded in text", "applications close 15 Aug 2025 sharp", "2025-08-15"},
		{"no date", "no date here", ""},
		{"empty", "", ""},
		{"invalid calendar date", "31/02/2025", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseToISO(tt.input); got != tt.want {
				t.Errorf("ParseToISO(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseToISORoundTrip(t *testing.T) {
	// Both forms of the same calendar date normalize identically.
	a := ParseToISO("15 Aug 2025")
	b := ParseToISO("2025-08-15")
	if a != b || a != "2025-08-15" {
		t.Errorf("round trip mismatch: %q vs %q", a, b)
	}
}

func TestFindNearKeyword(t *testing.T) {
	opens := regexp.MustCompile(`(?i)\bopen(s|ing)?\b`)

	got := FindNearKeyword("applications open 1 July 2025 for penultimate students", opens)
	if got != "2025-07-01" {
		t.Errorf("FindNearKeyword(after) = %q, want 2025-07-01", got)
	}

	got = FindNearKeyword("15/03/2025 is when they open", opens)
	if got != "2025-03-15" {
		t.Errorf("FindNearKeyword(before) = %q, want 2025-03-15", got)
	}
}

func TestFindNearKeywordOutOfRange(t *testing.T) {
	opens := regexp.MustCompile(`(?i)\bopen(s|ing)?\b`)
	padding := "the process was long and involved and frankly exhausting for everyone waiting on news "
	got := FindNearKeyword("applications open "+padding+"15 Aug 2025", opens)
	if got != "" {
		t.Errorf("FindNearKeyword(distant) = %q, want empty", got)
	}
}

func TestFindNearKeywordNoKeyword(t *testing.T) {
	closes := regexp.MustCompile(`(?i)\bclos(es|ing)?\b`)
	if got := FindNearKeyword("15 Aug 2025 was a lovely day", closes); got != "" {
		t.Errorf("FindNearKeyword(no keyword) = %q, want empty", got)
	}
}

func TestNormalizeTimestampAEST(t *testing.T) {
	got := NormalizeTimestamp("2023-Aug-14, 9:41 pm AEST")
	if got != "2023-08-14T11:41:00Z" {
		t.Errorf("NormalizeTimestamp(AEST) = %q", got)
	}
}

func TestNormalizeTimestampAEDT(t *testing.T) {
	got := NormalizeTimestamp("2023-Jan-14, 9:41 am AEDT")
	if got != "2023-01-13T22:41:00Z" {
		t.Errorf("NormalizeTimestamp(AEDT) = %q", got)
	}
}

func TestNormalizeTimestampRFC3339PassThrough(t *testing.T) {
	got := NormalizeTimestamp("2024-05-01T09:30:00Z")
	if got != "2024-05-01T09:30:00Z" {
		t.Errorf("NormalizeTimestamp(rfc3339) = %q", got)
	}
}

func TestNormalizeTimestampDateOnly(t *testing.T) {
	if got := NormalizeTimestamp("15 Aug 2025"); got != "2025-08-15" {
		t.Errorf("NormalizeTimestamp(date only) = %q, want bare date", got)
	}
	if got := NormalizeTimestamp("2025-08-15"); got != "2025-08-15" {
		t.Errorf("NormalizeTimestamp(iso date) = %q, want input unchanged", got)
	}
}

func TestNormalizeTimestampUnparseable(t *testing.T) {
	if got := NormalizeTimestamp("yesterday-ish"); got != "yesterday-ish" {
		t.Errorf("NormalizeTimestamp(garbage) = %q, want input unchanged", got)
	}
}

func TestYear(t *testing.T) {
	if got := Year("2024-05-01T09:30:00Z"); got != 2024 {
		t.Errorf("Year() = %d, want 2024", got)
	}
	if got := Year("n/a"); got != 0 {
		t.Errorf("Year(invalid) = %d, want 0", got)
	}
}
