// Package signal defines the records produced by the extraction pipeline:
// per-mention Signals, quality-filtered posts, and per-firm aggregate cards,
// together with the fixed CSV column layout shared by writers and loaders.
package signal

import "time"

// Program type labels produced by the field extractor. Ordering elsewhere is
// by rule precedence, not by these constants.
const (
	ProgramSeasonalClerkship = "seasonal_clerkship"
	ProgramSummerClerkship   = "summer_clerkship"
	ProgramWinterClerkship   = "winter_clerkship"
	ProgramClerkship         = "clerkship"
	ProgramVacation          = "vacation"
	ProgramGraduate          = "graduate"
	ProgramInternship        = "internship"
	ProgramAmbiguous         = "ambiguous"
	ProgramNone              = "no_program"
)

// ProgramLabels maps program type slugs to display labels for cards.
var ProgramLabels = map[string]string{
	ProgramGraduate:          "Graduate Program",
	ProgramClerkship:         "Clerkship",
	ProgramSummerClerkship:   "Summer Clerkship",
	ProgramWinterClerkship:   "Winter Clerkship",
	ProgramSeasonalClerkship: "Seasonal Clerkship",
	ProgramVacation:          "Vacation Program",
	ProgramInternship:        "Internship",
}

// CityUnknown is the city value when no configured city alias matched.
const CityUnknown = "Other/Unknown"

// Provenance ties a Signal back to the forum post it came from.
type Provenance struct {
	ThreadTitle   string
	ThreadURL     string
	PostNumber    string
	PostTimestamp string
	SourceFile    string
}

// Signal is one extracted, confidence-rated record for a single firm mention
// in a single post. Numeric fields use pointer types: absence of a field is
// a normal outcome, distinct from zero.
type Signal struct {
	FirmName             string
	FirmAlias            string
	ProgramType          string
	City                 string
	IntakeYear           *int
	ApplicationOpenDate  string // ISO-8601 or empty
	ApplicationCloseDate string // ISO-8601 or empty
	ProgramLengthMonths  *int
	RotationsCount       *int
	SalaryAnnualAUD      *float64
	EvidenceSpan         string
	Provenance           Provenance
	Confidence           float64
	CreatedAt            time.Time
}

// QualityScore is the firm-independent substance rating of one post.
type QualityScore struct {
	Score       float64
	IsQuestion  bool
	IsMetaLow   bool
	IsTooShort  bool
	ReasonCodes []string
	Words       int
	UniqueWords int
	Sentences   int
}

// FilteredPost pairs a post's cleaned text with its quality assessment.
type FilteredPost struct {
	FirmName   string // first matched firm, empty when none
	Content    string // cleaned text, what a UI should render
	RawContent string // original body kept for audit
	Timestamp  string
	ThreadURL  string
	Quality    QualityScore
}

// FirmCard aggregates every Signal naming one canonical firm in a run.
type FirmCard struct {
	Name            string
	ExperienceCount int
	AvgSalary       *int
	PopularPrograms []string
	TopCity         string
	TopIntakeYear   *int
	CitiesCount     int
	NextClose       string // ISO-8601 or empty
	EvidenceSamples []string
}
