package signal

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Columns is the fixed signal CSV column order. Consumers depend on this
// layout; never reorder.
var Columns = []string{
	"firm_name",
	"firm_alias",
	"program_type",
	"city",
	"intake_year",
	"application_open_date",
	"application_close_date",
	"program_length_months",
	"rotations_count",
	"salary_annual_aud",
	"evidence_span",
	"thread_title",
	"thread_url",
	"post_number",
	"post_timestamp",
	"source_file",
	"confidence",
	"created_at",
}

// FilteredColumns is the fixed column order for filtered experience CSVs.
var FilteredColumns = []string{
	"firm_name",
	"content",
	"raw_content",
	"timestamp",
	"thread_url",
	"quality_score",
	"is_question",
	"is_meta_low",
	"is_too_short",
	"words",
	"unique_words",
	"sentences",
	"reasons",
}

// Record encodes a Signal as a CSV row in Columns order.
func (s Signal) Record() []string {
	return []string{
		s.FirmName,
		s.FirmAlias,
		s.ProgramType,
		s.City,
		intString(s.IntakeYear),
		s.ApplicationOpenDate,
		s.ApplicationCloseDate,
		intString(s.ProgramLengthMonths),
		intString(s.RotationsCount),
		floatString(s.SalaryAnnualAUD),
		s.EvidenceSpan,
		s.Provenance.ThreadTitle,
		s.Provenance.ThreadURL,
		s.Provenance.PostNumber,
		s.Provenance.PostTimestamp,
		s.Provenance.SourceFile,
		strconv.FormatFloat(s.Confidence, 'f', 2, 64),
		s.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// FromRecord decodes a CSV row in Columns order back into a Signal.
func FromRecord(record []string) (Signal, error) {
	if len(record) != len(Columns) {
		return Signal{}, fmt.Errorf("signal record: want %d fields, got %d", len(Columns), len(record))
	}
	s := Signal{
		FirmName:             record[0],
		FirmAlias:            record[1],
		ProgramType:          record[2],
		City:                 record[3],
		IntakeYear:           parseIntPtr(record[4]),
		ApplicationOpenDate:  record[5],
		ApplicationCloseDate: record[6],
		ProgramLengthMonths:  parseIntPtr(record[7]),
		RotationsCount:       parseIntPtr(record[8]),
		SalaryAnnualAUD:      parseFloatPtr(record[9]),
		EvidenceSpan:         record[10],
		Provenance: Provenance{
			ThreadTitle:   record[11],
			ThreadURL:     record[12],
			PostNumber:    record[13],
			PostTimestamp: record[14],
			SourceFile:    record[15],
		},
	}
	if conf, err := strconv.ParseFloat(record[16], 64); err == nil {
		s.Confidence = conf
	}
	if created, err := time.Parse(time.RFC3339, record[17]); err == nil {
		s.CreatedAt = created
	}
	return s, nil
}

// Record encodes a FilteredPost as a CSV row in FilteredColumns order.
func (p FilteredPost) Record() []string {
	return []string{
		p.FirmName,
		p.Content,
		p.RawContent,
		p.Timestamp,
		p.ThreadURL,
		strconv.FormatFloat(p.Quality.Score, 'f', 3, 64),
		strconv.FormatBool(p.Quality.IsQuestion),
		strconv.FormatBool(p.Quality.IsMetaLow),
		strconv.FormatBool(p.Quality.IsTooShort),
		strconv.Itoa(p.Quality.Words),
		strconv.Itoa(p.Quality.UniqueWords),
		strconv.Itoa(p.Quality.Sentences),
		strings.Join(p.Quality.ReasonCodes, ","),
	}
}

// FilteredFromRecord decodes a CSV row in FilteredColumns order.
func FilteredFromRecord(record []string) (FilteredPost, error) {
	if len(record) != len(FilteredColumns) {
		return FilteredPost{}, fmt.Errorf("filtered record: want %d fields, got %d", len(FilteredColumns), len(record))
	}
	p := FilteredPost{
		FirmName:   record[0],
		Content:    record[1],
		RawContent: record[2],
		Timestamp:  record[3],
		ThreadURL:  record[4],
	}
	if score, err := strconv.ParseFloat(record[5], 64); err == nil {
		p.Quality.Score = score
	}
	p.Quality.IsQuestion = record[6] == "true"
	p.Quality.IsMetaLow = record[7] == "true"
	p.Quality.IsTooShort = record[8] == "true"
	p.Quality.Words, _ = strconv.Atoi(record[9])
	p.Quality.UniqueWords, _ = strconv.Atoi(record[10])
	p.Quality.Sentences, _ = strconv.Atoi(record[11])
	if record[12] != "" {
		p.Quality.ReasonCodes = strings.Split(record[12], ",")
	}
	return p, nil
}

func intString(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatString(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 0, 64)
}

func parseIntPtr(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func parseFloatPtr(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
