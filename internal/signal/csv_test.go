package signal

import (
	"reflect"
	"testing"
	"time"
)

func intPtr(v int) *int          { return &v }
func floatPtr(v float64) *float64 { return &v }

func sampleSignal() Signal {
	return Signal{
		FirmName:             "Allens",
		FirmAlias:            "allens",
		ProgramType:          ProgramSummerClerkship,
		City:                 "Sydney",
		IntakeYear:           intPtr(2025),
		ApplicationOpenDate:  "2025-06-01",
		ApplicationCloseDate: "2025-08-15",
		ProgramLengthMonths:  intPtr(18),
		RotationsCount:       intPtr(3),
		SalaryAnnualAUD:      floatPtr(75000),
		EvidenceSpan:         "completed my summer clerkship at allens, 3 rotations",
		Provenance: Provenance{
			ThreadTitle:   "Law clerkships 2025",
			ThreadURL:     "https://forum.example/t/1234",
			PostNumber:    "87",
			PostTimestamp: "2024-08-14T11:41:00Z",
			SourceFile:    "law_raw.csv",
		},
		Confidence: 0.85,
		CreatedAt:  time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestSignalRecordRoundTrip(t *testing.T) {
	want := sampleSignal()
	record := want.Record()
	if len(record) != len(Columns) {
		t.Fatalf("record has %d fields, want %d", len(record), len(Columns))
	}
	got, err := FromRecord(record)
	if err != nil {
		t.Fatalf("FromRecord: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestSignalRecordAbsentFields(t *testing.T) {
	s := Signal{FirmName: "Ashurst", FirmAlias: "ashurst", ProgramType: ProgramAmbiguous, City: CityUnknown}
	record := s.Record()
	got, err := FromRecord(record)
	if err != nil {
		t.Fatalf("FromRecord: %v", err)
	}
	if got.IntakeYear != nil || got.SalaryAnnualAUD != nil || got.RotationsCount != nil {
		t.Errorf("absent fields decoded as present: %+v", got)
	}
	if got.ApplicationOpenDate != "" || got.ApplicationCloseDate != "" {
		t.Errorf("dates should be empty, never partial: %+v", got)
	}
}

func TestFromRecordWrongWidth(t *testing.T) {
	if _, err := FromRecord([]string{"too", "short"}); err == nil {
		t.Fatal("expected width error")
	}
}

func TestFilteredPostRoundTrip(t *testing.T) {
	want := FilteredPost{
		FirmName:   "Corrs Chambers Westgarth",
		Content:    "I rotated through disputes and M&A, strongly recommend.",
		RawContent: "User #9 posted I rotated through disputes and M&A, strongly recommend.",
		Timestamp:  "2024-03-01T10:00:00Z",
		ThreadURL:  "https://forum.example/t/99",
		Quality: QualityScore{
			Score:       0.73,
			ReasonCodes: []string{"high_quality"},
			Words:       9,
			UniqueWords: 9,
			Sentences:   1,
		},
	}
	got, err := FilteredFromRecord(want.Record())
	if err != nil {
		t.Fatalf("FilteredFromRecord: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}
