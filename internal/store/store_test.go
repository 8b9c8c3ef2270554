package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"gradsift/internal/signal"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "gradsift.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return s
}

func testRun(started time.Time) (Run, []signal.Signal, []signal.FilteredPost) {
	intake := 2025
	salary := 75000.0
	run := Run{ID: "run-1", Started: started, Posts: 3, Accepted: 2, Dropped: 1, Signals: 2}
	signals := []signal.Signal{
		{
			FirmName:             "Allens",
			FirmAlias:            "allens",
			ProgramType:          signal.ProgramSummerClerkship,
			City:                 "Sydney",
			IntakeYear:           &intake,
			ApplicationCloseDate: "2025-08-15",
			SalaryAnnualAUD:      &salary,
			EvidenceSpan:         "Allens clerkship closes 15 Aug",
			Provenance: signal.Provenance{
				ThreadTitle: "Clerkships 2025",
				ThreadURL:   "https://example.com/t/1",
				PostNumber:  "12",
				SourceFile:  "thread1.csv",
			},
			Confidence: 0.85,
			CreatedAt:  started,
		},
		{
			FirmName:   "Ashurst",
			FirmAlias:  "ashurst",
			Confidence: 0.55,
			CreatedAt:  started,
		},
	}
	experiences := []signal.FilteredPost{
		{
			FirmName: "Allens",
			Content:  "I clerked at Allens last summer and rotated through M&A.",
			Quality: signal.QualityScore{
				Score:       0.82,
				ReasonCodes: []string{"high_quality"},
			},
		},
	}
	return run, signals, experiences
}

func TestSaveRunAndQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	started := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	run, signals, experiences := testRun(started)

	if err := s.SaveRun(ctx, run, signals, experiences); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	got, err := s.SignalsByFirm(ctx, "Allens", 0.0)
	if err != nil {
		t.Fatalf("SignalsByFirm: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("SignalsByFirm returned %d signals, want 1", len(got))
	}
	sig := got[0]
	if sig.FirmName != "Allens" || sig.FirmAlias != "allens" {
		t.Errorf("firm = %q/%q, want Allens/allens", sig.FirmName, sig.FirmAlias)
	}
	if sig.IntakeYear == nil || *sig.IntakeYear != 2025 {
		t.Errorf("IntakeYear = %v, want 2025", sig.IntakeYear)
	}
	if sig.SalaryAnnualAUD == nil || *sig.SalaryAnnualAUD != 75000.0 {
		t.Errorf("SalaryAnnualAUD = %v, want 75000", sig.SalaryAnnualAUD)
	}
	if sig.ProgramLengthMonths != nil {
		t.Errorf("ProgramLengthMonths = %v, want nil", sig.ProgramLengthMonths)
	}
	if sig.Provenance.PostNumber != "12" {
		t.Errorf("PostNumber = %q, want 12", sig.Provenance.PostNumber)
	}
	if !sig.CreatedAt.Equal(started) {
		t.Errorf("CreatedAt = %v, want %v", sig.CreatedAt, started)
	}
}

func TestSignalsByFirmConfidenceFloor(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	run, signals, experiences := testRun(time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC))

	if err := s.SaveRun(ctx, run, signals, experiences); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	got, err := s.SignalsByFirm(ctx, "Ashurst", 0.7)
	if err != nil {
		t.Fatalf("SignalsByFirm: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d signals below the confidence floor, want 0", len(got))
	}
}

func TestRunsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := Run{ID: "run-a", Started: time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)}
	second := Run{ID: "run-b", Started: time.Date(2025, 7, 2, 10, 0, 0, 0, time.UTC)}
	if err := s.SaveRun(ctx, first, nil, nil); err != nil {
		t.Fatalf("SaveRun first: %v", err)
	}
	if err := s.SaveRun(ctx, second, nil, nil); err != nil {
		t.Fatalf("SaveRun second: %v", err)
	}

	runs, err := s.Runs(ctx)
	if err != nil {
		t.Fatalf("Runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].ID != "run-b" || runs[1].ID != "run-a" {
		t.Errorf("run order = %s, %s; want run-b, run-a", runs[0].ID, runs[1].ID)
	}
}

func TestMigrationsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gradsift.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer s.Close()

	runs, err := s.Runs(context.Background())
	if err != nil {
		t.Fatalf("Runs after reopen: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("got %d runs in fresh db, want 0", len(runs))
	}
}
