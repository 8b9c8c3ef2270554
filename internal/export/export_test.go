package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gradsift/internal/config"
	"gradsift/internal/signal"
)

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }

func sampleSignals() []signal.Signal {
	created := time.Date(2025, 8, 14, 11, 41, 0, 0, time.UTC)
	return []signal.Signal{
		{
			FirmName:             "Allens",
			FirmAlias:            "allens",
			ProgramType:          "summer_clerkship",
			City:                 "Sydney",
			IntakeYear:           intp(2025),
			ApplicationCloseDate: "2025-08-15",
			SalaryAnnualAUD:      floatp(75000),
			EvidenceSpan:         "did my summer clerkship at Allens",
			Provenance: signal.Provenance{
				ThreadTitle: "Clerkships 2025",
				ThreadURL:   "https://example.net/t/1",
				PostNumber:  "4",
				SourceFile:  "threads.csv",
			},
			Confidence: 0.9,
			CreatedAt:  created,
		},
		{
			FirmName:   "Ashurst",
			FirmAlias:  "ashurst",
			Confidence: 0.6,
			CreatedAt:  created,
		},
	}
}

func sampleFiltered() []signal.FilteredPost {
	return []signal.FilteredPost{
		{
			FirmName:  "Allens",
			Content:   "long detailed account of the clerkship",
			Timestamp: "2025-08-14",
			ThreadURL: "https://example.net/t/1",
			Quality:   signal.QualityScore{Score: 0.82, Words: 150, UniqueWords: 90, Sentences: 8, ReasonCodes: []string{"high_quality"}},
		},
		{
			FirmName: "Allens",
			Content:  "when do offers come out?",
			Quality:  signal.QualityScore{Score: 0.35, IsQuestion: true, ReasonCodes: []string{"question"}},
		},
		{
			FirmName: "Ashurst",
			Content:  "short note",
			Quality:  signal.QualityScore{Score: 0.61},
		},
	}
}

func TestSignalsCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signals.csv")
	want := sampleSignals()
	if err := WriteSignalsCSV(path, want); err != nil {
		t.Fatalf("WriteSignalsCSV: %v", err)
	}
	got, err := ReadSignals(path)
	if err != nil {
		t.Fatalf("ReadSignals: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d signals, want %d", len(got), len(want))
	}
	if got[0].FirmName != "Allens" || got[0].ApplicationCloseDate != "2025-08-15" {
		t.Errorf("first signal = %+v", got[0])
	}
	if got[0].IntakeYear == nil || *got[0].IntakeYear != 2025 {
		t.Errorf("intake year = %v", got[0].IntakeYear)
	}
	if got[1].IntakeYear != nil || got[1].SalaryAnnualAUD != nil {
		t.Errorf("absent fields should stay nil: %+v", got[1])
	}
}

func TestWriteAtomicLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "signals.csv")
	if err := WriteSignalsCSV(path, sampleSignals()); err != nil {
		t.Fatalf("WriteSignalsCSV: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".tmp-") {
			t.Errorf("temp file left behind: %s", entry.Name())
		}
	}
}

func TestReadSignalsRejectsWrongHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("a,b,c\n1,2,3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadSignals(path); err == nil {
		t.Fatal("expected header mismatch error")
	}
}

func TestReadFilteredPostsFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiences.csv")
	if err := WriteFilteredCSV(path, sampleFiltered()); err != nil {
		t.Fatalf("WriteFilteredCSV: %v", err)
	}

	all, err := ReadFilteredPosts(path, "", 0, false)
	if err != nil {
		t.Fatalf("ReadFilteredPosts: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("unfiltered count = %d", len(all))
	}

	allens, err := ReadFilteredPosts(path, "allens", 0.6, true)
	if err != nil {
		t.Fatalf("ReadFilteredPosts: %v", err)
	}
	if len(allens) != 1 || allens[0].Quality.Score != 0.82 {
		t.Fatalf("filtered = %+v", allens)
	}
}

func TestWriteFirmCaches(t *testing.T) {
	dir := t.TempDir()
	if err := WriteFirmCaches(dir, sampleFiltered()); err != nil {
		t.Fatalf("WriteFirmCaches: %v", err)
	}
	for _, name := range []string{"experiences_allens.csv", "experiences_ashurst.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing cache %s: %v", name, err)
		}
	}
	posts, err := ReadFilteredPosts(filepath.Join(dir, "experiences_allens.csv"), "", 0, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 2 {
		t.Fatalf("allens cache has %d posts, want 2", len(posts))
	}
}

func TestParquetMirrorRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signals.parquet")
	want := sampleSignals()
	if err := WriteSignalsParquet(path, want); err != nil {
		t.Fatalf("WriteSignalsParquet: %v", err)
	}
	got, err := ReadSignalsParquet(path)
	if err != nil {
		t.Fatalf("ReadSignalsParquet: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
	if got[0].FirmName != "Allens" || got[0].Confidence != 0.9 {
		t.Errorf("first row = %+v", got[0])
	}
	if got[0].SalaryAnnualAUD == nil || *got[0].SalaryAnnualAUD != 75000 {
		t.Errorf("salary = %v", got[0].SalaryAnnualAUD)
	}
	if got[1].IntakeYear != nil {
		t.Errorf("absent intake should stay nil")
	}
}

func TestWriteRun(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Paths.OutputDir = filepath.Join(dir, "out")
	cfg.Paths.CacheDir = filepath.Join(dir, "cache")
	if err := os.MkdirAll(cfg.Paths.OutputDir, 0o755); err != nil {
		t.Fatal(err)
	}

	exporter := New(&cfg, nil)
	if err := exporter.WriteRun(sampleSignals(), sampleFiltered()); err != nil {
		t.Fatalf("WriteRun: %v", err)
	}
	for _, path := range []string{
		exporter.SignalsPath(),
		exporter.ExperiencesPath(),
		filepath.Join(cfg.Paths.OutputDir, ParquetFile),
		FirmCachePath(cfg.Paths.CacheDir, "Allens"),
	} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing output %s: %v", path, err)
		}
	}
}
