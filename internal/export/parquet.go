package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/parquet-go/parquet-go"

	"gradsift/internal/signal"
)

// signalRow flattens a Signal for the columnar mirror. Absent numeric
// fields map to parquet optionals.
type signalRow struct {
	FirmName             string   `parquet:"firm_name"`
	FirmAlias            string   `parquet:"firm_alias"`
	ProgramType          string   `parquet:"program_type"`
	City                 string   `parquet:"city"`
	IntakeYear           *int64   `parquet:"intake_year,optional"`
	ApplicationOpenDate  string   `parquet:"application_open_date"`
	ApplicationCloseDate string   `parquet:"application_close_date"`
	ProgramLengthMonths  *int64   `parquet:"program_length_months,optional"`
	RotationsCount       *int64   `parquet:"rotations_count,optional"`
	SalaryAnnualAUD      *float64 `parquet:"salary_annual_aud,optional"`
	EvidenceSpan         string   `parquet:"evidence_span"`
	ThreadTitle          string   `parquet:"thread_title"`
	ThreadURL            string   `parquet:"thread_url"`
	PostNumber           string   `parquet:"post_number"`
	PostTimestamp        string   `parquet:"post_timestamp"`
	SourceFile           string   `parquet:"source_file"`
	Confidence           float64  `parquet:"confidence"`
	CreatedAt            string   `parquet:"created_at"`
}

// WriteSignalsParquet mirrors the signal rows into a Parquet file, written
// atomically like the CSVs. Callers treat failure as a warning; the CSV
// remains the primary output.
func WriteSignalsParquet(path string, signals []signal.Signal) error {
	rows := make([]signalRow, 0, len(signals))
	for _, s := range signals {
		rows = append(rows, signalRow{
			FirmName:             s.FirmName,
			FirmAlias:            s.FirmAlias,
			ProgramType:          s.ProgramType,
			City:                 s.City,
			IntakeYear:           intPtr64(s.IntakeYear),
			ApplicationOpenDate:  s.ApplicationOpenDate,
			ApplicationCloseDate: s.ApplicationCloseDate,
			ProgramLengthMonths:  intPtr64(s.ProgramLengthMonths),
			RotationsCount:       intPtr64(s.RotationsCount),
			SalaryAnnualAUD:      s.SalaryAnnualAUD,
			EvidenceSpan:         s.EvidenceSpan,
			ThreadTitle:          s.Provenance.ThreadTitle,
			ThreadURL:            s.Provenance.ThreadURL,
			PostNumber:           s.Provenance.PostNumber,
			PostTimestamp:        s.Provenance.PostTimestamp,
			SourceFile:           s.Provenance.SourceFile,
			Confidence:           s.Confidence,
			CreatedAt:            s.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	writer := parquet.NewGenericWriter[signalRow](tmp)
	if len(rows) > 0 {
		if _, err := writer.Write(rows); err != nil {
			tmp.Close()
			return fmt.Errorf("write parquet rows: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		tmp.Close()
		return fmt.Errorf("close parquet writer: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

// ReadSignalsParquet loads a Parquet mirror back into signal rows, used by
// tests and ad-hoc inspection.
func ReadSignalsParquet(path string) ([]signal.Signal, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := parquet.NewGenericReader[signalRow](file)
	defer reader.Close()

	rows := make([]signalRow, reader.NumRows())
	if len(rows) > 0 {
		if _, err := reader.Read(rows); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read parquet rows: %w", err)
		}
	}

	signals := make([]signal.Signal, 0, len(rows))
	for _, row := range rows {
		createdAt, _ := time.Parse(time.RFC3339, row.CreatedAt)
		signals = append(signals, signal.Signal{
			FirmName:             row.FirmName,
			FirmAlias:            row.FirmAlias,
			ProgramType:          row.ProgramType,
			City:                 row.City,
			IntakeYear:           ptrInt(row.IntakeYear),
			ApplicationOpenDate:  row.ApplicationOpenDate,
			ApplicationCloseDate: row.ApplicationCloseDate,
			ProgramLengthMonths:  ptrInt(row.ProgramLengthMonths),
			RotationsCount:       ptrInt(row.RotationsCount),
			SalaryAnnualAUD:      row.SalaryAnnualAUD,
			EvidenceSpan:         row.EvidenceSpan,
			Provenance: signal.Provenance{
				ThreadTitle:   row.ThreadTitle,
				ThreadURL:     row.ThreadURL,
				PostNumber:    row.PostNumber,
				PostTimestamp: row.PostTimestamp,
				SourceFile:    row.SourceFile,
			},
			Confidence: row.Confidence,
			CreatedAt:  createdAt,
		})
	}
	return signals, nil
}

func intPtr64(v *int) *int64 {
	if v == nil {
		return nil
	}
	n := int64(*v)
	return &n
}

func ptrInt(v *int64) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}
