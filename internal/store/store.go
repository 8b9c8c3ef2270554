// Package store mirrors run output into SQLite for ad-hoc querying. The
// mirror is optional: callers treat any failure here as a warning, the CSV
// outputs remain authoritative.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"gradsift/internal/signal"
)

// Store manages the SQLite mirror.
type Store struct {
	db   *sql.DB
	path string
}

// Run is one recorded pipeline run.
type Run struct {
	ID       string
	Started  time.Time
	Posts    int
	Accepted int
	Dropped  int
	Signals  int
}

// Open initializes or connects to the database at path and applies
// migrations.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// SaveRun records one run with its signals and experiences in a single
// transaction.
func (s *Store) SaveRun(ctx context.Context, run Run, signals []signal.Signal, experiences []signal.FilteredPost) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, posts, accepted, dropped, signals) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Started.UTC().Format(time.RFC3339), run.Posts, run.Accepted, run.Dropped, run.Signals,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	signalStmt, err := tx.PrepareContext(ctx, `INSERT INTO signals (
		run_id, firm_name, firm_alias, program_type, city, intake_year,
		application_open_date, application_close_date, program_length_months,
		rotations_count, salary_annual_aud, evidence_span, thread_title,
		thread_url, post_number, post_timestamp, source_file, confidence, created_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare signal insert: %w", err)
	}
	defer signalStmt.Close()
	for _, sig := range signals {
		if _, err := signalStmt.ExecContext(ctx,
			run.ID, sig.FirmName, sig.FirmAlias, sig.ProgramType, sig.City,
			nullableInt(sig.IntakeYear), sig.ApplicationOpenDate, sig.ApplicationCloseDate,
			nullableInt(sig.ProgramLengthMonths), nullableInt(sig.RotationsCount),
			nullableFloat(sig.SalaryAnnualAUD), sig.EvidenceSpan,
			sig.Provenance.ThreadTitle, sig.Provenance.ThreadURL, sig.Provenance.PostNumber,
			sig.Provenance.PostTimestamp, sig.Provenance.SourceFile,
			sig.Confidence, sig.CreatedAt.UTC().Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("insert signal: %w", err)
		}
	}

	expStmt, err := tx.PrepareContext(ctx, `INSERT INTO experiences (
		run_id, firm_name, content, raw_content, timestamp, thread_url,
		quality_score, is_question, is_meta_low, is_too_short, reasons
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare experience insert: %w", err)
	}
	defer expStmt.Close()
	for _, exp := range experiences {
		if _, err := expStmt.ExecContext(ctx,
			run.ID, exp.FirmName, exp.Content, exp.RawContent, exp.Timestamp, exp.ThreadURL,
			exp.Quality.Score, exp.Quality.IsQuestion, exp.Quality.IsMetaLow, exp.Quality.IsTooShort,
			strings.Join(exp.Quality.ReasonCodes, ","),
		); err != nil {
			return fmt.Errorf("insert experience: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run: %w", err)
	}
	return nil
}

// SignalsByFirm returns stored signals for one canonical firm at or above
// the confidence floor, newest run first then insertion order.
func (s *Store) SignalsByFirm(ctx context.Context, firm string, minConfidence float64) ([]signal.Signal, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
		firm_name, firm_alias, program_type, city, intake_year,
		application_open_date, application_close_date, program_length_months,
		rotations_count, salary_annual_aud, evidence_span, thread_title,
		thread_url, post_number, post_timestamp, source_file, confidence, created_at
	FROM signals
	WHERE firm_name = ? AND confidence >= ?
	ORDER BY created_at DESC, id ASC`, firm, minConfidence)
	if err != nil {
		return nil, fmt.Errorf("query signals: %w", err)
	}
	defer rows.Close()
	return scanSignals(rows)
}

// Runs lists recorded runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, posts, accepted, dropped, signals FROM runs ORDER BY started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var started string
		if err := rows.Scan(&run.ID, &started, &run.Posts, &run.Accepted, &run.Dropped, &run.Signals); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.Started, _ = time.Parse(time.RFC3339, started)
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

func scanSignals(rows *sql.Rows) ([]signal.Signal, error) {
	var signals []signal.Signal
	for rows.Next() {
		var (
			sig       signal.Signal
			intake    sql.NullInt64
			length    sql.NullInt64
			rotations sql.NullInt64
			salary    sql.NullFloat64
			createdAt string
		)
		if err := rows.Scan(
			&sig.FirmName, &sig.FirmAlias, &sig.ProgramType, &sig.City, &intake,
			&sig.ApplicationOpenDate, &sig.ApplicationCloseDate, &length,
			&rotations, &salary, &sig.EvidenceSpan, &sig.Provenance.ThreadTitle,
			&sig.Provenance.ThreadURL, &sig.Provenance.PostNumber,
			&sig.Provenance.PostTimestamp, &sig.Provenance.SourceFile,
			&sig.Confidence, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan signal: %w", err)
		}
		if intake.Valid {
			v := int(intake.Int64)
			sig.IntakeYear = &v
		}
		if length.Valid {
			v := int(length.Int64)
			sig.ProgramLengthMonths = &v
		}
		if rotations.Valid {
			v := int(rotations.Int64)
			sig.RotationsCount = &v
		}
		if salary.Valid {
			v := salary.Float64
			sig.SalaryAnnualAUD = &v
		}
		sig.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		signals = append(signals, sig)
	}
	return signals, rows.Err()
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
