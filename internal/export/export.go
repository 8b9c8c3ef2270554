// Package export persists run output: the primary signal and experience
// CSVs (written atomically, never left partial), an optional Parquet
// mirror, and per-firm experience caches. The output directory is guarded
// with a file lock so concurrent runs cannot interleave writes.
package export

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/gofrs/flock"

	"gradsift/internal/config"
	"gradsift/internal/logging"
	"gradsift/internal/signal"
	"gradsift/internal/textutil"
)

// Output file names inside the output directory.
const (
	SignalsFile     = "signals.csv"
	ExperiencesFile = "experiences.csv"
	ParquetFile     = "signals.parquet"
	lockFile        = ".gradsift.lock"
)

// Exporter writes everything a run produces.
type Exporter struct {
	outputDir string
	cacheDir  string
	parquet   bool
	perFirm   bool
	logger    *slog.Logger
}

// New builds an exporter from configuration. A nil logger disables logging.
func New(cfg *config.Config, logger *slog.Logger) *Exporter {
	return &Exporter{
		outputDir: cfg.Paths.OutputDir,
		cacheDir:  cfg.Paths.CacheDir,
		parquet:   cfg.Output.Parquet,
		perFirm:   cfg.Output.PerFirmCache,
		logger:    logging.NewComponentLogger(logger, "export"),
	}
}

// SignalsPath returns the primary signal CSV location.
func (e *Exporter) SignalsPath() string {
	return filepath.Join(e.outputDir, SignalsFile)
}

// ExperiencesPath returns the filtered experiences CSV location.
func (e *Exporter) ExperiencesPath() string {
	return filepath.Join(e.outputDir, ExperiencesFile)
}

// WriteRun persists one run. The primary CSVs must succeed; the Parquet
// mirror and per-firm caches are best-effort and only warn on failure.
func (e *Exporter) WriteRun(signals []signal.Signal, filtered []signal.FilteredPost) error {
	lock := flock.New(filepath.Join(e.outputDir, lockFile))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock output directory: %w", err)
	}
	if !locked {
		return fmt.Errorf("output directory %s is locked by another run", e.outputDir)
	}
	defer lock.Unlock()

	if err := WriteSignalsCSV(e.SignalsPath(), signals); err != nil {
		return err
	}
	if err := WriteFilteredCSV(e.ExperiencesPath(), filtered); err != nil {
		return err
	}

	if e.parquet {
		parquetPath := filepath.Join(e.outputDir, ParquetFile)
		if err := WriteSignalsParquet(parquetPath, signals); err != nil {
			e.logger.Warn("parquet mirror failed, csv output is complete",
				logging.Args(logging.String("path", parquetPath), logging.Error(err))...)
		}
	}

	if e.perFirm && e.cacheDir != "" {
		if err := WriteFirmCaches(e.cacheDir, filtered); err != nil {
			e.logger.Warn("per-firm caches failed",
				logging.Args(logging.String("path", e.cacheDir), logging.Error(err))...)
		}
	}
	return nil
}

// FirmCachePath returns the per-firm experience cache location for a
// canonical firm name.
func FirmCachePath(dir, firmName string) string {
	return filepath.Join(dir, "experiences_"+textutil.Slug(firmName)+".csv")
}
