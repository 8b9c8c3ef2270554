package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	InputDir     string `toml:"input_dir"`
	OutputDir    string `toml:"output_dir"`
	CacheDir     string `toml:"cache_dir"`
	LogDir       string `toml:"log_dir"`
	DatabasePath string `toml:"database_path"`
}

// Ingest contains configuration for reading forum exports.
type Ingest struct {
	Glob string `toml:"glob"`
}

// Matching contains configuration for firm alias matching.
type Matching struct {
	FuzzyEnabled   bool    `toml:"fuzzy_enabled"`
	FuzzyThreshold float64 `toml:"fuzzy_threshold"`
}

// Extraction contains configuration for field extraction windows.
type Extraction struct {
	ContextRadius int `toml:"context_radius"`
}

// Confidence contains the additive confidence model weights.
type Confidence struct {
	Base           float64 `toml:"base"`
	ExactAlias     float64 `toml:"exact_alias"`
	FuzzyAlias     float64 `toml:"fuzzy_alias"`
	ProgramKnown   float64 `toml:"program_known"`
	CityKnown      float64 `toml:"city_known"`
	IntakeKnown    float64 `toml:"intake_known"`
	ImpreciseDates float64 `toml:"imprecise_dates"`
	MultiFirmPost  float64 `toml:"multi_firm_post"`
}

// Quality contains the additive quality model weights and the filter
// thresholds applied when selecting experiences.
type Quality struct {
	Base             float64 `toml:"base"`
	LengthMax        float64 `toml:"length_max"`
	LengthRampWords  int     `toml:"length_ramp_words"`
	DensityMax       float64 `toml:"density_max"`
	DensityFloor     float64 `toml:"density_floor"`
	KeywordStep      float64 `toml:"keyword_step"`
	KeywordMax       float64 `toml:"keyword_max"`
	HardSignalOne    float64 `toml:"hard_signal_one"`
	HardSignalMany   float64 `toml:"hard_signal_many"`
	PastTense        float64 `toml:"past_tense"`
	ShortPenalty     float64 `toml:"short_penalty"`
	QuestionPenalty  float64 `toml:"question_penalty"`
	MetaPenalty      float64 `toml:"meta_penalty"`
	ShortWords       int     `toml:"short_words"`
	ShortUnique      int     `toml:"short_unique"`
	QuestionExemptWC int     `toml:"question_exempt_words"`
	MinScore         float64 `toml:"min_score"`
	ExcludeQuestions bool    `toml:"exclude_questions"`
}

// Pipeline contains configuration for the batch runner.
type Pipeline struct {
	Workers       int     `toml:"workers"`
	MinConfidence float64 `toml:"min_confidence"`
}

// Output contains configuration for the export mirrors and caches.
type Output struct {
	Parquet      bool `toml:"parquet"`
	SQLite       bool `toml:"sqlite"`
	PerFirmCache bool `toml:"per_firm_cache"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for gradsift.
//
// Configuration sections by subsystem:
//   - Paths: input/output/cache/log directories and the sqlite path
//   - Ingest: forum export discovery
//   - Matching: firm alias matching thresholds
//   - Extraction: field extraction window sizes
//   - Confidence: signal confidence model weights
//   - Quality: post quality model weights and filter thresholds
//   - Pipeline: worker pool size and signal confidence floor
//   - Output: parquet/sqlite mirrors and per-firm caches
//   - Logging: log format and level
type Config struct {
	Paths      Paths      `toml:"paths"`
	Ingest     Ingest     `toml:"ingest"`
	Matching   Matching   `toml:"matching"`
	Extraction Extraction `toml:"extraction"`
	Confidence Confidence `toml:"confidence"`
	Quality    Quality    `toml:"quality"`
	Pipeline   Pipeline   `toml:"pipeline"`
	Output     Output     `toml:"output"`
	Logging    Logging    `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/gradsift/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("gradsift.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories a run writes into. The cache
// directory is created on a best-effort basis since per-firm caches are an
// optional mirror.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.OutputDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	if strings.TrimSpace(c.Paths.CacheDir) != "" {
		_ = os.MkdirAll(c.Paths.CacheDir, 0o755)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
