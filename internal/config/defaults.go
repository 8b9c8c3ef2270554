package config

const (
	defaultInputDir       = "~/.local/share/gradsift/input"
	defaultOutputDir      = "~/.local/share/gradsift/output"
	defaultCacheDir       = "~/.cache/gradsift"
	defaultLogDir         = "~/.local/share/gradsift/logs"
	defaultDatabasePath   = "~/.local/share/gradsift/gradsift.db"
	defaultIngestGlob     = "*.csv"
	defaultFuzzyThreshold = 80.0
	defaultContextRadius  = 100
	defaultWorkers        = 4
	defaultMinConfidence  = 0.0
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults. The scoring
// weights are the hand-tuned production values.
func Default() Config {
	return Config{
		Paths: Paths{
			InputDir:     defaultInputDir,
			OutputDir:    defaultOutputDir,
			CacheDir:     defaultCacheDir,
			LogDir:       defaultLogDir,
			DatabasePath: defaultDatabasePath,
		},
		Ingest: Ingest{
			Glob: defaultIngestGlob,
		},
		Matching: Matching{
			FuzzyEnabled:   true,
			FuzzyThreshold: defaultFuzzyThreshold,
		},
		Extraction: Extraction{
			ContextRadius: defaultContextRadius,
		},
		Confidence: Confidence{
			Base:           0.5,
			ExactAlias:     0.2,
			FuzzyAlias:     0.1,
			ProgramKnown:   0.1,
			CityKnown:      0.05,
			IntakeKnown:    0.05,
			ImpreciseDates: -0.1,
			MultiFirmPost:  -0.1,
		},
		Quality: Quality{
			Base:             0.40,
			LengthMax:        0.20,
			LengthRampWords:  60,
			DensityMax:       0.10,
			DensityFloor:     0.45,
			KeywordStep:      0.05,
			KeywordMax:       0.20,
			HardSignalOne:    0.05,
			HardSignalMany:   0.10,
			PastTense:        0.10,
			ShortPenalty:     0.20,
			QuestionPenalty:  0.25,
			MetaPenalty:      0.15,
			ShortWords:       80,
			ShortUnique:      20,
			QuestionExemptWC: 120,
			MinScore:         0.6,
			ExcludeQuestions: true,
		},
		Pipeline: Pipeline{
			Workers:       defaultWorkers,
			MinConfidence: defaultMinConfidence,
		},
		Output: Output{
			Parquet:      true,
			SQLite:       false,
			PerFirmCache: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
