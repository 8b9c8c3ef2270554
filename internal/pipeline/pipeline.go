// Package pipeline runs the extraction batch: clean, match, extract, and
// score every post, fanning work across a bounded goroutine pool while
// keeping output in input order so identical input produces identical
// output.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"gradsift/internal/cleaner"
	"gradsift/internal/config"
	"gradsift/internal/extract"
	"gradsift/internal/firms"
	"gradsift/internal/forum"
	"gradsift/internal/logging"
	"gradsift/internal/quality"
	"gradsift/internal/signal"
)

// Outcome labels what happened to one post. There is no retry: a dropped
// post stays dropped for the run.
type Outcome string

const (
	OutcomeAccepted Outcome = "accepted"
	OutcomeDropped  Outcome = "dropped"
)

// Drop reasons.
const (
	DropEmptyAfterClean = "empty_after_clean"
	DropNoFirm          = "no_firm"
)

// Stats summarizes one run.
type Stats struct {
	Posts           int
	Accepted        int
	Dropped         int
	EmptyAfterClean int
	NoFirm          int
	Signals         int
	LowConfidence   int
	FilteredPosts   int
	DistinctFirms   int
	Duration        time.Duration
}

// Result is everything one run produced.
type Result struct {
	RunID    string
	Started  time.Time
	Signals  []signal.Signal
	Filtered []signal.FilteredPost
	Stats    Stats
}

// Runner wires the stages together. All tables and scorers are read-only
// after construction, so posts are processed concurrently without locking.
type Runner struct {
	cleaner       *cleaner.Cleaner
	matcher       *firms.Matcher
	extractor     *extract.Extractor
	confidence    *extract.ConfidenceScorer
	quality       *quality.Scorer
	workers       int
	minConfidence float64
	logger        *slog.Logger
}

// New builds a runner from configuration. A nil logger disables logging.
func New(cfg *config.Config, table *firms.Table, logger *slog.Logger) *Runner {
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}
	if table == nil {
		table = firms.Default()
	}
	threshold := cfg.Matching.FuzzyThreshold
	if !cfg.Matching.FuzzyEnabled {
		// A ratio above 100 can never be reached, disabling the strategy.
		threshold = 101
	}
	return &Runner{
		cleaner:       cleaner.New(),
		matcher:       firms.NewMatcher(table, threshold),
		extractor:     extract.NewExtractor(extract.DefaultCityTable(), cfg.Extraction.ContextRadius),
		confidence:    extract.NewConfidenceScorer(ConfidenceWeights(cfg.Confidence)),
		quality:       quality.NewScorer(QualityWeights(cfg.Quality)),
		workers:       cfg.Pipeline.Workers,
		minConfidence: cfg.Pipeline.MinConfidence,
		logger:        logging.NewComponentLogger(logger, "pipeline"),
	}
}

type postResult struct {
	outcome       Outcome
	dropReason    string
	signals       []signal.Signal
	filtered      *signal.FilteredPost
	lowConfidence int
}

// Run processes every post. Output slices follow input order regardless of
// worker interleaving. The only error cause is context cancellation.
func (r *Runner) Run(ctx context.Context, posts []forum.RawPost) (*Result, error) {
	started := time.Now().UTC()
	runID := uuid.NewString()
	logger := r.logger.With(logging.String(logging.FieldRunID, runID))
	logger.Info("run started", logging.Args(logging.Int("posts", len(posts)), logging.Int("workers", r.workers))...)

	results := make([]postResult, len(posts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, post := range posts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.process(post, started)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &Result{RunID: runID, Started: started}
	firmsSeen := make(map[string]struct{})
	for _, pr := range results {
		out.Stats.Posts++
		switch pr.outcome {
		case OutcomeAccepted:
			out.Stats.Accepted++
		default:
			out.Stats.Dropped++
			switch pr.dropReason {
			case DropEmptyAfterClean:
				out.Stats.EmptyAfterClean++
			case DropNoFirm:
				out.Stats.NoFirm++
			}
		}
		out.Stats.LowConfidence += pr.lowConfidence
		out.Signals = append(out.Signals, pr.signals...)
		if pr.filtered != nil {
			out.Filtered = append(out.Filtered, *pr.filtered)
		}
		for _, sig := range pr.signals {
			firmsSeen[sig.FirmName] = struct{}{}
		}
	}
	out.Stats.Signals = len(out.Signals)
	out.Stats.FilteredPosts = len(out.Filtered)
	out.Stats.DistinctFirms = len(firmsSeen)
	out.Stats.Duration = time.Since(started)

	logger.Info("run finished", logging.Args(
		logging.Int("accepted", out.Stats.Accepted),
		logging.Int("dropped", out.Stats.Dropped),
		logging.Int("signals", out.Stats.Signals),
		logging.Int("firms", out.Stats.DistinctFirms),
		logging.Duration("elapsed", out.Stats.Duration),
	)...)
	return out, nil
}

// process handles one post. CreatedAt is the run start time so repeated
// runs over the same input produce identical rows apart from the run stamp.
func (r *Runner) process(post forum.RawPost, started time.Time) postResult {
	cleaned := r.cleaner.Clean(post.Content)
	if cleaned == "" {
		return postResult{outcome: OutcomeDropped, dropReason: DropEmptyAfterClean}
	}

	matches := r.matcher.FindAll(cleaned)
	if len(matches) == 0 {
		return postResult{outcome: OutcomeDropped, dropReason: DropNoFirm}
	}

	score := r.quality.Score(cleaned)
	filtered := &signal.FilteredPost{
		FirmName:   matches[0].Firm,
		Content:    cleaned,
		RawContent: post.Content,
		Timestamp:  post.Timestamp,
		ThreadURL:  post.ThreadURL,
		Quality:    score,
	}

	distinct := firms.DistinctFirms(matches)
	result := postResult{outcome: OutcomeAccepted, filtered: filtered}
	for _, m := range matches {
		window := r.extractor.Window(cleaned, m.Start, m.End)
		fields := r.extractor.Extract(window, post.ThreadTitle, post.Timestamp)
		confidence := r.confidence.Score(extract.ConfidenceInput{
			ExactAlias:    m.Exact(),
			ProgramType:   fields.ProgramType,
			City:          fields.City,
			IntakeYear:    fields.IntakeYear,
			OpenDate:      fields.OpenDate,
			CloseDate:     fields.CloseDate,
			DistinctFirms: distinct,
		})
		if confidence < r.minConfidence {
			result.lowConfidence++
			continue
		}
		result.signals = append(result.signals, signal.Signal{
			FirmName:             m.Firm,
			FirmAlias:            m.Alias,
			ProgramType:          fields.ProgramType,
			City:                 fields.City,
			IntakeYear:           fields.IntakeYear,
			ApplicationOpenDate:  fields.OpenDate,
			ApplicationCloseDate: fields.CloseDate,
			ProgramLengthMonths:  fields.ProgramLengthMonths,
			RotationsCount:       fields.RotationsCount,
			SalaryAnnualAUD:      fields.SalaryAnnualAUD,
			EvidenceSpan:         extract.EvidenceSpan(cleaned, m.Start, m.End),
			Provenance: signal.Provenance{
				ThreadTitle:   post.ThreadTitle,
				ThreadURL:     post.ThreadURL,
				PostNumber:    post.PostNumber,
				PostTimestamp: post.Timestamp,
				SourceFile:    post.SourceFile,
			},
			Confidence: confidence,
			CreatedAt:  started,
		})
	}
	return result
}
