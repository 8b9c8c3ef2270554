package extract

import (
	"strings"

	"gradsift/internal/signal"
)

// ConfidenceWeights are the additive adjustments of the confidence model.
// They are configuration, not constants, so they can be calibrated against
// a labeled sample.
type ConfidenceWeights struct {
	Base           float64
	ExactAlias     float64
	FuzzyAlias     float64
	ProgramKnown   float64
	CityKnown      float64
	IntakeKnown    float64
	ImpreciseDates float64
	MultiFirmPost  float64
}

// DefaultConfidenceWeights returns the hand-tuned production weights.
func DefaultConfidenceWeights() ConfidenceWeights {
	return ConfidenceWeights{
		Base:           0.5,
		ExactAlias:     0.2,
		FuzzyAlias:     0.1,
		ProgramKnown:   0.1,
		CityKnown:      0.05,
		IntakeKnown:    0.05,
		ImpreciseDates: -0.1,
		MultiFirmPost:  -0.1,
	}
}

// ConfidenceScorer rates how trustworthy one extracted Signal is.
type ConfidenceScorer struct {
	weights ConfidenceWeights
}

// NewConfidenceScorer builds a scorer with the given weights.
func NewConfidenceScorer(weights ConfidenceWeights) *ConfidenceScorer {
	return &ConfidenceScorer{weights: weights}
}

// ConfidenceInput carries the per-signal facts the scorer considers.
type ConfidenceInput struct {
	ExactAlias    bool
	ProgramType   string
	City          string
	IntakeYear    *int
	OpenDate      string
	CloseDate     string
	DistinctFirms int
}

// Score applies the additive model and clamps to [0,1]. The imprecise-dates
// heuristic fires when a close date ends on day 28 or an open date on day 1,
// the footprint of month-only dates forced into a calendar form.
func (s *ConfidenceScorer) Score(in ConfidenceInput) float64 {
	score := s.weights.Base
	if in.ExactAlias {
		score += s.weights.ExactAlias
	} else {
		score += s.weights.FuzzyAlias
	}
	if in.ProgramType != "" && in.ProgramType != signal.ProgramAmbiguous && in.ProgramType != signal.ProgramNone {
		score += s.weights.ProgramKnown
	}
	if in.City != "" && in.City != signal.CityUnknown {
		score += s.weights.CityKnown
	}
	if in.IntakeYear != nil {
		score += s.weights.IntakeKnown
	}
	if impreciseDates(in.OpenDate, in.CloseDate) {
		score += s.weights.ImpreciseDates
	}
	if in.DistinctFirms > 1 {
		score += s.weights.MultiFirmPost
	}
	return clamp01(score)
}

func impreciseDates(openDate, closeDate string) bool {
	return strings.HasSuffix(closeDate, "-28") || strings.HasSuffix(openDate, "-01")
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
