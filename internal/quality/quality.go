// Package quality rates how substantive a forum post is, independent of
// firm extraction. The model is transparently additive: a base score plus
// bonuses for length, lexical density, domain vocabulary, hard signals and
// experiential language, minus penalties for questions, filler, and very
// short content. The breakdown is retained so any score can be audited.
package quality

import (
	"strings"

	"gradsift/internal/signal"
	"gradsift/internal/textutil"
)

var domainKeywords = []string{
	"offer", "offers", "accepted", "rejected", "waitlist", "on hold",
	"clerkship", "graduate program", "grad program", "vacation program",
	"rotation", "rotations", "seat", "assessment centre", "assessment center",
	"superday", "panel", "partner interview", "paralegal", "salary", "pay",
	"remuneration", "benefits", "billable", "hours", "culture", "mentor",
	"secondment", "training", "practice group", "plt", "admission",
}

var pastTenseVerbs = []string{
	"received", "accepted", "completed", "did", "worked", "went",
	"rotated", "attended", "participated", "finished", "started",
	"applied", "interviewed", "progressed", "declined",
}

// Weights are the additive quality model parameters. They are configuration
// so they can be calibrated against a labeled sample.
type Weights struct {
	Base             float64
	LengthMax        float64
	LengthRampWords  int
	DensityMax       float64
	DensityFloor     float64
	KeywordStep      float64
	KeywordMax       float64
	HardSignalOne    float64
	HardSignalMany   float64
	PastTense        float64
	ShortPenalty     float64
	QuestionPenalty  float64
	MetaPenalty      float64
	ShortWords       int
	ShortUnique      int
	QuestionExemptWC int
}

// DefaultWeights returns the hand-tuned production weights.
func DefaultWeights() Weights {
	return Weights{
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
	}
}

// Breakdown itemizes one score for audit output.
type Breakdown struct {
	Base        float64
	Length      float64
	Density     float64
	Keywords    float64
	HardSignals float64
	PastTense   float64
	Penalty     float64
	Final       float64
}

// Scorer computes quality scores over cleaned post text.
// Safe for concurrent use.
type Scorer struct {
	weights Weights
}

// NewScorer builds a scorer with the given weights.
func NewScorer(weights Weights) *Scorer {
	return &Scorer{weights: weights}
}

// Score rates cleaned text and returns the full assessment. The score is
// clamped to [0,1].
func (s *Scorer) Score(text string) signal.QualityScore {
	score, _ := s.ScoreWithBreakdown(text)
	return score
}

// ScoreWithBreakdown rates cleaned text and also returns the itemized
// breakdown behind the number.
func (s *Scorer) ScoreWithBreakdown(text string) (signal.QualityScore, Breakdown) {
	w := s.weights
	words := textutil.Words(text)
	wordCount := len(words)
	uniqueCount := textutil.UniqueWords(text)
	sentenceCount := len(textutil.Sentences(text))

	brk := Breakdown{Base: w.Base}

	// Gentle ramp: +0.001 per word past the threshold, saturating at max.
	if wordCount >= w.LengthRampWords {
		bonus := float64(wordCount-w.LengthRampWords) * 0.001
		if bonus > w.LengthMax {
			bonus = w.LengthMax
		}
		brk.Length = bonus
	}

	if density := textutil.TypeTokenRatio(text); density > w.DensityFloor {
		bonus := (density - w.DensityFloor) * 0.5
		if bonus > w.DensityMax {
			bonus = w.DensityMax
		}
		brk.Density = bonus
	}

	lowered := strings.ToLower(text)
	matched := 0
	for _, kw := range domainKeywords {
		if strings.Contains(lowered, kw) {
			matched++
		}
	}
	brk.Keywords = float64(matched) * w.KeywordStep
	if brk.Keywords > w.KeywordMax {
		brk.Keywords = w.KeywordMax
	}

	switch signals := HardSignals(text); {
	case signals >= 2:
		brk.HardSignals = w.HardSignalMany
	case signals == 1:
		brk.HardSignals = w.HardSignalOne
	}

	for _, verb := range pastTenseVerbs {
		if strings.Contains(lowered, verb) {
			brk.PastTense = w.PastTense
			break
		}
	}

	isQuestion := IsQuestion(text)
	isMeta := IsMetaLow(text)
	isShort := wordCount < w.ShortWords || uniqueCount < w.ShortUnique

	penalty := 0.0
	if isShort {
		penalty += w.ShortPenalty
	}
	if isQuestion && wordCount < w.QuestionExemptWC {
		penalty += w.QuestionPenalty
	}
	if isMeta {
		penalty += w.MetaPenalty
	}
	brk.Penalty = -penalty

	total := brk.Base + brk.Length + brk.Density + brk.Keywords + brk.HardSignals + brk.PastTense - penalty
	if total < 0 {
		total = 0
	}
	if total > 1 {
		total = 1
	}
	brk.Final = total

	reasons := make([]string, 0, 4)
	if total >= 0.70 {
		reasons = append(reasons, "high_quality")
	}
	if isQuestion {
		reasons = append(reasons, "question")
	}
	if isMeta {
		reasons = append(reasons, "meta")
	}
	if isShort {
		reasons = append(reasons, "short")
	}

	return signal.QualityScore{
		Score:       total,
		IsQuestion:  isQuestion,
		IsMetaLow:   isMeta,
		IsTooShort:  isShort,
		ReasonCodes: reasons,
		Words:       wordCount,
		UniqueWords: uniqueCount,
		Sentences:   sentenceCount,
	}, brk
}
