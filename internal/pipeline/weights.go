package pipeline

import (
	"gradsift/internal/config"
	"gradsift/internal/extract"
	"gradsift/internal/quality"
)

// ConfidenceWeights maps the config section onto the confidence model.
func ConfidenceWeights(c config.Confidence) extract.ConfidenceWeights {
	return extract.ConfidenceWeights{
		Base:           c.Base,
		ExactAlias:     c.ExactAlias,
		FuzzyAlias:     c.FuzzyAlias,
		ProgramKnown:   c.ProgramKnown,
		CityKnown:      c.CityKnown,
		IntakeKnown:    c.IntakeKnown,
		ImpreciseDates: c.ImpreciseDates,
		MultiFirmPost:  c.MultiFirmPost,
	}
}

// QualityWeights maps the config section onto the quality model.
func QualityWeights(q config.Quality) quality.Weights {
	return quality.Weights{
		Base:             q.Base,
		LengthMax:        q.LengthMax,
		LengthRampWords:  q.LengthRampWords,
		DensityMax:       q.DensityMax,
		DensityFloor:     q.DensityFloor,
		KeywordStep:      q.KeywordStep,
		KeywordMax:       q.KeywordMax,
		HardSignalOne:    q.HardSignalOne,
		HardSignalMany:   q.HardSignalMany,
		PastTense:        q.PastTense,
		ShortPenalty:     q.ShortPenalty,
		QuestionPenalty:  q.QuestionPenalty,
		MetaPenalty:      q.MetaPenalty,
		ShortWords:       q.ShortWords,
		ShortUnique:      q.ShortUnique,
		QuestionExemptWC: q.QuestionExemptWC,
	}
}
