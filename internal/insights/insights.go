// Package insights classifies post content into discussion categories
// (timeline, selection process, pay, hours, and so on) with a transparent
// rule score: +1.0 per keyword hit, +1.5 per regex hit, plus a few
// cross-boosts. Categories at or above the threshold are kept, best first.
package insights

import (
	"regexp"
	"sort"
	"strings"
)

// Category slugs.
const (
	CategoryApplicationTimeline = "application_timeline"
	CategorySelectionProcess    = "selection_process"
	CategoryOfferOutcomes       = "offer_outcomes"
	CategoryProgramStructure    = "program_structure"
	CategoryPayBenefits         = "pay_benefits"
	CategoryHoursWorkload       = "hours_workload"
	CategoryCulture             = "culture_environment"
	CategoryTrainingSupport     = "training_support"
	CategorySecondments         = "secondments_mobility"
	CategoryEligibility         = "eligibility_requirements"
	CategoryInterviewTips       = "interview_tips"
)

// CategoryLabels maps slugs to display labels.
var CategoryLabels = map[string]string{
	CategoryApplicationTimeline: "Application timeline",
	CategorySelectionProcess:    "Selection process",
	CategoryOfferOutcomes:       "Offer outcomes",
	CategoryProgramStructure:    "Program structure",
	CategoryPayBenefits:         "Pay & benefits",
	CategoryHoursWorkload:       "Hours & workload",
	CategoryCulture:             "Culture & environment",
	CategoryTrainingSupport:     "Training & support",
	CategorySecondments:         "Secondments & mobility",
	CategoryEligibility:         "Eligibility & requirements",
	CategoryInterviewTips:       "Interview tips",
}

// Label returns the display label for a slug, falling back to a title-cased
// form of the slug itself.
func Label(slug string) string {
	if label, ok := CategoryLabels[slug]; ok {
		return label
	}
	words := strings.Split(strings.ReplaceAll(slug, "_", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// rule is one category's signal set. Keywords match as lowercase
// substrings, patterns as regexes over the lowered text.
type rule struct {
	slug     string
	keywords []string
	patterns []*regexp.Regexp
}

var defaultRules = []rule{
	{
		slug:     CategoryApplicationTimeline,
		keywords: []string{"open", "close", "deadline", "window", "applications", "intake", "by end", "cutoff"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b[a-z]{3,9}\s+\d{4}\b`),
			regexp.MustCompile(`\b\d{1,2}\s*[/-]\s*\d{1,2}\s*[/-]\s*\d{2,4}\b`),
		},
	},
	{
		slug: CategorySelectionProcess,
		keywords: []string{
			"online assessment", "oa", "vi", "video interview", "assessment centre",
			"assessment center", "ac", "case interview", "superday", "panel",
			"partner interview", "aptitude test",
		},
	},
	{
		slug:     CategoryOfferOutcomes,
		keywords: []string{"offer", "offers", "accepted", "rejected", "waitlist", "on hold", "conversion"},
	},
	{
		slug:     CategoryProgramStructure,
		keywords: []string{"rotation", "rotations", "seat", "seats", "length", "18-month", "18 month", "12-month", "program"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b\d+\s+rotations?\b`),
			regexp.MustCompile(`\b\d+\s*(months?|yrs?|years?)\b`),
		},
	},
	{
		slug:     CategoryPayBenefits,
		keywords: []string{"salary", "pay", "super", "bonus", "overtime", "toil", "benefits", "allowance"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\$[\d,]+`),
			regexp.MustCompile(`\b\d+\s*k\b`),
		},
	},
	{
		slug:     CategoryHoursWorkload,
		keywords: []string{"hours", "late", "weekend", "workload", "busy", "billable", "target", "utilisation", "utilization"},
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`\b\d{2}\+?\s*hours?\b`),
			regexp.MustCompile(`\b\d{3,4}\s*billable\b`),
		},
	},
	{
		slug:     CategoryCulture,
		keywords: []string{"culture", "supportive", "toxic", "nice", "collegial", "micromanage", "burnout", "team", "partners"},
	},
	{
		slug:     CategoryTrainingSupport,
		keywords: []string{"mentor", "buddy", "training", "plt", "admission", "coaching", "feedback", "onboarding"},
	},
	{
		slug:     CategorySecondments,
		keywords: []string{"secondment", "client secondment", "international", "rotation overseas", "relocation"},
	},
	{
		slug:     CategoryEligibility,
		keywords: []string{"penultimate", "final year", "citizenship", "visa", "gpa", "credit average", "requirements"},
	},
	{
		slug:     CategoryInterviewTips,
		keywords: []string{"tip", "advice", "be ready", "expect", "my experience", "question was", "they asked"},
	},
}

var (
	moneyBoost     = regexp.MustCompile(`\$[\d,]+|\b\d+\s*k\b`)
	keywordWeight  = 1.0
	patternWeight  = 1.5
	crossBoost     = 0.5
	defaultMinimum = 1.0
	defaultTopK    = 3
)

// ScoredCategory pairs a slug with its rule score.
type ScoredCategory struct {
	Slug  string
	Score float64
}

// Result is one classification. Primary is empty when the text matched no
// rule at all; Categories holds the slugs at or above the threshold, best
// first, capped at the classifier's top-k.
type Result struct {
	Primary    string
	Categories []string
	Ranked     []ScoredCategory
}

// Classifier scores text against the category rules.
// Safe for concurrent use.
type Classifier struct {
	rules     []rule
	threshold float64
	topK      int
}

// NewClassifier builds a classifier over the default rule set.
func NewClassifier() *Classifier {
	return &Classifier{rules: defaultRules, threshold: defaultMinimum, topK: defaultTopK}
}

// Classify scores the text and returns the ranked categories. Ties rank
// alphabetically so results are stable.
func (c *Classifier) Classify(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{}
	}
	lowered := strings.ToLower(text)

	scores := make(map[string]float64)
	for _, r := range c.rules {
		for _, kw := range r.keywords {
			if strings.Contains(lowered, kw) {
				scores[r.slug] += keywordWeight
			}
		}
		for _, pat := range r.patterns {
			if pat.MatchString(lowered) {
				scores[r.slug] += patternWeight
			}
		}
	}

	// Cross-boosts from signals that strongly imply a category.
	if moneyBoost.MatchString(lowered) {
		scores[CategoryPayBenefits] += crossBoost
	}
	if strings.Contains(lowered, "billable") || strings.Contains(lowered, "target") {
		scores[CategoryHoursWorkload] += crossBoost
	}
	if strings.Contains(lowered, "rotation") || strings.Contains(lowered, "seat") {
		scores[CategoryProgramStructure] += crossBoost
	}

	if len(scores) == 0 {
		return Result{}
	}

	ranked := make([]ScoredCategory, 0, len(scores))
	for slug, score := range scores {
		ranked = append(ranked, ScoredCategory{Slug: slug, Score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Slug < ranked[j].Slug
	})

	kept := make([]string, 0, c.topK)
	for _, sc := range ranked {
		if sc.Score < c.threshold || len(kept) == c.topK {
			break
		}
		kept = append(kept, sc.Slug)
	}

	// The best match stands in as primary even below threshold.
	primary := ranked[0].Slug
	if len(kept) > 0 {
		primary = kept[0]
	}
	return Result{Primary: primary, Categories: kept, Ranked: ranked}
}
