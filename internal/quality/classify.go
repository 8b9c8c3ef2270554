package quality

import (
	"regexp"
	"strings"
)

var questionStarters = []string{
	"anyone know", "does anyone", "has anyone", "is it true", "should i",
	"where can i", "what are", "when do", "how long", "how do", "can i",
	"would it", "is there", "does it", "do they", "am i", "are we",
}

var metaPhrases = []string{
	"bump", "following", "subscribing", "any updates", "thanks", "lol", "lmao",
	"haha", "dm me", "pm me", "off-topic", "+1", "same here",
}

var shortAcknowledgements = []string{"yes", "no", "ok", "thanks", "same"}

// longPostMetaExemption is the length beyond which an incidental "thanks"
// no longer marks a post as filler.
const longPostMetaExemption = 160

var (
	moneyPattern  = regexp.MustCompile(`\$\s*[\d,]+|\b\d+\s*k\b`)
	datePattern   = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)\b|\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b|\b20\d{2}\b`)
	numberPattern = regexp.MustCompile(`\b\d+\b`)
)

// IsQuestion classifies a post as a question: it ends with "?", starts with
// a question-starter phrase, or contains two or more question marks.
func IsQuestion(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return false
	}
	if strings.HasSuffix(t, "?") {
		return true
	}
	for _, starter := range questionStarters {
		if strings.HasPrefix(t, starter) {
			return true
		}
	}
	return strings.Count(t, "?") >= 2
}

// IsMetaLow classifies filler content (bump/thanks/lol and short
// acknowledgements). A long post containing an incidental "thanks" is not
// filler.
func IsMetaLow(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return true
	}
	for _, phrase := range metaPhrases {
		if strings.Contains(t, phrase) {
			if strings.Contains(t, "thanks") && len(t) > longPostMetaExemption {
				return false
			}
			return true
		}
	}
	if len(t) < 20 {
		for _, word := range shortAcknowledgements {
			if strings.Contains(t, word) {
				return true
			}
		}
	}
	return false
}

// HardSignals reports how many of the three hard information signals the
// text carries: a money pattern, a date pattern, a bare number.
func HardSignals(text string) int {
	t := strings.ToLower(text)
	count := 0
	if moneyPattern.MatchString(t) {
		count++
	}
	if datePattern.MatchString(t) {
		count++
	}
	if numberPattern.MatchString(t) {
		count++
	}
	return count
}
