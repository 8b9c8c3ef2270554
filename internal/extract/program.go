package extract

import (
	"regexp"

	"gradsift/internal/signal"
)

// programRule pairs a program type with the pattern that detects it.
// Rules are ordered most-specific first; the first hit wins.
type programRule struct {
	label   string
	pattern *regexp.Regexp
}

var defaultProgramRules = []programRule{
	{signal.ProgramSeasonalClerkship, regexp.MustCompile(`(?i)\b(seasonal clerkship|seasonal clerk)\b`)},
	{signal.ProgramSummerClerkship, regexp.MustCompile(`(?i)\b(summer clerkship|summer clerk)\b`)},
	{signal.ProgramWinterClerkship, regexp.MustCompile(`(?i)\b(winter clerkship|winter clerk)\b`)},
	{signal.ProgramClerkship, regexp.MustCompile(`(?i)\b(clerkship|clerkships|clerks?)\b`)},
	{signal.ProgramVacation, regexp.MustCompile(`(?i)\b(vacation(ers?| program)|vac program)\b`)},
	{signal.ProgramGraduate, regexp.MustCompile(`(?i)\b(graduate program|grad program|grad role|graduate intake|grad intake|graduates?)\b`)},
	{signal.ProgramInternship, regexp.MustCompile(`(?i)\b(intern(ship)?|intern program)\b`)},
}

// genericProgramVocab detects program-adjacent language that is too vague to
// classify; its presence distinguishes "ambiguous" from "no_program".
var genericProgramVocab = regexp.MustCompile(`(?i)\b(program|programme|application|applications|intake|recruit(ing|ment)?|position|role)\b`)

// ClassifyProgram resolves the program type for an evidence window.
func ClassifyProgram(window string) string {
	for _, rule := range defaultProgramRules {
		if rule.pattern.MatchString(window) {
			return rule.label
		}
	}
	if genericProgramVocab.MatchString(window) {
		return signal.ProgramAmbiguous
	}
	return signal.ProgramNone
}

// programKeyword finds a program-vocabulary token for evidence expansion and
// intake-year proximity checks.
var programKeyword = regexp.MustCompile(`(?i)\b(clerkship|clerk|graduate|grad|vacation|intern|intake|program)\b`)
