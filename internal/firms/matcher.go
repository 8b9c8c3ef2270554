package firms

import (
	"regexp"
	"sort"
	"strings"

	"gradsift/internal/textutil"
)

// Strategy identifies which matching strategy produced a Match.
type Strategy string

const (
	StrategyAlias     Strategy = "alias"
	StrategyCanonical Strategy = "canonical"
	StrategyFuzzy     Strategy = "fuzzy"
)

// Match is one resolved firm mention in a post.
type Match struct {
	Firm     string
	Alias    string
	Start    int
	End      int
	Strategy Strategy
}

// Exact reports whether the match came from a literal alias or canonical
// name rather than the fuzzy fallback.
func (m Match) Exact() bool {
	return m.Strategy != StrategyFuzzy
}

// DefaultFuzzyThreshold is the minimum similarity ratio (0-100) the fuzzy
// fallback accepts.
const DefaultFuzzyThreshold = 80.0

// matchStrategy finds all mentions of one firm in lowercased text. Strategies
// are tried in order; the first one returning any hits wins for that firm.
type matchStrategy interface {
	find(lowered string, firm Firm) []Match
}

// Matcher resolves firm mentions using an ordered strategy list.
// Safe for concurrent use; the underlying table is read-only.
type Matcher struct {
	table      *Table
	strategies []matchStrategy
}

// NewMatcher builds a matcher over the table with the standard strategy
// order: exact alias, canonical name, fuzzy window.
func NewMatcher(table *Table, fuzzyThreshold float64) *Matcher {
	if fuzzyThreshold <= 0 {
		fuzzyThreshold = DefaultFuzzyThreshold
	}
	return &Matcher{
		table: table,
		strategies: []matchStrategy{
			aliasStrategy{},
			canonicalStrategy{},
			fuzzyStrategy{threshold: fuzzyThreshold},
		},
	}
}

// FindAll returns every firm mention in text, ordered by canonical firm name
// and then offset. Repeated mentions of one firm each produce a Match; a
// post mentioning several distinct firms matches each of them. No mention
// yields an empty slice, which is a normal outcome.
func (m *Matcher) FindAll(text string) []Match {
	lowered := strings.ToLower(text)
	var matches []Match
	for _, firm := range m.table.Firms() {
		for _, s := range m.strategies {
			hits := s.find(lowered, firm)
			if len(hits) > 0 {
				matches = append(matches, hits...)
				break
			}
		}
	}
	return matches
}

// DistinctFirms counts the distinct canonical firms among matches.
func DistinctFirms(matches []Match) int {
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		seen[m.Firm] = struct{}{}
	}
	return len(seen)
}

type aliasStrategy struct{}

func (aliasStrategy) find(lowered string, firm Firm) []Match {
	var hits []Match
	for _, alias := range firm.Aliases {
		for _, span := range boundedOccurrences(lowered, alias) {
			hits = append(hits, Match{
				Firm:     firm.Canonical,
				Alias:    alias,
				Start:    span[0],
				End:      span[1],
				Strategy: StrategyAlias,
			})
		}
	}
	sortMatches(hits)
	return hits
}

type canonicalStrategy struct{}

func (canonicalStrategy) find(lowered string, firm Firm) []Match {
	needle := strings.ToLower(firm.Canonical)
	var hits []Match
	for _, span := range boundedOccurrences(lowered, needle) {
		hits = append(hits, Match{
			Firm:     firm.Canonical,
			Alias:    needle,
			Start:    span[0],
			End:      span[1],
			Strategy: StrategyCanonical,
		})
	}
	return hits
}

type fuzzyStrategy struct {
	threshold float64
}

func (s fuzzyStrategy) find(lowered string, firm Firm) []Match {
	target := strings.Join(strings.Fields(strings.ToLower(firm.Canonical)), " ")
	targetWords := len(strings.Fields(target))
	if targetWords == 0 {
		return nil
	}
	spans := wordSpans(lowered)
	if len(spans) < targetWords {
		return nil
	}
	for i := 0; i+targetWords <= len(spans); i++ {
		start := spans[i][0]
		end := spans[i+targetWords-1][1]
		window := strings.Join(strings.Fields(lowered[start:end]), " ")
		if textutil.SimilarityRatio(window, target) >= s.threshold {
			return []Match{{
				Firm:     firm.Canonical,
				Alias:    lowered[start:end],
				Start:    start,
				End:      end,
				Strategy: StrategyFuzzy,
			}}
		}
	}
	return nil
}

var wordSpanPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

func wordSpans(text string) [][]int {
	return wordSpanPattern.FindAllStringIndex(text, -1)
}

// boundedOccurrences finds every occurrence of needle in haystack that sits
// at alphanumeric token boundaries, so "cc" does not fire inside "accepted".
func boundedOccurrences(haystack, needle string) [][2]int {
	if needle == "" {
		return nil
	}
	var spans [][2]int
	for from := 0; ; {
		idx := strings.Index(haystack[from:], needle)
		if idx < 0 {
			break
		}
		start := from + idx
		end := start + len(needle)
		if boundaryBefore(haystack, start) && boundaryAfter(haystack, end) {
			spans = append(spans, [2]int{start, end})
		}
		from = start + 1
	}
	return spans
}

func boundaryBefore(text string, idx int) bool {
	if idx == 0 {
		return true
	}
	return !isAlnum(text[idx-1])
}

func boundaryAfter(text string, idx int) bool {
	if idx >= len(text) {
		return true
	}
	return !isAlnum(text[idx])
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func sortMatches(matches []Match) {
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Start < matches[j].Start })
}
