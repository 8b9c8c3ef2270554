// Package aggregate rolls extracted signals up into one FirmCard per firm:
// mention counts, salary averages, program and city modes, the next
// application close date, and a couple of evidence samples.
package aggregate

import (
	"math"
	"sort"
	"time"

	"gradsift/internal/dates"
	"gradsift/internal/export"
	"gradsift/internal/signal"
)

type firmAccumulator struct {
	name        string
	count       int
	programs    map[string]int
	cities      map[string]int
	intakeYears map[int]int
	salaries    []float64
	nextClose   string
	evidence    []string
}

// BuildCards aggregates signals into cards, one per firm, sorted by
// mention count descending then name ascending. "Next close" considers
// only close dates on or after today.
func BuildCards(signals []signal.Signal) []signal.FirmCard {
	return buildCards(signals, time.Now())
}

func buildCards(signals []signal.Signal, now time.Time) []signal.FirmCard {
	today := now.Format(dates.ISO)
	firms := make(map[string]*firmAccumulator)

	for _, s := range signals {
		name := s.FirmName
		if name == "" {
			name = "Unknown"
		}
		acc, ok := firms[name]
		if !ok {
			acc = &firmAccumulator{
				name:        name,
				programs:    make(map[string]int),
				cities:      make(map[string]int),
				intakeYears: make(map[int]int),
			}
			firms[name] = acc
		}
		acc.count++
		if s.ProgramType != "" {
			acc.programs[s.ProgramType]++
		}
		if s.City != "" {
			acc.cities[s.City]++
		}
		if s.IntakeYear != nil {
			acc.intakeYears[*s.IntakeYear]++
		}
		if s.SalaryAnnualAUD != nil {
			acc.salaries = append(acc.salaries, *s.SalaryAnnualAUD)
		}
		// ISO dates compare correctly as strings.
		if cd := s.ApplicationCloseDate; cd != "" && cd >= today {
			if acc.nextClose == "" || cd < acc.nextClose {
				acc.nextClose = cd
			}
		}
		if s.EvidenceSpan != "" && len(acc.evidence) < 2 {
			acc.evidence = append(acc.evidence, s.EvidenceSpan)
		}
	}

	cards := make([]signal.FirmCard, 0, len(firms))
	for _, acc := range firms {
		cards = append(cards, signal.FirmCard{
			Name:            acc.name,
			ExperienceCount: acc.count,
			AvgSalary:       averageSalary(acc.salaries),
			PopularPrograms: popularPrograms(acc.programs),
			TopCity:         topStringKey(acc.cities),
			TopIntakeYear:   topIntKey(acc.intakeYears),
			CitiesCount:     len(acc.cities),
			NextClose:       acc.nextClose,
			EvidenceSamples: acc.evidence,
		})
	}
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].ExperienceCount != cards[j].ExperienceCount {
			return cards[i].ExperienceCount > cards[j].ExperienceCount
		}
		return cards[i].Name < cards[j].Name
	})
	return cards
}

// LoadCards reads a signal CSV and aggregates it.
func LoadCards(path string) ([]signal.FirmCard, error) {
	signals, err := export.ReadSignals(path)
	if err != nil {
		return nil, err
	}
	return BuildCards(signals), nil
}

func averageSalary(salaries []float64) *int {
	if len(salaries) == 0 {
		return nil
	}
	sum := 0.0
	for _, s := range salaries {
		sum += s
	}
	avg := int(math.Round(sum / float64(len(salaries))))
	return &avg
}

// popularPrograms returns the display labels of the two most frequent
// program types, ties broken alphabetically on the raw type.
func popularPrograms(counts map[string]int) []string {
	type entry struct {
		key   string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for key, count := range counts {
		entries = append(entries, entry{key, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].key < entries[j].key
	})
	if len(entries) > 2 {
		entries = entries[:2]
	}
	labels := make([]string, 0, len(entries))
	for _, e := range entries {
		label, ok := signal.ProgramLabels[e.key]
		if !ok {
			label = e.key
		}
		labels = append(labels, label)
	}
	return labels
}

func topStringKey(counts map[string]int) string {
	best := ""
	bestCount := 0
	for key, count := range counts {
		if count > bestCount || (count == bestCount && (best == "" || key < best)) {
			best, bestCount = key, count
		}
	}
	return best
}

func topIntKey(counts map[int]int) *int {
	best := 0
	bestCount := 0
	for key, count := range counts {
		if count > bestCount || (count == bestCount && bestCount > 0 && key < best) {
			best, bestCount = key, count
		}
	}
	if bestCount == 0 {
		return nil
	}
	return &best
}
