package extract

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"gradsift/internal/signal"
)

// CityTable maps canonical city names to lowercase aliases. Immutable after
// construction; share freely across workers.
type CityTable struct {
	order    []string
	patterns map[string][]*regexp.Regexp
}

// NewCityTable compiles boundary-anchored patterns for each alias. Canonical
// names are title-cased for display.
func NewCityTable(aliases map[string][]string) *CityTable {
	caser := cases.Title(language.Und)
	table := &CityTable{patterns: make(map[string][]*regexp.Regexp, len(aliases))}
	for city, names := range aliases {
		canonical := caser.String(strings.ToLower(city))
		table.order = append(table.order, canonical)
		for _, name := range names {
			table.patterns[canonical] = append(table.patterns[canonical],
				regexp.MustCompile(`\b`+regexp.QuoteMeta(strings.ToLower(name))+`\b`))
		}
	}
	sort.Strings(table.order)
	return table
}

// DefaultCityTable covers the capital cities the tracked firms recruit in.
func DefaultCityTable() *CityTable {
	return NewCityTable(map[string][]string{
		"Sydney":    {"sydney", "syd"},
		"Melbourne": {"melbourne", "melb"},
		"Brisbane":  {"brisbane", "bris"},
		"Perth":     {"perth"},
		"Adelaide":  {"adelaide", "adel"},
		"Canberra":  {"canberra", "cbr"},
		"Hobart":    {"hobart"},
	})
}

// Detect returns the first city whose alias appears in the combined window
// and thread title, or CityUnknown.
func (t *CityTable) Detect(window, threadTitle string) string {
	haystack := strings.ToLower(window + " " + threadTitle)
	for _, city := range t.order {
		for _, pattern := range t.patterns[city] {
			if pattern.MatchString(haystack) {
				return city
			}
		}
	}
	return signal.CityUnknown
}
