package firms

import (
	"fmt"
	"sort"
	"strings"
)

// Firm pairs a canonical firm name with its known alias strings.
// Aliases are stored lowercase; matching is case-insensitive.
type Firm struct {
	Canonical string
	Aliases   []string
}

// Table is an immutable alias table mapping canonical firm names to aliases.
// Construct with NewTable or Default; never mutate after construction.
type Table struct {
	firms []Firm
	index map[string]int
}

// NewTable validates and builds a table from the provided firms. Canonical
// names must be unique; aliases are lowercased and deduplicated.
func NewTable(firms []Firm) (*Table, error) {
	index := make(map[string]int, len(firms))
	cleaned := make([]Firm, 0, len(firms))
	for _, f := range firms {
		canonical := strings.TrimSpace(f.Canonical)
		if canonical == "" {
			return nil, fmt.Errorf("firm table: empty canonical name")
		}
		if _, dup := index[canonical]; dup {
			return nil, fmt.Errorf("firm table: duplicate canonical name %q", canonical)
		}
		seen := make(map[string]struct{}, len(f.Aliases))
		aliases := make([]string, 0, len(f.Aliases))
		for _, a := range f.Aliases {
			a = strings.ToLower(strings.TrimSpace(a))
			if a == "" {
				continue
			}
			if _, ok := seen[a]; ok {
				continue
			}
			seen[a] = struct{}{}
			aliases = append(aliases, a)
		}
		index[canonical] = len(cleaned)
		cleaned = append(cleaned, Firm{Canonical: canonical, Aliases: aliases})
	}
	sort.Slice(cleaned, func(i, j int) bool { return cleaned[i].Canonical < cleaned[j].Canonical })
	for i, f := range cleaned {
		index[f.Canonical] = i
	}
	return &Table{firms: cleaned, index: index}, nil
}

// Default returns the standard table of Australian legal employers tracked
// by the pipeline.
func Default() *Table {
	table, err := NewTable(defaultFirms)
	if err != nil {
		panic(fmt.Sprintf("default firm table invalid: %v", err))
	}
	return table
}

// Firms returns the firms in canonical-name order.
func (t *Table) Firms() []Firm {
	return t.firms
}

// Contains reports whether canonical is a key of the table.
func (t *Table) Contains(canonical string) bool {
	_, ok := t.index[canonical]
	return ok
}

// Len returns the number of firms in the table.
func (t *Table) Len() int {
	return len(t.firms)
}

var defaultFirms = []Firm{
	{Canonical: "Addisons", Aliases: []string{"addisons"}},
	{Canonical: "Allens", Aliases: []string{"allens"}},
	{Canonical: "Arnold Bloch Leibler", Aliases: []string{"arnold bloch leibler", "abl"}},
	{Canonical: "Ashurst", Aliases: []string{"ashurst"}},
	{Canonical: "Baker McKenzie", Aliases: []string{"baker mckenzie", "bakers"}},
	{Canonical: "Clayton Utz", Aliases: []string{"clayton utz", "clutz", "claytons"}},
	{Canonical: "Clifford Chance", Aliases: []string{"clifford chance", "cc"}},
	{Canonical: "Colin Biggers & Paisley", Aliases: []string{"colin biggers", "cbp", "cb&p"}},
	{Canonical: "Corrs Chambers Westgarth", Aliases: []string{"corrs", "corrs chambers"}},
	{Canonical: "DLA Piper", Aliases: []string{"dla piper", "dla"}},
	{Canonical: "Gilbert + Tobin", Aliases: []string{"gilbert + tobin", "g+t", "gtobin", "g+tobin", "gilbert and tobin"}},
	{Canonical: "HWL Ebsworth", Aliases: []string{"hwl", "hwl ebsworth"}},
	{Canonical: "Hall & Wilcox", Aliases: []string{"hall & wilcox", "hall and wilcox", "h&w"}},
	{Canonical: "Herbert Smith Freehills", Aliases: []string{"herbert smith freehills", "hsf", "herbies"}},
	{Canonical: "Johnson Winter Slattery", Aliases: []string{"johnson winter slattery", "jws"}},
	{Canonical: "K&L Gates", Aliases: []string{"k&l gates", "klgates", "k l gates"}},
	{Canonical: "King & Wood Mallesons", Aliases: []string{"king & wood mallesons", "kwm", "mallesons"}},
	{Canonical: "Lander & Rogers", Aliases: []string{"lander & rogers", "landers", "lander and rogers"}},
	{Canonical: "Maddocks", Aliases: []string{"maddocks"}},
	{Canonical: "MinterEllison", Aliases: []string{"minterellison", "minter ellison", "minters"}},
	{Canonical: "Norton Rose Fulbright", Aliases: []string{"norton rose fulbright", "nrf"}},
	{Canonical: "Sparke Helmore", Aliases: []string{"sparke helmore", "sparke"}},
	{Canonical: "White & Case", Aliases: []string{"white & case", "white and case"}},
}
