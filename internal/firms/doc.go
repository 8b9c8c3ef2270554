// Package firms defines the canonical law firm alias table and the matcher
// that resolves firm mentions in cleaned forum text.
//
// The alias table is immutable after construction and safe to share across
// workers. Matching tries an explicit ordered list of strategies per firm:
// exact alias at token boundaries, then the canonical name itself, then a
// fuzzy sliding-window comparison against the canonical name. The first
// strategy that succeeds for a firm wins; a single post may match several
// distinct firms.
package firms
