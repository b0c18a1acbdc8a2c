// Package langstats computes normalized language-usage statistics across a
// user's repositories.
//
// The pipeline has three stages:
//
//  1. [Aggregate] fetches per-repository language byte counts and folds them
//     into one [Table], applying the configurable size/count weighting and
//     normalizing to percentages.
//  2. [Trim] filters hidden languages and caps the list to a display count.
//  3. [DefaultLanguageCount] picks the display count for a layout when the
//     caller did not ask for one.
//
// Percentages always refer to the full, untrimmed table. Trimming never
// renormalizes: a card showing three of ten languages shows each language's
// share of everything the user wrote, not of the visible subset.
package langstats

import (
	"math"
	"sort"
)

// DefaultColor is the neutral gray used when the data source supplies no
// display color for a language.
const DefaultColor = "#858585"

// Lang is the accumulated statistic for one language.
type Lang struct {
	Name  string  // unique within a Table
	Color string  // display color, DefaultColor when the source has none
	Size  float64 // byte-size sum during accumulation, weighted value afterwards
	Count int     // number of repositories the language appeared in
	// Percent is the language's share of the full table, 0-100, rounded to
	// two decimals. Set by normalization, always finite and >= 0.
	Percent float64
}

// Table is an ordered collection of language statistics, one entry per
// distinct language name. After [Aggregate] returns it is sorted descending
// by weighted size, with first-encountered order preserved on ties, and must
// be treated as read-only.
type Table struct {
	langs []*Lang
	index map[string]*Lang
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{index: make(map[string]*Lang)}
}

// Len returns the number of distinct languages.
func (t *Table) Len() int { return len(t.langs) }

// Langs returns the entries in table order.
// The returned slice is shared; callers must not modify it.
func (t *Table) Langs() []*Lang { return t.langs }

// Lookup returns the entry for name, if present.
func (t *Table) Lookup(name string) (*Lang, bool) {
	l, ok := t.index[name]
	return l, ok
}

// get returns the entry for name, creating it at the end of the order if
// missing. Insertion order is what makes the tie-break stable later.
func (t *Table) get(name string) *Lang {
	if l, ok := t.index[name]; ok {
		return l
	}
	l := &Lang{Name: name, Color: DefaultColor}
	t.langs = append(t.langs, l)
	t.index[name] = l
	return l
}

// sanitize coerces any non-finite derived value to 0. Weighting with extreme
// exponents can overflow to +Inf and 0^negative produces Inf as well; the
// contract is that every Size and Percent is finite and >= 0.
func (t *Table) sanitize() {
	for _, l := range t.langs {
		if !isFinite(l.Size) || l.Size < 0 {
			l.Size = 0
		}
		if !isFinite(l.Percent) || l.Percent < 0 {
			l.Percent = 0
		}
	}
}

// sortBySize orders entries descending by (weighted) size. The sort is
// stable, so equal sizes keep their first-encountered relative order.
func (t *Table) sortBySize() {
	sort.SliceStable(t.langs, func(i, j int) bool {
		return t.langs[i].Size > t.langs[j].Size
	})
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
