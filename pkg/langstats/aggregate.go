package langstats

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/matzehuels/langcard/pkg/errors"
	"github.com/matzehuels/langcard/pkg/github"
	"github.com/matzehuels/langcard/pkg/observability"
)

// Fetcher retrieves the per-repository language byte counts for a user.
// *github.Client implements it; tests substitute a stub.
type Fetcher interface {
	UserLanguages(ctx context.Context, login string) ([]github.Repository, error)
}

// alwaysExcluded are repository names skipped regardless of caller input.
// The profile/meta repository carries README boilerplate, not code the user
// wrote, and would skew small accounts.
var alwaysExcluded = []string{".github"}

// Options configures an aggregation run.
type Options struct {
	// Username is the login whose repositories are aggregated. Required.
	Username string

	// ExcludeRepos lists repository names to skip, merged with the fixed
	// exclusion list. Comparison is case-insensitive on trimmed names.
	ExcludeRepos []string

	// SizeWeight and CountWeight are the exponents applied to a language's
	// byte size and repository count. They arrive as strings because they
	// come straight from query parameters; values that fail to parse or are
	// negative fall back to the defaults (size 1, count 0), which rank purely
	// by byte size.
	SizeWeight  string
	CountWeight string
}

// Aggregate fetches the user's repositories and folds their language edges
// into a normalized, ordered [Table].
//
// A user whose repositories carry no language data yields an empty table;
// that is a success, not an error. Failures are coded: MISSING_PARAM for an
// empty username, UPSTREAM_ERROR (or RATE_LIMITED) from the fetch. Transport
// faults are retried inside the fetcher; a structured error response is not.
func Aggregate(ctx context.Context, f Fetcher, opts Options) (*Table, error) {
	if strings.TrimSpace(opts.Username) == "" {
		return nil, apperrors.New(apperrors.ErrCodeMissingParam, "username is required")
	}

	sizeWeight, countWeight := parseWeights(opts.SizeWeight, opts.CountWeight)

	observability.Render().OnAggregateStart(ctx, opts.Username)
	start := time.Now()

	repos, err := f.UserLanguages(ctx, opts.Username)
	if err != nil {
		observability.Render().OnAggregateComplete(ctx, opts.Username, 0, time.Since(start), err)
		return nil, err
	}

	table := accumulate(repos, excludeSet(opts.ExcludeRepos))
	weigh(table, sizeWeight, countWeight)
	normalize(table)
	table.sanitize()
	table.sortBySize()

	observability.Render().OnAggregateComplete(ctx, opts.Username, table.Len(), time.Since(start), nil)
	return table, nil
}

// parseWeights sanitizes the exponent parameters. Unparseable, negative, or
// non-finite values fall back to the defaults rather than erroring: a bad
// query parameter should degrade to the plain by-size ranking.
func parseWeights(sizeRaw, countRaw string) (sizeWeight, countWeight float64) {
	parse := func(raw string, fallback float64) float64 {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fallback
		}
		return v
	}
	return parse(sizeRaw, 1), parse(countRaw, 0)
}

// excludeSet builds the merged, case-folded exclusion set.
func excludeSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names)+len(alwaysExcluded))
	for _, n := range alwaysExcluded {
		set[n] = struct{}{}
	}
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

// accumulate folds every language edge of every non-excluded repository into
// the table: sizes sum, counts increment once per repository, and the first
// color seen for a language wins.
func accumulate(repos []github.Repository, excluded map[string]struct{}) *Table {
	table := NewTable()
	for _, repo := range repos {
		if _, skip := excluded[strings.ToLower(repo.Name)]; skip {
			continue
		}
		for _, edge := range repo.Languages {
			l := table.get(edge.Name)
			if edge.Size > 0 {
				l.Size += edge.Size
			}
			if l.Count == 0 && edge.Color != "" {
				l.Color = edge.Color
			}
			l.Count++
		}
	}
	return table
}

// weigh replaces each language's raw size with the weighted ranking value
// size^sizeWeight * count^countWeight.
func weigh(t *Table, sizeWeight, countWeight float64) {
	for _, l := range t.Langs() {
		l.Size = weightFactor(l.Size, sizeWeight) * weightFactor(float64(l.Count), countWeight)
	}
}

// weightFactor raises base to weight with two substitutions: a zero weight
// neutralizes the factor to exactly 1 (sidestepping the 0^0 ambiguity), and a
// zero base is replaced by 1 before exponentiating so 0^w cannot zero out or
// blow up the product.
func weightFactor(base, weight float64) float64 {
	if weight == 0 {
		return 1
	}
	if base == 0 {
		base = 1
	}
	return math.Pow(base, weight)
}

// normalize derives each language's percent share of the weighted total,
// rounded to two decimals. A non-positive total is replaced by 1 to avoid
// dividing by zero; the all-zero table then normalizes to all-zero percents.
func normalize(t *Table) {
	var total float64
	for _, l := range t.Langs() {
		total += l.Size
	}
	if total <= 0 || !isFinite(total) {
		total = 1
	}
	for _, l := range t.Langs() {
		l.Percent = round2(l.Size / total * 100)
	}
}
