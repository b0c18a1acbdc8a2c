package langstats

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/matzehuels/langcard/pkg/errors"
	"github.com/matzehuels/langcard/pkg/github"
)

// stubFetcher returns canned repositories without any network access.
type stubFetcher struct {
	repos []github.Repository
	err   error
}

func (s *stubFetcher) UserLanguages(ctx context.Context, login string) ([]github.Repository, error) {
	return s.repos, s.err
}

func repo(name string, langs ...github.LanguageEdge) github.Repository {
	return github.Repository{Name: name, Languages: langs}
}

func edge(name, color string, size float64) github.LanguageEdge {
	return github.LanguageEdge{Name: name, Color: color, Size: size}
}

func aggregate(t *testing.T, f Fetcher, opts Options) *Table {
	t.Helper()
	table, err := Aggregate(context.Background(), f, opts)
	require.NoError(t, err)
	return table
}

func TestAggregateRequiresUsername(t *testing.T) {
	_, err := Aggregate(context.Background(), &stubFetcher{}, Options{Username: "  "})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeMissingParam))
}

func TestAggregatePropagatesFetchError(t *testing.T) {
	upstream := apperrors.New(apperrors.ErrCodeUpstream, "boom")
	_, err := Aggregate(context.Background(), &stubFetcher{err: upstream}, Options{Username: "octocat"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, upstream))
}

func TestAggregateTwoRepos(t *testing.T) {
	// Two repositories contributing A:100 and B:300 with the default
	// weights rank purely by size: B 75.00%, A 25.00%.
	f := &stubFetcher{repos: []github.Repository{
		repo("one", edge("A", "#111111", 100)),
		repo("two", edge("B", "#222222", 300)),
	}}

	table := aggregate(t, f, Options{Username: "octocat", SizeWeight: "1", CountWeight: "0"})
	require.Equal(t, 2, table.Len())

	langs := table.Langs()
	assert.Equal(t, "B", langs[0].Name)
	assert.Equal(t, "A", langs[1].Name)
	assert.Equal(t, 75.00, langs[0].Percent)
	assert.Equal(t, 25.00, langs[1].Percent)

	a, _ := table.Lookup("A")
	assert.Equal(t, 1, a.Count)
}

func TestAggregateAccumulatesAcrossRepos(t *testing.T) {
	f := &stubFetcher{repos: []github.Repository{
		repo("one", edge("Go", "#00ADD8", 600), edge("Shell", "#89e051", 100)),
		repo("two", edge("Go", "#00ADD8", 400)),
	}}

	table := aggregate(t, f, Options{Username: "octocat"})

	goLang, ok := table.Lookup("Go")
	require.True(t, ok)
	assert.Equal(t, float64(1000), goLang.Size)
	assert.Equal(t, 2, goLang.Count)

	shell, _ := table.Lookup("Shell")
	assert.Equal(t, 1, shell.Count)
}

func TestAggregateSizeWeightZero(t *testing.T) {
	// sizeWeight=0 neutralizes the size factor: weighted = count^countWeight.
	f := &stubFetcher{repos: []github.Repository{
		repo("one", edge("A", "", 5000)),
		repo("two", edge("A", "", 5000)),
		repo("three", edge("B", "", 10)),
	}}

	table := aggregate(t, f, Options{Username: "octocat", SizeWeight: "0", CountWeight: "2"})

	a, _ := table.Lookup("A")
	b, _ := table.Lookup("B")
	assert.Equal(t, float64(4), a.Size, "count 2 squared")
	assert.Equal(t, float64(1), b.Size, "count 1 squared")
}

func TestAggregateCountWeightZero(t *testing.T) {
	// countWeight=0 neutralizes the count factor: weighted = size^sizeWeight.
	f := &stubFetcher{repos: []github.Repository{
		repo("one", edge("A", "", 9)),
		repo("two", edge("A", "", 7)),
	}}

	table := aggregate(t, f, Options{Username: "octocat", SizeWeight: "2", CountWeight: "0"})

	a, _ := table.Lookup("A")
	assert.Equal(t, float64(256), a.Size, "16^2, count ignored")
}

func TestAggregateZeroBaseSubstitution(t *testing.T) {
	// A zero base with a nonzero weight is exponentiated as 1, not 0.
	f := &stubFetcher{repos: []github.Repository{
		repo("one", edge("Empty", "", 0)),
		repo("two", edge("Full", "", 100)),
	}}

	table := aggregate(t, f, Options{Username: "octocat", SizeWeight: "2", CountWeight: "0"})

	empty, _ := table.Lookup("Empty")
	assert.Equal(t, float64(1), empty.Size)
}

func TestAggregateInvalidWeightsFallBack(t *testing.T) {
	f := &stubFetcher{repos: []github.Repository{
		repo("one", edge("A", "", 100)),
		repo("two", edge("B", "", 300)),
	}}

	for _, weights := range [][2]string{
		{"", ""},
		{"banana", "banana"},
		{"-1", "-5"},
		{"NaN", "+Inf"},
	} {
		table := aggregate(t, f, Options{
			Username:    "octocat",
			SizeWeight:  weights[0],
			CountWeight: weights[1],
		})
		b, _ := table.Lookup("B")
		assert.Equal(t, 75.00, b.Percent, "weights %v should fall back to size ranking", weights)
	}
}

func TestAggregateExclusions(t *testing.T) {
	f := &stubFetcher{repos: []github.Repository{
		repo("keep", edge("Go", "", 100)),
		repo("Skip-Me", edge("Rust", "", 100)),
		repo(".github", edge("Markdown", "", 100)),
	}}

	table := aggregate(t, f, Options{Username: "octocat", ExcludeRepos: []string{" skip-me "}})

	_, hasRust := table.Lookup("Rust")
	_, hasMarkdown := table.Lookup("Markdown")
	assert.False(t, hasRust, "caller exclusions are case-insensitive and trimmed")
	assert.False(t, hasMarkdown, "the fixed exclusion list always applies")
	assert.Equal(t, 1, table.Len())
}

func TestAggregateEmptyIsSuccess(t *testing.T) {
	for name, f := range map[string]*stubFetcher{
		"no repos":         {},
		"no language data": {repos: []github.Repository{repo("bare")}},
		"all excluded":     {repos: []github.Repository{repo("x", edge("Go", "", 1))}},
	} {
		t.Run(name, func(t *testing.T) {
			opts := Options{Username: "octocat"}
			if name == "all excluded" {
				opts.ExcludeRepos = []string{"x"}
			}
			table := aggregate(t, f, opts)
			assert.Equal(t, 0, table.Len())
		})
	}
}

func TestAggregateColors(t *testing.T) {
	f := &stubFetcher{repos: []github.Repository{
		repo("one", edge("Plain", "", 10), edge("Tinted", "#ff0000", 10)),
		repo("two", edge("Tinted", "#00ff00", 10)),
	}}

	table := aggregate(t, f, Options{Username: "octocat"})

	plain, _ := table.Lookup("Plain")
	assert.Equal(t, DefaultColor, plain.Color, "missing color falls back to neutral gray")

	tinted, _ := table.Lookup("Tinted")
	assert.Equal(t, "#ff0000", tinted.Color, "first occurrence's color wins")
}

func TestAggregateAllZeroSizes(t *testing.T) {
	f := &stubFetcher{repos: []github.Repository{
		repo("one", edge("A", "", 0), edge("B", "", 0)),
	}}

	table := aggregate(t, f, Options{Username: "octocat"})
	for _, l := range table.Langs() {
		assert.False(t, math.IsNaN(l.Percent) || math.IsInf(l.Percent, 0))
		assert.GreaterOrEqual(t, l.Percent, 0.0)
		assert.GreaterOrEqual(t, l.Size, 0.0)
	}
}

func TestAggregateStableTieOrder(t *testing.T) {
	f := &stubFetcher{repos: []github.Repository{
		repo("one", edge("First", "", 100), edge("Second", "", 100), edge("Third", "", 100)),
	}}

	table := aggregate(t, f, Options{Username: "octocat"})
	langs := table.Langs()
	require.Equal(t, 3, table.Len())
	assert.Equal(t, []string{"First", "Second", "Third"},
		[]string{langs[0].Name, langs[1].Name, langs[2].Name},
		"equal weighted sizes keep first-encountered order")
}

func TestAggregatePercentsSumToHundred(t *testing.T) {
	f := &stubFetcher{repos: []github.Repository{
		repo("one", edge("A", "", 123), edge("B", "", 456), edge("C", "", 789)),
		repo("two", edge("A", "", 321), edge("D", "", 7)),
	}}

	table := aggregate(t, f, Options{Username: "octocat"})
	var sum float64
	for _, l := range table.Langs() {
		sum += l.Percent
	}
	assert.InDelta(t, 100.0, sum, 0.05, "percents sum to ~100 modulo rounding")
}
