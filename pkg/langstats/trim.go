package langstats

import (
	"sort"
	"strings"
)

// Display count bounds for a single card.
const (
	MinLanguageCount = 1
	MaxLanguageCount = 20
)

// Default display counts per layout.
const (
	defaultCountNormal        = 5
	defaultCountCompact       = 6
	defaultCountDonut         = 5
	defaultCountDonutVertical = 6
	defaultCountPie           = 6
)

// Trim returns the languages to display: the table's entries sorted
// descending by percent, minus hidden names, capped at count.
//
// count is clamped to [MinLanguageCount, MaxLanguageCount]. Hide matching is
// case-insensitive on trimmed names. Trim never mutates the table and never
// renormalizes: the returned entries keep their full-table percentages, and
// fewer than count entries come back when the table runs out.
func Trim(t *Table, count int, hide []string) []*Lang {
	count = min(max(count, MinLanguageCount), MaxLanguageCount)

	hidden := make(map[string]struct{}, len(hide))
	for _, name := range hide {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			hidden[name] = struct{}{}
		}
	}

	ordered := make([]*Lang, len(t.Langs()))
	copy(ordered, t.Langs())
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Percent > ordered[j].Percent
	})

	out := make([]*Lang, 0, count)
	for _, l := range ordered {
		if _, skip := hidden[strings.ToLower(l.Name)]; skip {
			continue
		}
		out = append(out, l)
		if len(out) == count {
			break
		}
	}
	return out
}

// DefaultLanguageCount returns the display count used when the caller does
// not specify one. Hiding the progress strip switches any layout to the
// compact default, since the rows pack tighter.
func DefaultLanguageCount(layout string, hideProgress bool) int {
	if hideProgress {
		return defaultCountCompact
	}
	switch layout {
	case "compact":
		return defaultCountCompact
	case "donut":
		return defaultCountDonut
	case "donut-vertical":
		return defaultCountDonutVertical
	case "pie":
		return defaultCountPie
	default:
		return defaultCountNormal
	}
}
