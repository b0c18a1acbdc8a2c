package langstats

import (
	"fmt"
	"testing"
)

// tableOf builds a table directly, bypassing aggregation.
func tableOf(entries ...*Lang) *Table {
	t := NewTable()
	for _, e := range entries {
		l := t.get(e.Name)
		l.Color = e.Color
		l.Size = e.Size
		l.Count = e.Count
		l.Percent = e.Percent
	}
	return t
}

func names(langs []*Lang) []string {
	out := make([]string, len(langs))
	for i, l := range langs {
		out[i] = l.Name
	}
	return out
}

func TestTrimOrdersByPercent(t *testing.T) {
	table := tableOf(
		&Lang{Name: "C", Percent: 10},
		&Lang{Name: "A", Percent: 60},
		&Lang{Name: "B", Percent: 30},
	)

	got := names(Trim(table, 10, nil))
	want := []string{"A", "B", "C"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Trim() order = %v, want %v", got, want)
		}
	}
}

func TestTrimCapsCount(t *testing.T) {
	table := NewTable()
	for i := 0; i < 30; i++ {
		l := table.get(fmt.Sprintf("L%02d", i))
		l.Percent = float64(30 - i)
	}

	if got := len(Trim(table, 3, nil)); got != 3 {
		t.Errorf("Trim(count=3) returned %d entries", got)
	}
	if got := len(Trim(table, 25, nil)); got != MaxLanguageCount {
		t.Errorf("Trim(count=25) returned %d entries, want clamp to %d", got, MaxLanguageCount)
	}
	if got := len(Trim(table, 0, nil)); got != MinLanguageCount {
		t.Errorf("Trim(count=0) returned %d entries, want clamp to %d", got, MinLanguageCount)
	}
	if got := len(Trim(table, -5, nil)); got != MinLanguageCount {
		t.Errorf("Trim(count=-5) returned %d entries, want clamp to %d", got, MinLanguageCount)
	}
}

func TestTrimHideList(t *testing.T) {
	table := tableOf(
		&Lang{Name: "Go", Percent: 50},
		&Lang{Name: "HTML", Percent: 30},
		&Lang{Name: "CSS", Percent: 20},
	)

	got := names(Trim(table, 10, []string{" html ", "css"}))
	if len(got) != 1 || got[0] != "Go" {
		t.Errorf("Trim() = %v, want [Go]; hide matching is case-insensitive and trimmed", got)
	}
}

func TestTrimFewerThanRequested(t *testing.T) {
	table := tableOf(&Lang{Name: "Go", Percent: 100})

	got := Trim(table, 5, []string{})
	if len(got) != 1 {
		t.Errorf("Trim() = %d entries, want the 1 available", len(got))
	}
}

func TestTrimDoesNotMutateTable(t *testing.T) {
	table := tableOf(
		&Lang{Name: "Low", Percent: 10},
		&Lang{Name: "High", Percent: 90},
	)

	_ = Trim(table, 1, nil)

	if table.Langs()[0].Name != "Low" {
		t.Error("Trim() must not reorder the table it reads")
	}
	if table.Len() != 2 {
		t.Error("Trim() must not shrink the table")
	}
}

func TestTrimKeepsFullTablePercents(t *testing.T) {
	table := tableOf(
		&Lang{Name: "A", Percent: 50},
		&Lang{Name: "B", Percent: 30},
		&Lang{Name: "C", Percent: 20},
	)

	got := Trim(table, 2, nil)
	if got[0].Percent != 50 || got[1].Percent != 30 {
		t.Error("trimmed entries keep their full-table percentages, no renormalization")
	}
}

func TestDefaultLanguageCount(t *testing.T) {
	tests := []struct {
		layout       string
		hideProgress bool
		want         int
	}{
		{"normal", false, 5},
		{"", false, 5},
		{"unknown", false, 5},
		{"compact", false, 6},
		{"donut", false, 5},
		{"donut-vertical", false, 6},
		{"pie", false, 6},
		{"normal", true, 6},
		{"donut", true, 6},
	}
	for _, tt := range tests {
		if got := DefaultLanguageCount(tt.layout, tt.hideProgress); got != tt.want {
			t.Errorf("DefaultLanguageCount(%q, %v) = %d, want %d", tt.layout, tt.hideProgress, got, tt.want)
		}
	}
}
