package cli

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/langcard/pkg/cache"
	"github.com/matzehuels/langcard/pkg/github"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{"card": false, "serve": false, "cache": false, "completion": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-test")

	dir, err := cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/tmp/xdg-test", appName) {
		t.Errorf("cacheDir() = %q", dir)
	}
}

func TestDisplayLayout(t *testing.T) {
	if displayLayout("") != "normal" {
		t.Error("empty layout should display as normal")
	}
	if displayLayout("pie") != "pie" {
		t.Error("explicit layout should pass through")
	}
}

func TestPickerModelSelection(t *testing.T) {
	m := NewPickerModel()

	// Move to "donut" and select it.
	var model tea.Model = m
	for i := 0; i < 2; i++ {
		model, _ = model.(PickerModel).Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	model, _ = model.(PickerModel).Update(tea.KeyMsg{Type: tea.KeyEnter})

	picked := model.(PickerModel)
	if picked.Selected == nil || string(picked.Selected.Layout) != "donut" {
		t.Fatalf("layout selection = %+v", picked.Selected)
	}
	if picked.step != stepTheme {
		t.Error("picker should advance to the theme step")
	}

	// First theme, whatever it is, completes the selection.
	model, _ = picked.Update(tea.KeyMsg{Type: tea.KeyEnter})
	picked = model.(PickerModel)
	if picked.Selected.Theme == "" {
		t.Error("theme should be set after the second enter")
	}
}

type countingFetcher struct {
	calls int
	repos []github.Repository
	err   error
}

func (f *countingFetcher) UserLanguages(ctx context.Context, login string) ([]github.Repository, error) {
	f.calls++
	return f.repos, f.err
}

func TestCachedFetcher(t *testing.T) {
	inner := &countingFetcher{repos: []github.Repository{
		{Name: "one", Languages: []github.LanguageEdge{{Name: "Go", Size: 100}}},
	}}
	f := newCachedFetcher(inner, cache.NewMemoryCache())

	for i := 0; i < 3; i++ {
		repos, err := f.UserLanguages(context.Background(), "octocat")
		if err != nil {
			t.Fatal(err)
		}
		if len(repos) != 1 || repos[0].Name != "one" {
			t.Fatalf("unexpected repos: %+v", repos)
		}
	}
	if inner.calls != 1 {
		t.Errorf("inner fetcher called %d times, want 1", inner.calls)
	}
}

func TestCachedFetcherDoesNotCacheErrors(t *testing.T) {
	inner := &countingFetcher{err: errors.New("boom")}
	f := newCachedFetcher(inner, cache.NewMemoryCache())

	for i := 0; i < 2; i++ {
		if _, err := f.UserLanguages(context.Background(), "octocat"); err == nil {
			t.Fatal("expected error")
		}
	}
	if inner.calls != 2 {
		t.Errorf("inner fetcher called %d times, want 2", inner.calls)
	}
}

func TestNewCacheDisabled(t *testing.T) {
	c := newCache(true)
	if err := c.Set(context.Background(), "k", []byte("v"), 0); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := c.Get(context.Background(), "k"); ok {
		t.Error("null cache should never report a hit")
	}
}
