package card

import (
	"regexp"
	"sort"
	"strings"
)

// Colors is the resolved color set for one card.
type Colors struct {
	Title      string
	Text       string
	Background string
	Border     string
}

// themes maps theme names to their color sets. The default theme is the
// fallback for unknown names and for individual colors a theme leaves unset.
var themes = map[string]Colors{
	"default": {
		Title:      "#2f80ed",
		Text:       "#434d58",
		Background: "#fffefe",
		Border:     "#e4e2e2",
	},
	"dark": {
		Title:      "#fff",
		Text:       "#9f9f9f",
		Background: "#151515",
		Border:     "#e4e2e2",
	},
	"radical": {
		Title:      "#fe428e",
		Text:       "#a9fef7",
		Background: "#141321",
		Border:     "#e4e2e2",
	},
	"merko": {
		Title:      "#abd200",
		Text:       "#68b587",
		Background: "#0a0f0b",
		Border:     "#e4e2e2",
	},
	"gruvbox": {
		Title:      "#fabd2f",
		Text:       "#8ec07c",
		Background: "#282828",
		Border:     "#e4e2e2",
	},
	"tokyonight": {
		Title:      "#70a5fd",
		Text:       "#38bdae",
		Background: "#1a1b27",
		Border:     "#e4e2e2",
	},
	"onedark": {
		Title:      "#e4bf7a",
		Text:       "#df6d74",
		Background: "#282c34",
		Border:     "#e4e2e2",
	},
	"cobalt": {
		Title:      "#e683d9",
		Text:       "#75eeb2",
		Background: "#193549",
		Border:     "#e4e2e2",
	},
	"synthwave": {
		Title:      "#e2e9ec",
		Text:       "#e5289e",
		Background: "#2b213a",
		Border:     "#e4e2e2",
	},
	"dracula": {
		Title:      "#ff6e96",
		Text:       "#f8f8f2",
		Background: "#282a36",
		Border:     "#e4e2e2",
	},
	"transparent": {
		Title:      "#006AFF",
		Text:       "#417E87",
		Background: "#ffffff00",
		Border:     "#e4e2e2",
	},
}

// hexColorRe accepts 3/4/6/8 digit hex colors, with or without the leading #.
var hexColorRe = regexp.MustCompile(`^#?([0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// Overrides are per-field color overrides from the request, hex strings with
// or without the leading #. Invalid values are ignored.
type Overrides struct {
	Title      string
	Text       string
	Background string
	Border     string
}

// IsThemeSupported reports whether name is a known theme.
func IsThemeSupported(name string) bool {
	_, ok := themes[name]
	return ok
}

// ThemeNames returns the known theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveColors picks the color set for a card: explicit overrides beat the
// named theme, which beats the default theme. Unknown theme names resolve to
// the default theme rather than erroring, so a typo still yields a card.
func ResolveColors(theme string, o Overrides) Colors {
	c, ok := themes[theme]
	if !ok {
		c = themes["default"]
	}
	if v, ok := normalizeHex(o.Title); ok {
		c.Title = v
	}
	if v, ok := normalizeHex(o.Text); ok {
		c.Text = v
	}
	if v, ok := normalizeHex(o.Background); ok {
		c.Background = v
	}
	if v, ok := normalizeHex(o.Border); ok {
		c.Border = v
	}
	return c
}

// normalizeHex validates a hex color and ensures the leading #.
func normalizeHex(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if v == "" || !hexColorRe.MatchString(v) {
		return "", false
	}
	if !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	return strings.ToLower(v), true
}
