package card

import (
	"strings"
	"testing"
)

func TestRenderBasics(t *testing.T) {
	c := &Card{
		Width:  300,
		Height: 285,
		Title:  "Most Used Languages",
		Colors: ResolveColors("default", Overrides{}),
		Body:   `<text>body</text>`,
	}
	svg := c.Render()

	for _, want := range []string{
		`width="300"`,
		`height="285"`,
		`viewBox="0 0 300 285"`,
		`<title id="card-title">Most Used Languages</title>`,
		`class="header"`,
		`<text>body</text>`,
		"@keyframes fadeInAnimation",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("Render() missing %q", want)
		}
	}
}

func TestRenderHideTitle(t *testing.T) {
	c := &Card{Width: 300, Height: 285, Title: "Hidden", HideTitle: true}
	svg := c.Render()

	if got := c.TotalHeight(); got != 255 {
		t.Errorf("TotalHeight() = %v, want 255 (30 reclaimed)", got)
	}
	if strings.Contains(svg, `class="header"`) {
		t.Error("Render() should omit the title node when hidden")
	}
	if !strings.Contains(svg, `height="255"`) {
		t.Error("Render() should shrink the canvas when the title is hidden")
	}
}

func TestRenderHideBorder(t *testing.T) {
	c := &Card{Width: 300, Height: 100, HideBorder: true}
	if svg := c.Render(); !strings.Contains(svg, `stroke="none"`) {
		t.Error("Render() should suppress the border stroke")
	}
}

func TestRenderDisableAnimations(t *testing.T) {
	c := &Card{Width: 300, Height: 100, DisableAnimations: true}
	svg := c.Render()
	if strings.Contains(svg, "@keyframes") || strings.Contains(svg, "animation:") {
		t.Error("Render() must not emit animation CSS when disabled")
	}
}

func TestRenderEscapesTitle(t *testing.T) {
	c := &Card{Width: 300, Height: 100, Title: `<script>&"attack"</script>`}
	svg := c.Render()
	if strings.Contains(svg, "<script>") {
		t.Error("Render() must escape user-controlled titles")
	}
	if !strings.Contains(svg, "&lt;script&gt;") {
		t.Error("Render() should keep the escaped text")
	}
}

func TestClampWidth(t *testing.T) {
	tests := []struct {
		hint int
		want float64
	}{
		{0, 300},
		{-10, 300},
		{100, 280},
		{280, 280},
		{500, 500},
	}
	for _, tt := range tests {
		if got := ClampWidth(tt.hint); got != tt.want {
			t.Errorf("ClampWidth(%d) = %v, want %v", tt.hint, got, tt.want)
		}
	}
}

func TestResolveColors(t *testing.T) {
	c := ResolveColors("dark", Overrides{})
	if c.Background != "#151515" {
		t.Errorf("dark background = %q", c.Background)
	}

	// Unknown theme falls back to default.
	c = ResolveColors("no-such-theme", Overrides{})
	if c.Title != "#2f80ed" {
		t.Errorf("fallback title = %q", c.Title)
	}

	// Overrides win, with and without the leading #.
	c = ResolveColors("default", Overrides{Title: "ff0000", Text: "#00FF00"})
	if c.Title != "#ff0000" || c.Text != "#00ff00" {
		t.Errorf("overridden colors = %+v", c)
	}

	// Invalid overrides are ignored.
	c = ResolveColors("default", Overrides{Title: "not-a-color", Background: "#12345"})
	if c.Title != "#2f80ed" || c.Background != "#fffefe" {
		t.Errorf("invalid overrides should be ignored, got %+v", c)
	}
}

func TestMeasureText(t *testing.T) {
	if MeasureText("", 11) != 0 {
		t.Error("empty string has zero width")
	}
	narrow := MeasureText("iiii", 11)
	wide := MeasureText("mmmm", 11)
	if narrow >= wide {
		t.Errorf("narrow %v should be less than wide %v", narrow, wide)
	}
	if MeasureText("abc", 22) != 2*MeasureText("abc", 11) {
		t.Error("width scales linearly with font size")
	}
	if MeasureText("漢字", 11) != 2*11.0 {
		t.Error("CJK runes are full-width")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0 B"},
		{847, "847 B"},
		{1024, "1.0 KB"},
		{1229, "1.2 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
		{-5, "0 B"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.want {
			t.Errorf("FormatBytes(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLocaleStrings(t *testing.T) {
	if DefaultTitle("en") != "Most Used Languages" {
		t.Error("english default title wrong")
	}
	if DefaultTitle("pt-BR") != defaultTitles["pt-br"] {
		t.Error("locale lookup should be case-insensitive")
	}
	if DefaultTitle("xx") != "Most Used Languages" {
		t.Error("unknown locale falls back to english")
	}
	if !IsLocaleSupported("ja") || IsLocaleSupported("xx") {
		t.Error("IsLocaleSupported() wrong")
	}
	if NoDataMessage("xx") != "No languages data." {
		t.Error("unknown locale no-data message falls back to english")
	}
}
