// Package langs renders a language-statistics table as one of five SVG card
// layouts: a bar list (normal), a cumulative strip (compact), a ring with a
// side legend (donut), a dash-partitioned ring over a legend
// (donut-vertical), and classic wedges (pie).
//
// Every renderer consumes the same trimmed, ordered list and returns markup
// plus the exact canvas height the card must use; the donut additionally
// widens the canvas. Entrance animations are positional annotations only:
// disabling them never changes the geometry.
package langs

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/matzehuels/langcard/pkg/card"
	apperrors "github.com/matzehuels/langcard/pkg/errors"
	"github.com/matzehuels/langcard/pkg/langstats"
	"github.com/matzehuels/langcard/pkg/observability"
)

// Layout selects one of the five card layouts.
type Layout string

// Supported layouts.
const (
	LayoutNormal        Layout = "normal"
	LayoutCompact       Layout = "compact"
	LayoutDonut         Layout = "donut"
	LayoutDonutVertical Layout = "donut-vertical"
	LayoutPie           Layout = "pie"
)

// ParseLayout maps a request parameter to a Layout. The empty string means
// the default (normal) layout; anything unrecognized is an error.
func ParseLayout(s string) (Layout, error) {
	switch Layout(s) {
	case "", LayoutNormal:
		return LayoutNormal, nil
	case LayoutCompact, LayoutDonut, LayoutDonutVertical, LayoutPie:
		return Layout(s), nil
	default:
		return "", apperrors.New(apperrors.ErrCodeInvalidLayout, "unknown layout %q", s)
	}
}

// DisplayFormat selects how each language's value is shown.
type DisplayFormat string

// Supported display formats.
const (
	FormatPercentages DisplayFormat = "percentages"
	FormatBytes       DisplayFormat = "bytes"
)

// CardOptions configures one card render. The zero value renders the normal
// layout at the default width with the default theme.
type CardOptions struct {
	Layout     Layout
	Width      int      // width hint; 0 means default, clamped to the minimum
	LangsCount int      // languages to display; 0 means the layout default
	Hide       []string // language names to hide (case-insensitive)

	Theme     string
	Colors    card.Overrides
	Locale    string
	FullTitle string // custom title; empty means the localized default

	BorderRadius      float64
	HideTitle         bool
	HideBorder        bool
	HideProgress      bool // omit compact strip / normal bars
	DisableAnimations bool
	Format            DisplayFormat // empty means percentages

	Username string // accessibility label only
}

// Card frame margins shared by the layouts.
const (
	sidePadding = 25  // body x inset, matches the frame's title inset
	barMargin   = 95  // normal layout: width reserved right of the bars
	stripMargin = 50  // compact layout: width not covered by the strip
	minSpan     = 10 // compact layout: minimum visible span in px
	noDataBase  = 90 // canvas height of the empty-state card (compact base)
)

type renderResult struct {
	body       string
	height     float64
	extraWidth float64
}

// renderer is one layout implementation working on the trimmed list.
type renderer func(langs []*langstats.Lang, width float64, opts CardOptions) renderResult

var renderers = map[Layout]renderer{
	LayoutNormal:        renderNormal,
	LayoutCompact:       renderCompact,
	LayoutDonut:         renderDonut,
	LayoutDonutVertical: renderDonutVertical,
	LayoutPie:           renderPie,
}

// RenderCard turns an aggregated table into a complete SVG card.
//
// The display count defaults per layout, the list is trimmed before
// dispatch, and a table that trims to nothing renders the localized
// empty-state placeholder at the compact base height instead of failing.
func RenderCard(ctx context.Context, table *langstats.Table, opts CardOptions) (string, error) {
	layout, err := ParseLayout(string(opts.Layout))
	if err != nil {
		return "", err
	}

	count := opts.LangsCount
	if count == 0 {
		count = langstats.DefaultLanguageCount(string(layout), opts.HideProgress)
	}
	trimmed := langstats.Trim(table, count, opts.Hide)

	observability.Render().OnRenderStart(ctx, string(layout), len(trimmed))
	start := time.Now()

	width := card.ClampWidth(opts.Width)

	var result renderResult
	if len(trimmed) == 0 {
		result = renderNoData(layout, width, opts.Locale)
	} else {
		result = renderers[layout](trimmed, width, opts)
	}

	title := opts.FullTitle
	if title == "" {
		title = card.DefaultTitle(opts.Locale)
	}
	colors := card.ResolveColors(opts.Theme, opts.Colors)

	c := &card.Card{
		Width:             width + result.extraWidth,
		Height:            result.height,
		Title:             title,
		CustomLang:        opts.Username,
		Colors:            colors,
		CSS:               bodyCSS(colors),
		Body:              result.body,
		BorderRadius:      opts.BorderRadius,
		HideTitle:         opts.HideTitle,
		HideBorder:        opts.HideBorder,
		DisableAnimations: opts.DisableAnimations,
	}

	svg := c.Render()
	observability.Render().OnRenderComplete(ctx, string(layout), time.Since(start), nil)
	return svg, nil
}

// renderNoData renders the placeholder for an empty table. The text insets
// further on the centered ring layouts so it does not hug the left edge of a
// canvas whose content would have been centered.
func renderNoData(layout Layout, width float64, locale string) renderResult {
	x := float64(sidePadding)
	if layout == LayoutPie || layout == LayoutDonutVertical {
		x = width / 4
	}
	body := fmt.Sprintf(
		`    <text x="%.2f" y="11" class="stat bold">%s</text>`+"\n",
		x, card.EscapeXML(card.NoDataMessage(locale)))
	return renderResult{body: body, height: noDataBase}
}

// bodyCSS returns the style rules shared by every layout body.
func bodyCSS(colors card.Colors) string {
	return fmt.Sprintf(`    .lang-name {
      font: 400 11px "Segoe UI", Ubuntu, Sans-Serif;
      fill: %[1]s;
    }
    .stat {
      font: 600 14px 'Segoe UI', Ubuntu, "Helvetica Neue", Sans-Serif;
      fill: %[1]s;
    }
    .bold { font-weight: 700 }`, colors.Text)
}

// displayValue formats one language's value per the display format.
func displayValue(l *langstats.Lang, format DisplayFormat) string {
	if format == FormatBytes {
		return card.FormatBytes(l.Size)
	}
	return strconv.FormatFloat(l.Percent, 'f', 2, 64) + "%"
}

// staggerAttr returns the entrance-delay annotation for the item at index,
// or nothing when animations are disabled. Purely presentational: the
// surrounding geometry must not depend on it.
func staggerAttr(delayMS float64, animate bool) string {
	if !animate {
		return ""
	}
	return fmt.Sprintf(` class="stagger" style="animation-delay: %.0fms"`, delayMS)
}
