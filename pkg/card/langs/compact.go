package langs

import (
	"bytes"
	"fmt"
	"math"

	"github.com/matzehuels/langcard/pkg/langstats"
)

// compactHeight is the canvas height of the compact layout for n languages.
func compactHeight(n int, hideProgress bool) float64 {
	h := 90 + legendRows(n)*chipRowHeight
	if hideProgress {
		h -= chipRowHeight
	}
	return h
}

// renderCompact draws one cumulative strip partitioned by percentage, then
// the legend chips in two columns. Spans under the visibility floor are
// widened to it, but each following span still starts at the unfloored
// cumulative offset so the strip's total alignment is undistorted.
func renderCompact(langs []*langstats.Lang, width float64, opts CardOptions) renderResult {
	animate := !opts.DisableAnimations
	stripWidth := width - stripMargin

	var buf bytes.Buffer
	chipOffsetY := 0
	if !opts.HideProgress {
		chipOffsetY = chipRowHeight
		buf.WriteString("    <mask id=\"stats-mask\">\n")
		fmt.Fprintf(&buf, `      <rect x="%d" y="0" width="%.2f" height="8" fill="white" rx="5"/>`+"\n",
			sidePadding, stripWidth)
		buf.WriteString("    </mask>\n")

		buf.WriteString(`    <g mask="url(#stats-mask)">` + "\n")
		offset := float64(sidePadding)
		for _, l := range langs {
			span := l.Percent / 100 * stripWidth
			display := math.Max(span, minSpan)
			fmt.Fprintf(&buf, `      <rect x="%.2f" y="0" width="%.2f" height="8" fill="%s"/>`+"\n",
				offset, display, l.Color)
			offset += span
		}
		buf.WriteString("    </g>\n")
	}

	fmt.Fprintf(&buf, `    <g transform="translate(%d, %d)">`+"\n", sidePadding, chipOffsetY)
	chipColumns(&buf, langs, opts.Format, animate, nil)
	buf.WriteString("    </g>\n")

	return renderResult{
		body:   buf.String(),
		height: compactHeight(len(langs), opts.HideProgress),
	}
}
