package langs

import (
	"bytes"
	"fmt"
	"math"

	"github.com/matzehuels/langcard/pkg/card"
	"github.com/matzehuels/langcard/pkg/langstats"
)

const (
	donutExtraWidth  = 50 // the ring needs more canvas than the other layouts
	donutRadius      = 40
	donutStroke      = 25
	donutLegendRow   = 32
	donutBaseHeight  = 215
	donutAngleOffset = -90 // 0% starts at 12 o'clock
)

// donutHeight is the canvas height of the donut layout for n languages. The
// first five legend rows fit the base height; each further row adds one.
func donutHeight(n int) float64 {
	return donutBaseHeight + math.Max(float64(n-5), 0)*donutLegendRow
}

// donutRingShift is the horizontal ring offset keeping the ring balanced
// against a legend that grows taller than the base five rows.
func donutRingShift(n int) float64 {
	return -45 + math.Max(float64(n-5), 0)*16
}

// renderDonut draws a left-hand legend and a ring built from one stroked arc
// per language. Arc endpoints are rotated so the first language starts at
// the top of the ring. A single language short-circuits to a plain circle: a
// 360-degree arc command has coincident endpoints and renders as nothing.
func renderDonut(langs []*langstats.Lang, width float64, opts CardOptions) renderResult {
	animate := !opts.DisableAnimations

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `    <g transform="translate(%d, 0)">`+"\n", sidePadding)
	for i, l := range langs {
		fmt.Fprintf(&buf, `      <g transform="translate(0, %d)"%s>`+"\n",
			i*donutLegendRow, staggerAttr(float64(i+3)*normalRowStagger, animate))
		fmt.Fprintf(&buf, `        <circle cx="5" cy="6" r="5" fill="%s"/>`+"\n", l.Color)
		fmt.Fprintf(&buf, `        <text x="15" y="10" class="lang-name">%s %s</text>`+"\n",
			card.EscapeXML(l.Name), card.EscapeXML(displayValue(l, opts.Format)))
		buf.WriteString("      </g>\n")
	}
	buf.WriteString("    </g>\n")

	cx := width - donutRadius - donutStroke + donutRingShift(len(langs))
	cy := 80.0 // vertical center of the base body region

	fmt.Fprintf(&buf, `    <g transform="translate(%.2f, %.2f)">`+"\n", cx, cy)
	if len(langs) == 1 {
		fmt.Fprintf(&buf, `      <circle cx="0" cy="0" r="%d" fill="none" stroke="%s" stroke-width="%d"/>`+"\n",
			donutRadius, langs[0].Color, donutStroke)
	} else {
		angle := 0.0
		for _, l := range langs {
			delta := 3.6 * l.Percent
			path := arcPath(0, 0, donutRadius,
				angle+donutAngleOffset, angle+delta+donutAngleOffset)
			fmt.Fprintf(&buf, `      <path d="%s" fill="none" stroke="%s" stroke-width="%d"/>`+"\n",
				path, l.Color, donutStroke)
			angle += delta
		}
	}
	buf.WriteString("    </g>\n")

	return renderResult{
		body:       buf.String(),
		height:     donutHeight(len(langs)),
		extraWidth: donutExtraWidth,
	}
}
