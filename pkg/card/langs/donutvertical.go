package langs

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/langcard/pkg/langstats"
)

const (
	verticalRadius  = 80
	verticalStroke  = 25
	verticalStagger = 100 // ms per ring segment, 1-based
)

// renderDonutVertical draws a centered ring above a two-column legend. The
// ring is a stack of identical circles, each stroked with a dash pattern
// that exposes exactly its language's share: segment length is the
// percentage of the circumference, and the dash offset of every segment is
// the summed length of the segments before it, so they tile edge to edge.
func renderDonutVertical(langs []*langstats.Lang, width float64, opts CardOptions) renderResult {
	animate := !opts.DisableAnimations
	cx := width / 2
	cy := float64(verticalRadius + 20)
	circ := circumference(verticalRadius)

	var buf bytes.Buffer
	buf.WriteString("    <g>\n")
	offset := 0.0
	for i, l := range langs {
		segment := circ * l.Percent / 100
		fmt.Fprintf(&buf, `      <g%s>`+"\n", staggerAttr(float64(i+1)*verticalStagger, animate))
		fmt.Fprintf(&buf,
			`        <circle cx="%.2f" cy="%.2f" r="%d" fill="transparent" stroke="%s" stroke-width="%d" stroke-dasharray="%.2f %.2f" stroke-dashoffset="%.2f"/>`+"\n",
			cx, cy, verticalRadius, l.Color, verticalStroke, segment, circ-segment, offset)
		buf.WriteString("      </g>\n")
		offset += segment
	}
	buf.WriteString("    </g>\n")

	legendY := cy + verticalRadius + verticalStroke + 15
	fmt.Fprintf(&buf, `    <g transform="translate(%d, %.2f)">`+"\n", sidePadding, legendY)
	chipColumns(&buf, langs, opts.Format, animate, func(i int) float64 {
		return float64(i+1) * verticalStagger
	})
	buf.WriteString("    </g>\n")

	return renderResult{body: buf.String(), height: tallHeight(len(langs))}
}
