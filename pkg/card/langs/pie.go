package langs

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/langcard/pkg/langstats"
)

const pieRadius = 90

// renderPie draws filled wedges advancing clockwise from 3 o'clock, with the
// two-column legend beneath. A single language fills the whole circle; a
// 100% wedge path would have coincident boundary points and vanish.
func renderPie(langs []*langstats.Lang, width float64, opts CardOptions) renderResult {
	animate := !opts.DisableAnimations
	cx := width / 2
	cy := float64(pieRadius + 10)

	var buf bytes.Buffer
	buf.WriteString("    <g>\n")
	if len(langs) == 1 {
		fmt.Fprintf(&buf, `      <circle cx="%.2f" cy="%.2f" r="%d" fill="%s"/>`+"\n",
			cx, cy, pieRadius, langs[0].Color)
	} else {
		angle := 0.0
		for i, l := range langs {
			delta := l.Percent / 100 * 360
			fmt.Fprintf(&buf, `      <path d="%s" fill="%s"%s/>`+"\n",
				wedgePath(cx, cy, pieRadius, angle, angle+delta), l.Color,
				staggerAttr(float64(i+1)*verticalStagger, animate))
			angle += delta
		}
	}
	buf.WriteString("    </g>\n")

	legendY := cy + pieRadius + 25
	fmt.Fprintf(&buf, `    <g transform="translate(%d, %.2f)">`+"\n", sidePadding, legendY)
	chipColumns(&buf, langs, opts.Format, animate, func(i int) float64 {
		return float64(i+1) * verticalStagger
	})
	buf.WriteString("    </g>\n")

	return renderResult{body: buf.String(), height: tallHeight(len(langs))}
}
