package langs

import (
	"bytes"
	"fmt"
	"math"

	"github.com/matzehuels/langcard/pkg/card"
	"github.com/matzehuels/langcard/pkg/langstats"
)

const (
	chipRowHeight = 25
	chipFontSize  = 11
	minColumnGap  = 150
)

// legendRows is the row count of a two-column legend for n languages.
func legendRows(n int) float64 {
	return math.Round(float64(n) / 2)
}

// tallHeight is the canvas height of the layouts that center a full ring or
// pie above a two-column legend.
func tallHeight(n int) float64 {
	return 300 + legendRows(n)*chipRowHeight
}

// columnGap is the x distance between the two legend columns: a fixed
// minimum, widened when the longest "name value" label would collide.
func columnGap(langs []*langstats.Lang, format DisplayFormat) float64 {
	longest := 0.0
	for _, l := range langs {
		w := card.MeasureText(l.Name+" "+displayValue(l, format), chipFontSize)
		if w > longest {
			longest = w
		}
	}
	return math.Max(minColumnGap, 20+longest)
}

// chipColumns renders the dot+label legend split into two contiguous
// columns, the left one taking the extra chip on odd counts. delayFor maps a
// list index to the chip's entrance delay; nil means no stagger.
func chipColumns(buf *bytes.Buffer, langs []*langstats.Lang, format DisplayFormat, animate bool, delayFor func(i int) float64) {
	split := (len(langs) + 1) / 2
	gap := columnGap(langs, format)

	for i, l := range langs {
		x := 0.0
		row := i
		if i >= split {
			x = gap
			row = i - split
		}

		var stagger string
		if animate && delayFor != nil {
			stagger = staggerAttr(delayFor(i), animate)
		}
		fmt.Fprintf(buf, `      <g transform="translate(%.2f, %d)"%s>`+"\n",
			x, row*chipRowHeight, stagger)
		fmt.Fprintf(buf, `        <circle cx="5" cy="6" r="5" fill="%s"/>`+"\n", l.Color)
		fmt.Fprintf(buf, `        <text x="15" y="10" class="lang-name">%s %s</text>`+"\n",
			card.EscapeXML(l.Name), card.EscapeXML(displayValue(l, format)))
		buf.WriteString("      </g>\n")
	}
}
