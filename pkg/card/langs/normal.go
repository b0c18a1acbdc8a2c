package langs

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/langcard/pkg/card"
	"github.com/matzehuels/langcard/pkg/langstats"
)

const (
	normalRowHeight  = 40
	normalRowStagger = 150 // ms between row entrances
	normalBarDelay   = 300 // ms from a row's entrance to its bar fill
)

// normalHeight is the canvas height of the bar-list layout for n languages.
func normalHeight(n int) float64 {
	return 45 + float64(n+1)*normalRowHeight
}

// renderNormal draws one row per language: name, a proportional horizontal
// bar on a full-width track, and the value right of the track. With progress
// hidden the bar is dropped and the value moves up beside the name.
func renderNormal(langs []*langstats.Lang, width float64, opts CardOptions) renderResult {
	trackWidth := width - barMargin
	animate := !opts.DisableAnimations

	var buf bytes.Buffer
	for i, l := range langs {
		rowDelay := float64(i+3) * normalRowStagger
		fmt.Fprintf(&buf, `    <g transform="translate(%d, %d)"%s>`+"\n",
			sidePadding, i*normalRowHeight, staggerAttr(rowDelay, animate))
		fmt.Fprintf(&buf, `      <text x="2" y="15" class="lang-name">%s</text>`+"\n",
			card.EscapeXML(l.Name))

		value := card.EscapeXML(displayValue(l, opts.Format))
		if opts.HideProgress {
			fmt.Fprintf(&buf, `      <text x="%.2f" y="15" class="lang-name">%s</text>`+"\n",
				trackWidth+10, value)
			buf.WriteString("    </g>\n")
			continue
		}
		fmt.Fprintf(&buf, `      <text x="%.2f" y="34" class="lang-name">%s</text>`+"\n",
			trackWidth+10, value)

		var barDelay string
		if animate {
			barDelay = fmt.Sprintf(` style="animation-delay: %.0fms"`, rowDelay+normalBarDelay)
		}
		buf.WriteString(`      <g transform="translate(0, 25)">` + "\n")
		fmt.Fprintf(&buf, `        <svg width="%.2f">`+"\n", trackWidth)
		fmt.Fprintf(&buf, `          <rect rx="5" ry="5" x="0" y="0" width="%.2f" height="8" fill="#ddd"/>`+"\n",
			trackWidth)
		fmt.Fprintf(&buf, `          <svg width="%.2f%%">`+"\n", clampBarPercent(l.Percent))
		fmt.Fprintf(&buf, `            <rect rx="5" ry="5" x="0" y="0" width="100%%" height="8" fill="%s" class="lang-progress"%s/>`+"\n",
			l.Color, barDelay)
		buf.WriteString("          </svg>\n        </svg>\n      </g>\n")
		buf.WriteString("    </g>\n")
	}

	return renderResult{body: buf.String(), height: normalHeight(len(langs))}
}

// clampBarPercent keeps a bar visible for tiny shares and sane for
// percentages above 100 (possible with extreme weight exponents).
func clampBarPercent(percent float64) float64 {
	if percent < 2 {
		return 2
	}
	if percent > 100 {
		return 100
	}
	return percent
}
