package card

import (
	"fmt"
	"strings"
)

// Approximate per-rune width factors (fraction of the font size) for the
// card's sans-serif stack. Server-side SVG generation has no font renderer,
// so column gaps and centering work from this estimate; it only needs to be
// close enough that long names don't collide with their neighbors.
var (
	narrowRunes = "iljt.,:;'|!()[]{} "
	wideRunes   = "mwMW@%&"
	upperRunes  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

const (
	narrowFactor  = 0.35
	defaultFactor = 0.62
	upperFactor   = 0.73
	wideFactor    = 0.95
	cjkFactor     = 1.0
)

// MeasureText estimates the rendered width in pixels of text at fontSize.
func MeasureText(text string, fontSize float64) float64 {
	var width float64
	for _, r := range text {
		switch {
		case r >= 0x2E80: // CJK and other full-width scripts
			width += cjkFactor
		case strings.ContainsRune(narrowRunes, r):
			width += narrowFactor
		case strings.ContainsRune(wideRunes, r):
			width += wideFactor
		case strings.ContainsRune(upperRunes, r):
			width += upperFactor
		default:
			width += defaultFactor
		}
	}
	return width * fontSize
}

// FormatBytes renders a byte count as a short human-readable string
// ("847 B", "1.2 KB", "3.4 MB"). Used for the bytes display format.
func FormatBytes(n float64) string {
	if n < 0 {
		n = 0
	}
	units := []string{"B", "KB", "MB", "GB", "TB"}
	i := 0
	for n >= 1024 && i < len(units)-1 {
		n /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%.0f %s", n, units[i])
	}
	return fmt.Sprintf("%.1f %s", n, units[i])
}

// EscapeXML escapes the five XML special characters for text nodes and
// attribute values. User-controlled strings (titles, language names) must
// pass through here before being embedded in markup.
func EscapeXML(s string) string {
	return xmlReplacer.Replace(s)
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)
