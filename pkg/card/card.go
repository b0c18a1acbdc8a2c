// Package card assembles the SVG card frame: border, title, theme colors,
// localized chrome strings, and the text-measurement and formatting helpers
// the layout renderers share.
//
// The frame knows nothing about languages; it wraps an arbitrary body at a
// fixed offset. Layout-specific geometry lives in the langs subpackage.
package card

import (
	"bytes"
	"fmt"
)

// Frame geometry shared by every card.
const (
	DefaultWidth = 300 // width when the request has no hint
	MinWidth     = 280 // hard floor for the width hint

	paddingX    = 25 // title x offset
	paddingY    = 35 // title baseline
	bodyOffsetY = 55 // body y offset below the title
	titleHeight = 30 // height reclaimed when the title is hidden

	DefaultBorderRadius = 4.5
)

// animationCSS is the entrance animation block. Omitted entirely when
// animations are disabled so the final geometry is identical either way.
const animationCSS = `
    @keyframes fadeInAnimation {
      from { opacity: 0; }
      to { opacity: 1; }
    }
    @keyframes growWidthAnimation {
      from { width: 0; }
      to { width: 100%; }
    }
    .stagger {
      opacity: 0;
      animation: fadeInAnimation 0.3s ease-in-out forwards;
    }
    .lang-progress {
      animation: growWidthAnimation 0.6s ease-in-out forwards;
    }`

// Card is one renderable SVG card: a themed frame around a body fragment.
type Card struct {
	Width  float64
	Height float64 // body height; the frame adjusts for a hidden title

	Title      string
	CustomLang string // accessibility hint, usually the username

	Colors       Colors
	CSS          string // body-specific style rules
	Body         string // inner markup, already escaped
	BorderRadius float64

	HideTitle         bool
	HideBorder        bool
	DisableAnimations bool
}

// TotalHeight returns the final canvas height, accounting for a hidden title.
func (c *Card) TotalHeight() float64 {
	if c.HideTitle {
		return c.Height - titleHeight
	}
	return c.Height
}

// Render produces the complete SVG document.
func (c *Card) Render() string {
	width := c.Width
	height := c.TotalHeight()
	radius := c.BorderRadius
	if radius == 0 {
		radius = DefaultBorderRadius
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f" fill="none" xmlns="http://www.w3.org/2000/svg" role="img" aria-labelledby="card-title">`+"\n",
		width, height, width, height)

	fmt.Fprintf(&buf, `  <title id="card-title">%s</title>`+"\n", EscapeXML(c.accessibleTitle()))

	c.renderStyle(&buf)
	c.renderFrame(&buf, width, height, radius)
	c.renderTitle(&buf)

	bodyY := float64(bodyOffsetY)
	if c.HideTitle {
		bodyY = paddingX
	}
	fmt.Fprintf(&buf, `  <g transform="translate(0, %.0f)">`+"\n", bodyY)
	buf.WriteString(c.Body)
	buf.WriteString("  </g>\n")

	buf.WriteString("</svg>\n")
	return buf.String()
}

func (c *Card) accessibleTitle() string {
	if c.CustomLang != "" {
		return c.Title + " - " + c.CustomLang
	}
	return c.Title
}

func (c *Card) renderStyle(buf *bytes.Buffer) {
	buf.WriteString("  <style>\n")
	fmt.Fprintf(buf,
		`    .header { font: 600 18px 'Segoe UI', Ubuntu, Sans-Serif; fill: %s; }`+"\n",
		c.Colors.Title)
	if c.CSS != "" {
		buf.WriteString(c.CSS)
		buf.WriteByte('\n')
	}
	if !c.DisableAnimations {
		buf.WriteString(animationCSS)
		buf.WriteByte('\n')
	}
	buf.WriteString("  </style>\n")
}

func (c *Card) renderFrame(buf *bytes.Buffer, width, height, radius float64) {
	stroke := c.Colors.Border
	strokeWidth := 1
	if c.HideBorder {
		stroke = "none"
		strokeWidth = 0
	}
	fmt.Fprintf(buf,
		`  <rect x="0.5" y="0.5" rx="%.1f" width="%.0f" height="%.0f" stroke="%s" fill="%s" stroke-opacity="1" stroke-width="%d"/>`+"\n",
		radius, width-1, height-1, stroke, c.Colors.Background, strokeWidth)
}

func (c *Card) renderTitle(buf *bytes.Buffer) {
	if c.HideTitle {
		return
	}
	fmt.Fprintf(buf,
		`  <g transform="translate(%d, %d)"><text x="0" y="0" class="header">%s</text></g>`+"\n",
		paddingX, paddingY, EscapeXML(c.Title))
}

// ClampWidth applies the default and minimum to a caller width hint.
// A hint of 0 means "use the default".
func ClampWidth(hint int) float64 {
	if hint <= 0 {
		return DefaultWidth
	}
	return float64(max(hint, MinWidth))
}
