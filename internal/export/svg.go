package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/trigtab/internal/table"
)

const (
	sinStroke = "#00ff88"
	cosStroke = "#00ccff"
	padding   = 0.1
)

// TableToSVG draws the sine and cosine samples of t as two paths over
// [0, π) on a fixed [-1, 1] vertical range.
func TableToSVG(t *table.Table, width, height int) string {
	if t == nil || t.Resolution == 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	// zero line
	_, zy := project(0, 0, t.Resolution, width, height)
	sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#444466" stroke-width="1"/>
`, zy, width, zy))

	writePath(&sb, t.Sin, width, height, sinStroke)
	writePath(&sb, t.Cos, width, height, cosStroke)

	sb.WriteString("</svg>")
	return sb.String()
}

func writePath(sb *strings.Builder, vals []float64, width, height int, stroke string) {
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke))
	for i, v := range vals {
		x, y := project(i, v, len(vals), width, height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n")
}

// project maps sample i of n with value v into the padded viewport.
func project(i int, v float64, n, width, height int) (float64, float64) {
	w, h := float64(width), float64(height)
	x := w*padding + float64(i)/float64(n)*w*(1-2*padding)
	y := h*padding + (1-v)/2*h*(1-2*padding)
	return x, y
}
