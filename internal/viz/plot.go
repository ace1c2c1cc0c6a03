package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/trigtab/internal/table"
)

const (
	DefaultPlotWidth  = 80
	DefaultPlotHeight = 15
)

// Plot draws the sine and cosine series of t on one chart.
func Plot(t *table.Table, width, height int) string {
	if width <= 0 {
		width = DefaultPlotWidth
	}
	if height <= 0 {
		height = DefaultPlotHeight
	}

	return asciigraph.PlotMany([][]float64{t.Sin, t.Cos},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(3),
		asciigraph.Caption(fmt.Sprintf("sin, cos over [0, π), %d samples", t.Resolution)),
	)
}
