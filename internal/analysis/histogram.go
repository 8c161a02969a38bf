package analysis

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/mandel/internal/compute"
)

// Histogram counts escaped points per escape iteration. The result has one
// bucket per iteration of the budget; bounded points are not counted.
func Histogram(f *compute.Field) []int {
	hist := make([]int, f.Budget)
	for _, r := range f.Values {
		if n, ok := r.Escaped(); ok {
			hist[n]++
		}
	}
	return hist
}

// HistogramChart plots a histogram as an ASCII line chart.
func HistogramChart(hist []int, width, height int, caption string) string {
	if len(hist) == 0 {
		return ""
	}

	data := make([]float64, len(hist))
	for i, v := range hist {
		data[i] = float64(v)
	}
	// asciigraph needs two samples to draw a line
	if len(data) == 1 {
		data = append(data, data[0])
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
