package analysis

import (
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/mandel/internal/compute"
)

type Summary struct {
	Points          int     `json:"points"`
	Bounded         int     `json:"bounded"`
	Escaped         int     `json:"escaped"`
	BoundedFraction float64 `json:"bounded_fraction"`
	MeanEscape      float64 `json:"mean_escape"`
	StdDevEscape    float64 `json:"stddev_escape"`
	MaxEscape       int     `json:"max_escape"`
	AreaEstimate    float64 `json:"area_estimate"`
}

// Summarize computes counts and escape statistics for a field. Escape
// statistics cover escaped points only; with none escaped they are zero and
// MaxEscape is -1.
func Summarize(f *compute.Field) Summary {
	s := Summary{Points: len(f.Values), MaxEscape: -1}

	escapes := make([]float64, 0, len(f.Values))
	for _, r := range f.Values {
		n, ok := r.Escaped()
		if !ok {
			s.Bounded++
			continue
		}
		escapes = append(escapes, float64(n))
		if n > s.MaxEscape {
			s.MaxEscape = n
		}
	}
	s.Escaped = len(escapes)

	if s.Points > 0 {
		s.BoundedFraction = float64(s.Bounded) / float64(s.Points)
		s.AreaEstimate = s.BoundedFraction * f.Grid.Area()
	}

	switch len(escapes) {
	case 0:
	case 1:
		s.MeanEscape = escapes[0]
	default:
		s.MeanEscape, s.StdDevEscape = stat.MeanStdDev(escapes, nil)
	}

	return s
}
