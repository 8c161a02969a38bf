// Package grid samples rectangular regions of the complex plane.
//
// Samples are equidistant and include both ends of each range. Columns run
// along the real axis from XMin to XMax; rows run along the imaginary axis
// from YMin to YMax.
package grid

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

var (
	ErrInvalidBounds     = errors.New("grid: bounds must be finite with min < max")
	ErrInvalidResolution = errors.New("grid: resolution must be at least 1x1")
)

// Grid is usable as a literal; New also validates it and caches the axes.
type Grid struct {
	XMin, XMax float64
	YMin, YMax float64
	Cols, Rows int

	reals []float64
	imags []float64
}

// New builds a grid of cols x rows samples.
func New(xmin, xmax, ymin, ymax float64, cols, rows int) (Grid, error) {
	g := Grid{
		XMin: xmin, XMax: xmax,
		YMin: ymin, YMax: ymax,
		Cols: cols, Rows: rows,
	}
	if err := g.Validate(); err != nil {
		return Grid{}, err
	}
	g.reals = span(cols, xmin, xmax)
	g.imags = span(rows, ymin, ymax)
	return g, nil
}

// Validate checks resolution and bounds the way New does.
func (g Grid) Validate() error {
	if g.Cols < 1 || g.Rows < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidResolution, g.Cols, g.Rows)
	}
	if err := checkAxis(g.XMin, g.XMax, g.Cols); err != nil {
		return fmt.Errorf("real axis: %w", err)
	}
	if err := checkAxis(g.YMin, g.YMax, g.Rows); err != nil {
		return fmt.Errorf("imaginary axis: %w", err)
	}
	return nil
}

// Square builds a density x density grid.
func Square(xmin, xmax, ymin, ymax float64, density int) (Grid, error) {
	return New(xmin, xmax, ymin, ymax, density, density)
}

// FromRegion builds a cols x rows grid over r.
func FromRegion(r Region, cols, rows int) (Grid, error) {
	return New(r.XMin, r.XMax, r.YMin, r.YMax, cols, rows)
}

func checkAxis(lo, hi float64, n int) error {
	for _, v := range []float64{lo, hi} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidBounds
		}
	}
	// A single sample only needs one coordinate.
	if n == 1 && lo <= hi {
		return nil
	}
	if lo >= hi {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidBounds, lo, hi)
	}
	return nil
}

// coord is element i of span(n, lo, hi).
func coord(i, n int, lo, hi float64) float64 {
	switch {
	case n == 1 || i == 0:
		return lo
	case i == n-1:
		return hi
	}
	step := (hi - lo) / float64(n-1)
	return lo + step*float64(i)
}

func span(n int, lo, hi float64) []float64 {
	if n == 1 {
		return []float64{lo}
	}
	s := floats.Span(make([]float64, n), lo, hi)
	s[n-1] = hi
	return s
}

func (g Grid) Len() int {
	return g.Cols * g.Rows
}

// Index returns the row-major position of (row, col).
func (g Grid) Index(row, col int) int {
	return row*g.Cols + col
}

// Point returns the sample at (row, col).
func (g Grid) Point(row, col int) complex128 {
	return complex(g.real(col), g.imag(row))
}

func (g Grid) real(col int) float64 {
	if len(g.reals) == g.Cols {
		return g.reals[col]
	}
	return coord(col, g.Cols, g.XMin, g.XMax)
}

func (g Grid) imag(row int) float64 {
	if len(g.imags) == g.Rows {
		return g.imags[row]
	}
	return coord(row, g.Rows, g.YMin, g.YMax)
}

// Reals returns a copy of the column coordinates.
func (g Grid) Reals() []float64 {
	if len(g.reals) == g.Cols {
		return append([]float64(nil), g.reals...)
	}
	return span(g.Cols, g.XMin, g.XMax)
}

// Imags returns a copy of the row coordinates.
func (g Grid) Imags() []float64 {
	if len(g.imags) == g.Rows {
		return append([]float64(nil), g.imags...)
	}
	return span(g.Rows, g.YMin, g.YMax)
}

// Area is the area of the sampled rectangle.
func (g Grid) Area() float64 {
	r := g.Region()
	return r.Width() * r.Height()
}

func (g Grid) Region() Region {
	return Region{XMin: g.XMin, XMax: g.XMax, YMin: g.YMin, YMax: g.YMax}
}

func (g Grid) String() string {
	return fmt.Sprintf("[%g, %g]x[%g, %g] @ %dx%d", g.XMin, g.XMax, g.YMin, g.YMax, g.Cols, g.Rows)
}
