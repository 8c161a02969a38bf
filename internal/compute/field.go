package compute

import (
	"github.com/san-kum/mandel/internal/escape"
	"github.com/san-kum/mandel/internal/grid"
)

// Field holds one escape result per grid point, row-major.
type Field struct {
	Grid   grid.Grid
	Budget int
	Values []escape.Result
}

func NewField(g grid.Grid, budget int) *Field {
	return &Field{Grid: g, Budget: budget, Values: make([]escape.Result, g.Len())}
}

func (f *Field) At(row, col int) escape.Result {
	return f.Values[f.Grid.Index(row, col)]
}

// Row returns the results of one grid row. The slice aliases the field.
func (f *Field) Row(row int) []escape.Result {
	start := f.Grid.Index(row, 0)
	return f.Values[start : start+f.Grid.Cols]
}

// Bounded counts the points that did not escape.
func (f *Field) Bounded() int {
	n := 0
	for _, v := range f.Values {
		if v.Bounded() {
			n++
		}
	}
	return n
}

// Equal reports whether two fields cover the same grid with the same budget
// and results.
func (f *Field) Equal(other *Field) bool {
	if f.Budget != other.Budget || f.Grid.Cols != other.Grid.Cols || f.Grid.Rows != other.Grid.Rows {
		return false
	}
	if f.Grid.Region() != other.Grid.Region() {
		return false
	}
	for i := range f.Values {
		if f.Values[i] != other.Values[i] {
			return false
		}
	}
	return true
}
