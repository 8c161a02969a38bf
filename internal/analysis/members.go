package analysis

import "github.com/san-kum/mandel/internal/compute"

// Members returns the grid points whose orbit stayed bounded, in row-major order.
func Members(f *compute.Field) []complex128 {
	members := make([]complex128, 0, f.Bounded())
	for row := 0; row < f.Grid.Rows; row++ {
		for col, r := range f.Row(row) {
			if r.Bounded() {
				members = append(members, f.Grid.Point(row, col))
			}
		}
	}
	return members
}

// Mask marks bounded points, indexed [row][col].
func Mask(f *compute.Field) [][]bool {
	mask := make([][]bool, f.Grid.Rows)
	for row := range mask {
		mask[row] = make([]bool, f.Grid.Cols)
		for col, r := range f.Row(row) {
			mask[row][col] = r.Bounded()
		}
	}
	return mask
}
